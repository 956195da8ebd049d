package dto

import "time"

// EventResp is the stable API response model the guide UI consumes. Field
// names match the web client's EventData contract.
type EventResp struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Venue    string `json:"venue"`
	Track    string `json:"track"`
	Category string `json:"category"`

	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	Dress       string `json:"dress"`
	Color       string `json:"color"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	IsFeatured  bool   `json:"isFeatured,omitempty"`

	// Derived at response time
	Ended bool `json:"ended"`
	Live  bool `json:"live"`
}

// EventsResp carries the resolved list plus the staleness signal the UI
// renders offline/degraded indicators from.
type EventsResp struct {
	Items     []EventResp `json:"items"`
	Status    string      `json:"status"`
	Message   string      `json:"message,omitempty"`
	UpdatedAt int64       `json:"updated_at,omitempty"`
	ETag      string      `json:"etag,omitempty"`
	Total     int         `json:"total"`
}

// DatasetStatusResp is the metadata-only view of the provider state.
type DatasetStatusResp struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	UpdatedAt int64  `json:"updated_at,omitempty"`
	ETag      string `json:"etag,omitempty"`
	Events    int    `json:"events"`
}
