package dataset

import (
	"github.com/distritobeef/guide-app/services/dataset-service/internal/domain"
)

// RawRecord is one event row as delivered by the source spreadsheet export.
// Column names are the source system's; nullable columns stay pointers so a
// missing value and an explicit null both read as nil.
type RawRecord struct {
	EventID   string  `json:"Event_ID" validate:"required"`
	Title     string  `json:"Evento" validate:"required"`
	Venue     *string `json:"Venue"`
	Group     *string `json:"Grupo"`
	Kind      *string `json:"Tipo"`
	Date      string  `json:"Fecha" validate:"required"`
	StartTime *string `json:"Inicio"`
	EndTime   *string `json:"Fin"`
	Notes     *string `json:"Notas"`
	SourceURL *string `json:"URL fuente"`
	DressCode *string `json:"Dress code"`
}

// Dataset is the validated source envelope. Unknown envelope fields are
// dropped on decode; a missing EVENTS_MASTER reads as an empty list.
type Dataset struct {
	Events []RawRecord `json:"EVENTS_MASTER"`
}

type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
	SourceCache  Source = "cache"
)

// CacheEntry is the single persisted unit: the last known-good dataset plus
// the validation tag and write time. Owned exclusively by the Loader.
type CacheEntry struct {
	Dataset   Dataset `json:"dataset"`
	ETag      string  `json:"etag,omitempty"`
	UpdatedAt int64   `json:"updated_at"` // epoch millis
	Source    Source  `json:"source"`
}

type Status string

const (
	StatusFresh    Status = "fresh"
	StatusCache    Status = "cache"
	StatusFallback Status = "fallback"
	StatusRejected Status = "rejected"
)

// LoadResult is what one Load cycle resolves to. Transient, never persisted.
type LoadResult struct {
	Dataset   *Dataset
	Events    []domain.Event
	ETag      string
	UpdatedAt int64 // epoch millis
	Status    Status
	Message   string
}
