package domain

import "time"

const (
	// DefaultVenue stands in when the source row has no venue.
	DefaultVenue = "Por confirmar"
	// DefaultDress is the dress code applied when the source row has none.
	DefaultDress = "Casual"
)

// Event is the normalized guide event the UI consumes. Instances are built
// by the dataset mapper; Start/End are always valid and End >= Start.
type Event struct {
	ID          string
	Title       string
	Venue       string
	Track       Track
	Category    Category
	Start       time.Time
	End         time.Time
	Dress       string
	Color       string
	Image       string
	Description string
	URL         string
	IsFeatured  bool
}

func (e *Event) IsEnded(now time.Time) bool {
	return !now.Before(e.End) // now >= end => ended
}

// IsLive reports whether the event is happening at the given instant.
func (e *Event) IsLive(now time.Time) bool {
	return !now.Before(e.Start) && now.Before(e.End)
}
