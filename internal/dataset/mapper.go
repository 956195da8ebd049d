package dataset

import (
	"time"

	"github.com/go-playground/validator/v10"
	zlog "github.com/rs/zerolog/log"

	"github.com/distritobeef/guide-app/services/dataset-service/internal/domain"
	"github.com/distritobeef/guide-app/services/dataset-service/internal/metrics"
)

const (
	dateTimeLayout   = "2006-01-02T15:04"
	defaultStartTime = "12:00"
	defaultDuration  = 3 * time.Hour
)

// Mapper normalizes raw source rows into domain events. Pure given its
// configured location; the same row always maps to the same event.
type Mapper struct {
	loc      *time.Location
	validate *validator.Validate
}

func NewMapper(loc *time.Location) *Mapper {
	if loc == nil {
		loc = time.UTC
	}
	return &Mapper{
		loc:      loc,
		validate: validator.New(),
	}
}

// MapDataset converts every mappable row, preserving input order. Rows that
// cannot be normalized are skipped with a warning; they never abort the batch.
func (m *Mapper) MapDataset(ds *Dataset) []domain.Event {
	events := make([]domain.Event, 0, len(ds.Events))
	for _, rec := range ds.Events {
		ev, err := m.mapRecord(rec)
		if err != nil {
			zlog.Warn().Str("event_id", idOrUnknown(rec)).Err(err).Msg("dataset: skipping record")
			metrics.RecordDroppedRecord()
			continue
		}
		events = append(events, ev)
	}
	return events
}

func (m *Mapper) mapRecord(rec RawRecord) (domain.Event, error) {
	// Shape check first: Event_ID, Evento and Fecha are mandatory.
	if err := m.validate.Struct(rec); err != nil {
		return domain.Event{}, domain.ErrValidation(err.Error())
	}

	start, err := time.ParseInLocation(dateTimeLayout, rec.Date+"T"+strOr(rec.StartTime, defaultStartTime), m.loc)
	if err != nil {
		return domain.Event{}, domain.ErrValidation("unparseable start: " + err.Error())
	}

	end := start.Add(defaultDuration)
	if rec.EndTime != nil && *rec.EndTime != "" {
		if parsed, perr := time.ParseInLocation(dateTimeLayout, rec.Date+"T"+*rec.EndTime, m.loc); perr == nil {
			end = parsed
			if end.Before(start) {
				// event crosses midnight
				end = end.AddDate(0, 0, 1)
			}
		}
	}

	track := domain.TrackFromGroup(strOr(rec.Group, ""))

	return domain.Event{
		ID:          rec.EventID,
		Title:       rec.Title,
		Venue:       strOr(rec.Venue, domain.DefaultVenue),
		Track:       track,
		Category:    track.Category(),
		Start:       start,
		End:         end,
		Dress:       strOr(rec.DressCode, domain.DefaultDress),
		Color:       track.Color(),
		Image:       domain.ArtworkFor(strOr(rec.Kind, ""), strOr(rec.Venue, "")),
		Description: strOr(rec.Notes, ""),
		URL:         strOr(rec.SourceURL, ""),
	}, nil
}

func strOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

func idOrUnknown(rec RawRecord) string {
	if rec.EventID == "" {
		return "unknown"
	}
	return rec.EventID
}
