package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distritobeef/guide-app/services/dataset-service/internal/domain"
)

func strPtr(s string) *string { return &s }

func testMapper(t *testing.T) *Mapper {
	t.Helper()
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)
	return NewMapper(loc)
}

func validRecord() RawRecord {
	return RawRecord{
		EventID:   "E1",
		Title:     "Pool Party",
		Venue:     strPtr("Blue Chairs"),
		Group:     strPtr("beefdip"),
		Kind:      strPtr("Pool"),
		Date:      "2026-01-26",
		StartTime: strPtr("12:00"),
		EndTime:   strPtr("18:00"),
	}
}

func TestMapDataset(t *testing.T) {
	m := testMapper(t)

	t.Run("maps_master_scenario_record", func(t *testing.T) {
		ds := &Dataset{Events: []RawRecord{validRecord()}}

		events := m.MapDataset(ds)
		require.Len(t, events, 1)

		ev := events[0]
		assert.Equal(t, "E1", ev.ID)
		assert.Equal(t, "Pool Party", ev.Title)
		assert.Equal(t, "Blue Chairs", ev.Venue)
		assert.Equal(t, domain.TrackBeefDip, ev.Track)
		assert.Equal(t, domain.CategoryBeef, ev.Category)
		assert.Equal(t, "var(--s)", ev.Color)
		assert.Contains(t, ev.Image, "1534447677768") // pool artwork
		assert.Equal(t, "2026-01-26T12:00:00", ev.Start.Format("2006-01-02T15:04:05"))
		assert.Equal(t, "2026-01-26T18:00:00", ev.End.Format("2006-01-02T15:04:05"))
	})

	t.Run("mapping_is_idempotent", func(t *testing.T) {
		ds := &Dataset{Events: []RawRecord{validRecord()}}

		first := m.MapDataset(ds)
		second := m.MapDataset(ds)
		assert.Equal(t, first, second)
	})

	t.Run("one_bad_record_does_not_abort_batch", func(t *testing.T) {
		missingDate := validRecord()
		missingDate.EventID = "E2"
		missingDate.Date = ""

		ok := validRecord()
		ok.EventID = "E3"

		ds := &Dataset{Events: []RawRecord{validRecord(), missingDate, ok}}

		events := m.MapDataset(ds)
		require.Len(t, events, 2)
		assert.Equal(t, "E1", events[0].ID)
		assert.Equal(t, "E3", events[1].ID)
	})

	t.Run("skips_record_missing_id_or_title", func(t *testing.T) {
		noID := validRecord()
		noID.EventID = ""
		noTitle := validRecord()
		noTitle.Title = ""

		events := m.MapDataset(&Dataset{Events: []RawRecord{noID, noTitle}})
		assert.Empty(t, events)
	})

	t.Run("skips_record_with_malformed_date", func(t *testing.T) {
		bad := validRecord()
		bad.Date = "26/01/2026"

		events := m.MapDataset(&Dataset{Events: []RawRecord{bad}})
		assert.Empty(t, events)
	})

	t.Run("preserves_input_order", func(t *testing.T) {
		a := validRecord()
		a.EventID = "A"
		b := validRecord()
		b.EventID = "B"
		b.Date = "2026-01-25" // earlier date, still second in input

		events := m.MapDataset(&Dataset{Events: []RawRecord{a, b}})
		require.Len(t, events, 2)
		assert.Equal(t, "A", events[0].ID)
		assert.Equal(t, "B", events[1].ID)
	})
}

func TestMapRecordTimes(t *testing.T) {
	m := testMapper(t)

	t.Run("missing_start_defaults_to_noon", func(t *testing.T) {
		rec := validRecord()
		rec.StartTime = nil
		rec.EndTime = nil

		ev, err := m.mapRecord(rec)
		require.NoError(t, err)
		assert.Equal(t, 12, ev.Start.Hour())
	})

	t.Run("missing_end_defaults_to_three_hours", func(t *testing.T) {
		rec := validRecord()
		rec.EndTime = nil

		ev, err := m.mapRecord(rec)
		require.NoError(t, err)
		assert.Equal(t, 3*time.Hour, ev.End.Sub(ev.Start))
	})

	t.Run("unparseable_end_defaults_to_three_hours", func(t *testing.T) {
		rec := validRecord()
		rec.EndTime = strPtr("late")

		ev, err := m.mapRecord(rec)
		require.NoError(t, err)
		assert.Equal(t, 3*time.Hour, ev.End.Sub(ev.Start))
	})

	t.Run("end_before_start_rolls_over_midnight", func(t *testing.T) {
		rec := validRecord()
		rec.StartTime = strPtr("22:00")
		rec.EndTime = strPtr("02:00")

		ev, err := m.mapRecord(rec)
		require.NoError(t, err)
		assert.True(t, ev.End.After(ev.Start))
		assert.Equal(t, ev.Start.Day()+1, ev.End.Day())
		assert.Equal(t, 4*time.Hour, ev.End.Sub(ev.Start))
	})

	t.Run("end_never_precedes_start", func(t *testing.T) {
		recs := []RawRecord{validRecord()}
		late := validRecord()
		late.StartTime = strPtr("23:59")
		late.EndTime = strPtr("00:01")
		recs = append(recs, late)

		for _, ev := range m.MapDataset(&Dataset{Events: recs}) {
			assert.False(t, ev.End.Before(ev.Start))
		}
	})
}

func TestMapRecordDefaults(t *testing.T) {
	m := testMapper(t)

	t.Run("placeholder_venue_and_dress", func(t *testing.T) {
		rec := validRecord()
		rec.Venue = nil
		rec.DressCode = nil

		ev, err := m.mapRecord(rec)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultVenue, ev.Venue)
		assert.Equal(t, domain.DefaultDress, ev.Dress)
	})

	t.Run("community_track_for_unknown_group", func(t *testing.T) {
		rec := validRecord()
		rec.Group = nil

		ev, err := m.mapRecord(rec)
		require.NoError(t, err)
		assert.Equal(t, domain.TrackCommunity, ev.Track)
		assert.Equal(t, domain.CategoryCommunity, ev.Category)
		assert.Equal(t, "var(--o)", ev.Color)
	})

	t.Run("notes_and_url_carry_over", func(t *testing.T) {
		rec := validRecord()
		rec.Notes = strPtr("DJ set desde mediodía")
		rec.SourceURL = strPtr("https://example.com/e1")

		ev, err := m.mapRecord(rec)
		require.NoError(t, err)
		assert.Equal(t, "DJ set desde mediodía", ev.Description)
		assert.Equal(t, "https://example.com/e1", ev.URL)
	})
}
