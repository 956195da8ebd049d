package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distritobeef/guide-app/services/dataset-service/internal/dataset"
	"github.com/distritobeef/guide-app/services/dataset-service/internal/transport/http/dto"
)

type mockClock struct{ now time.Time }

func (c mockClock) Now() time.Time { return c.now }

// loadedProvider builds a provider with no remote source and no cache, so a
// reload resolves the bundled snapshot (6 events, E001..E006).
func loadedProvider(t *testing.T, clock mockClock) *dataset.Provider {
	t.Helper()
	loader := dataset.NewLoader(dataset.NoopStore{}, nil, dataset.Snapshot{}, dataset.NewMapper(time.UTC), 15*time.Minute, clock)
	p := dataset.NewProvider(loader)
	st := p.Reload(context.Background(), false)
	require.NotEmpty(t, st.Events)
	return p
}

func decodeEvents(t *testing.T, rr *httptest.ResponseRecorder) dto.EventsResp {
	t.Helper()
	var env struct {
		Data dto.EventsResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env.Data
}

func TestListEvents(t *testing.T) {
	clock := mockClock{now: time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)}
	h := NewGuideHandler(loadedProvider(t, clock), clock)

	t.Run("returns_all_events_sorted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guide/v1/events", nil)
		rr := httptest.NewRecorder()
		h.ListEvents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		got := decodeEvents(t, rr)
		assert.Equal(t, 6, got.Total)
		assert.Equal(t, string(dataset.ProviderFallback), got.Status)
		for i := 1; i < len(got.Items); i++ {
			assert.False(t, got.Items[i].Start.Before(got.Items[i-1].Start))
		}
	})

	t.Run("filters_by_track", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guide/v1/events?track=beefdip", nil)
		rr := httptest.NewRecorder()
		h.ListEvents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		got := decodeEvents(t, rr)
		require.NotZero(t, got.Total)
		for _, ev := range got.Items {
			assert.Equal(t, "beefdip", ev.Track)
		}
	})

	t.Run("filters_by_time_window", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/guide/v1/events?from=2026-01-28T00:00:00Z&to=2026-01-28T23:59:00Z", nil)
		rr := httptest.NewRecorder()
		h.ListEvents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		got := decodeEvents(t, rr)
		require.NotZero(t, got.Total)
		for _, ev := range got.Items {
			assert.False(t, ev.End.Before(time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC)))
			assert.False(t, ev.Start.After(time.Date(2026, 1, 28, 23, 59, 0, 0, time.UTC)))
		}
	})

	t.Run("rejects_unknown_track", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guide/v1/events?track=circuit", nil)
		rr := httptest.NewRecorder()
		h.ListEvents(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "validation_error")
		assert.Contains(t, rr.Body.String(), "track")
	})

	t.Run("rejects_unknown_category", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guide/v1/events?category=vip", nil)
		rr := httptest.NewRecorder()
		h.ListEvents(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "validation_error")
	})

	t.Run("rejects_malformed_from", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guide/v1/events?from=yesterday", nil)
		rr := httptest.NewRecorder()
		h.ListEvents(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "RFC3339")
	})
}

func TestGetEvent(t *testing.T) {
	clock := mockClock{now: time.Date(2026, 1, 26, 13, 0, 0, 0, time.UTC)}
	h := NewGuideHandler(loadedProvider(t, clock), clock)

	withEventID := func(req *http.Request, id string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("event_id", id)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("returns_event_by_id", func(t *testing.T) {
		req := withEventID(httptest.NewRequest(http.MethodGet, "/guide/v1/events/E001", nil), "E001")
		rr := httptest.NewRecorder()
		h.GetEvent(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var env struct {
			Data dto.EventResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		assert.Equal(t, "E001", env.Data.ID)
		assert.True(t, env.Data.Live) // clock is inside E001's window
	})

	t.Run("unknown_id_is_404", func(t *testing.T) {
		req := withEventID(httptest.NewRequest(http.MethodGet, "/guide/v1/events/E999", nil), "E999")
		rr := httptest.NewRecorder()
		h.GetEvent(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "not_found")
	})

	t.Run("unavailable_before_first_load", func(t *testing.T) {
		loader := dataset.NewLoader(dataset.NoopStore{}, nil, dataset.Snapshot{}, dataset.NewMapper(time.UTC), 15*time.Minute, clock)
		cold := NewGuideHandler(dataset.NewProvider(loader), clock)

		req := withEventID(httptest.NewRequest(http.MethodGet, "/guide/v1/events/E001", nil), "E001")
		rr := httptest.NewRecorder()
		cold.GetEvent(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Contains(t, rr.Body.String(), "unavailable")
	})
}

func TestDatasetStatus(t *testing.T) {
	clock := mockClock{now: time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)}
	h := NewGuideHandler(loadedProvider(t, clock), clock)

	req := httptest.NewRequest(http.MethodGet, "/guide/v1/dataset", nil)
	rr := httptest.NewRecorder()
	h.DatasetStatus(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var env struct {
		Data dto.DatasetStatusResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, string(dataset.ProviderFallback), env.Data.Status)
	assert.Equal(t, 6, env.Data.Events)
}

func TestReloadDataset(t *testing.T) {
	clock := mockClock{now: time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)}
	h := NewGuideHandler(loadedProvider(t, clock), clock)

	req := httptest.NewRequest(http.MethodPost, "/guide/v1/dataset/reload?force=true", nil)
	rr := httptest.NewRecorder()
	h.ReloadDataset(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var env struct {
		Data dto.DatasetStatusResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, 6, env.Data.Events)
}

func TestBaseDataset(t *testing.T) {
	clock := mockClock{now: time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)}

	t.Run("serves_raw_envelope_with_etag", func(t *testing.T) {
		h := NewGuideHandler(loadedProvider(t, clock), clock)

		req := httptest.NewRequest(http.MethodGet, "/api/base", nil)
		rr := httptest.NewRecorder()
		h.BaseDataset(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("ETag"))
		assert.Equal(t, "public, max-age=60, stale-while-revalidate=300", rr.Header().Get("Cache-Control"))

		var ds dataset.Dataset
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ds))
		assert.Len(t, ds.Events, 6)
	})

	t.Run("matching_if_none_match_is_304", func(t *testing.T) {
		h := NewGuideHandler(loadedProvider(t, clock), clock)

		first := httptest.NewRecorder()
		h.BaseDataset(first, httptest.NewRequest(http.MethodGet, "/api/base", nil))
		etag := first.Header().Get("ETag")
		require.NotEmpty(t, etag)

		req := httptest.NewRequest(http.MethodGet, "/api/base", nil)
		req.Header.Set("If-None-Match", etag)
		rr := httptest.NewRecorder()
		h.BaseDataset(rr, req)

		assert.Equal(t, http.StatusNotModified, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("unavailable_before_first_load", func(t *testing.T) {
		loader := dataset.NewLoader(dataset.NoopStore{}, nil, dataset.Snapshot{}, dataset.NewMapper(time.UTC), 15*time.Minute, clock)
		cold := NewGuideHandler(dataset.NewProvider(loader), clock)

		rr := httptest.NewRecorder()
		cold.BaseDataset(rr, httptest.NewRequest(http.MethodGet, "/api/base", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}
