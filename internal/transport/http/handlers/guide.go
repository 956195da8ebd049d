package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/distritobeef/guide-app/services/dataset-service/internal/dataset"
	"github.com/distritobeef/guide-app/services/dataset-service/internal/domain"
	"github.com/distritobeef/guide-app/services/dataset-service/internal/transport/http/dto"
	"github.com/distritobeef/guide-app/services/dataset-service/internal/transport/http/response"
)

type Clock interface{ Now() time.Time }

// GuideHandler serves the resolved event guide out of the provider state.
type GuideHandler struct {
	provider *dataset.Provider
	clock    Clock
}

func NewGuideHandler(provider *dataset.Provider, clock Clock) *GuideHandler {
	return &GuideHandler{provider: provider, clock: clock}
}

func (h *GuideHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	track := q.Get("track")
	if track != "" && !domain.Track(track).Valid() {
		response.Err(w, domain.ErrValidationMeta("invalid query param", map[string]string{
			"track": "must be one of: beefdip, bearadise, community",
		}))
		return
	}

	category := q.Get("category")
	switch category {
	case "", string(domain.CategoryBeef), string(domain.CategoryCommunity):
	default:
		response.Err(w, domain.ErrValidationMeta("invalid query param", map[string]string{
			"category": "must be one of: beef, community",
		}))
		return
	}

	var fromPtr, toPtr *time.Time
	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.Err(w, domain.ErrValidationMeta("invalid query param", map[string]string{
				"from": "must be RFC3339 timestamp",
			}))
			return
		}
		tt := t.UTC()
		fromPtr = &tt
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.Err(w, domain.ErrValidationMeta("invalid query param", map[string]string{
				"to": "must be RFC3339 timestamp",
			}))
			return
		}
		tt := t.UTC()
		toPtr = &tt
	}

	st := h.provider.Snapshot()
	now := h.clock.Now().UTC()

	items := make([]dto.EventResp, 0, len(st.Events))
	for i := range st.Events {
		ev := &st.Events[i]
		if track != "" && ev.Track != domain.Track(track) {
			continue
		}
		if category != "" && ev.Category != domain.Category(category) {
			continue
		}
		if fromPtr != nil && ev.End.Before(*fromPtr) {
			continue
		}
		if toPtr != nil && ev.Start.After(*toPtr) {
			continue
		}
		items = append(items, dto.ToEventResp(ev, now))
	}

	response.Data(w, http.StatusOK, dto.EventsResp{
		Items:     items,
		Status:    string(st.Status),
		Message:   st.Message,
		UpdatedAt: st.UpdatedAt,
		ETag:      st.ETag,
		Total:     len(items),
	})
}

func (h *GuideHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "event_id")

	st := h.provider.Snapshot()
	if st.Status == dataset.ProviderLoading {
		response.Err(w, domain.ErrUnavailable("dataset not resolved yet"))
		return
	}

	now := h.clock.Now().UTC()
	for i := range st.Events {
		if st.Events[i].ID == id {
			response.Data(w, http.StatusOK, dto.ToEventResp(&st.Events[i], now))
			return
		}
	}
	response.Err(w, domain.ErrNotFound("event not found"))
}

func (h *GuideHandler) DatasetStatus(w http.ResponseWriter, r *http.Request) {
	st := h.provider.Snapshot()
	response.Data(w, http.StatusOK, dto.DatasetStatusResp{
		Status:    string(st.Status),
		Message:   st.Message,
		UpdatedAt: st.UpdatedAt,
		ETag:      st.ETag,
		Events:    len(st.Events),
	})
}

func (h *GuideHandler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"

	st := h.provider.Reload(r.Context(), force)
	response.Data(w, http.StatusOK, dto.DatasetStatusResp{
		Status:    string(st.Status),
		Message:   st.Message,
		UpdatedAt: st.UpdatedAt,
		ETag:      st.ETag,
		Events:    len(st.Events),
	})
}
