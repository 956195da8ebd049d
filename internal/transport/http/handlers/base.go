package handlers

import (
	"net/http"

	"github.com/distritobeef/guide-app/services/dataset-service/internal/dataset"
	"github.com/distritobeef/guide-app/services/dataset-service/internal/domain"
	"github.com/distritobeef/guide-app/services/dataset-service/internal/transport/http/response"
)

// BaseDataset re-serves the resolved raw envelope under the legacy /api/base
// contract: bare JSON body (no data wrapper), ETag header, 304 on matching
// If-None-Match. Clients that consume the envelope directly keep working.
func (h *GuideHandler) BaseDataset(w http.ResponseWriter, r *http.Request) {
	st := h.provider.Snapshot()
	if st.Dataset == nil {
		response.Err(w, domain.ErrUnavailable("dataset no disponible"))
		return
	}

	etag := st.ETag
	if etag == "" {
		etag = dataset.ContentETag(st.Dataset)
	}

	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=60, stale-while-revalidate=300")
	response.JSON(w, http.StatusOK, st.Dataset)
}
