package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/distritobeef/guide-app/services/dataset-service/internal/config"
	"github.com/distritobeef/guide-app/services/dataset-service/internal/metrics"
	"github.com/distritobeef/guide-app/services/dataset-service/internal/transport/http/handlers"
	guidemw "github.com/distritobeef/guide-app/services/dataset-service/internal/transport/http/middleware"
)

func New(
	h *handlers.GuideHandler,
	z *handlers.HealthHandler,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	r.Use(guidemw.RequestID)
	r.Use(guidemw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(guidemw.AccessLog)

	if cfg.RLEnabled {
		r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
	}

	r.Get("/healthz", z.Healthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// legacy envelope endpoint, same contract as the upstream edge function
	r.Get("/api/base", h.BaseDataset)

	r.Route("/guide/v1", func(r chi.Router) {
		r.Get("/events", h.ListEvents)
		r.Get("/events/{event_id}", h.GetEvent)
		r.Get("/dataset", h.DatasetStatus)
		r.Post("/dataset/reload", h.ReloadDataset)
	})

	return r
}
