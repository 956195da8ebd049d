package main

import (
	"context"
	"log"
	"net/http"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/distritobeef/guide-app/services/dataset-service/internal/config"
	"github.com/distritobeef/guide-app/services/dataset-service/internal/dataset"
	redisstore "github.com/distritobeef/guide-app/services/dataset-service/internal/infrastructure/caching/redis"
	"github.com/distritobeef/guide-app/services/dataset-service/internal/infrastructure/source"
	"github.com/distritobeef/guide-app/services/dataset-service/internal/logger"
	"github.com/distritobeef/guide-app/services/dataset-service/internal/transport/http/handlers"
	"github.com/distritobeef/guide-app/services/dataset-service/internal/transport/http/router"
)

// sysClock implements dataset.Clock using system time
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// App holds all dependencies for the service
type App struct {
	Config   *config.Config
	Server   *http.Server
	Provider *dataset.Provider
	Store    *redisstore.Store
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app := NewApp(cfg)
	defer func() {
		app.Provider.Close()
		if app.Store != nil {
			_ = app.Store.Close()
		}
	}()

	// initial load so the first request never sees an empty guide
	{
		ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout+5*time.Second)
		st := app.Provider.Reload(ctx, false)
		cancel()
		zlog.Info().
			Str("status", string(st.Status)).
			Str("message", st.Message).
			Int("events", len(st.Events)).
			Msg("dataset resolved")
	}

	if cfg.RefreshInterval > 0 {
		go refreshLoop(app.Provider, cfg.RefreshInterval, cfg.FetchTimeout)
	}

	zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal().Err(err).Msg("server crashed")
	}
}

func NewApp(cfg *config.Config) *App {
	// 1) Infrastructure
	var cache dataset.CacheStore = dataset.NoopStore{}
	var store *redisstore.Store

	if s, err := redisstore.New(cfg.RedisURL); err != nil {
		zlog.Warn().Err(err).Msg("redis unavailable: dataset cache disabled")
	} else {
		store = s
		cache = s
	}

	var remote dataset.RemoteSource
	if cfg.DatasetURL != "" {
		remote = source.NewHTTP(cfg.DatasetURL, cfg.FetchTimeout)
		zlog.Info().Str("url", cfg.DatasetURL).Msg("remote dataset source ready")
	} else {
		zlog.Warn().Msg("DATASET_URL empty: serving cache and bundled snapshot only")
	}

	loc, err := time.LoadLocation(cfg.EventTimezone)
	if err != nil {
		zlog.Warn().Err(err).Str("tz", cfg.EventTimezone).Msg("unknown timezone, using UTC")
		loc = time.UTC
	}

	// 2) Application
	mapper := dataset.NewMapper(loc)
	loader := dataset.NewLoader(cache, remote, dataset.Snapshot{}, mapper, cfg.DatasetTTL, sysClock{})
	provider := dataset.NewProvider(loader)

	// 3) Transport
	h := handlers.NewGuideHandler(provider, sysClock{})
	z := handlers.NewHealthHandler()

	// 4) Router
	httpHandler := router.New(h, z, cfg)

	// 5) Server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:   cfg,
		Server:   srv,
		Provider: provider,
		Store:    store,
	}
}

func refreshLoop(p *dataset.Provider, interval, fetchTimeout time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout+5*time.Second)
		st := p.Reload(ctx, false)
		cancel()
		zlog.Debug().Str("status", string(st.Status)).Msg("background refresh")
	}
}
