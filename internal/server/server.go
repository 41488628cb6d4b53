// Package server exposes the forecast engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"vvforecast-core/bioprocess"
	"vvforecast/internal/runutil"
	"vvforecast/pkg/api"
)

// Config holds server dependencies.
type Config struct {
	// Defaults fill parameters a request leaves out.
	Defaults bioprocess.Inputs
	Window   bioprocess.Window

	CacheSize int
	Logger    *zap.Logger
	// Registry receives the server metrics; nil means a fresh registry.
	Registry *prometheus.Registry
}

// Server is the HTTP API. The engine boundary is direct: nothing is clamped.
type Server struct {
	Router  chi.Router
	Config  Config
	log     *zap.Logger
	cache   *runutil.LRU[forecastKey, api.ForecastV1]
	metrics *metrics
}

// New creates a new Server with all routes and middleware configured.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	s := &Server{
		Router:  chi.NewRouter(),
		Config:  cfg,
		log:     cfg.Logger,
		cache:   runutil.NewLRU[forecastKey, api.ForecastV1](cfg.CacheSize),
		metrics: newMetrics(cfg.Registry),
	}

	r := s.Router
	r.Use(chimw.RequestID)
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(s.instrument)
	r.Use(MaxBodySize(1 << 20))

	r.Get("/api/v1/health", s.health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/forecast", s.getForecast)
		r.Post("/forecast", s.postForecast)
		r.Get("/poisson", s.getPoisson)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	return s
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down server")
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	<-errCh
	s.log.Info("server stopped gracefully")
	return nil
}
