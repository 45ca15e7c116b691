// Package server exposes the tianzige pipeline over HTTP.
//
// Routes:
//
//	GET /healthz      liveness probe
//	GET /v1/layout    resolved grid as JSON
//	GET /v1/grid.pdf  rendered grid
//	GET /metrics      Prometheus metrics
//
// Both /v1 routes take the same query parameters; see parseOptions.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/tianzige/pkg/buildinfo"
	"github.com/matzehuels/tianzige/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address used when Config.Addr is empty.
	DefaultAddr = ":8080"

	// DefaultRateLimit is the number of render requests allowed per IP and
	// window.
	DefaultRateLimit = 60

	// DefaultRateWindow is the rate limiting window.
	DefaultRateWindow = time.Minute

	shutdownTimeout = 5 * time.Second
)

// Config configures the HTTP server.
type Config struct {
	Addr       string
	RateLimit  int
	RateWindow time.Duration

	// Base holds the defaults every request starts from. It can be
	// replaced later with Server.SetBase.
	Base pipeline.Options

	// Registry receives the server's metrics. A fresh registry is created
	// when nil.
	Registry *prometheus.Registry
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.RateLimit <= 0 {
		c.RateLimit = DefaultRateLimit
	}
	if c.RateWindow <= 0 {
		c.RateWindow = DefaultRateWindow
	}
	if c.Registry == nil {
		c.Registry = prometheus.NewRegistry()
	}
}

// Server serves grids over HTTP.
type Server struct {
	cfg     Config
	runner  *pipeline.Runner
	logger  *log.Logger
	metrics *Metrics
	router  chi.Router
	base    atomic.Pointer[pipeline.Options]
}

// New creates a server and installs its metrics as the process-wide
// observability hooks.
func New(runner *pipeline.Runner, logger *log.Logger, cfg Config) *Server {
	cfg.setDefaults()
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		cfg:     cfg,
		runner:  runner,
		logger:  logger,
		metrics: NewMetrics(cfg.Registry),
	}
	s.base.Store(&cfg.Base)
	s.metrics.Install()
	s.router = s.routes()
	return s
}

// SetBase replaces the defaults for subsequent requests. Requests already
// in flight keep the defaults they started with.
func (s *Server) SetBase(opts pipeline.Options) {
	s.base.Store(&opts)
}

// Base returns the current request defaults.
func (s *Server) Base() pipeline.Options {
	return *s.base.Load()
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(s.instrument)
	r.Use(middleware.SetHeader("X-Tianzige-Version", buildinfo.Version))

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.cfg.Registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Use(rateLimit(s.cfg.RateLimit, s.cfg.RateWindow))
		r.Get("/layout", s.handleLayout)
		r.Get("/grid.pdf", s.handleGridPDF)
	})

	return r
}

// Listen binds the configured address.
func (s *Server) Listen() (net.Listener, error) {
	return net.Listen("tcp", s.cfg.Addr)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
// A shutdown triggered by ctx is not an error.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
