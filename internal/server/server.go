// Package server exposes the people store over HTTP.
//
// The public handler serves the JSON API under /api/people, liveness and
// readiness probes, and static files from the configured public directory.
// The admin handler is meant for a loopback-only listener and serves
// /admin/status, /admin/shutdown and Prometheus metrics.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maloquacious/commdir/internal/config"
	"github.com/maloquacious/commdir/internal/logger"
	"github.com/maloquacious/commdir/internal/store"
)

// maxBodyBytes caps POST bodies; larger bodies are rejected as malformed.
const maxBodyBytes = 1 << 20

type Server struct {
	cfg      config.Config
	store    store.PeopleStore
	log      logger.Logger
	registry *prometheus.Registry
	metrics  *Metrics
	static   http.Handler
	version  string
	shutdown func()
	now      func() time.Time
}

type Option func(*Server)

// WithVersion sets the version reported by /admin/status.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// WithShutdown sets the function /admin/shutdown calls to stop the process.
func WithShutdown(fn func()) Option {
	return func(s *Server) { s.shutdown = fn }
}

// New builds a Server. Metrics go to a private registry so several servers
// can coexist in one process.
func New(cfg config.Config, st store.PeopleStore, log logger.Logger, opts ...Option) *Server {
	if log == nil {
		log = logger.Default
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		cfg:      cfg,
		store:    st,
		log:      log,
		registry: reg,
		metrics:  NewMetrics(reg),
		static:   http.FileServer(http.Dir(cfg.PublicDir)),
		version:  "dev",
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the public router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID, Recovery(s.log), s.instrument)

	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleNotFound)

	r.Get("/live", s.handleLive)
	r.Get("/ready", s.handleReady)

	r.Get("/api/people", s.handleListPeople)
	r.Post("/api/people", s.handleCreatePerson)

	r.Get("/", s.handleIndex)
	r.Get("/*", s.handleStatic)

	return r
}

// AdminHandler returns the admin router (JSON only, plus /metrics).
func (s *Server) AdminHandler() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID, Recovery(s.log))

	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleNotFound)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(jsonOnly)
		r.Get("/admin/status", s.handleStatus)
		r.Post("/admin/shutdown", s.handleShutdown)
	})

	return r
}
