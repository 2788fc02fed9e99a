// Package api exposes the minimization engine over HTTP.
//
// The surface is small: a health probe and a single minimize endpoint that
// accepts a graph in the pkg/graphio wire format and returns the verdict.
package api

import (
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/temporalkit/tgmin/pkg/cache"
	"github.com/temporalkit/tgmin/pkg/minimize"
)

// Server handles HTTP requests against the minimization engine.
type Server struct {
	config   minimize.Config
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *log.Logger
}

// Options configures a Server.
type Options struct {
	// Config is applied to every minimize request unless the request
	// overrides the cap.
	Config minimize.Config

	// Cache memoizes verdicts across requests. Nil disables memoization.
	Cache cache.Cache

	// CacheTTL expires cached verdicts after this duration. Zero keeps
	// them forever.
	CacheTTL time.Duration

	// Logger receives request logs. Nil discards them.
	Logger *log.Logger
}

// New creates a Server.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Server{config: opts.Config, cache: opts.Cache, cacheTTL: opts.CacheTTL, logger: logger}
}

// Router builds the HTTP handler with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/minimize", s.handleMinimize)

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method, "path", r.URL.Path,
			"status", ww.Status(), "bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
