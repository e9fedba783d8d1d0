package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/chorus-search/chorus/internal/engine"
	"github.com/chorus-search/chorus/internal/search"
	"github.com/chorus-search/chorus/internal/store"
	"github.com/chorus-search/chorus/internal/tokencache"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 30 * time.Second

	// primeTimeout bounds one out-of-band token fetch.
	primeTimeout = 3 * time.Second
)

// Server wraps the chi router and application dependencies.
type Server struct {
	router       *chi.Mux
	registry     *engine.Registry
	orchestrator *search.Orchestrator
	store        store.Store
	tokens       *tokencache.Cache
	client       *http.Client
	logger       *slog.Logger
	addr         string
	maxWait      time.Duration
}

// NewServer creates and configures a new HTTP server. maxWait is the
// default collection deadline applied when a request does not specify one.
func NewServer(addr string, reg *engine.Registry, orch *search.Orchestrator, st store.Store,
	tokens *tokencache.Cache, client *http.Client, maxWait time.Duration, logger *slog.Logger) *Server {

	if client == nil {
		client = &http.Client{}
	}
	srv := &Server{
		router:       chi.NewRouter(),
		registry:     reg,
		orchestrator: orch,
		store:        st,
		tokens:       tokens,
		client:       client,
		logger:       logger,
		addr:         addr,
		maxWait:      maxWait,
	}

	srv.router.Use(middleware.RequestID)
	srv.router.Use(middleware.Recoverer)
	srv.router.Use(srv.loggingMiddleware)
	srv.router.Use(metricsMiddleware)
	srv.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	srv.routes()

	return srv
}

// routes registers all HTTP routes on the router.
func (s *Server) routes() {
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Handle("/metrics", metricsHandler())

	s.router.Get("/search", s.handleSearch)

	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/engines", s.handleListEngines)
		r.Post("/engines/{name}/disable", s.handleDisableEngine)
		r.Post("/engines/{name}/enable", s.handleEnableEngine)
		r.Get("/searches", s.handleListSearches)
		r.Get("/searches/{id}", s.handleGetSearch)
		r.Get("/stats", s.handleGetStats)
	})
}

// Router returns the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
func (s *Server) Run() error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		s.logger.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// loggingMiddleware logs each request using the structured logger.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
