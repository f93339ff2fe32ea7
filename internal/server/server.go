package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hongminglow/casino-api/internal/auth"
	"github.com/hongminglow/casino-api/internal/config"
	"github.com/hongminglow/casino-api/internal/http/handlers"
	"github.com/hongminglow/casino-api/internal/middleware"
	"github.com/hongminglow/casino-api/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, logger *zap.SugaredLogger, store storage.UserStore, hasher *auth.Hasher) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           Router(cfg, logger, store, hasher),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Router builds the full handler tree. Tests drive it through httptest.
func Router(cfg config.Config, logger *zap.SugaredLogger, store storage.UserStore, hasher *auth.Hasher) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	handlers.NewHealthHandler().Register(r)
	handlers.NewAuthHandler(logger, store, hasher).Register(r)
	handlers.NewBalanceHandler(logger, store).Register(r)

	return r
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
