// Copyright (c) 2026 Librarium. All rights reserved.
// Author: thirawat.bk@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/thirawat/librarium/internal/core/author"
	"github.com/thirawat/librarium/internal/core/book"
	"github.com/thirawat/librarium/internal/core/filetype"
	"github.com/thirawat/librarium/internal/core/language"
	"github.com/thirawat/librarium/internal/core/publisher"
	"github.com/thirawat/librarium/internal/core/upload"
	"github.com/thirawat/librarium/internal/intake"
	"github.com/thirawat/librarium/internal/platform/config"
	"github.com/thirawat/librarium/internal/platform/constants"
	"github.com/thirawat/librarium/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Author, Publisher, Language and FileType manage the reference
	// collections books refer to.
	Author    *author.Handler
	Publisher *publisher.Handler
	Language  *language.Handler
	FileType  *filetype.Handler

	// Book handles catalog records and the book-author pivot.
	Book *book.Handler

	// Upload stores cover images and ebook files.
	Upload *upload.Handler

	// Intake runs the admin form submission engine.
	Intake *intake.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Static Files
	// Uploaded covers and ebooks are served straight from disk.
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/static/*", fileServer.ServeHTTP)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/authors", h.Author.RegisterRoutes)
		api.Route("/publishers", h.Publisher.RegisterRoutes)
		api.Route("/languages", h.Language.RegisterRoutes)
		api.Route("/filetypes", h.FileType.RegisterRoutes)
		api.Route("/books", h.Book.RegisterRoutes)
		api.Route("/uploads", h.Upload.RegisterRoutes)
		api.Route("/admin", h.Intake.RegisterRoutes)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
