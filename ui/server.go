// Package ui serves the simulation HTTP API.
package ui

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"startupsim/app"
)

// Options configure the HTTP server
type Options struct {
	GinMode          string
	CORSAllowOrigins []string
	DefaultMonths    int
	Logger           *slog.Logger
}

// Server represents the HTTP server for the simulation API
type Server struct {
	router    *gin.Engine
	service   *app.SimulationService
	logger    *slog.Logger
	opts      Options
	startedAt time.Time
}

// NewServer creates a new server instance with middleware and routes wired
func NewServer(service *app.SimulationService, opts Options) *Server {
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.DefaultMonths <= 0 {
		opts.DefaultMonths = 12
	}

	s := &Server{
		router:    gin.New(),
		service:   service,
		logger:    opts.Logger.With("component", "http"),
		opts:      opts,
		startedAt: time.Now(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	v1.POST("/simulations", s.handleCreateSimulation)
	v1.POST("/simulations/batch", s.handleCreateBatch)
	v1.GET("/simulations", s.handleListSimulations)
	v1.GET("/simulations/:id", s.handleGetSimulation)
	v1.GET("/simulations/:id/personas/:personaId", s.handleGetPersona)
	v1.GET("/simulations/:id/export.xlsx", s.handleExportSimulation)
	v1.GET("/simulations/:id/summary", s.handleSimulationSummary)
	v1.GET("/projection", s.handleProjection)
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	s.logger.Info("shutting down server")
	return srv.Shutdown(shutdownCtx)
}
