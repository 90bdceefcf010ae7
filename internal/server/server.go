package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/opkit/fileops/internal/config"
	"github.com/opkit/fileops/internal/dispatch"
	"github.com/opkit/fileops/internal/logging"
	"github.com/opkit/fileops/internal/monitoring"
	"github.com/opkit/fileops/internal/registry"
)

// Server hosts the operation catalog over HTTP.
type Server struct {
	router     *gin.Engine
	dispatcher *dispatch.Dispatcher
	registry   *registry.Registry
	metrics    *monitoring.Metrics
	logger     *logging.Logger
	http       *http.Server
}

// New wires the registry, dispatcher, and routes into a ready-to-run server.
func New(cfg *config.Config, logger *logging.Logger) *Server {
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := registry.Default()
	metrics := monitoring.New()
	dispatcher := dispatch.New(reg, logger, metrics)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))

	handlers := NewHandlers(dispatcher, reg)
	router.GET("/health", handlers.Health)
	router.GET("/operations", handlers.ListOperations)
	router.POST("/invoke", handlers.Invoke)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return &Server{
		router:     router,
		dispatcher: dispatcher,
		registry:   reg,
		metrics:    metrics,
		logger:     logger,
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
	}
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Info("starting fileops server",
		zap.String("addr", s.http.Addr),
		zap.Int("operations", s.registry.Len()),
	)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down fileops server")
	return s.http.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
