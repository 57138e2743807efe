package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-awards/internal/api/middleware"
	"github.com/feral-file/ff-awards/internal/api/rest"
	"github.com/feral-file/ff-awards/internal/award"
	"github.com/feral-file/ff-awards/internal/logger"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// AllowedOrigins limits CORS; empty allows any origin
	AllowedOrigins []string
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	service    award.Service
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, service award.Service) *Server {
	s := &Server{
		config:  cfg,
		service: service,
	}
	s.httpServer = &http.Server{
		Addr:         s.addr(),
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

func (s *Server) addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.AllowedOrigins))

	rest.SetupRoutes(router, rest.NewHandler(s.service))

	return router
}

// Start serves HTTP until Shutdown is called
func (s *Server) Start() error {
	logger.Info("Starting API server",
		zap.String("address", s.httpServer.Addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
