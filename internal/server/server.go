package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	logger *slog.Logger
	http   *http.Server
}

// New builds the HTTP server with the gold-prices API mounted under /api.
func New(logger *slog.Logger, addr string, repository PricesRepository) *Server {
	return &Server{
		logger: logger.With("component", "server"),
		http: &http.Server{
			Addr:    addr,
			Handler: NewRouter(logger, repository),
		},
	}
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(logger *slog.Logger, repository PricesRepository) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	useJSONTagNames()

	engine := gin.New()
	engine.Use(gin.Recovery())

	NewHandler(logger, repository).RegisterRoutes(engine)

	return engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
