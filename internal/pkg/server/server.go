package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
)

// DefaultShutdownTimeout bounds the drain of in-flight requests when no
// timeout is configured.
const DefaultShutdownTimeout = 30 * time.Second

// GracefulServer runs an Echo server and drains it on SIGINT/SIGTERM
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	port            int
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a server from the service's server config
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, cfg models.ServerConfig) *GracefulServer {
	timeout := time.Duration(cfg.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		port:            cfg.Port,
		shutdownTimeout: timeout,
	}
}

// Start serves until an interrupt or termination signal arrives, then
// drains in-flight requests before returning.
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown stops accepting connections and waits for in-flight requests up
// to the configured timeout.
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server",
		logger.Duration("timeout", s.shutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}
