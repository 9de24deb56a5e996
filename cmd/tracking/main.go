package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fieldops/towtrack/internal/pkg/config"
	"github.com/fieldops/towtrack/internal/pkg/constants"
	"github.com/fieldops/towtrack/internal/pkg/database"
	"github.com/fieldops/towtrack/internal/pkg/health"
	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/middleware"
	natspkg "github.com/fieldops/towtrack/internal/pkg/nats"
	"github.com/fieldops/towtrack/internal/pkg/server"
	"github.com/fieldops/towtrack/services/tracking/gateway"
	"github.com/fieldops/towtrack/services/tracking/handler"
	"github.com/fieldops/towtrack/services/tracking/repository"
	"github.com/fieldops/towtrack/services/tracking/usecase"
)

func main() {
	appName := "tracking-service"
	configs := config.InitConfig("config/tracking.env")

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:   "info",
		Service: appName,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Redis holds the shared location store
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	ctx := context.Background()
	err = natsClient.EnsureStream(ctx, natspkg.StreamConfig{
		Name:     constants.TrackingStream,
		Subjects: []string{constants.TrackingStreamSubjects},
		MaxAge:   24 * time.Hour,
	})
	if err != nil {
		zapLogger.Fatal("Failed to ensure tracking stream", logger.Err(err))
	}

	trackRepo := repository.NewTrackRepository(redisClient)
	trackingGW := gateway.NewTrackingGW(natsClient)
	trackingUC := usecase.NewTrackingUC(trackRepo, trackingGW)

	h := handler.NewHandler(trackingUC, natsClient, configs)
	if err := h.InitNATSConsumers(ctx); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	defer h.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.GET("/health", health.NewPingHandler(appName))
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
