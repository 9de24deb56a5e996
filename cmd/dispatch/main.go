package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/fieldops/towtrack/internal/pkg/config"
	"github.com/fieldops/towtrack/internal/pkg/health"
	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/middleware"
	natspkg "github.com/fieldops/towtrack/internal/pkg/nats"
	"github.com/fieldops/towtrack/internal/pkg/server"
	"github.com/fieldops/towtrack/services/dispatch/gateway"
	"github.com/fieldops/towtrack/services/dispatch/handler"
	routingclient "github.com/fieldops/towtrack/services/routing/client"
)

func main() {
	appName := "dispatch-service"
	configs := config.InitConfig("config/dispatch.env")

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:   "info",
		Service: appName,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	routeClient, err := routingclient.NewGoogleRouteClient(configs.Maps)
	if err != nil {
		zapLogger.Fatal("Failed to create route client", logger.Err(err))
	}

	jobsClient := gateway.NewJobsClient(configs.Services)
	trackingClient := gateway.NewTrackingClient(configs.Services)

	h := handler.NewHandler(jobsClient, trackingClient, routeClient, natsClient, configs)
	if err := h.InitNATSConsumers(); err != nil {
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
