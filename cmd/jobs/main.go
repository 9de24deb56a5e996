package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/fieldops/towtrack/internal/pkg/config"
	"github.com/fieldops/towtrack/internal/pkg/database"
	"github.com/fieldops/towtrack/internal/pkg/health"
	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/middleware"
	natspkg "github.com/fieldops/towtrack/internal/pkg/nats"
	"github.com/fieldops/towtrack/internal/pkg/server"
	"github.com/fieldops/towtrack/services/jobs/gateway"
	"github.com/fieldops/towtrack/services/jobs/handler"
	"github.com/fieldops/towtrack/services/jobs/repository"
	"github.com/fieldops/towtrack/services/jobs/usecase"
)

func main() {
	appName := "jobs-service"
	configs := config.InitConfig("config/jobs.env")

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:   "info",
		Service: appName,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// PostgreSQL holds the job lifecycle records
	db, err := database.NewPostgresDB(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer db.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	jobRepo := repository.NewJobRepository(db)
	jobGW := gateway.NewJobGW(natsClient)
	jobUC := usecase.NewJobUC(jobRepo, jobGW)

	h := handler.NewHandler(jobUC, configs)

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
