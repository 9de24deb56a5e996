package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fieldops/towtrack/internal/pkg/config"
	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
	natspkg "github.com/fieldops/towtrack/internal/pkg/nats"
	"github.com/fieldops/towtrack/internal/pkg/storage"
	"github.com/fieldops/towtrack/services/reporter"
	"github.com/fieldops/towtrack/services/reporter/camera"
	"github.com/fieldops/towtrack/services/reporter/gateway"
	"github.com/fieldops/towtrack/services/reporter/source"
	"github.com/fieldops/towtrack/services/reporter/usecase"
	"github.com/fieldops/towtrack/services/reporter/wakelock"
	"github.com/fieldops/towtrack/services/routing"
	routingclient "github.com/fieldops/towtrack/services/routing/client"
)

// The reporter runs on the provider's device. In track mode it accepts the
// job and streams positions until interrupted; in finalize mode it captures
// the completion photo and records the completion.
func main() {
	var (
		protocol   = flag.String("protocol", "", "job protocol to report for")
		providerID = flag.String("provider", "", "provider identifier")
		finalize   = flag.Bool("finalize", false, "capture a photo and complete the job instead of tracking")
		simulate   = flag.Bool("simulate", false, "use the simulated location source")
		cameraCmd  = flag.String("camera-cmd", "fswebcam --no-banner --save {file}", "camera capture command, {file} is replaced with the output path")
	)
	flag.Parse()

	if *protocol == "" {
		log.Fatal("the -protocol flag is required")
	}

	appName := "reporter-agent"
	configs := config.InitConfig("config/reporter.env")

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:   "info",
		Service: appName,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	var src reporter.LocationSource
	if *simulate {
		src = source.NewSimulatedSource()
	} else {
		src = source.NewSerialSource(configs.Device)
	}
	defer src.Close()

	jobsGW := gateway.NewJobsGW(configs.Services)

	if *finalize {
		runFinalize(configs, src, jobsGW, *protocol, *cameraCmd)
		return
	}

	runSession(configs, src, jobsGW, *protocol, *providerID)
}

func runSession(configs *models.Config, src reporter.LocationSource, jobsGW reporter.JobsGW, protocol, providerID string) {
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	reporterGW := gateway.NewReporterGW(natsClient)
	wakeLock := wakelock.FromConfig(configs.Device.WakeLockEnable)

	session := usecase.NewSession(
		protocol,
		providerID,
		src,
		wakeLock,
		jobsGW,
		reporterGW,
		time.Duration(configs.Tracking.FlushIntervalSec)*time.Second,
	)
	session.OnDegraded = func(err error) {
		logger.Warn("Tracking degraded, no live positions", logger.Err(err))
	}

	if err := session.Start(context.Background()); err != nil {
		logger.Fatal("Failed to start tracking session", logger.Err(err))
	}
	logger.Info("Tracking session started", logger.String("protocol", protocol))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	session.Stop()
	logger.Info("Tracking session stopped", logger.String("protocol", protocol))
}

func runFinalize(configs *models.Config, src reporter.LocationSource, jobsGW reporter.JobsGW, protocol, cameraCmd string) {
	objectStorage, err := storage.NewMinioStorage(configs.Storage)
	if err != nil {
		logger.Fatal("Failed to create object storage", logger.Err(err))
	}

	var routes routing.RouteClient
	if configs.Maps.APIKey != "" {
		routes, err = routingclient.NewGoogleRouteClient(configs.Maps)
		if err != nil {
			logger.Warn("Failed to create route client, skipping geocoding", logger.Err(err))
		}
	}

	finalizer := usecase.NewFinalizer(
		src,
		routes,
		objectStorage,
		jobsGW,
		nil,
		time.Duration(configs.Device.ProbeTimeout)*time.Second,
	)

	cam := camera.NewExecCamera(cameraCmd, configs.Device)
	ctx := context.Background()
	if err := finalizer.CapturePhoto(ctx, cam); err != nil {
		logger.Fatal("Failed to capture completion photo", logger.Err(err))
	}
	if err := finalizer.Finalize(ctx, protocol); err != nil {
		logger.Fatal("Failed to finalize job", logger.Err(err))
	}
	logger.Info("Job finalized", logger.String("protocol", protocol))
}
