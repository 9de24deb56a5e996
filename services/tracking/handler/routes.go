package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/fieldops/towtrack/internal/pkg/middleware"
	"github.com/fieldops/towtrack/internal/pkg/models"
	natspkg "github.com/fieldops/towtrack/internal/pkg/nats"
	"github.com/fieldops/towtrack/services/tracking"
	httpHandler "github.com/fieldops/towtrack/services/tracking/handler/http"
)

// Handler combines the HTTP and NATS handlers for the tracking service
type Handler struct {
	positionHTTP *httpHandler.PositionHandler
	trackingNATS *TrackingHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(trackingUC tracking.TrackingUC, natsClient *natspkg.Client, cfg *models.Config) *Handler {
	return &Handler{
		positionHTTP: httpHandler.NewPositionHandler(trackingUC),
		trackingNATS: NewTrackingHandler(trackingUC, natsClient),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.Services.APIKey))

	internal.GET("/jobs/:protocol/position", h.positionHTTP.GetLatestPosition)
	internal.GET("/jobs/:protocol/track", h.positionHTTP.GetTrack)
	internal.POST("/jobs/:protocol/position", h.positionHTTP.ReportPosition)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers(ctx context.Context) error {
	return h.trackingNATS.InitNATSConsumers(ctx)
}

// Stop halts the NATS consumers
func (h *Handler) Stop() {
	h.trackingNATS.Stop()
}
