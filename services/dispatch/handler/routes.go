package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fieldops/towtrack/internal/pkg/middleware"
	"github.com/fieldops/towtrack/internal/pkg/models"
	natspkg "github.com/fieldops/towtrack/internal/pkg/nats"
	wspkg "github.com/fieldops/towtrack/internal/pkg/websocket"
	"github.com/fieldops/towtrack/services/dispatch"
	"github.com/fieldops/towtrack/services/routing"
)

// Handler combines the websocket, auth and NATS handlers for the dispatch
// service
type Handler struct {
	ws   *WebSocketHandler
	auth *AuthHandler
	nats *NATSHandler
	cfg  *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	jobsClient dispatch.JobsClient,
	trackingClient dispatch.TrackingClient,
	routeClient routing.RouteClient,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	manager := wspkg.NewManager(cfg.JWT)
	ws := NewWebSocketHandler(manager, jobsClient, trackingClient, routeClient,
		time.Duration(cfg.Tracking.PollIntervalSec)*time.Second)
	return &Handler{
		ws:   ws,
		auth: NewAuthHandler(cfg.JWT),
		nats: NewNATSHandler(natsClient, ws),
		cfg:  cfg,
	}
}

// RegisterRoutes registers the console websocket and token endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/console", h.ws.HandleWebSocket)

	internal := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.Services.APIKey))
	internal.POST("/auth/console-token", h.auth.IssueConsoleToken)
}

// InitNATSConsumers starts the lifecycle event subscriptions
func (h *Handler) InitNATSConsumers() error {
	return h.nats.InitNATSConsumers()
}

// Stop tears down the NATS subscriptions
func (h *Handler) Stop() {
	h.nats.Stop()
}
