package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
	wspkg "github.com/fieldops/towtrack/internal/pkg/websocket"
	"github.com/fieldops/towtrack/services/dispatch"
	"github.com/fieldops/towtrack/services/dispatch/usecase"
	"github.com/fieldops/towtrack/services/routing"
)

// WebSocketHandler owns a per-view session for every connected console
type WebSocketHandler struct {
	manager  *wspkg.Manager
	jobs     dispatch.JobsClient
	tracking dispatch.TrackingClient
	routes   routing.RouteClient
	interval time.Duration

	mu       sync.Mutex
	sessions map[*usecase.ViewSession]struct{}
}

// NewWebSocketHandler creates a new console websocket handler
func NewWebSocketHandler(
	manager *wspkg.Manager,
	jobsClient dispatch.JobsClient,
	trackingClient dispatch.TrackingClient,
	routeClient routing.RouteClient,
	interval time.Duration,
) *WebSocketHandler {
	return &WebSocketHandler{
		manager:  manager,
		jobs:     jobsClient,
		tracking: trackingClient,
		routes:   routeClient,
		interval: interval,
		sessions: make(map[*usecase.ViewSession]struct{}),
	}
}

// HandleWebSocket upgrades the connection and runs the view session for
// its lifetime
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

// connSink pushes view events straight onto the websocket connection
type connSink struct {
	manager *wspkg.Manager
	conn    *websocket.Conn
	mu      sync.Mutex
}

func (s *connSink) Send(event string, data interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.SendMessage(s.conn, event, data)
}

func (h *WebSocketHandler) handleClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	logger.Info("Console view connected", logger.String("user_id", client.UserID))

	sink := &connSink{manager: h.manager, conn: conn}
	session := usecase.NewViewSession(h.jobs, h.tracking, h.routes, sink, h.interval)
	session.Start(context.Background())

	h.mu.Lock()
	h.sessions[session] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.sessions, session)
		h.mu.Unlock()
		session.Close()
		logger.Info("Console view closed", logger.String("user_id", client.UserID))
	}()

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Console connection error", logger.Err(err))
			}
			return nil
		}
		h.dispatchMessage(session, sink, msg)
	}
}

func (h *WebSocketHandler) dispatchMessage(session *usecase.ViewSession, sink *connSink, msg models.WSMessage) {
	ctx := context.Background()

	switch msg.Event {
	case "search":
		var req struct {
			Query string `json:"query"`
		}
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			h.sendError(sink, "invalid_payload", "invalid search payload")
			return
		}
		if err := session.Search(ctx, req.Query); err != nil {
			logger.Warn("Search failed", logger.Err(err))
			h.sendError(sink, "search_failed", "search failed")
		}

	case "detail":
		protocol, ok := protocolOf(msg.Data)
		if !ok {
			h.sendError(sink, "invalid_payload", "protocol is required")
			return
		}
		if err := session.OpenDetail(ctx, protocol); err != nil {
			logger.Warn("Detail open failed",
				logger.String("protocol", protocol),
				logger.Err(err))
			h.sendError(sink, "detail_failed", "could not open job detail")
		}

	case "deny":
		protocol, ok := protocolOf(msg.Data)
		if !ok {
			h.sendError(sink, "invalid_payload", "protocol is required")
			return
		}
		if err := h.jobs.DenyJob(ctx, protocol); err != nil {
			logger.Warn("Deny failed",
				logger.String("protocol", protocol),
				logger.Err(err))
			h.sendError(sink, "deny_failed", "could not deny job")
			return
		}
		session.Kick()

	case "reopen":
		protocol, ok := protocolOf(msg.Data)
		if !ok {
			h.sendError(sink, "invalid_payload", "protocol is required")
			return
		}
		if err := h.jobs.ReopenJob(ctx, protocol); err != nil {
			logger.Warn("Reopen failed",
				logger.String("protocol", protocol),
				logger.Err(err))
			h.sendError(sink, "reopen_failed", "could not reopen job")
			return
		}
		session.Kick()

	default:
		h.sendError(sink, "unknown_event", "unknown event: "+msg.Event)
	}
}

// KickAll requests an off-schedule reconcile on every open view
func (h *WebSocketHandler) KickAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for session := range h.sessions {
		session.Kick()
	}
}

// sendError goes through the sink so the session ticker and the read loop
// never write the connection concurrently
func (h *WebSocketHandler) sendError(sink *connSink, code, message string) {
	if err := sink.Send("error", models.WSErrorMessage{Code: code, Message: message}); err != nil {
		logger.Warn("Failed to send error message", logger.Err(err))
	}
}

func protocolOf(data json.RawMessage) (string, bool) {
	var req struct {
		Protocol string `json:"protocol"`
	}
	if err := json.Unmarshal(data, &req); err != nil || req.Protocol == "" {
		return "", false
	}
	return req.Protocol, true
}
