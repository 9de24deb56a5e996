package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/fieldops/towtrack/internal/pkg/jwt"
	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
)

// Manager manages WebSocket connections and client state
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	m.AddClient(client)
	defer m.RemoveClient(client.UserID)

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := jwtpkg.ValidateToken(parts[1], m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
}

// GetClient returns a client by ID
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// SendMessage sends a message to a WebSocket client
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // Handle nil connection gracefully for tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %v", err)
	}

	response := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	return conn.WriteJSON(response)
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code, message string) error {
	return m.SendMessage(conn, "error", models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}
