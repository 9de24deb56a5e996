package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/fieldops/towtrack/internal/pkg/jwt"
	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/internal/utils"
)

// AuthHandler issues console tokens for dispatcher operators. The endpoint
// sits behind the internal API key; the token it mints is what the
// websocket console presents on connect.
type AuthHandler struct {
	cfg models.JWTConfig
}

// NewAuthHandler creates a new console auth handler
func NewAuthHandler(cfg models.JWTConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type consoleTokenRequest struct {
	OperatorID string `json:"operator_id"`
	Role       string `json:"role"`
}

// IssueConsoleToken mints a JWT for a dispatcher console operator
func (h *AuthHandler) IssueConsoleToken(c echo.Context) error {
	var req consoleTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.OperatorID == "" {
		return utils.BadRequestResponse(c, "operator_id is required")
	}
	if req.Role == "" {
		req.Role = "dispatcher"
	}

	token, expiresAt, err := jwtpkg.GenerateToken(req.OperatorID, req.Role, h.cfg)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to issue token")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token issued", map[string]interface{}{
		"token":      token,
		"expires_at": expiresAt,
	})
}
