package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/fieldops/towtrack/internal/pkg/jwt"
	"github.com/fieldops/towtrack/internal/pkg/models"
)

func performTokenRequest(h *AuthHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/auth/console-token", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.IssueConsoleToken(c)
	return rec
}

func TestIssueConsoleToken_MintsValidToken(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "towtrack"}
	h := NewAuthHandler(cfg)

	rec := performTokenRequest(h, `{"operator_id":"op-7"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token     string `json:"token"`
			ExpiresAt int64  `json:"expires_at"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Data.Token)

	claims, err := jwtpkg.ValidateToken(resp.Data.Token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "op-7", claims.UserID)
	assert.Equal(t, "dispatcher", claims.Role)
	assert.Equal(t, "towtrack", claims.Issuer)
}

func TestIssueConsoleToken_RequiresOperatorID(t *testing.T) {
	h := NewAuthHandler(models.JWTConfig{Secret: "test-secret", Expiration: 60})

	rec := performTokenRequest(h, `{"role":"dispatcher"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
