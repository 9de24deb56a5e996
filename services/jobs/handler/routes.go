package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fieldops/towtrack/internal/pkg/middleware"
	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/jobs"
	httpHandler "github.com/fieldops/towtrack/services/jobs/handler/http"
)

// Handler combines all handlers for the jobs service
type Handler struct {
	jobHTTP *httpHandler.JobHandler
	cfg     *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(jobUC jobs.JobUC, cfg *models.Config) *Handler {
	return &Handler{
		jobHTTP: httpHandler.NewJobHandler(jobUC),
		cfg:     cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.Services.APIKey))

	internal.POST("/jobs", h.jobHTTP.CreateJob)
	internal.GET("/jobs", h.jobHTTP.ListActiveJobs)
	internal.GET("/jobs/:protocol", h.jobHTTP.GetJob)
	internal.POST("/jobs/:protocol/assign", h.jobHTTP.AssignProvider)
	internal.POST("/jobs/:protocol/accept", h.jobHTTP.AcceptJob)
	internal.POST("/jobs/:protocol/decline", h.jobHTTP.DeclineJob)
	internal.POST("/jobs/:protocol/deny", h.jobHTTP.DenyJob)
	internal.POST("/jobs/:protocol/reopen", h.jobHTTP.ReopenJob)
	internal.POST("/jobs/:protocol/finalize", h.jobHTTP.FinalizeJob)
}
