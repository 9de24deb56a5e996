package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/internal/utils"
	"github.com/fieldops/towtrack/services/jobs"
)

// JobHandler handles HTTP requests for job lifecycle operations
type JobHandler struct {
	jobUC jobs.JobUC
}

// NewJobHandler creates a new job HTTP handler
func NewJobHandler(jobUC jobs.JobUC) *JobHandler {
	return &JobHandler{jobUC: jobUC}
}

// CreateJob registers a new assistance request
func (h *JobHandler) CreateJob(c echo.Context) error {
	var job models.Job
	if err := c.Bind(&job); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.jobUC.CreateJob(c.Request().Context(), &job); err != nil {
		logger.Error("Failed to create job",
			logger.String("protocol", job.Protocol),
			logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Job created", job)
}

// GetJob returns a job by protocol
func (h *JobHandler) GetJob(c echo.Context) error {
	protocol := c.Param("protocol")
	if protocol == "" {
		return utils.BadRequestResponse(c, "protocol is required")
	}

	job, err := h.jobUC.GetJob(c.Request().Context(), protocol)
	if err != nil {
		if errors.Is(err, models.ErrJobNotFound) {
			return utils.NotFoundResponse(c, "job not found")
		}
		logger.Error("Failed to get job",
			logger.String("protocol", protocol),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get job")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job retrieved", job)
}

// ListActiveJobs returns every WAITING, OFFERED or TRACKING job
func (h *JobHandler) ListActiveJobs(c echo.Context) error {
	active, err := h.jobUC.ListActiveJobs(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list active jobs", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to list active jobs")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active jobs retrieved", active)
}

// AssignProvider offers a job to a provider
func (h *JobHandler) AssignProvider(c echo.Context) error {
	protocol := c.Param("protocol")
	if protocol == "" {
		return utils.BadRequestResponse(c, "protocol is required")
	}

	var req struct {
		ProviderID    string `json:"provider_id"`
		ProviderName  string `json:"provider_name"`
		ProviderPhone string `json:"provider_phone"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	err := h.jobUC.AssignProvider(c.Request().Context(), protocol, jobs.ProviderAssignment{
		ProviderID:    req.ProviderID,
		ProviderName:  req.ProviderName,
		ProviderPhone: req.ProviderPhone,
	})
	if err != nil {
		return h.transitionErrorResponse(c, protocol, "assign provider", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Provider assigned", map[string]string{"status": "success"})
}

// AcceptJob starts tracking an offered job
func (h *JobHandler) AcceptJob(c echo.Context) error {
	return h.transition(c, "accept", h.jobUC.AcceptJob)
}

// DeclineJob declines an offered job
func (h *JobHandler) DeclineJob(c echo.Context) error {
	return h.transition(c, "decline", h.jobUC.DeclineJob)
}

// DenyJob closes a job that cannot be serviced
func (h *JobHandler) DenyJob(c echo.Context) error {
	return h.transition(c, "deny", h.jobUC.DenyJob)
}

// ReopenJob moves an archived job back to the waiting pool
func (h *JobHandler) ReopenJob(c echo.Context) error {
	return h.transition(c, "reopen", h.jobUC.ReopenJob)
}

// FinalizeJob records a completion and closes the job
func (h *JobHandler) FinalizeJob(c echo.Context) error {
	protocol := c.Param("protocol")
	if protocol == "" {
		return utils.BadRequestResponse(c, "protocol is required")
	}

	var record models.CompletionRecord
	if err := c.Bind(&record); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	record.Protocol = protocol

	if err := h.jobUC.FinalizeJob(c.Request().Context(), record); err != nil {
		if errors.Is(err, models.ErrPhotoRequired) {
			return utils.BadRequestResponse(c, "completion photo required")
		}
		return h.transitionErrorResponse(c, protocol, "finalize", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job finalized", map[string]string{"status": "success"})
}

// transition runs a protocol-only lifecycle operation and maps its domain
// errors to transport codes
func (h *JobHandler) transition(c echo.Context, name string, fn func(ctx context.Context, protocol string) error) error {
	protocol := c.Param("protocol")
	if protocol == "" {
		return utils.BadRequestResponse(c, "protocol is required")
	}

	if err := fn(c.Request().Context(), protocol); err != nil {
		return h.transitionErrorResponse(c, protocol, name, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job updated", map[string]string{"status": "success"})
}

func (h *JobHandler) transitionErrorResponse(c echo.Context, protocol, operation string, err error) error {
	switch {
	case errors.Is(err, models.ErrJobNotFound):
		return utils.NotFoundResponse(c, "job not found")
	case errors.Is(err, models.ErrInvalidTransition):
		return utils.ConflictResponse(c, "invalid status transition")
	default:
		logger.Error("Job lifecycle operation failed",
			logger.String("operation", operation),
			logger.String("protocol", protocol),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "operation failed")
	}
}
