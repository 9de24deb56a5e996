package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/internal/utils"
	"github.com/fieldops/towtrack/services/tracking"
)

// PositionHandler handles HTTP requests for position queries
type PositionHandler struct {
	trackingUC tracking.TrackingUC
}

// NewPositionHandler creates a new position HTTP handler
func NewPositionHandler(trackingUC tracking.TrackingUC) *PositionHandler {
	return &PositionHandler{
		trackingUC: trackingUC,
	}
}

// GetLatestPosition returns the newest fix and its freshness for a job
func (h *PositionHandler) GetLatestPosition(c echo.Context) error {
	protocol := c.Param("protocol")
	if protocol == "" {
		return utils.BadRequestResponse(c, "protocol is required")
	}

	sample, freshness, err := h.trackingUC.Latest(c.Request().Context(), protocol)
	if err != nil {
		logger.Error("Failed to get latest position",
			logger.String("protocol", protocol),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get latest position")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Latest position retrieved", map[string]interface{}{
		"sample":    sample,
		"freshness": freshness,
	})
}

// GetTrack returns the retained position stream for a job
func (h *PositionHandler) GetTrack(c echo.Context) error {
	protocol := c.Param("protocol")
	if protocol == "" {
		return utils.BadRequestResponse(c, "protocol is required")
	}

	samples, err := h.trackingUC.Track(c.Request().Context(), protocol)
	if err != nil {
		logger.Error("Failed to get track",
			logger.String("protocol", protocol),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get track")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Track retrieved", samples)
}

// ReportPosition ingests a position report over HTTP. The primary path is
// the message bus; this exists for devices that cannot hold a broker
// connection.
func (h *PositionHandler) ReportPosition(c echo.Context) error {
	protocol := c.Param("protocol")
	if protocol == "" {
		return utils.BadRequestResponse(c, "protocol is required")
	}

	var report models.PositionReport
	if err := c.Bind(&report); err != nil {
		logger.Error("Failed to bind position report", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	report.Protocol = protocol

	if err := h.trackingUC.RecordReport(c.Request().Context(), report); err != nil {
		logger.Error("Failed to record position report",
			logger.String("protocol", protocol),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to record position")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position recorded", map[string]string{"status": "success"})
}
