package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/fieldops/towtrack/internal/pkg/constants"
	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
	natspkg "github.com/fieldops/towtrack/internal/pkg/nats"
	"github.com/fieldops/towtrack/services/tracking"
)

// TrackingHandler consumes position reports from JetStream
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
	natsClient *natspkg.Client
	stops      []func()
}

// NewTrackingHandler creates a new tracking NATS handler
func NewTrackingHandler(trackingUC tracking.TrackingUC, client *natspkg.Client) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
		natsClient: client,
	}
}

// InitNATSConsumers starts the durable position report consumer
func (h *TrackingHandler) InitNATSConsumers(ctx context.Context) error {
	logger.Info("Initializing JetStream consumers for tracking service")

	stop, err := h.natsClient.ConsumeMessages(ctx,
		constants.TrackingStream,
		constants.ConsumerPositionReport,
		constants.SubjectPositionReport,
		h.handlePositionReportJS)
	if err != nil {
		return fmt.Errorf("failed to start consuming position reports: %w", err)
	}
	h.stops = append(h.stops, stop)

	return nil
}

// Stop halts all running consumers
func (h *TrackingHandler) Stop() {
	for _, stop := range h.stops {
		stop()
	}
}

// handlePositionReportJS processes a position report message. A non-nil
// return NAKs the message for redelivery.
func (h *TrackingHandler) handlePositionReportJS(msg jetstream.Msg) error {
	var report models.PositionReport
	if err := json.Unmarshal(msg.Data(), &report); err != nil {
		logger.Error("Failed to unmarshal position report", logger.Err(err))
		// Malformed payloads will never parse; dropping beats redelivery
		return nil
	}

	logger.Debug("Received position report",
		logger.String("protocol", report.Protocol),
		logger.Float64("lat", report.Sample.Latitude),
		logger.Float64("lng", report.Sample.Longitude))

	if err := h.trackingUC.RecordReport(context.Background(), report); err != nil {
		if errors.Is(err, models.ErrInvalidReport) {
			// Redelivery cannot make an out-of-range report valid
			logger.Error("Dropping invalid position report",
				logger.String("protocol", report.Protocol),
				logger.Err(err))
			return nil
		}
		logger.Error("Failed to record position report",
			logger.String("protocol", report.Protocol),
			logger.Err(err))
		return err
	}

	return nil
}
