package gateway

import (
	"context"
	"fmt"

	"github.com/fieldops/towtrack/internal/pkg/constants"
	"github.com/fieldops/towtrack/internal/pkg/models"
	natspkg "github.com/fieldops/towtrack/internal/pkg/nats"
	"github.com/fieldops/towtrack/services/tracking"
)

type trackingGW struct {
	natsClient *natspkg.Client
}

// NewTrackingGW creates a new tracking gateway
func NewTrackingGW(natsClient *natspkg.Client) tracking.TrackingGW {
	return &trackingGW{natsClient: natsClient}
}

// PublishPositionStored notifies downstream consumers that a position
// report was persisted
func (g *trackingGW) PublishPositionStored(ctx context.Context, report models.PositionReport) error {
	if err := g.natsClient.PublishJSON(constants.SubjectPositionStored, report); err != nil {
		return fmt.Errorf("failed to publish position stored event: %w", err)
	}
	return nil
}
