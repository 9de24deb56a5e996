package tracking

import (
	"context"

	"github.com/fieldops/towtrack/internal/pkg/models"
)

// TrackingUC defines the interface for position log business logic
type TrackingUC interface {
	// RecordReport validates and appends a provider position report.
	RecordReport(ctx context.Context, report models.PositionReport) error

	// Latest returns the newest sample and the derived freshness signal.
	// The sample is nil and freshness UNKNOWN for an empty stream.
	Latest(ctx context.Context, protocol string) (*models.PositionSample, models.Freshness, error)

	// Track returns the retained stream ascending by timestamp.
	Track(ctx context.Context, protocol string) ([]models.PositionSample, error)
}
