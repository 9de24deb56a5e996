package tracking

import (
	"context"

	"github.com/fieldops/towtrack/internal/pkg/models"
)

// TrackRepo defines the interface for position log data access
type TrackRepo interface {
	// AppendSample inserts a sample into the job's stream in timestamp
	// order, collapsing duplicates and pruning entries older than the
	// retention window.
	AppendSample(ctx context.Context, protocol string, sample models.PositionSample) error

	// LatestSample returns the most recent sample, or nil when the stream
	// is empty.
	LatestSample(ctx context.Context, protocol string) (*models.PositionSample, error)

	// Samples returns the full stream ascending by timestamp.
	Samples(ctx context.Context, protocol string) ([]models.PositionSample, error)
}
