package tracking

import (
	"context"

	"github.com/fieldops/towtrack/internal/pkg/models"
)

// TrackingGW defines the interface for tracking gateway operations
type TrackingGW interface {
	// PublishPositionStored announces a stored sample to interested views.
	// Best-effort only; views self-heal through their poll loop.
	PublishPositionStored(ctx context.Context, report models.PositionReport) error
}
