package jobs

import (
	"context"

	"github.com/fieldops/towtrack/internal/pkg/models"
)

// JobGW publishes lifecycle events. Delivery is best-effort: dispatcher
// views self-heal through their poll loop, so publish failures are logged
// and never fail the transition.
type JobGW interface {
	PublishJobAccepted(ctx context.Context, event models.JobEvent) error
	PublishJobCompleted(ctx context.Context, event models.JobEvent) error
	PublishJobDeclined(ctx context.Context, event models.JobEvent) error
}
