package jobs

import (
	"context"
	"time"

	"github.com/fieldops/towtrack/internal/pkg/models"
)

// ProviderAssignment carries the provider details written when a job is
// offered
type ProviderAssignment struct {
	ProviderID    string
	ProviderName  string
	ProviderPhone string
}

// JobRepo persists job records. Guarded mutations return false when the
// row was not in the expected status, so callers can distinguish a lost
// race from a missing row.
type JobRepo interface {
	Create(ctx context.Context, job *models.Job) error
	GetByProtocol(ctx context.Context, protocol string) (*models.Job, error)
	ListActive(ctx context.Context) ([]*models.Job, error)

	AssignProvider(ctx context.Context, protocol string, assignment ProviderAssignment) (bool, error)
	StartTracking(ctx context.Context, protocol string, startedAt time.Time) (bool, error)
	Decline(ctx context.Context, protocol string) (bool, error)
	Deny(ctx context.Context, protocol string, finalizedAt time.Time) (bool, error)
	SaveCompletion(ctx context.Context, record models.CompletionRecord, finalizedAt time.Time) (bool, error)
	Reopen(ctx context.Context, protocol string) (bool, error)
}
