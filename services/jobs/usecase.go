package jobs

import (
	"context"

	"github.com/fieldops/towtrack/internal/pkg/models"
)

// JobUC drives the job lifecycle state machine. Transitions outside the
// table return models.ErrInvalidTransition; unknown protocols return
// models.ErrJobNotFound.
type JobUC interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, protocol string) (*models.Job, error)
	ListActiveJobs(ctx context.Context) ([]*models.Job, error)

	AssignProvider(ctx context.Context, protocol string, assignment ProviderAssignment) error
	AcceptJob(ctx context.Context, protocol string) error
	DeclineJob(ctx context.Context, protocol string) error
	DenyJob(ctx context.Context, protocol string) error
	FinalizeJob(ctx context.Context, record models.CompletionRecord) error
	ReopenJob(ctx context.Context, protocol string) error
}
