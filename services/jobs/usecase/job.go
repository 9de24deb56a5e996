package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/jobs"
)

type jobUC struct {
	repo jobs.JobRepo
	gw   jobs.JobGW
	now  func() time.Time
}

// NewJobUC creates a new job lifecycle usecase
func NewJobUC(repo jobs.JobRepo, gw jobs.JobGW) jobs.JobUC {
	return &jobUC{
		repo: repo,
		gw:   gw,
		now:  time.Now,
	}
}

// CreateJob registers a new job in WAITING status
func (uc *jobUC) CreateJob(ctx context.Context, job *models.Job) error {
	if job.Protocol == "" {
		return fmt.Errorf("protocol is required")
	}
	if job.CustomerName == "" {
		return fmt.Errorf("customer name is required")
	}

	job.Status = models.JobStatusWaiting
	if job.CreatedAt.IsZero() {
		job.CreatedAt = uc.now()
	}

	if err := uc.repo.Create(ctx, job); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetJob retrieves a job by protocol
func (uc *jobUC) GetJob(ctx context.Context, protocol string) (*models.Job, error) {
	return uc.repo.GetByProtocol(ctx, protocol)
}

// ListActiveJobs returns every job the dispatcher map must show
func (uc *jobUC) ListActiveJobs(ctx context.Context) ([]*models.Job, error) {
	return uc.repo.ListActive(ctx)
}

// AssignProvider offers a WAITING job to a provider
func (uc *jobUC) AssignProvider(ctx context.Context, protocol string, assignment jobs.ProviderAssignment) error {
	if assignment.ProviderID == "" {
		return fmt.Errorf("provider id is required")
	}

	ok, err := uc.repo.AssignProvider(ctx, protocol, assignment)
	if err != nil {
		return fmt.Errorf("failed to assign provider: %w", err)
	}
	if !ok {
		return uc.transitionError(ctx, protocol)
	}
	return nil
}

// AcceptJob moves an OFFERED job to TRACKING and announces it
func (uc *jobUC) AcceptJob(ctx context.Context, protocol string) error {
	startedAt := uc.now()
	ok, err := uc.repo.StartTracking(ctx, protocol, startedAt)
	if err != nil {
		return fmt.Errorf("failed to accept job: %w", err)
	}
	if !ok {
		return uc.transitionError(ctx, protocol)
	}

	uc.publish(ctx, "job accepted", uc.gw.PublishJobAccepted, models.JobEvent{
		Protocol:   protocol,
		Status:     models.JobStatusTracking,
		OccurredAt: startedAt,
	})
	return nil
}

// DeclineJob moves an OFFERED job to DECLINED
func (uc *jobUC) DeclineJob(ctx context.Context, protocol string) error {
	ok, err := uc.repo.Decline(ctx, protocol)
	if err != nil {
		return fmt.Errorf("failed to decline job: %w", err)
	}
	if !ok {
		return uc.transitionError(ctx, protocol)
	}

	uc.publish(ctx, "job declined", uc.gw.PublishJobDeclined, models.JobEvent{
		Protocol:   protocol,
		Status:     models.JobStatusDeclined,
		OccurredAt: uc.now(),
	})
	return nil
}

// DenyJob closes an active job that cannot be serviced, recording the
// sentinel provider id instead of walking the accept path
func (uc *jobUC) DenyJob(ctx context.Context, protocol string) error {
	finalizedAt := uc.now()
	ok, err := uc.repo.Deny(ctx, protocol, finalizedAt)
	if err != nil {
		return fmt.Errorf("failed to deny job: %w", err)
	}
	if !ok {
		return uc.transitionError(ctx, protocol)
	}

	uc.publish(ctx, "job completed", uc.gw.PublishJobCompleted, models.JobEvent{
		Protocol:   protocol,
		Status:     models.JobStatusCompleted,
		ProviderID: models.ProviderDenied,
		OccurredAt: finalizedAt,
	})
	return nil
}

// FinalizeJob records a completion and moves the job TRACKING -> COMPLETED
func (uc *jobUC) FinalizeJob(ctx context.Context, record models.CompletionRecord) error {
	if record.Protocol == "" {
		return fmt.Errorf("protocol is required")
	}
	if record.PhotoURL == "" {
		return models.ErrPhotoRequired
	}

	finalizedAt := uc.now()
	ok, err := uc.repo.SaveCompletion(ctx, record, finalizedAt)
	if err != nil {
		return fmt.Errorf("failed to save completion: %w", err)
	}
	if !ok {
		return uc.transitionError(ctx, record.Protocol)
	}

	uc.publish(ctx, "job completed", uc.gw.PublishJobCompleted, models.JobEvent{
		Protocol:   record.Protocol,
		Status:     models.JobStatusCompleted,
		OccurredAt: finalizedAt,
	})
	return nil
}

// ReopenJob moves an ARCHIVED job back to WAITING
func (uc *jobUC) ReopenJob(ctx context.Context, protocol string) error {
	ok, err := uc.repo.Reopen(ctx, protocol)
	if err != nil {
		return fmt.Errorf("failed to reopen job: %w", err)
	}
	if !ok {
		return uc.transitionError(ctx, protocol)
	}
	return nil
}

// transitionError disambiguates a guarded update that matched no row:
// missing protocol vs a job not in the expected status
func (uc *jobUC) transitionError(ctx context.Context, protocol string) error {
	if _, err := uc.repo.GetByProtocol(ctx, protocol); err != nil {
		return err
	}
	return models.ErrInvalidTransition
}

// publish fires a lifecycle event without letting broker failures leak
// into the transition result
func (uc *jobUC) publish(ctx context.Context, name string, fn func(context.Context, models.JobEvent) error, event models.JobEvent) {
	if err := fn(ctx, event); err != nil {
		logger.Warn("Failed to publish lifecycle event",
			logger.String("event", name),
			logger.String("protocol", event.Protocol),
			logger.Err(err))
	}
}
