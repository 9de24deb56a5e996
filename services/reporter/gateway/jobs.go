package gateway

import (
	"context"
	"errors"
	"fmt"

	httppkg "github.com/fieldops/towtrack/internal/pkg/http"
	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/reporter"
)

type jobsGW struct {
	client *httppkg.Client
}

// NewJobsGW creates an HTTP client for the provider-side lifecycle calls on
// the jobs service
func NewJobsGW(cfg models.ServicesConfig) reporter.JobsGW {
	return &jobsGW{
		client: httppkg.NewClient(cfg.JobsServiceURL, cfg.APIKey, 0),
	}
}

func (g *jobsGW) AcceptJob(ctx context.Context, protocol string) error {
	err := g.client.Post(ctx, fmt.Sprintf("/internal/jobs/%s/accept", protocol), nil, nil)
	return mapTransitionError(err, "accept", protocol)
}

func (g *jobsGW) FinalizeJob(ctx context.Context, record models.CompletionRecord) error {
	err := g.client.Post(ctx, fmt.Sprintf("/internal/jobs/%s/finalize", record.Protocol), record, nil)
	return mapTransitionError(err, "finalize", record.Protocol)
}

func mapTransitionError(err error, operation, protocol string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, httppkg.ErrNotFound):
		return models.ErrJobNotFound
	case errors.Is(err, httppkg.ErrConflict):
		return models.ErrInvalidTransition
	default:
		return fmt.Errorf("failed to %s job %s: %w", operation, protocol, err)
	}
}
