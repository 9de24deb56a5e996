package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldops/towtrack/internal/pkg/circuitbreaker"
	httppkg "github.com/fieldops/towtrack/internal/pkg/http"
	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/dispatch"
)

type jobsClient struct {
	client  *httppkg.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewJobsClient creates an HTTP client for the jobs service, guarded by a
// circuit breaker
func NewJobsClient(cfg models.ServicesConfig) dispatch.JobsClient {
	return &jobsClient{
		client:  httppkg.NewClient(cfg.JobsServiceURL, cfg.APIKey, 0),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("jobs-service"), logger.GetGlobalLogger()),
	}
}

func (c *jobsClient) ListActiveJobs(ctx context.Context) ([]*models.Job, error) {
	var resp struct {
		Success bool          `json:"success"`
		Data    []*models.Job `json:"data"`
	}
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.client.Get(ctx, "/internal/jobs", &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	return resp.Data, nil
}

func (c *jobsClient) GetJob(ctx context.Context, protocol string) (*models.Job, error) {
	var resp struct {
		Success bool        `json:"success"`
		Data    *models.Job `json:"data"`
	}
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.client.Get(ctx, "/internal/jobs/"+protocol, &resp)
	})
	if errors.Is(err, httppkg.ErrNotFound) {
		return nil, models.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job %s: %w", protocol, err)
	}
	return resp.Data, nil
}

func (c *jobsClient) DenyJob(ctx context.Context, protocol string) error {
	return c.postTransition(ctx, protocol, "deny")
}

func (c *jobsClient) ReopenJob(ctx context.Context, protocol string) error {
	return c.postTransition(ctx, protocol, "reopen")
}

func (c *jobsClient) postTransition(ctx context.Context, protocol, operation string) error {
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.client.Post(ctx, fmt.Sprintf("/internal/jobs/%s/%s", protocol, operation), nil, nil)
	})
	if errors.Is(err, httppkg.ErrNotFound) {
		return models.ErrJobNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to %s job %s: %w", operation, protocol, err)
	}
	return nil
}
