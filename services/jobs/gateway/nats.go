package gateway

import (
	"context"
	"fmt"

	"github.com/fieldops/towtrack/internal/pkg/constants"
	"github.com/fieldops/towtrack/internal/pkg/models"
	natspkg "github.com/fieldops/towtrack/internal/pkg/nats"
	"github.com/fieldops/towtrack/services/jobs"
)

type jobGW struct {
	natsClient *natspkg.Client
}

// NewJobGW creates a new job lifecycle gateway
func NewJobGW(natsClient *natspkg.Client) jobs.JobGW {
	return &jobGW{natsClient: natsClient}
}

func (g *jobGW) PublishJobAccepted(ctx context.Context, event models.JobEvent) error {
	return g.publish(constants.SubjectJobAccepted, event)
}

func (g *jobGW) PublishJobCompleted(ctx context.Context, event models.JobEvent) error {
	return g.publish(constants.SubjectJobCompleted, event)
}

func (g *jobGW) PublishJobDeclined(ctx context.Context, event models.JobEvent) error {
	return g.publish(constants.SubjectJobDeclined, event)
}

func (g *jobGW) publish(subject string, event models.JobEvent) error {
	if err := g.natsClient.PublishJSON(subject, event); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}
