package gateway

import (
	"context"

	"github.com/fieldops/towtrack/internal/pkg/constants"
	"github.com/fieldops/towtrack/internal/pkg/models"
	natspkg "github.com/fieldops/towtrack/internal/pkg/nats"
	"github.com/fieldops/towtrack/services/reporter"
)

type reporterGW struct {
	natsClient *natspkg.Client
}

// NewReporterGW creates a gateway that publishes position reports onto the
// shared tracking stream
func NewReporterGW(natsClient *natspkg.Client) reporter.ReporterGW {
	return &reporterGW{natsClient: natsClient}
}

func (g *reporterGW) PublishPositionReport(ctx context.Context, report models.PositionReport) error {
	return g.natsClient.PublishJSON(constants.SubjectPositionReport, report)
}
