package dispatch

import (
	"context"

	"github.com/fieldops/towtrack/internal/pkg/models"
)

// JobsClient reads job state from the jobs service
type JobsClient interface {
	ListActiveJobs(ctx context.Context) ([]*models.Job, error)
	GetJob(ctx context.Context, protocol string) (*models.Job, error)
	DenyJob(ctx context.Context, protocol string) error
	ReopenJob(ctx context.Context, protocol string) error
}

// TrackingClient reads provider positions from the tracking service
type TrackingClient interface {
	LatestPosition(ctx context.Context, protocol string) (*models.PositionSample, models.Freshness, error)
}

// ViewSink receives live-map events for one console view. The websocket
// handler implements it over the connection; tests substitute a recorder.
type ViewSink interface {
	Send(event string, data interface{}) error
}

// Live-map event names pushed through a ViewSink.
const (
	EventMarkers       = "markers"
	EventFitBounds     = "fit_bounds"
	EventRoute         = "route"
	EventDetail        = "detail"
	EventSearchResults = "search_results"
)
