package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/internal/utils"
	"github.com/fieldops/towtrack/services/dispatch"
	"github.com/fieldops/towtrack/services/routing"
)

// DefaultPollInterval is the reconciliation cadence of a console view
const DefaultPollInterval = 5 * time.Second

// ViewSession owns the live-map state of one dispatcher console view. It
// is constructed when the view connects and torn down when it closes;
// nothing about it outlives the connection.
type ViewSession struct {
	jobs     dispatch.JobsClient
	tracking dispatch.TrackingClient
	routes   routing.RouteClient
	sink     dispatch.ViewSink

	interval time.Duration
	kick     chan struct{}
	cancel   context.CancelFunc
	done     chan struct{}

	mu          sync.Mutex
	markers     map[string]models.Marker
	routeLayers map[string]struct{}
	fitted      bool
}

// NewViewSession creates a view session; Run starts its reconciliation loop
func NewViewSession(
	jobsClient dispatch.JobsClient,
	trackingClient dispatch.TrackingClient,
	routeClient routing.RouteClient,
	sink dispatch.ViewSink,
	interval time.Duration,
) *ViewSession {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &ViewSession{
		jobs:        jobsClient,
		tracking:    trackingClient,
		routes:      routeClient,
		sink:        sink,
		interval:    interval,
		kick:        make(chan struct{}, 1),
		done:        make(chan struct{}),
		markers:     make(map[string]models.Marker),
		routeLayers: make(map[string]struct{}),
	}
}

// Start launches the reconciliation loop: an immediate pass, then one per
// tick or kick until Close
func (s *ViewSession) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	go s.run(ctx)
}

func (s *ViewSession) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.reconcileLogged(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.reconcileLogged(ctx)
		case <-s.kick:
			s.reconcileLogged(ctx)
		}
	}
}

// Kick requests an off-schedule reconcile (job.accepted optimization).
// Purely best-effort: a dropped kick is healed by the next tick.
func (s *ViewSession) Kick() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Close stops the reconciliation loop and waits for it to exit
func (s *ViewSession) Close() {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
}

func (s *ViewSession) reconcileLogged(ctx context.Context) {
	if err := s.Reconcile(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("View reconciliation failed", logger.Err(err))
	}
}

// Reconcile diffs the live map against the active job set: markers are
// created or moved for every active job with a known position, and markers
// plus route layers are dropped for jobs gone from the set. The viewport
// is fitted exactly once, on the first pass that produced any marker.
func (s *ViewSession) Reconcile(ctx context.Context) error {
	active, err := s.jobs.ListActiveJobs(ctx)
	if err != nil {
		// Keep rendering the last known state; the next tick retries
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	activeSet := make(map[string]struct{}, len(active))
	var upserts []models.Marker

	for _, job := range active {
		activeSet[job.Protocol] = struct{}{}

		sample, freshness, err := s.tracking.LatestPosition(ctx, job.Protocol)
		if err != nil {
			logger.Warn("Failed to read latest position",
				logger.String("protocol", job.Protocol),
				logger.Err(err))
			continue
		}
		if sample == nil {
			continue
		}

		marker := models.Marker{
			Protocol:  job.Protocol,
			Position:  sample.Coordinate(),
			GeoCell:   utils.EncodeCell(sample.Coordinate(), utils.MarkerCellPrecision),
			Freshness: freshness,
		}
		if existing, ok := s.markers[job.Protocol]; !ok || existing != marker {
			s.markers[job.Protocol] = marker
			upserts = append(upserts, marker)
		}
	}

	var removals []string
	for protocol := range s.markers {
		if _, ok := activeSet[protocol]; !ok {
			delete(s.markers, protocol)
			delete(s.routeLayers, protocol)
			removals = append(removals, protocol)
		}
	}

	if len(upserts) > 0 || len(removals) > 0 {
		if err := s.sink.Send(dispatch.EventMarkers, models.MarkerEvent{
			Upserts:  upserts,
			Removals: removals,
		}); err != nil {
			return err
		}
	}

	if !s.fitted && len(s.markers) > 0 {
		all := make([]models.Marker, 0, len(s.markers))
		for _, marker := range s.markers {
			all = append(all, marker)
		}
		if err := s.sink.Send(dispatch.EventFitBounds, models.BoundsEvent{Markers: all}); err != nil {
			return err
		}
		s.fitted = true
	}

	return nil
}

// Search filters the active set with a case-insensitive substring match
// across protocol, customer, provider and address fields. An empty query
// hides the results panel.
func (s *ViewSession) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.sink.Send(dispatch.EventSearchResults, models.SearchResultsEvent{Hidden: true})
	}

	active, err := s.jobs.ListActiveJobs(ctx)
	if err != nil {
		return err
	}

	needle := strings.ToLower(query)
	var results []models.Job
	for _, job := range active {
		if jobMatches(job, needle) {
			results = append(results, *job)
		}
	}

	return s.sink.Send(dispatch.EventSearchResults, models.SearchResultsEvent{
		Query:   query,
		Results: results,
	})
}

func jobMatches(job *models.Job, needle string) bool {
	fields := []string{
		job.Protocol,
		job.CustomerName,
		job.CustomerPhone,
		job.ProviderName,
		job.ProviderPhone,
		job.PickupAddress,
		job.City,
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// OpenDetail centers the view on a job and computes its route on demand.
// A route failure keeps whatever layer was rendered before; the detail
// panel still opens.
func (s *ViewSession) OpenDetail(ctx context.Context, protocol string) error {
	job, err := s.jobs.GetJob(ctx, protocol)
	if err != nil {
		return err
	}

	center := job.Pickup
	s.mu.Lock()
	if marker, ok := s.markers[protocol]; ok {
		center = marker.Position
	}
	s.mu.Unlock()

	if err := s.sink.Send(dispatch.EventDetail, models.DetailEvent{Job: *job, Center: center}); err != nil {
		return err
	}

	sample, _, err := s.tracking.LatestPosition(ctx, protocol)
	if err != nil || sample == nil {
		return nil // no provider position, nothing to route from
	}

	route, err := s.routes.ComputeRoute(ctx, sample.Coordinate(), job.Pickup, job.Dropoff)
	if err != nil {
		logger.Warn("Route computation failed, keeping prior layer",
			logger.String("protocol", protocol),
			logger.Err(err))
		return nil
	}

	s.mu.Lock()
	s.routeLayers[protocol] = struct{}{}
	s.mu.Unlock()

	// The console replaces any prior layer for the protocol before drawing
	return s.sink.Send(dispatch.EventRoute, models.RouteEvent{Protocol: protocol, Route: *route})
}

// MarkerCount reports the number of rendered markers
func (s *ViewSession) MarkerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.markers)
}

// HasRouteLayer reports whether a route layer is rendered for the protocol
func (s *ViewSession) HasRouteLayer(protocol string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.routeLayers[protocol]
	return ok
}
