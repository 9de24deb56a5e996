package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/dispatch"
	"github.com/fieldops/towtrack/services/dispatch/mocks"
	routingmocks "github.com/fieldops/towtrack/services/routing/mocks"
)

// recordingSink captures every event pushed to the view
type recordingSink struct {
	mu     sync.Mutex
	events []sinkEvent
}

type sinkEvent struct {
	name string
	data interface{}
}

func (r *recordingSink) Send(event string, data interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, sinkEvent{name: event, data: data})
	return nil
}

func (r *recordingSink) byName(name string) []sinkEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []sinkEvent
	for _, e := range r.events {
		if e.name == name {
			out = append(out, e)
		}
	}
	return out
}

func activeJob(protocol, customer string) *models.Job {
	return &models.Job{
		Protocol:     protocol,
		Status:       models.JobStatusTracking,
		CustomerName: customer,
		Pickup:       models.Coordinate{Latitude: -23.55, Longitude: -46.63},
		City:         "Sao Paulo",
	}
}

func sampleAt(lat, lng float64) *models.PositionSample {
	return &models.PositionSample{Latitude: lat, Longitude: lng, Timestamp: time.Now()}
}

func newSessionForTest(t *testing.T) (*mocks.MockJobsClient, *mocks.MockTrackingClient, *routingmocks.MockRouteClient, *recordingSink, *ViewSession) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	jobsClient := mocks.NewMockJobsClient(ctrl)
	trackingClient := mocks.NewMockTrackingClient(ctrl)
	routeClient := routingmocks.NewMockRouteClient(ctrl)
	sink := &recordingSink{}
	session := NewViewSession(jobsClient, trackingClient, routeClient, sink, DefaultPollInterval)
	return jobsClient, trackingClient, routeClient, sink, session
}

func TestReconcile_MarkersMatchActiveJobsWithSamples(t *testing.T) {
	jobsClient, trackingClient, _, sink, session := newSessionForTest(t)

	jobsClient.EXPECT().ListActiveJobs(gomock.Any()).Return([]*models.Job{
		activeJob("T-0001", "Ana Souza"),
		activeJob("T-0002", "Bruno Reis"),
		activeJob("T-0003", "Clara Dias"), // no position yet
	}, nil)
	trackingClient.EXPECT().LatestPosition(gomock.Any(), "T-0001").
		Return(sampleAt(-23.55, -46.63), models.FreshnessActive, nil)
	trackingClient.EXPECT().LatestPosition(gomock.Any(), "T-0002").
		Return(sampleAt(-23.56, -46.64), models.FreshnessInactive, nil)
	trackingClient.EXPECT().LatestPosition(gomock.Any(), "T-0003").
		Return(nil, models.FreshnessUnknown, nil)

	require.NoError(t, session.Reconcile(context.Background()))

	assert.Equal(t, 2, session.MarkerCount())
	markerEvents := sink.byName(dispatch.EventMarkers)
	require.Len(t, markerEvents, 1)
	event := markerEvents[0].data.(models.MarkerEvent)
	assert.Len(t, event.Upserts, 2)
	assert.Empty(t, event.Removals)
	for _, marker := range event.Upserts {
		assert.NotEmpty(t, marker.GeoCell)
	}
}

func TestReconcile_FitBoundsExactlyOnce(t *testing.T) {
	jobsClient, trackingClient, _, sink, session := newSessionForTest(t)

	jobsClient.EXPECT().ListActiveJobs(gomock.Any()).Return([]*models.Job{
		activeJob("T-0001", "Ana Souza"),
	}, nil).Times(3)
	trackingClient.EXPECT().LatestPosition(gomock.Any(), "T-0001").
		Return(sampleAt(-23.55, -46.63), models.FreshnessActive, nil)
	trackingClient.EXPECT().LatestPosition(gomock.Any(), "T-0001").
		Return(sampleAt(-23.56, -46.64), models.FreshnessActive, nil)
	trackingClient.EXPECT().LatestPosition(gomock.Any(), "T-0001").
		Return(sampleAt(-23.57, -46.65), models.FreshnessActive, nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, session.Reconcile(context.Background()))
	}

	// Later ticks move the marker but never touch the viewport again
	assert.Len(t, sink.byName(dispatch.EventFitBounds), 1)
	assert.Len(t, sink.byName(dispatch.EventMarkers), 3)
}

func TestReconcile_NoFitBoundsBeforeFirstSample(t *testing.T) {
	jobsClient, trackingClient, _, sink, session := newSessionForTest(t)

	jobsClient.EXPECT().ListActiveJobs(gomock.Any()).Return([]*models.Job{
		activeJob("T-0001", "Ana Souza"),
	}, nil)
	trackingClient.EXPECT().LatestPosition(gomock.Any(), "T-0001").
		Return(nil, models.FreshnessUnknown, nil)

	require.NoError(t, session.Reconcile(context.Background()))
	assert.Empty(t, sink.byName(dispatch.EventFitBounds))
}

func TestReconcile_UnchangedPositionSendsNothing(t *testing.T) {
	jobsClient, trackingClient, _, sink, session := newSessionForTest(t)

	sample := sampleAt(-23.55, -46.63)
	jobsClient.EXPECT().ListActiveJobs(gomock.Any()).Return([]*models.Job{
		activeJob("T-0001", "Ana Souza"),
	}, nil).Times(2)
	trackingClient.EXPECT().LatestPosition(gomock.Any(), "T-0001").
		Return(sample, models.FreshnessActive, nil).Times(2)

	require.NoError(t, session.Reconcile(context.Background()))
	require.NoError(t, session.Reconcile(context.Background()))

	assert.Len(t, sink.byName(dispatch.EventMarkers), 1)
}

func TestReconcile_RemovalCascadesRouteLayer(t *testing.T) {
	jobsClient, trackingClient, routeClient, sink, session := newSessionForTest(t)

	job := activeJob("T-0001", "Ana Souza")
	jobsClient.EXPECT().ListActiveJobs(gomock.Any()).Return([]*models.Job{job}, nil)
	trackingClient.EXPECT().LatestPosition(gomock.Any(), "T-0001").
		Return(sampleAt(-23.55, -46.63), models.FreshnessActive, nil)
	require.NoError(t, session.Reconcile(context.Background()))

	// Open the detail so a route layer exists
	jobsClient.EXPECT().GetJob(gomock.Any(), "T-0001").Return(job, nil)
	trackingClient.EXPECT().LatestPosition(gomock.Any(), "T-0001").
		Return(sampleAt(-23.55, -46.63), models.FreshnessActive, nil)
	routeClient.EXPECT().ComputeRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Route{DistanceMeters: 4200, DurationSeconds: 540}, nil)
	require.NoError(t, session.OpenDetail(context.Background(), "T-0001"))
	require.True(t, session.HasRouteLayer("T-0001"))

	// Job leaves the active set: marker and route layer both go
	jobsClient.EXPECT().ListActiveJobs(gomock.Any()).Return(nil, nil)
	require.NoError(t, session.Reconcile(context.Background()))

	assert.Equal(t, 0, session.MarkerCount())
	assert.False(t, session.HasRouteLayer("T-0001"))
	markerEvents := sink.byName(dispatch.EventMarkers)
	last := markerEvents[len(markerEvents)-1].data.(models.MarkerEvent)
	assert.Equal(t, []string{"T-0001"}, last.Removals)
}

func TestReconcile_ListFailureKeepsState(t *testing.T) {
	jobsClient, trackingClient, _, _, session := newSessionForTest(t)

	jobsClient.EXPECT().ListActiveJobs(gomock.Any()).Return([]*models.Job{
		activeJob("T-0001", "Ana Souza"),
	}, nil)
	trackingClient.EXPECT().LatestPosition(gomock.Any(), "T-0001").
		Return(sampleAt(-23.55, -46.63), models.FreshnessActive, nil)
	require.NoError(t, session.Reconcile(context.Background()))

	jobsClient.EXPECT().ListActiveJobs(gomock.Any()).Return(nil, errors.New("jobs service down"))
	assert.Error(t, session.Reconcile(context.Background()))
	assert.Equal(t, 1, session.MarkerCount())
}

func TestSearch_ExactProtocol(t *testing.T) {
	jobsClient, _, _, sink, session := newSessionForTest(t)

	jobsClient.EXPECT().ListActiveJobs(gomock.Any()).Return([]*models.Job{
		activeJob("T-0001", "Ana Souza"),
		activeJob("T-0010", "Bruno Reis"),
	}, nil)

	require.NoError(t, session.Search(context.Background(), "T-0001"))

	events := sink.byName(dispatch.EventSearchResults)
	require.Len(t, events, 1)
	result := events[0].data.(models.SearchResultsEvent)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "T-0001", result.Results[0].Protocol)
}

func TestSearch_CaseInsensitiveAcrossFields(t *testing.T) {
	jobsClient, _, _, sink, session := newSessionForTest(t)

	job := activeJob("T-0002", "Bruno Reis")
	job.ProviderName = "Carlos Lima"
	jobsClient.EXPECT().ListActiveJobs(gomock.Any()).Return([]*models.Job{
		activeJob("T-0001", "Ana Souza"),
		job,
	}, nil).Times(2)

	require.NoError(t, session.Search(context.Background(), "bruno"))
	require.NoError(t, session.Search(context.Background(), "CARLOS"))

	events := sink.byName(dispatch.EventSearchResults)
	require.Len(t, events, 2)
	for _, e := range events {
		result := e.data.(models.SearchResultsEvent)
		require.Len(t, result.Results, 1)
		assert.Equal(t, "T-0002", result.Results[0].Protocol)
	}
}

func TestSearch_EmptyQueryHidesPanel(t *testing.T) {
	_, _, _, sink, session := newSessionForTest(t)

	require.NoError(t, session.Search(context.Background(), "  "))

	events := sink.byName(dispatch.EventSearchResults)
	require.Len(t, events, 1)
	result := events[0].data.(models.SearchResultsEvent)
	assert.True(t, result.Hidden)
	assert.Empty(t, result.Results)
}

func TestOpenDetail_RouteFailureKeepsPriorLayer(t *testing.T) {
	jobsClient, trackingClient, routeClient, sink, session := newSessionForTest(t)

	job := activeJob("T-0001", "Ana Souza")
	jobsClient.EXPECT().GetJob(gomock.Any(), "T-0001").Return(job, nil).Times(2)
	trackingClient.EXPECT().LatestPosition(gomock.Any(), "T-0001").
		Return(sampleAt(-23.50, -46.60), models.FreshnessActive, nil).Times(2)
	routeClient.EXPECT().ComputeRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Route{DistanceMeters: 4200, DurationSeconds: 540}, nil)
	routeClient.EXPECT().ComputeRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("OVER_QUERY_LIMIT"))

	require.NoError(t, session.OpenDetail(context.Background(), "T-0001"))
	require.NoError(t, session.OpenDetail(context.Background(), "T-0001"))

	// Second detail open failed to route: the first layer survives and no
	// second route event is pushed
	assert.True(t, session.HasRouteLayer("T-0001"))
	assert.Len(t, sink.byName(dispatch.EventRoute), 1)
	assert.Len(t, sink.byName(dispatch.EventDetail), 2)
}

func TestOpenDetail_UnknownProtocol(t *testing.T) {
	jobsClient, _, _, sink, session := newSessionForTest(t)

	jobsClient.EXPECT().GetJob(gomock.Any(), "T-9999").Return(nil, models.ErrJobNotFound)

	err := session.OpenDetail(context.Background(), "T-9999")
	assert.ErrorIs(t, err, models.ErrJobNotFound)
	assert.Empty(t, sink.byName(dispatch.EventDetail))
}

func TestKick_TriggersOffScheduleReconcile(t *testing.T) {
	jobsClient, trackingClient, _, sink, session := newSessionForTest(t)

	// The long interval keeps the ticker out of the picture: only the
	// initial pass and the kicked one run
	session.interval = time.Hour

	var reconciles int64
	jobsClient.EXPECT().ListActiveJobs(gomock.Any()).
		DoAndReturn(func(context.Context) ([]*models.Job, error) {
			atomic.AddInt64(&reconciles, 1)
			return []*models.Job{activeJob("T-0001", "Ana Souza")}, nil
		}).AnyTimes()
	trackingClient.EXPECT().LatestPosition(gomock.Any(), "T-0001").
		DoAndReturn(func(context.Context, string) (*models.PositionSample, models.Freshness, error) {
			n := atomic.LoadInt64(&reconciles)
			return sampleAt(-23.55+float64(n)/1000, -46.63), models.FreshnessActive, nil
		}).AnyTimes()

	session.Start(context.Background())
	defer session.Close()

	require.Eventually(t, func() bool {
		return len(sink.byName(dispatch.EventMarkers)) >= 1
	}, time.Second, 10*time.Millisecond)

	session.Kick()
	require.Eventually(t, func() bool {
		return len(sink.byName(dispatch.EventMarkers)) >= 2
	}, time.Second, 10*time.Millisecond)
}
