package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/reporter"
	"github.com/fieldops/towtrack/services/reporter/mocks"
	"github.com/fieldops/towtrack/services/reporter/source"
)

func collectReports(gw *mocks.MockReporterGW) chan models.PositionReport {
	reports := make(chan models.PositionReport, 1024)
	gw.EXPECT().
		PublishPositionReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report models.PositionReport) error {
			reports <- report
			return nil
		}).
		AnyTimes()
	return reports
}

func TestSession_PublishesPushedFixes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := source.NewSimulatedSource()
	jobsGW := mocks.NewMockJobsGW(ctrl)
	reporterGW := mocks.NewMockReporterGW(ctrl)
	wakeLock := mocks.NewMockWakeLock(ctrl)

	jobsGW.EXPECT().AcceptJob(gomock.Any(), "JOB-100").Return(nil)
	wakeLock.EXPECT().Acquire().Return(nil)
	wakeLock.EXPECT().Release()
	reports := collectReports(reporterGW)

	session := NewSession("JOB-100", "prov-1", src, wakeLock, jobsGW, reporterGW, time.Hour)
	require.NoError(t, session.Start(context.Background()))

	ts := time.Date(2025, 8, 2, 14, 0, 0, 0, time.UTC)
	src.Emit(reporter.Fix{Latitude: -23.5, Longitude: -46.6, Accuracy: 4.2, Timestamp: ts})

	select {
	case report := <-reports:
		assert.Equal(t, "JOB-100", report.Protocol)
		assert.Equal(t, "prov-1", report.ProviderID)
		assert.Equal(t, -23.5, report.Sample.Latitude)
		assert.Equal(t, -46.6, report.Sample.Longitude)
		assert.Equal(t, 4.2, report.Accuracy)
		assert.True(t, report.Sample.Timestamp.Equal(ts))
	case <-time.After(2 * time.Second):
		t.Fatal("no position report published")
	}

	session.Stop()
	assert.False(t, src.Subscribed())
}

func TestSession_TickerKeepsStreamAliveWhenFeedStalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := source.NewSimulatedSource()
	jobsGW := mocks.NewMockJobsGW(ctrl)
	reporterGW := mocks.NewMockReporterGW(ctrl)
	wakeLock := mocks.NewMockWakeLock(ctrl)

	jobsGW.EXPECT().AcceptJob(gomock.Any(), "JOB-101").Return(nil)
	wakeLock.EXPECT().Acquire().Return(nil)
	wakeLock.EXPECT().Release()
	reports := collectReports(reporterGW)

	session := NewSession("JOB-101", "prov-1", src, wakeLock, jobsGW, reporterGW, 10*time.Millisecond)
	require.NoError(t, session.Start(context.Background()))
	defer session.Stop()

	ts := time.Now().Add(-time.Minute)
	src.Emit(reporter.Fix{Latitude: 10, Longitude: 20, Timestamp: ts})

	// One push report, then the feed goes silent. The flush ticker keeps
	// publishing the last coordinates, each stamped with the flush time,
	// so the stream's newest sample keeps advancing during the stall.
	var got []models.PositionReport
	deadline := time.After(2 * time.Second)
	for len(got) < 4 {
		select {
		case report := <-reports:
			got = append(got, report)
		case <-deadline:
			t.Fatalf("expected at least 4 reports, got %d", len(got))
		}
	}

	assert.True(t, got[0].Sample.Timestamp.Equal(ts))
	last := got[0].Sample.Timestamp
	for _, report := range got[1:] {
		assert.Equal(t, 10.0, report.Sample.Latitude)
		assert.Equal(t, 20.0, report.Sample.Longitude)
		assert.True(t, report.Sample.Timestamp.After(ts),
			"flush republish must carry the flush time, not the stalled fix's")
		assert.False(t, report.Sample.Timestamp.Before(last))
		last = report.Sample.Timestamp
	}
}

func TestSession_NoReportsBeforeFirstFix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := source.NewSimulatedSource()
	jobsGW := mocks.NewMockJobsGW(ctrl)
	reporterGW := mocks.NewMockReporterGW(ctrl)
	wakeLock := mocks.NewMockWakeLock(ctrl)

	jobsGW.EXPECT().AcceptJob(gomock.Any(), "JOB-102").Return(nil)
	wakeLock.EXPECT().Acquire().Return(nil)
	wakeLock.EXPECT().Release()

	session := NewSession("JOB-102", "prov-1", src, wakeLock, jobsGW, reporterGW, 5*time.Millisecond)
	require.NoError(t, session.Start(context.Background()))

	time.Sleep(50 * time.Millisecond)
	session.Stop()
}

func TestSession_AcceptFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := source.NewSimulatedSource()
	jobsGW := mocks.NewMockJobsGW(ctrl)
	reporterGW := mocks.NewMockReporterGW(ctrl)
	wakeLock := mocks.NewMockWakeLock(ctrl)

	jobsGW.EXPECT().AcceptJob(gomock.Any(), "JOB-103").Return(models.ErrInvalidTransition)

	session := NewSession("JOB-103", "prov-1", src, wakeLock, jobsGW, reporterGW, time.Hour)
	err := session.Start(context.Background())
	require.ErrorIs(t, err, models.ErrInvalidTransition)
	assert.False(t, src.Subscribed())

	// Start can be retried after a rejected accept.
	jobsGW.EXPECT().AcceptJob(gomock.Any(), "JOB-103").Return(nil)
	wakeLock.EXPECT().Acquire().Return(nil)
	wakeLock.EXPECT().Release()
	require.NoError(t, session.Start(context.Background()))
	session.Stop()
}

func TestSession_PermissionDeniedDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := source.NewSimulatedSource()
	src.SubErr = models.ErrPermissionDenied
	jobsGW := mocks.NewMockJobsGW(ctrl)
	reporterGW := mocks.NewMockReporterGW(ctrl)
	wakeLock := mocks.NewMockWakeLock(ctrl)

	jobsGW.EXPECT().AcceptJob(gomock.Any(), "JOB-104").Return(nil)
	wakeLock.EXPECT().Acquire().Return(nil)
	wakeLock.EXPECT().Release()

	var degraded error
	session := NewSession("JOB-104", "prov-1", src, wakeLock, jobsGW, reporterGW, 5*time.Millisecond)
	session.OnDegraded = func(err error) { degraded = err }

	require.NoError(t, session.Start(context.Background()))
	assert.ErrorIs(t, degraded, models.ErrPermissionDenied)

	// With no feed and no last fix the ticker publishes nothing.
	time.Sleep(50 * time.Millisecond)
	session.Stop()
}

func TestSession_SubscribeFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := source.NewSimulatedSource()
	src.SubErr = errors.New("serial port unavailable")
	jobsGW := mocks.NewMockJobsGW(ctrl)
	reporterGW := mocks.NewMockReporterGW(ctrl)
	wakeLock := mocks.NewMockWakeLock(ctrl)

	jobsGW.EXPECT().AcceptJob(gomock.Any(), "JOB-105").Return(nil)
	wakeLock.EXPECT().Acquire().Return(nil)
	wakeLock.EXPECT().Release()

	session := NewSession("JOB-105", "prov-1", src, wakeLock, jobsGW, reporterGW, time.Hour)
	err := session.Start(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrPermissionDenied)
}

func TestSession_SecondStartRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := source.NewSimulatedSource()
	jobsGW := mocks.NewMockJobsGW(ctrl)
	reporterGW := mocks.NewMockReporterGW(ctrl)
	wakeLock := mocks.NewMockWakeLock(ctrl)

	jobsGW.EXPECT().AcceptJob(gomock.Any(), "JOB-106").Return(nil)
	wakeLock.EXPECT().Acquire().Return(nil)
	wakeLock.EXPECT().Release()

	session := NewSession("JOB-106", "prov-1", src, wakeLock, jobsGW, reporterGW, time.Hour)
	require.NoError(t, session.Start(context.Background()))

	err := session.Start(context.Background())
	assert.ErrorIs(t, err, models.ErrSessionActive)

	session.Stop()
}
