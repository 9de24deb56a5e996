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
	"github.com/fieldops/towtrack/services/tracking/mocks"
)

func TestRecordReport_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTrackRepo(ctrl)
	mockGW := mocks.NewMockTrackingGW(ctrl)
	uc := NewTrackingUC(mockRepo, mockGW)

	ts := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	report := models.PositionReport{
		Protocol:   "JOB-100",
		ProviderID: "PRV-7",
		Sample: models.PositionSample{
			Latitude:  -6.21,
			Longitude: 106.84,
			Timestamp: ts,
		},
	}

	mockRepo.EXPECT().
		AppendSample(gomock.Any(), "JOB-100", report.Sample).
		Return(nil)
	mockGW.EXPECT().
		PublishPositionStored(gomock.Any(), report).
		Return(nil)

	err := uc.RecordReport(context.Background(), report)
	assert.NoError(t, err)
}

func TestRecordReport_DefaultsTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTrackRepo(ctrl)
	mockGW := mocks.NewMockTrackingGW(ctrl)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := &trackingUC{repo: mockRepo, gw: mockGW, now: func() time.Time { return now }}

	mockRepo.EXPECT().
		AppendSample(gomock.Any(), "JOB-100", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, sample models.PositionSample) error {
			assert.True(t, sample.Timestamp.Equal(now))
			return nil
		})
	mockGW.EXPECT().PublishPositionStored(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.RecordReport(context.Background(), models.PositionReport{
		Protocol: "JOB-100",
		Sample:   models.PositionSample{Latitude: -6.21, Longitude: 106.84},
	})
	assert.NoError(t, err)
}

func TestRecordReport_RejectsInvalidReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewTrackingUC(mocks.NewMockTrackRepo(ctrl), mocks.NewMockTrackingGW(ctrl))

	testCases := []struct {
		name   string
		report models.PositionReport
	}{
		{"missing protocol", models.PositionReport{Sample: models.PositionSample{Latitude: 1, Longitude: 1}}},
		{"latitude too high", models.PositionReport{Protocol: "JOB-1", Sample: models.PositionSample{Latitude: 91, Longitude: 1}}},
		{"latitude too low", models.PositionReport{Protocol: "JOB-1", Sample: models.PositionSample{Latitude: -91, Longitude: 1}}},
		{"longitude too high", models.PositionReport{Protocol: "JOB-1", Sample: models.PositionSample{Latitude: 1, Longitude: 181}}},
		{"longitude too low", models.PositionReport{Protocol: "JOB-1", Sample: models.PositionSample{Latitude: 1, Longitude: -181}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.RecordReport(context.Background(), tc.report)
			assert.ErrorIs(t, err, models.ErrInvalidReport)
		})
	}
}

func TestRecordReport_PublishFailureDoesNotFailWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTrackRepo(ctrl)
	mockGW := mocks.NewMockTrackingGW(ctrl)
	uc := NewTrackingUC(mockRepo, mockGW)

	mockRepo.EXPECT().AppendSample(gomock.Any(), "JOB-100", gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPositionStored(gomock.Any(), gomock.Any()).
		Return(errors.New("nats: connection closed"))

	err := uc.RecordReport(context.Background(), models.PositionReport{
		Protocol: "JOB-100",
		Sample:   models.PositionSample{Latitude: -6.21, Longitude: 106.84, Timestamp: time.Now()},
	})
	assert.NoError(t, err)
}

func TestRecordReport_RepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTrackRepo(ctrl)
	uc := NewTrackingUC(mockRepo, mocks.NewMockTrackingGW(ctrl))

	mockRepo.EXPECT().AppendSample(gomock.Any(), "JOB-100", gomock.Any()).
		Return(errors.New("redis down"))

	err := uc.RecordReport(context.Background(), models.PositionReport{
		Protocol: "JOB-100",
		Sample:   models.PositionSample{Latitude: -6.21, Longitude: 106.84, Timestamp: time.Now()},
	})
	assert.Error(t, err)
}

func TestLatest_FreshnessClasses(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		sample   *models.PositionSample
		expected models.Freshness
	}{
		{
			name:     "active within threshold",
			sample:   &models.PositionSample{Latitude: 1, Longitude: 1, Timestamp: now.Add(-15 * time.Second)},
			expected: models.FreshnessActive,
		},
		{
			name:     "inactive past threshold",
			sample:   &models.PositionSample{Latitude: 1, Longitude: 1, Timestamp: now.Add(-45 * time.Second)},
			expected: models.FreshnessInactive,
		},
		{
			name:     "unknown when no fix",
			sample:   nil,
			expected: models.FreshnessUnknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockTrackRepo(ctrl)
			uc := &trackingUC{repo: mockRepo, gw: mocks.NewMockTrackingGW(ctrl), now: func() time.Time { return now }}

			mockRepo.EXPECT().LatestSample(gomock.Any(), "JOB-100").Return(tc.sample, nil)

			sample, freshness, err := uc.Latest(context.Background(), "JOB-100")
			require.NoError(t, err)
			assert.Equal(t, tc.sample, sample)
			assert.Equal(t, tc.expected, freshness)
		})
	}
}

func TestTrack_ReturnsStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTrackRepo(ctrl)
	uc := NewTrackingUC(mockRepo, mocks.NewMockTrackingGW(ctrl))

	want := []models.PositionSample{
		{Latitude: -6.21, Longitude: 106.84, Timestamp: time.Now().Add(-10 * time.Second)},
		{Latitude: -6.22, Longitude: 106.85, Timestamp: time.Now()},
	}
	mockRepo.EXPECT().Samples(gomock.Any(), "JOB-100").Return(want, nil)

	got, err := uc.Track(context.Background(), "JOB-100")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
