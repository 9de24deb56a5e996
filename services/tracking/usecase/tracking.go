package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/tracking"
)

type trackingUC struct {
	repo tracking.TrackRepo
	gw   tracking.TrackingGW
	now  func() time.Time
}

// NewTrackingUC creates a new tracking usecase
func NewTrackingUC(repo tracking.TrackRepo, gw tracking.TrackingGW) tracking.TrackingUC {
	return &trackingUC{
		repo: repo,
		gw:   gw,
		now:  time.Now,
	}
}

// RecordReport validates and stores a position report. The stored event is
// published best-effort: a broker hiccup never fails the write.
func (uc *trackingUC) RecordReport(ctx context.Context, report models.PositionReport) error {
	if report.Protocol == "" {
		return fmt.Errorf("%w: protocol is required", models.ErrInvalidReport)
	}
	if report.Sample.Latitude < -90 || report.Sample.Latitude > 90 {
		return fmt.Errorf("%w: latitude out of range: %f", models.ErrInvalidReport, report.Sample.Latitude)
	}
	if report.Sample.Longitude < -180 || report.Sample.Longitude > 180 {
		return fmt.Errorf("%w: longitude out of range: %f", models.ErrInvalidReport, report.Sample.Longitude)
	}

	if report.Sample.Timestamp.IsZero() {
		report.Sample.Timestamp = uc.now()
	}

	if err := uc.repo.AppendSample(ctx, report.Protocol, report.Sample); err != nil {
		return fmt.Errorf("failed to record position: %w", err)
	}

	if err := uc.gw.PublishPositionStored(ctx, report); err != nil {
		logger.Warn("Failed to publish position stored event",
			logger.String("protocol", report.Protocol),
			logger.Err(err))
	}

	return nil
}

// Latest returns the newest fix for a job together with its freshness class
func (uc *trackingUC) Latest(ctx context.Context, protocol string) (*models.PositionSample, models.Freshness, error) {
	sample, err := uc.repo.LatestSample(ctx, protocol)
	if err != nil {
		return nil, models.FreshnessUnknown, fmt.Errorf("failed to load latest fix: %w", err)
	}
	return sample, models.FreshnessOf(sample, uc.now()), nil
}

// Track returns the retained position stream for a job
func (uc *trackingUC) Track(ctx context.Context, protocol string) ([]models.PositionSample, error) {
	samples, err := uc.repo.Samples(ctx, protocol)
	if err != nil {
		return nil, fmt.Errorf("failed to load track: %w", err)
	}
	return samples, nil
}
