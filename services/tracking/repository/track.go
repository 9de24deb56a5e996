package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fieldops/towtrack/internal/pkg/constants"
	"github.com/fieldops/towtrack/internal/pkg/database"
	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/tracking"
)

type trackRepo struct {
	redisClient *database.RedisClient
	now         func() time.Time
}

// NewTrackRepository creates a new position log repository
func NewTrackRepository(redisClient *database.RedisClient) tracking.TrackRepo {
	return &trackRepo{
		redisClient: redisClient,
		now:         time.Now,
	}
}

// NewTrackRepositoryWithClock creates a repository with an injectable clock,
// used by retention tests
func NewTrackRepositoryWithClock(redisClient *database.RedisClient, now func() time.Time) tracking.TrackRepo {
	return &trackRepo{
		redisClient: redisClient,
		now:         now,
	}
}

// AppendSample stores a sample in the job's sorted stream. The member
// encodes (ts, lat, lng), so an identical resubmission lands on the same
// member and collapses to one entry. Every write prunes samples older than
// the retention window and refreshes the latest-fix hash.
func (r *trackRepo) AppendSample(ctx context.Context, protocol string, sample models.PositionSample) error {
	trackKey := fmt.Sprintf(constants.KeyJobTrack, protocol)
	member := encodeSample(sample)
	score := float64(sample.Timestamp.Unix())

	if err := r.redisClient.ZAdd(ctx, trackKey, score, member); err != nil {
		return fmt.Errorf("failed to append position sample: %w", err)
	}

	// Prune everything older than the retention window
	cutoff := r.now().Add(-models.TrackRetention).Unix()
	if err := r.redisClient.ZRemRangeByScore(ctx, trackKey, "-inf", fmt.Sprintf("(%d", cutoff)); err != nil {
		return fmt.Errorf("failed to prune position stream: %w", err)
	}

	if err := r.updateLastFix(ctx, protocol, sample); err != nil {
		return err
	}

	if err := r.redisClient.Expire(ctx, trackKey, models.TrackRetention); err != nil {
		return fmt.Errorf("failed to set stream TTL: %w", err)
	}

	return nil
}

// updateLastFix refreshes the latest-fix hash when the sample is at least
// as new as the stored one
func (r *trackRepo) updateLastFix(ctx context.Context, protocol string, sample models.PositionSample) error {
	current, err := r.LatestSample(ctx, protocol)
	if err != nil {
		return err
	}
	if current != nil && current.Timestamp.After(sample.Timestamp) {
		return nil
	}

	fixKey := fmt.Sprintf(constants.KeyJobLastFix, protocol)
	fixData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(sample.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(sample.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(sample.Timestamp.Unix(), 10),
	}

	if err := r.redisClient.HMSet(ctx, fixKey, fixData); err != nil {
		return fmt.Errorf("failed to store last fix: %w", err)
	}
	if err := r.redisClient.Expire(ctx, fixKey, models.TrackRetention); err != nil {
		return fmt.Errorf("failed to set last fix TTL: %w", err)
	}

	return nil
}

// LatestSample reads the latest-fix hash. A missing hash means the stream
// has never been written (or has aged out) and yields nil with no error.
func (r *trackRepo) LatestSample(ctx context.Context, protocol string) (*models.PositionSample, error) {
	fixKey := fmt.Sprintf(constants.KeyJobLastFix, protocol)

	values, err := r.redisClient.HMGet(ctx, fixKey,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldTimestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get last fix: %w", err)
	}

	if len(values) != 3 || values[0] == "" || values[1] == "" || values[2] == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	ts, err := strconv.ParseInt(values[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.PositionSample{
		Latitude:  lat,
		Longitude: lng,
		Timestamp: time.Unix(ts, 0),
	}, nil
}

// Samples returns the retained stream ascending by timestamp
func (r *trackRepo) Samples(ctx context.Context, protocol string) ([]models.PositionSample, error) {
	trackKey := fmt.Sprintf(constants.KeyJobTrack, protocol)

	members, err := r.redisClient.ZRangeByScore(ctx, trackKey, "-inf", "+inf")
	if err != nil {
		return nil, fmt.Errorf("failed to read position stream: %w", err)
	}

	samples := make([]models.PositionSample, 0, len(members))
	for _, member := range members {
		sample, err := decodeSample(member)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}

	return samples, nil
}

func encodeSample(sample models.PositionSample) string {
	return fmt.Sprintf("%d:%s:%s",
		sample.Timestamp.Unix(),
		strconv.FormatFloat(sample.Latitude, 'f', -1, 64),
		strconv.FormatFloat(sample.Longitude, 'f', -1, 64))
}

func decodeSample(member string) (models.PositionSample, error) {
	parts := strings.SplitN(member, ":", 3)
	if len(parts) != 3 {
		return models.PositionSample{}, fmt.Errorf("malformed stream member: %q", member)
	}

	ts, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return models.PositionSample{}, fmt.Errorf("invalid member timestamp: %w", err)
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return models.PositionSample{}, fmt.Errorf("invalid member latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return models.PositionSample{}, fmt.Errorf("invalid member longitude: %w", err)
	}

	return models.PositionSample{
		Latitude:  lat,
		Longitude: lng,
		Timestamp: time.Unix(ts, 0),
	}, nil
}
