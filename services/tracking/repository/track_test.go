package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldops/towtrack/internal/pkg/database"
	"github.com/fieldops/towtrack/internal/pkg/models"
)

func setupTrackRepo(t *testing.T, now func() time.Time) (*trackRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := &trackRepo{
		redisClient: &database.RedisClient{Client: client},
		now:         now,
	}
	return repo, mr
}

func TestAppendSample_OrderedByTimestamp(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo, _ := setupTrackRepo(t, func() time.Time { return base })
	ctx := context.Background()

	// Append out of wall order, read back ascending
	samples := []models.PositionSample{
		{Latitude: -6.21, Longitude: 106.84, Timestamp: base.Add(-10 * time.Second)},
		{Latitude: -6.23, Longitude: 106.86, Timestamp: base},
		{Latitude: -6.22, Longitude: 106.85, Timestamp: base.Add(-5 * time.Second)},
	}
	for _, s := range samples {
		require.NoError(t, repo.AppendSample(ctx, "JOB-100", s))
	}

	got, err := repo.Samples(ctx, "JOB-100")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, -6.21, got[0].Latitude)
	assert.Equal(t, -6.22, got[1].Latitude)
	assert.Equal(t, -6.23, got[2].Latitude)
}

func TestAppendSample_DeduplicatesIdenticalSamples(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo, _ := setupTrackRepo(t, func() time.Time { return base })
	ctx := context.Background()

	sample := models.PositionSample{Latitude: -6.21, Longitude: 106.84, Timestamp: base}
	require.NoError(t, repo.AppendSample(ctx, "JOB-101", sample))
	require.NoError(t, repo.AppendSample(ctx, "JOB-101", sample))
	require.NoError(t, repo.AppendSample(ctx, "JOB-101", sample))

	got, err := repo.Samples(ctx, "JOB-101")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAppendSample_PrunesBeyondRetention(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo, _ := setupTrackRepo(t, func() time.Time { return base })
	ctx := context.Background()

	old := models.PositionSample{Latitude: -6.20, Longitude: 106.80, Timestamp: base.Add(-25 * time.Hour)}
	fresh := models.PositionSample{Latitude: -6.21, Longitude: 106.84, Timestamp: base}
	require.NoError(t, repo.AppendSample(ctx, "JOB-102", old))
	require.NoError(t, repo.AppendSample(ctx, "JOB-102", fresh))

	got, err := repo.Samples(ctx, "JOB-102")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, -6.21, got[0].Latitude)
}

func TestLatestSample_TracksNewestFix(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo, _ := setupTrackRepo(t, func() time.Time { return base })
	ctx := context.Background()

	newer := models.PositionSample{Latitude: -6.23, Longitude: 106.86, Timestamp: base}
	older := models.PositionSample{Latitude: -6.21, Longitude: 106.84, Timestamp: base.Add(-30 * time.Second)}
	require.NoError(t, repo.AppendSample(ctx, "JOB-103", newer))
	// A late-arriving older sample must not regress the last fix
	require.NoError(t, repo.AppendSample(ctx, "JOB-103", older))

	got, err := repo.LatestSample(ctx, "JOB-103")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, -6.23, got.Latitude)
	assert.True(t, got.Timestamp.Equal(base))
}

func TestLatestSample_EmptyStream(t *testing.T) {
	repo, _ := setupTrackRepo(t, time.Now)

	got, err := repo.LatestSample(context.Background(), "JOB-404")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSamples_EmptyStream(t *testing.T) {
	repo, _ := setupTrackRepo(t, time.Now)

	got, err := repo.Samples(context.Background(), "JOB-404")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStalledFeed_FlushSamplesKeepStreamActive(t *testing.T) {
	t0 := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := t0
	repo, _ := setupTrackRepo(t, func() time.Time { return clock })
	ctx := context.Background()

	// One push fix, then the feed stalls; the reporter's flush ticker
	// republishes the same coordinates every 5s stamped with the flush
	// time.
	writes := []time.Duration{1 * time.Second, 6 * time.Second, 11 * time.Second, 16 * time.Second}
	for _, offset := range writes {
		clock = t0.Add(offset)
		sample := models.PositionSample{Latitude: 10, Longitude: 20, Timestamp: clock}
		require.NoError(t, repo.AppendSample(ctx, "JOB-042", sample))
	}

	got, err := repo.Samples(ctx, "JOB-042")
	require.NoError(t, err)
	require.Len(t, got, 4)

	last, err := repo.LatestSample(ctx, "JOB-042")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, last.Timestamp.Equal(t0.Add(16*time.Second)))

	// 30s in: the newest sample is 14s old, inside the liveness window.
	assert.Equal(t, models.FreshnessActive, models.FreshnessOf(last, t0.Add(30*time.Second)))
	// 40s in, with the flushes gone too: 24s old, the device reads stale.
	assert.Equal(t, models.FreshnessInactive, models.FreshnessOf(last, t0.Add(40*time.Second)))
}
