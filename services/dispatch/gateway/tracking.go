package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldops/towtrack/internal/pkg/circuitbreaker"
	httppkg "github.com/fieldops/towtrack/internal/pkg/http"
	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/dispatch"
)

type trackingClient struct {
	client  *httppkg.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewTrackingClient creates an HTTP client for the tracking service,
// guarded by a circuit breaker
func NewTrackingClient(cfg models.ServicesConfig) dispatch.TrackingClient {
	return &trackingClient{
		client:  httppkg.NewClient(cfg.TrackingServiceURL, cfg.APIKey, 0),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("tracking-service"), logger.GetGlobalLogger()),
	}
}

func (c *trackingClient) LatestPosition(ctx context.Context, protocol string) (*models.PositionSample, models.Freshness, error) {
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Sample    *models.PositionSample `json:"sample"`
			Freshness models.Freshness       `json:"freshness"`
		} `json:"data"`
	}
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.client.Get(ctx, fmt.Sprintf("/internal/jobs/%s/position", protocol), &resp)
	})
	if errors.Is(err, httppkg.ErrNotFound) {
		return nil, models.FreshnessUnknown, nil
	}
	if err != nil {
		return nil, models.FreshnessUnknown, fmt.Errorf("failed to get latest position for %s: %w", protocol, err)
	}
	return resp.Data.Sample, resp.Data.Freshness, nil
}
