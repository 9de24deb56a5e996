package reporter

import (
	"context"
	"time"

	"github.com/fieldops/towtrack/internal/pkg/models"
)

// Fix is one reading from the device's location capability
type Fix struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
	Timestamp time.Time
}

// Sample converts the fix to a store sample
func (f Fix) Sample() models.PositionSample {
	return models.PositionSample{
		Latitude:  f.Latitude,
		Longitude: f.Longitude,
		Timestamp: f.Timestamp,
	}
}

// LocationSource is the device's location capability. Subscribe may fail
// with models.ErrPermissionDenied; callers degrade instead of aborting.
type LocationSource interface {
	// Subscribe starts the push feed. The channel closes on Unsubscribe
	// or when the source shuts down.
	Subscribe(ctx context.Context) (<-chan Fix, error)
	// Unsubscribe stops the push feed.
	Unsubscribe()
	// Probe takes a single-shot fix within the timeout.
	Probe(ctx context.Context, timeout time.Duration) (Fix, error)
	Close() error
}

// WakeLock keeps the device awake while a tracking session runs. Always
// optional: acquisition failures are logged, never fatal.
type WakeLock interface {
	Acquire() error
	Release()
}

// PhotoCamera captures a completion photo from the device
type PhotoCamera interface {
	Capture(ctx context.Context) (models.Photo, error)
}

// ReporterGW publishes position reports onto the shared bus
type ReporterGW interface {
	PublishPositionReport(ctx context.Context, report models.PositionReport) error
}

// JobsGW drives the provider-side lifecycle transitions on the jobs service
type JobsGW interface {
	AcceptJob(ctx context.Context, protocol string) error
	FinalizeJob(ctx context.Context, record models.CompletionRecord) error
}
