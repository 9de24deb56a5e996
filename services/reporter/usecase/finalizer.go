package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/internal/pkg/retry"
	"github.com/fieldops/towtrack/internal/pkg/storage"
	"github.com/fieldops/towtrack/services/reporter"
	"github.com/fieldops/towtrack/services/routing"
)

// Finalizer completes a job from the provider device. The photo is the one
// hard requirement; the final coordinate and reverse-geocoded address are
// best-effort enrichments that never block completion.
type Finalizer struct {
	source       reporter.LocationSource
	routes       routing.RouteClient
	storage      storage.ObjectStorage
	jobsGW       reporter.JobsGW
	retrier      *retry.Retrier
	probeTimeout time.Duration

	mu       sync.Mutex
	photo    *models.Photo
	photoURL string
}

// NewFinalizer creates a finalizer. The routes client may be nil when no
// geocoding backend is configured.
func NewFinalizer(
	source reporter.LocationSource,
	routes routing.RouteClient,
	objectStorage storage.ObjectStorage,
	jobsGW reporter.JobsGW,
	retrier *retry.Retrier,
	probeTimeout time.Duration,
) *Finalizer {
	if retrier == nil {
		retrier = retry.New(retry.Config{
			MaxRetries:    3,
			BaseDelay:     200 * time.Millisecond,
			MaxDelay:      5 * time.Second,
			Multiplier:    2.0,
			Jitter:        true,
			RetryableFunc: retry.NetworkRetryableFunc(),
		}, logger.GetGlobalLogger())
	}
	if probeTimeout <= 0 {
		probeTimeout = 5 * time.Second
	}
	return &Finalizer{
		source:       source,
		routes:       routes,
		storage:      objectStorage,
		jobsGW:       jobsGW,
		retrier:      retrier,
		probeTimeout: probeTimeout,
	}
}

// CapturePhoto takes the completion photo from the camera and stages it for
// upload, replacing any previously staged photo.
func (f *Finalizer) CapturePhoto(ctx context.Context, camera reporter.PhotoCamera) error {
	photo, err := camera.Capture(ctx)
	if err != nil {
		return err
	}
	f.AttachPhoto(photo)
	return nil
}

// AttachPhoto stages an already-processed photo for upload.
func (f *Finalizer) AttachPhoto(photo models.Photo) {
	f.mu.Lock()
	f.photo = &photo
	f.photoURL = ""
	f.mu.Unlock()
}

// Finalize uploads the staged photo and records the completion with the jobs
// service. Without a photo it rejects synchronously and performs no side
// effects. Upload failures are returned to the caller for another attempt;
// the staged photo is kept. A second call after a successful completion
// reuses the uploaded URL and surfaces the lifecycle rejection.
func (f *Finalizer) Finalize(ctx context.Context, protocol string) error {
	f.mu.Lock()
	photo := f.photo
	photoURL := f.photoURL
	f.mu.Unlock()

	if photo == nil {
		return models.ErrPhotoRequired
	}

	coord, address := f.locate(ctx)

	if photoURL == "" {
		objectName := fmt.Sprintf("completions/%s.jpg", protocol)
		err := f.retrier.Execute(ctx, func(ctx context.Context) error {
			url, uploadErr := f.storage.UploadPhoto(ctx, objectName, *photo)
			if uploadErr != nil {
				return uploadErr
			}
			photoURL = url
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to upload completion photo: %w", err)
		}
		f.mu.Lock()
		f.photoURL = photoURL
		f.mu.Unlock()
	}

	record := models.CompletionRecord{
		Protocol:        protocol,
		PhotoURL:        photoURL,
		FinalCoordinate: coord,
		FinalAddress:    address,
	}
	return f.jobsGW.FinalizeJob(ctx, record)
}

// locate takes a best-effort single-shot fix and reverse-geocodes it. Every
// failure here degrades to an empty result.
func (f *Finalizer) locate(ctx context.Context) (*models.Coordinate, string) {
	fix, err := f.source.Probe(ctx, f.probeTimeout)
	if err != nil {
		logger.Warn("Failed to probe final position", logger.Err(err))
		return nil, ""
	}

	coord := &models.Coordinate{Latitude: fix.Latitude, Longitude: fix.Longitude}
	if f.routes == nil {
		return coord, ""
	}

	address, err := f.routes.ReverseGeocode(ctx, *coord)
	if err != nil {
		logger.Warn("Failed to reverse-geocode final position", logger.Err(err))
		return coord, ""
	}
	return coord, address.Formatted
}
