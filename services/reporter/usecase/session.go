package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/reporter"
)

// DefaultFlushInterval is the fallback cadence for republishing the last
// known fix when the push feed goes quiet.
const DefaultFlushInterval = 5 * time.Second

// Session runs provider-side live tracking for one job. It accepts the job,
// holds a wake lock, and feeds position reports from two writers: the push
// feed from the location source and a flush ticker that republishes the last
// known coordinates. The ticker stamps each republish with the flush time,
// so the stream gains a sample every interval and the device reads as live
// even when the push feed stalls. The store's dedup only collapses exact
// push/flush races.
type Session struct {
	protocol   string
	providerID string
	source     reporter.LocationSource
	wakeLock   reporter.WakeLock
	jobsGW     reporter.JobsGW
	reporterGW reporter.ReporterGW
	interval   time.Duration

	// OnDegraded, when set, is invoked if the location feed is refused and
	// the session continues without live positions.
	OnDegraded func(error)

	mu      sync.Mutex
	lastFix *reporter.Fix
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewSession creates a tracking session for the given job protocol.
func NewSession(
	protocol string,
	providerID string,
	source reporter.LocationSource,
	wakeLock reporter.WakeLock,
	jobsGW reporter.JobsGW,
	reporterGW reporter.ReporterGW,
	interval time.Duration,
) *Session {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	return &Session{
		protocol:   protocol,
		providerID: providerID,
		source:     source,
		wakeLock:   wakeLock,
		jobsGW:     jobsGW,
		reporterGW: reporterGW,
		interval:   interval,
		done:       make(chan struct{}),
	}
}

// Start accepts the job and begins reporting. A refused location feed
// degrades the session instead of failing it; any other subscribe error or
// a rejected accept aborts with no writers running.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return models.ErrSessionActive
	}
	s.started = true
	s.mu.Unlock()

	if err := s.jobsGW.AcceptJob(ctx, s.protocol); err != nil {
		s.mu.Lock()
		s.started = false
		s.mu.Unlock()
		return err
	}

	if err := s.wakeLock.Acquire(); err != nil {
		logger.Warn("Failed to acquire wake lock",
			logger.String("protocol", s.protocol),
			logger.Err(err))
	}

	fixes, err := s.source.Subscribe(ctx)
	if err != nil {
		if !errors.Is(err, models.ErrPermissionDenied) {
			s.wakeLock.Release()
			s.mu.Lock()
			s.started = false
			s.mu.Unlock()
			return err
		}
		logger.Warn("Location feed refused, tracking degraded",
			logger.String("protocol", s.protocol),
			logger.Err(err))
		if s.OnDegraded != nil {
			s.OnDegraded(err)
		}
		fixes = nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	go s.run(runCtx, fixes)
	return nil
}

// run is the single writer loop. Receiving on a nil channel blocks forever,
// so a degraded session is driven by the ticker alone.
func (s *Session) run(ctx context.Context, fixes <-chan reporter.Fix) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case fix, ok := <-fixes:
			if !ok {
				fixes = nil
				continue
			}
			s.mu.Lock()
			s.lastFix = &fix
			s.mu.Unlock()
			s.publish(ctx, fix)
		case <-ticker.C:
			s.mu.Lock()
			last := s.lastFix
			s.mu.Unlock()
			if last != nil {
				flush := *last
				flush.Timestamp = time.Now()
				s.publish(ctx, flush)
			}
		}
	}
}

func (s *Session) publish(ctx context.Context, fix reporter.Fix) {
	report := models.PositionReport{
		Protocol:   s.protocol,
		ProviderID: s.providerID,
		Sample:     fix.Sample(),
		Accuracy:   fix.Accuracy,
	}
	if err := s.reporterGW.PublishPositionReport(ctx, report); err != nil {
		logger.Warn("Failed to publish position report",
			logger.String("protocol", s.protocol),
			logger.Err(err))
	}
}

// LastFix returns the most recent fix seen by the session, or nil.
func (s *Session) LastFix() *reporter.Fix {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastFix == nil {
		return nil
	}
	fix := *s.lastFix
	return &fix
}

// Stop halts both writers, detaches from the location feed and releases the
// wake lock. Safe to call once after a successful Start.
func (s *Session) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-s.done
	s.source.Unsubscribe()
	s.wakeLock.Release()
}
