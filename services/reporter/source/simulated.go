package source

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fieldops/towtrack/services/reporter"
)

// SimulatedSource replays scripted fixes, used in development and tests.
// Fixes pushed through Emit appear on the subscription channel; Probe
// returns the most recent one.
type SimulatedSource struct {
	mu       sync.Mutex
	feed     chan reporter.Fix
	last     *reporter.Fix
	subbed   bool
	SubErr   error // returned by Subscribe when set
	ProbeErr error // returned by Probe when set
}

// NewSimulatedSource creates an empty simulated source
func NewSimulatedSource() *SimulatedSource {
	return &SimulatedSource{
		feed: make(chan reporter.Fix, 16),
	}
}

func (s *SimulatedSource) Subscribe(ctx context.Context) (<-chan reporter.Fix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SubErr != nil {
		return nil, s.SubErr
	}
	s.subbed = true
	return s.feed, nil
}

func (s *SimulatedSource) Unsubscribe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subbed = false
}

func (s *SimulatedSource) Probe(ctx context.Context, timeout time.Duration) (reporter.Fix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ProbeErr != nil {
		return reporter.Fix{}, s.ProbeErr
	}
	if s.last == nil {
		return reporter.Fix{}, fmt.Errorf("no fix available")
	}
	return *s.last, nil
}

func (s *SimulatedSource) Close() error {
	return nil
}

// Emit pushes a fix into the feed
func (s *SimulatedSource) Emit(fix reporter.Fix) {
	s.mu.Lock()
	s.last = &fix
	s.mu.Unlock()
	s.feed <- fix
}

// Subscribed reports whether a subscription is active
func (s *SimulatedSource) Subscribed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subbed
}
