package wakelock

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/services/reporter"
)

// systemdInhibit holds a sleep inhibitor for the lifetime of a tracking
// session by keeping a systemd-inhibit child process alive
type systemdInhibit struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewSystemdInhibit creates a wake lock backed by systemd-inhibit
func NewSystemdInhibit() reporter.WakeLock {
	return &systemdInhibit{}
}

func (w *systemdInhibit) Acquire() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cmd != nil {
		return nil
	}

	cmd := exec.Command("systemd-inhibit",
		"--what=sleep:idle",
		"--who=towtrack-reporter",
		"--why=active tracking session",
		"sleep", "infinity")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to acquire wake lock: %w", err)
	}

	w.cmd = cmd
	return nil
}

func (w *systemdInhibit) Release() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cmd == nil {
		return
	}

	if err := w.cmd.Process.Kill(); err != nil {
		logger.Warn("Failed to release wake lock", logger.Err(err))
	}
	_ = w.cmd.Wait()
	w.cmd = nil
}

// noop satisfies the wake lock capability on platforms without one
type noop struct{}

// NewNoop returns a wake lock that does nothing
func NewNoop() reporter.WakeLock {
	return noop{}
}

func (noop) Acquire() error { return nil }
func (noop) Release()       {}

// FromConfig picks the platform implementation
func FromConfig(enabled bool) reporter.WakeLock {
	if enabled {
		return NewSystemdInhibit()
	}
	return NewNoop()
}
