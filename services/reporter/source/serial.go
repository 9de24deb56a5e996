package source

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/adrianmo/go-nmea"
	"github.com/tarm/serial"

	"github.com/fieldops/towtrack/internal/pkg/logger"
	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/reporter"
)

// serialSource reads GGA sentences from a GPS receiver on a serial port
type serialSource struct {
	port     string
	baudRate int

	mu     sync.Mutex
	cancel context.CancelFunc
	closed bool
}

// NewSerialSource creates a location source for a serial NMEA GPS device
func NewSerialSource(cfg models.DeviceConfig) reporter.LocationSource {
	return &serialSource{
		port:     cfg.GPSPort,
		baudRate: cfg.GPSBaudRate,
	}
}

func (s *serialSource) Subscribe(ctx context.Context) (<-chan reporter.Fix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, fmt.Errorf("location source is closed")
	}
	if s.cancel != nil {
		return nil, models.ErrSessionActive
	}

	port, err := s.open()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	fixes := make(chan reporter.Fix)
	go func() {
		defer close(fixes)
		defer port.Close()

		scanner := bufio.NewScanner(port)
		for scanner.Scan() {
			if ctx.Err() != nil {
				return
			}
			fix, ok := parseGGA(scanner.Text())
			if !ok {
				continue
			}
			select {
			case fixes <- fix:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			logger.Warn("GPS feed read failed", logger.Err(err))
		}
	}()

	return fixes, nil
}

func (s *serialSource) Unsubscribe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Probe opens the port for a single-shot fix within the timeout
func (s *serialSource) Probe(ctx context.Context, timeout time.Duration) (reporter.Fix, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	port, err := s.open()
	if err != nil {
		return reporter.Fix{}, err
	}
	defer port.Close()

	result := make(chan reporter.Fix, 1)
	go func() {
		scanner := bufio.NewScanner(port)
		for scanner.Scan() {
			if fix, ok := parseGGA(scanner.Text()); ok {
				result <- fix
				return
			}
		}
	}()

	select {
	case fix := <-result:
		return fix, nil
	case <-ctx.Done():
		return reporter.Fix{}, fmt.Errorf("no GPS fix within %s: %w", timeout, ctx.Err())
	}
}

func (s *serialSource) Close() error {
	s.Unsubscribe()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *serialSource) open() (*serial.Port, error) {
	port, err := serial.OpenPort(&serial.Config{Name: s.port, Baud: s.baudRate})
	if err != nil {
		// Opening a device node without access rights is a permission
		// problem, not a transient failure
		if strings.Contains(err.Error(), "permission denied") {
			return nil, models.ErrPermissionDenied
		}
		return nil, fmt.Errorf("failed to open GPS port %s: %w", s.port, err)
	}
	return port, nil
}

// parseGGA extracts a fix from a GGA sentence; other sentence types are
// skipped
func parseGGA(line string) (reporter.Fix, bool) {
	if !strings.HasPrefix(line, "$GPGGA") && !strings.HasPrefix(line, "$GNGGA") {
		return reporter.Fix{}, false
	}

	sentence, err := nmea.Parse(line)
	if err != nil {
		return reporter.Fix{}, false
	}

	gga, ok := sentence.(nmea.GGA)
	if !ok || gga.FixQuality == nmea.Invalid {
		return reporter.Fix{}, false
	}

	return reporter.Fix{
		Latitude:  gga.Latitude,
		Longitude: gga.Longitude,
		Accuracy:  float64(gga.HDOP),
		Timestamp: time.Now(),
	}, true
}
