package models

import "errors"

// Domain error taxonomy. Handlers map these to transport codes; callers
// branch on them with errors.Is.
var (
	// ErrJobNotFound means the protocol could not be resolved. Fatal for
	// the requesting view only.
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidTransition means the requested status change is not in the
	// lifecycle transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidReport means a position report failed validation and can
	// never be stored. Consumers drop it instead of redelivering.
	ErrInvalidReport = errors.New("invalid position report")

	// ErrPhotoRequired means finalize was attempted before a photo was
	// captured. Rejected synchronously with no side effects.
	ErrPhotoRequired = errors.New("completion photo required")

	// ErrPermissionDenied means a device capability (location, camera) was
	// refused. Non-fatal: tracking continues in degraded mode.
	ErrPermissionDenied = errors.New("device permission denied")

	// ErrSessionActive means a tracking session is already running for the
	// protocol on this device.
	ErrSessionActive = errors.New("tracking session already active")
)
