package models

import (
	"time"
)

// JobStatus represents the lifecycle status of an assistance job
type JobStatus string

const (
	JobStatusWaiting   JobStatus = "WAITING"
	JobStatusOffered   JobStatus = "OFFERED"
	JobStatusTracking  JobStatus = "TRACKING"
	JobStatusCompleted JobStatus = "COMPLETED"
	JobStatusDeclined  JobStatus = "DECLINED"
	JobStatusArchived  JobStatus = "ARCHIVED"
)

// ProviderDenied is the sentinel provider ID recorded when a dispatcher
// denies a job that cannot be serviced, bypassing the normal accept path.
const ProviderDenied = "DENIED"

// IsTerminal reports whether no further transitions are allowed from the
// status, except for the explicit ARCHIVED -> WAITING reopen.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusDeclined
}

// IsActive reports whether the job belongs to the dispatcher's active set.
func (s JobStatus) IsActive() bool {
	return s == JobStatusWaiting || s == JobStatusOffered || s == JobStatusTracking
}

// Job represents one roadside assistance request, identified by a
// human-readable protocol number
type Job struct {
	Protocol      string     `json:"protocol" db:"protocol"`
	Status        JobStatus  `json:"status" db:"status"`
	ProviderID    *string    `json:"provider_id,omitempty" db:"provider_id"`
	ProviderName  string     `json:"provider_name,omitempty" db:"provider_name"`
	ProviderPhone string     `json:"provider_phone,omitempty" db:"provider_phone"`
	CustomerName  string     `json:"customer_name" db:"customer_name"`
	CustomerPhone string     `json:"customer_phone" db:"customer_phone"`
	Pickup        Coordinate `json:"pickup" db:"-"`
	Dropoff       *Coordinate `json:"dropoff,omitempty" db:"-"`
	PickupAddress string     `json:"pickup_address" db:"pickup_address"`
	City          string     `json:"city" db:"city"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	StartedAt     *time.Time `json:"started_at,omitempty" db:"started_at"`
	FinalizedAt   *time.Time `json:"finalized_at,omitempty" db:"finalized_at"`

	// Completion fields, written once by the finalizer
	PhotoURL     string  `json:"photo_url,omitempty" db:"photo_url"`
	FinalAddress string  `json:"final_address,omitempty" db:"final_address"`
	FinalLat     *float64 `json:"final_lat,omitempty" db:"final_lat"`
	FinalLng     *float64 `json:"final_lng,omitempty" db:"final_lng"`
}

// JobEvent is published on NATS when a job changes state. Delivery is
// best-effort: dispatcher views self-heal through their own poll loop.
type JobEvent struct {
	Protocol   string    `json:"protocol"`
	Status     JobStatus `json:"status"`
	ProviderID string    `json:"provider_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
