package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/jobs"
)

type jobRepo struct {
	db *sqlx.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *sqlx.DB) jobs.JobRepo {
	return &jobRepo{db: db}
}

// Create inserts a new job in WAITING status
func (r *jobRepo) Create(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (
			protocol, status, customer_name, customer_phone,
			pickup_lat, pickup_lng, pickup_address, city,
			dropoff_lat, dropoff_lng, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	var dropoffLat, dropoffLng *float64
	if job.Dropoff != nil {
		dropoffLat = &job.Dropoff.Latitude
		dropoffLng = &job.Dropoff.Longitude
	}

	_, err := r.db.ExecContext(ctx, query,
		job.Protocol,
		job.Status,
		job.CustomerName,
		job.CustomerPhone,
		job.Pickup.Latitude,
		job.Pickup.Longitude,
		job.PickupAddress,
		job.City,
		dropoffLat,
		dropoffLng,
		job.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetByProtocol retrieves a job by its protocol number
func (r *jobRepo) GetByProtocol(ctx context.Context, protocol string) (*models.Job, error) {
	query := `
		SELECT
			protocol, status, provider_id, provider_name, provider_phone,
			customer_name, customer_phone,
			pickup_lat, pickup_lng, pickup_address, city,
			dropoff_lat, dropoff_lng,
			created_at, started_at, finalized_at,
			photo_url, final_address, final_lat, final_lng
		FROM jobs
		WHERE protocol = $1
	`

	row := r.db.QueryRowContext(ctx, query, protocol)
	job, err := scanJob(row)
	if err == sql.ErrNoRows {
		return nil, models.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListActive retrieves every job in WAITING, OFFERED or TRACKING status
func (r *jobRepo) ListActive(ctx context.Context) ([]*models.Job, error) {
	query := `
		SELECT
			protocol, status, provider_id, provider_name, provider_phone,
			customer_name, customer_phone,
			pickup_lat, pickup_lng, pickup_address, city,
			dropoff_lat, dropoff_lng,
			created_at, started_at, finalized_at,
			photo_url, final_address, final_lat, final_lng
		FROM jobs
		WHERE status IN ($1, $2, $3)
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query,
		models.JobStatusWaiting, models.JobStatusOffered, models.JobStatusTracking)
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	defer rows.Close()

	var result []*models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		result = append(result, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}
	return result, nil
}

// AssignProvider moves a WAITING job to OFFERED with provider details
func (r *jobRepo) AssignProvider(ctx context.Context, protocol string, assignment jobs.ProviderAssignment) (bool, error) {
	query := `
		UPDATE jobs
		SET status = $1, provider_id = $2, provider_name = $3, provider_phone = $4
		WHERE protocol = $5 AND status = $6
	`
	res, err := r.db.ExecContext(ctx, query,
		models.JobStatusOffered,
		assignment.ProviderID,
		assignment.ProviderName,
		assignment.ProviderPhone,
		protocol,
		models.JobStatusWaiting,
	)
	if err != nil {
		return false, fmt.Errorf("failed to assign provider: %w", err)
	}
	return matched(res)
}

// StartTracking moves an OFFERED job to TRACKING and stamps the start time
func (r *jobRepo) StartTracking(ctx context.Context, protocol string, startedAt time.Time) (bool, error) {
	query := `
		UPDATE jobs
		SET status = $1, started_at = $2
		WHERE protocol = $3 AND status = $4
	`
	res, err := r.db.ExecContext(ctx, query,
		models.JobStatusTracking, startedAt, protocol, models.JobStatusOffered)
	if err != nil {
		return false, fmt.Errorf("failed to start tracking: %w", err)
	}
	return matched(res)
}

// Decline moves an OFFERED job to DECLINED
func (r *jobRepo) Decline(ctx context.Context, protocol string) (bool, error) {
	query := `
		UPDATE jobs
		SET status = $1
		WHERE protocol = $2 AND status = $3
	`
	res, err := r.db.ExecContext(ctx, query,
		models.JobStatusDeclined, protocol, models.JobStatusOffered)
	if err != nil {
		return false, fmt.Errorf("failed to decline job: %w", err)
	}
	return matched(res)
}

// Deny closes an active job with the sentinel provider id
func (r *jobRepo) Deny(ctx context.Context, protocol string, finalizedAt time.Time) (bool, error) {
	query := `
		UPDATE jobs
		SET status = $1, provider_id = $2, finalized_at = $3
		WHERE protocol = $4 AND status IN ($5, $6, $7)
	`
	res, err := r.db.ExecContext(ctx, query,
		models.JobStatusCompleted,
		models.ProviderDenied,
		finalizedAt,
		protocol,
		models.JobStatusWaiting,
		models.JobStatusOffered,
		models.JobStatusTracking,
	)
	if err != nil {
		return false, fmt.Errorf("failed to deny job: %w", err)
	}
	return matched(res)
}

// SaveCompletion moves a TRACKING job to COMPLETED with its completion
// record fields
func (r *jobRepo) SaveCompletion(ctx context.Context, record models.CompletionRecord, finalizedAt time.Time) (bool, error) {
	query := `
		UPDATE jobs
		SET status = $1, finalized_at = $2, photo_url = $3,
		    final_address = $4, final_lat = $5, final_lng = $6
		WHERE protocol = $7 AND status = $8
	`

	var finalLat, finalLng *float64
	if record.FinalCoordinate != nil {
		finalLat = &record.FinalCoordinate.Latitude
		finalLng = &record.FinalCoordinate.Longitude
	}

	res, err := r.db.ExecContext(ctx, query,
		models.JobStatusCompleted,
		finalizedAt,
		record.PhotoURL,
		record.FinalAddress,
		finalLat,
		finalLng,
		record.Protocol,
		models.JobStatusTracking,
	)
	if err != nil {
		return false, fmt.Errorf("failed to save completion: %w", err)
	}
	return matched(res)
}

// Reopen moves an ARCHIVED job back to WAITING, clearing provider fields
func (r *jobRepo) Reopen(ctx context.Context, protocol string) (bool, error) {
	query := `
		UPDATE jobs
		SET status = $1, provider_id = NULL, provider_name = '', provider_phone = '',
		    started_at = NULL, finalized_at = NULL
		WHERE protocol = $2 AND status = $3
	`
	res, err := r.db.ExecContext(ctx, query,
		models.JobStatusWaiting, protocol, models.JobStatusArchived)
	if err != nil {
		return false, fmt.Errorf("failed to reopen job: %w", err)
	}
	return matched(res)
}

func matched(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner) (*models.Job, error) {
	job := &models.Job{}
	var providerID, providerName, providerPhone sql.NullString
	var dropoffLat, dropoffLng sql.NullFloat64
	var startedAt, finalizedAt sql.NullTime
	var photoURL, finalAddress sql.NullString
	var finalLat, finalLng sql.NullFloat64

	err := row.Scan(
		&job.Protocol,
		&job.Status,
		&providerID,
		&providerName,
		&providerPhone,
		&job.CustomerName,
		&job.CustomerPhone,
		&job.Pickup.Latitude,
		&job.Pickup.Longitude,
		&job.PickupAddress,
		&job.City,
		&dropoffLat,
		&dropoffLng,
		&job.CreatedAt,
		&startedAt,
		&finalizedAt,
		&photoURL,
		&finalAddress,
		&finalLat,
		&finalLng,
	)
	if err != nil {
		return nil, err
	}

	if providerID.Valid {
		job.ProviderID = &providerID.String
	}
	job.ProviderName = providerName.String
	job.ProviderPhone = providerPhone.String
	if dropoffLat.Valid && dropoffLng.Valid {
		job.Dropoff = &models.Coordinate{Latitude: dropoffLat.Float64, Longitude: dropoffLng.Float64}
	}
	if startedAt.Valid {
		t := startedAt.Time
		job.StartedAt = &t
	}
	if finalizedAt.Valid {
		t := finalizedAt.Time
		job.FinalizedAt = &t
	}
	job.PhotoURL = photoURL.String
	job.FinalAddress = finalAddress.String
	if finalLat.Valid {
		job.FinalLat = &finalLat.Float64
	}
	if finalLng.Valid {
		job.FinalLng = &finalLng.Float64
	}

	return job, nil
}
