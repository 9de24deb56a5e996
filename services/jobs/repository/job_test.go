package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/jobs"
	"github.com/fieldops/towtrack/services/jobs/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func jobColumns() []string {
	return []string{
		"protocol", "status", "provider_id", "provider_name", "provider_phone",
		"customer_name", "customer_phone",
		"pickup_lat", "pickup_lng", "pickup_address", "city",
		"dropoff_lat", "dropoff_lng",
		"created_at", "started_at", "finalized_at",
		"photo_url", "final_address", "final_lat", "final_lng",
	}
}

func TestGetByProtocol_Found(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(db)

	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(jobColumns()).AddRow(
		"T-0042", "TRACKING", "PRV-7", "Carlos Lima", "+5511988880000",
		"Ana Souza", "+5511977770000",
		-23.5505, -46.6333, "Av. Paulista, 1000", "Sao Paulo",
		nil, nil,
		created, created.Add(5*time.Minute), nil,
		nil, nil, nil, nil,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs")).
		WithArgs("T-0042").
		WillReturnRows(rows)

	job, err := repo.GetByProtocol(context.Background(), "T-0042")
	require.NoError(t, err)
	assert.Equal(t, "T-0042", job.Protocol)
	assert.Equal(t, models.JobStatusTracking, job.Status)
	require.NotNil(t, job.ProviderID)
	assert.Equal(t, "PRV-7", *job.ProviderID)
	assert.Nil(t, job.Dropoff)
	require.NotNil(t, job.StartedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByProtocol_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs")).
		WithArgs("T-9999").
		WillReturnRows(sqlmock.NewRows(jobColumns()))

	_, err := repo.GetByProtocol(context.Background(), "T-9999")
	assert.ErrorIs(t, err, models.ErrJobNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActive(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(db)

	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(jobColumns()).
		AddRow("T-0001", "WAITING", nil, nil, nil,
			"Ana Souza", "+5511977770000",
			-23.55, -46.63, "Av. Paulista, 1000", "Sao Paulo",
			nil, nil, created, nil, nil, nil, nil, nil, nil).
		AddRow("T-0002", "TRACKING", "PRV-7", "Carlos Lima", "+5511988880000",
			"Bruno Reis", "+5511966660000",
			-23.56, -46.64, "Rua Augusta, 500", "Sao Paulo",
			-23.60, -46.70, created, created.Add(time.Minute), nil, nil, nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status IN")).
		WithArgs("WAITING", "OFFERED", "TRACKING").
		WillReturnRows(rows)

	active, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "T-0001", active[0].Protocol)
	require.NotNil(t, active[1].Dropoff)
	assert.Equal(t, -23.60, active[1].Dropoff.Latitude)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignProvider_GuardedUpdate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE jobs")).
		WithArgs("OFFERED", "PRV-7", "Carlos Lima", "+5511988880000", "T-0001", "WAITING").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.AssignProvider(context.Background(), "T-0001", jobs.ProviderAssignment{
		ProviderID:    "PRV-7",
		ProviderName:  "Carlos Lima",
		ProviderPhone: "+5511988880000",
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignProvider_WrongStatusMatchesNothing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE jobs")).
		WithArgs("OFFERED", "PRV-7", "", "", "T-0001", "WAITING").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.AssignProvider(context.Background(), "T-0001", jobs.ProviderAssignment{ProviderID: "PRV-7"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeny_ClosesActiveJobWithSentinel(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(db)

	finalized := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE jobs")).
		WithArgs("COMPLETED", "DENIED", finalized, "T-0001", "WAITING", "OFFERED", "TRACKING").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Deny(context.Background(), "T-0001", finalized)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCompletion(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(db)

	finalized := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	record := models.CompletionRecord{
		Protocol:        "T-0042",
		PhotoURL:        "https://storage.local/completions/T-0042.jpg",
		FinalCoordinate: &models.Coordinate{Latitude: -23.56, Longitude: -46.64},
		FinalAddress:    "Rua Augusta, 500",
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE jobs")).
		WithArgs("COMPLETED", finalized, record.PhotoURL, record.FinalAddress,
			sqlmock.AnyArg(), sqlmock.AnyArg(), "T-0042", "TRACKING").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.SaveCompletion(context.Background(), record, finalized)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReopen(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE jobs")).
		WithArgs("WAITING", "T-0042", "ARCHIVED").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Reopen(context.Background(), "T-0042")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
