package database

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib" // pgx database/sql driver
	"github.com/jmoiron/sqlx"

	"github.com/fieldops/towtrack/internal/pkg/models"
)

// NewPostgresDB opens a sqlx connection pool over the pgx stdlib driver
func NewPostgresDB(config models.DatabaseConfig) (*sqlx.DB, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		config.SSLMode,
	)

	db, err := sqlx.Connect("pgx", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	return db, nil
}
