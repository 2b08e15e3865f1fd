package migration

import (
	"context"

	"github.com/jmoiron/sqlx"

	"startupsim/internal/errors"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// Runner handles database schema migrations
type Runner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *Runner {
	return &Runner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *Runner) Version() string {
	return r.version
}

// Run executes all database migrations in order. Every step is idempotent.
func (r *Runner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createSimulationReportsTable(ctx, db); err != nil {
		return errors.DatabaseError("failed to create simulation_reports table", err)
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.DatabaseError("failed to create indexes", err)
	}

	return nil
}

func (r *Runner) createSimulationReportsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS simulation_reports (
			run_id UUID PRIMARY KEY,
			simulation_id VARCHAR(32) NOT NULL,
			seed BIGINT NOT NULL,
			total_personas INTEGER NOT NULL,
			validated_hypotheses INTEGER NOT NULL DEFAULT 0,
			invalidated_hypotheses INTEGER NOT NULL DEFAULT 0,
			report JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (r *Runner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_reports_created_at ON simulation_reports(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_reports_simulation_id ON simulation_reports(simulation_id)",
	}

	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
