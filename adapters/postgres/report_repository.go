package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"

	"startupsim/domain/core"
	"startupsim/internal/errors"
	"startupsim/models"
	"startupsim/ports"
)

// ReportRepositoryImpl implements ReportRepository for PostgreSQL
type ReportRepositoryImpl struct {
	db *sqlx.DB
}

// NewReportRepository creates a new PostgreSQL report repository
func NewReportRepository(db *sqlx.DB) ports.ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

// Save inserts the report. Saving the same run twice replaces the body and
// every summary column derived from it.
func (r *ReportRepositoryImpl) Save(ctx context.Context, report *models.Report) error {
	// Report implements driver.Valuer, so it is written as JSONB directly
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO simulation_reports (run_id, simulation_id, seed, total_personas, validated_hypotheses, invalidated_hypotheses, report, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (run_id) DO UPDATE SET
			simulation_id = EXCLUDED.simulation_id,
			seed = EXCLUDED.seed,
			total_personas = EXCLUDED.total_personas,
			validated_hypotheses = EXCLUDED.validated_hypotheses,
			invalidated_hypotheses = EXCLUDED.invalidated_hypotheses,
			report = EXCLUDED.report
	`, report.RunID.String(), report.SimulationID.String(), report.Seed,
		report.Summary.TotalPersonas, report.Summary.ValidatedHypotheses, report.Summary.InvalidatedHypotheses,
		*report, report.Timestamp.Time())
	if err != nil {
		return errors.DatabaseError("failed to save simulation report", err)
	}
	return nil
}

// Get retrieves a stored report by run id
func (r *ReportRepositoryImpl) Get(ctx context.Context, id core.RunID) (*models.Report, error) {
	var report models.Report
	err := r.db.GetContext(ctx, &report, `
		SELECT report
		FROM simulation_reports
		WHERE run_id = $1
	`, id.String())

	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.WithCode(errors.CodeNotFound, core.NewRunNotFoundError(id))
	}
	if err != nil {
		return nil, errors.DatabaseError("failed to load simulation report", err)
	}

	return &report, nil
}

// List returns report rows newest first, optionally limited
func (r *ReportRepositoryImpl) List(ctx context.Context, limit int) ([]models.ReportListItem, error) {
	query := `
		SELECT run_id, simulation_id, created_at, total_personas, validated_hypotheses, invalidated_hypotheses
		FROM simulation_reports
		ORDER BY created_at DESC
	`

	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	items := []models.ReportListItem{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, errors.DatabaseError("failed to list simulation reports", err)
	}
	return items, nil
}
