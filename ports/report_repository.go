package ports

import (
	"context"

	"startupsim/domain/core"
	"startupsim/models"
)

// ReportRepository stores finished simulation reports
type ReportRepository interface {
	// Save stores a report under its run id
	Save(ctx context.Context, report *models.Report) error

	// Get retrieves a report by run id. Missing runs return a NOT_FOUND error.
	Get(ctx context.Context, id core.RunID) (*models.Report, error)

	// List returns the newest reports first, optionally limited
	List(ctx context.Context, limit int) ([]models.ReportListItem, error)
}
