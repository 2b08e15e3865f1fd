// Package memory provides process-local repositories used when no database is
// configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"startupsim/domain/core"
	"startupsim/internal/errors"
	"startupsim/models"
	"startupsim/ports"
)

// ReportRepository keeps reports in a map guarded by a mutex
type ReportRepository struct {
	mu      sync.RWMutex
	reports map[core.RunID]*models.Report
}

// NewReportRepository creates an empty in-memory report repository
func NewReportRepository() ports.ReportRepository {
	return &ReportRepository{reports: make(map[core.RunID]*models.Report)}
}

func (r *ReportRepository) Save(ctx context.Context, report *models.Report) error {
	if report == nil || report.RunID.IsEmpty() {
		return errors.InvalidInput("report must carry a run id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[report.RunID] = report
	return nil
}

func (r *ReportRepository) Get(ctx context.Context, id core.RunID) (*models.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, errors.WithCode(errors.CodeNotFound, core.NewRunNotFoundError(id))
	}
	return report, nil
}

func (r *ReportRepository) List(ctx context.Context, limit int) ([]models.ReportListItem, error) {
	r.mu.RLock()
	items := make([]models.ReportListItem, 0, len(r.reports))
	for _, report := range r.reports {
		items = append(items, report.ListItem())
	}
	r.mu.RUnlock()

	// newest first; run ids are time-ordered v7 uuids and break timestamp ties
	sort.Slice(items, func(i, j int) bool {
		ti, tj := items[i].CreatedAt.Time(), items[j].CreatedAt.Time()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return items[i].RunID > items[j].RunID
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
