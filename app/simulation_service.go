package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"startupsim/adapters/api"
	"startupsim/domain/core"
	domainfinance "startupsim/domain/finance"
	"startupsim/domain/interview"
	"startupsim/domain/persona"
	"startupsim/internal/errors"
	"startupsim/internal/finance"
	"startupsim/internal/simulation"
	"startupsim/models"
	"startupsim/ports"
)

// MaxProjectionMonths bounds ad-hoc projections
const MaxProjectionMonths = 120

// SimulationSettings carry the configured knobs of every run
type SimulationSettings struct {
	PersonaCount     int
	ProjectionMonths int
	Threshold        float64
	Seed             int64 // 0 draws a fresh seed per request
	BatchConcurrency int
	MaxBatchRuns     int
}

// DefaultSimulationSettings mirror the configuration defaults
func DefaultSimulationSettings() SimulationSettings {
	return SimulationSettings{
		PersonaCount:     simulation.DefaultPersonaCount,
		ProjectionMonths: finance.DefaultMonths,
		Threshold:        0.6,
		BatchConcurrency: 4,
		MaxBatchRuns:     50,
	}
}

// SimulationService runs simulations and serves stored reports
type SimulationService struct {
	repo     ports.ReportRepository
	rngPort  ports.RNGPort
	exporter ports.ReportExporter
	renderer ports.SummaryRenderer
	settings SimulationSettings
	logger   *slog.Logger
	runLog   *slog.Logger
	now      func() time.Time
}

// NewSimulationService creates a simulation service
func NewSimulationService(repo ports.ReportRepository, rngPort ports.RNGPort, exporter ports.ReportExporter, renderer ports.SummaryRenderer, settings SimulationSettings, logger *slog.Logger) *SimulationService {
	if logger == nil {
		logger = slog.Default()
	}
	if settings.BatchConcurrency <= 0 {
		settings.BatchConcurrency = 1
	}
	return &SimulationService{
		repo:     repo,
		rngPort:  rngPort,
		exporter: exporter,
		renderer: renderer,
		settings: settings,
		logger:   logger.With("component", "simulation_service"),
		runLog:   logger,
		now:      time.Now,
	}
}

// Simulate parses a business model document, runs one full simulation and
// stores the report
func (s *SimulationService) Simulate(ctx context.Context, raw []byte) (*models.Report, error) {
	bm, err := api.ParseBusinessModel(raw)
	if err != nil {
		return nil, err
	}

	seed, err := s.baseSeed(bm)
	if err != nil {
		return nil, err
	}

	report, err := s.run(ctx, bm, seed)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to store report")
	}
	return report, nil
}

// RunBatch runs n independent simulations of the same business model
// concurrently. Run i draws from a seed derived from the base seed and i, so
// a batch with a fixed seed is reproducible. Reports come back in run order.
func (s *SimulationService) RunBatch(ctx context.Context, raw []byte, n int) ([]*models.Report, error) {
	if n <= 0 || n > s.settings.MaxBatchRuns {
		return nil, errors.InvalidInput(fmt.Sprintf("batch size must be between 1 and %d, got %d", s.settings.MaxBatchRuns, n))
	}

	bm, err := api.ParseBusinessModel(raw)
	if err != nil {
		return nil, err
	}

	base, err := s.baseSeed(bm)
	if err != nil {
		return nil, err
	}

	started := s.now()
	reports := make([]*models.Report, n)
	sem := semaphore.NewWeighted(int64(s.settings.BatchConcurrency))
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < n; i++ {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)

			seed := core.DeriveSeed(base, "batch", strconv.Itoa(i))
			report, err := s.run(gctx, bm, seed)
			if err != nil {
				return errors.Wrapf(err, "batch run %d failed", i)
			}
			if err := s.repo.Save(gctx, report); err != nil {
				return errors.Wrapf(err, "failed to store batch run %d", i)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "batch cancelled")
	}

	s.logger.Info("batch complete", "runs", n, "base_seed", base, "duration", s.now().Sub(started))
	return reports, nil
}

// Get loads a stored report
func (s *SimulationService) Get(ctx context.Context, id string) (*models.Report, error) {
	runID, err := core.ParseRunID(id)
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, err)
	}
	return s.repo.Get(ctx, runID)
}

// List returns stored report rows, newest first
func (s *SimulationService) List(ctx context.Context, limit int) ([]models.ReportListItem, error) {
	if limit < 0 {
		return nil, errors.InvalidInput("limit must not be negative")
	}
	return s.repo.List(ctx, limit)
}

// PersonaInterview returns one persona of a stored run with its answers
func (s *SimulationService) PersonaInterview(ctx context.Context, id, personaID string) (persona.CustomerPersona, []interview.Response, error) {
	report, err := s.Get(ctx, id)
	if err != nil {
		return persona.CustomerPersona{}, nil, err
	}
	pid, err := core.ParsePersonaID(personaID)
	if err != nil {
		return persona.CustomerPersona{}, nil, errors.WithCode(errors.CodeInvalidInput, err)
	}
	for _, p := range report.Personas {
		if p.ID == pid {
			return p, report.InterviewResults[pid], nil
		}
	}
	return persona.CustomerPersona{}, nil, errors.UnknownPersona(personaID)
}

// ExportExcel renders a stored report as an xlsx workbook
func (s *SimulationService) ExportExcel(ctx context.Context, id string) ([]byte, error) {
	report, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.exporter.Export(report)
}

// RenderSummaryHTML renders a stored report's summary as HTML
func (s *SimulationService) RenderSummaryHTML(ctx context.Context, id string) ([]byte, error) {
	report, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(report), nil
}

// Projection runs the financial projection with default assumptions
func (s *SimulationService) Projection(months int) (domainfinance.Projection, error) {
	if months <= 0 || months > MaxProjectionMonths {
		return domainfinance.Projection{}, errors.InvalidInput(fmt.Sprintf("months must be between 1 and %d, got %d", MaxProjectionMonths, months))
	}
	return finance.Project(domainfinance.DefaultAssumptions(), months), nil
}

// baseSeed picks the caller's seed, then the configured one, then a fresh one
func (s *SimulationService) baseSeed(bm models.BusinessModel) (int64, error) {
	if bm.Seed != 0 {
		return bm.Seed, nil
	}
	if s.settings.Seed != 0 {
		return s.settings.Seed, nil
	}
	seed, err := s.rngPort.NewSeed()
	if err != nil {
		return 0, errors.Wrap(err, "failed to draw a seed")
	}
	return seed, nil
}

func (s *SimulationService) run(ctx context.Context, bm models.BusinessModel, seed int64) (*models.Report, error) {
	return simulation.RunFullSimulation(ctx, bm, simulation.Options{
		PersonaCount: s.settings.PersonaCount,
		Months:       s.settings.ProjectionMonths,
		Threshold:    s.settings.Threshold,
		Seed:         seed,
		Source:       s.rngPort.SeededStream(simulation.StreamName, seed),
		Now:          s.now,
		Logger:       s.runLog,
	})
}
