package simulation

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"startupsim/domain/core"
	domainfinance "startupsim/domain/finance"
	"startupsim/domain/market"
	domainpersona "startupsim/domain/persona"
	"startupsim/domain/verdict"
	"startupsim/internal/errors"
	"startupsim/internal/finance"
	"startupsim/internal/profiling"
	"startupsim/internal/validation"
	"startupsim/models"
)

// StreamName labels the random stream a simulation draws from
const StreamName = "simulation"

// DefaultPersonaCount is the population size of a full simulation
const DefaultPersonaCount = 20

// DefaultQuestions returns the fixed interview script
func DefaultQuestions() []string {
	return []string{
		"What problems are you currently facing?",
		"What do you think about our product's value proposition?",
		"Would you be willing to pay a monthly subscription of 9,900?",
		"Which features do you consider most important?",
		"Through which channels would you like to learn about the product?",
	}
}

// Options tune a full simulation. Zero values fall back to the defaults.
type Options struct {
	PersonaCount int
	Months       int
	Threshold    float64
	Questions    []string

	// Seed is recorded on the report. When Source is nil the run's source is
	// derived from it.
	Seed   int64
	Source *rand.Rand

	Now    func() time.Time
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.PersonaCount <= 0 {
		o.PersonaCount = DefaultPersonaCount
	}
	if o.Months <= 0 {
		o.Months = finance.DefaultMonths
	}
	if o.Threshold <= 0 {
		o.Threshold = validation.DefaultThreshold
	}
	if len(o.Questions) == 0 {
		o.Questions = DefaultQuestions()
	}
	if o.Source == nil {
		o.Source = NewSource(o.Seed)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// NewSource builds the deterministic source for seed
func NewSource(seed int64) *rand.Rand {
	hi := uint64(core.DeriveSeed(seed, StreamName, "hi"))
	lo := uint64(core.DeriveSeed(seed, StreamName, "lo"))
	return rand.New(rand.NewPCG(hi, lo))
}

// RunFullSimulation generates personas, interviews each one with the script,
// validates every hypothesis of the business model and projects finances
func RunFullSimulation(ctx context.Context, bm models.BusinessModel, opts Options) (*models.Report, error) {
	opts = opts.withDefaults()
	logger := opts.Logger.With("component", "simulation")
	started := opts.Now()

	run := NewRun(opts.Source, opts.Logger)

	personas, err := run.GeneratePersonas(opts.PersonaCount)
	if err != nil {
		return nil, errors.Wrap(err, "generating personas")
	}

	for _, p := range personas {
		if _, err := run.Interview(ctx, p, opts.Questions); err != nil {
			return nil, errors.Wrapf(err, "interviewing %s", p.ID)
		}
	}

	results := make([]verdict.HypothesisResult, 0, len(bm.Hypotheses))
	for _, h := range bm.Hypotheses {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "validation cancelled")
		}
		results = append(results, run.Validate(h, opts.Threshold))
	}

	projection := finance.Project(domainfinance.DefaultAssumptions(), opts.Months)

	// the profile is a report extra; a failure leaves it out of the summary
	profile, err := profiling.ProfilePersonas(personas)
	if err != nil {
		logger.Warn("persona profile unavailable", "error", err)
		profile = nil
	}

	analysis := market.DefaultAnalysis()
	if bm.MarketData != nil {
		analysis = *bm.MarketData
	}

	ts := core.NewTimestamp(started)
	report := &models.Report{
		RunID:               core.NewRunID(),
		SimulationID:        core.NewSimulationID(ts),
		Timestamp:           ts,
		Seed:                opts.Seed,
		BusinessModel:       bm,
		Personas:            personas,
		InterviewResults:    run.Responses(),
		ValidationResults:   results,
		FinancialProjection: projection,
		MarketAnalysis:      analysis,
		Summary:             summarize(personas, opts.Questions, results, projection),
	}
	report.Summary.PersonaProfile = profile

	logger.Info("simulation complete",
		"simulation_id", report.SimulationID.String(),
		"personas", report.Summary.TotalPersonas,
		"hypotheses", len(results),
		"validated", report.Summary.ValidatedHypotheses,
		"duration", opts.Now().Sub(started),
	)
	return report, nil
}

func summarize(personas []domainpersona.CustomerPersona, questions []string, results []verdict.HypothesisResult, projection domainfinance.Projection) models.Summary {
	summary := models.Summary{
		TotalPersonas:   len(personas),
		TotalInterviews: len(personas) * len(questions),
		BreakEvenMonth:  projection.Metrics.BreakEvenMonth,
		ProjectedROI:    projection.Metrics.ROI,
	}
	for _, r := range results {
		switch r.ValidationStatus {
		case verdict.StatusValidated:
			summary.ValidatedHypotheses++
		case verdict.StatusInvalidated:
			summary.InvalidatedHypotheses++
		case verdict.StatusPartial:
			summary.PartialHypotheses++
		}
	}
	return summary
}
