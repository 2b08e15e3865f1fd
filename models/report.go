package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"startupsim/domain/core"
	"startupsim/domain/finance"
	"startupsim/domain/interview"
	"startupsim/domain/market"
	"startupsim/domain/persona"
	"startupsim/domain/verdict"
)

// BusinessModel is the caller's description of the venture under test
type BusinessModel struct {
	ValueProposition string           `json:"value_proposition,omitempty"`
	CustomerSegments []string         `json:"customer_segments,omitempty"`
	Hypotheses       []string         `json:"hypotheses"`
	MarketData       *market.Analysis `json:"market_data,omitempty"`
	Seed             int64            `json:"seed,omitempty"`
}

// Report is the merged output of one full simulation run
type Report struct {
	RunID               core.RunID                              `json:"run_id"`
	SimulationID        core.SimulationID                       `json:"simulation_id"`
	Timestamp           core.Timestamp                          `json:"timestamp"`
	Seed                int64                                   `json:"seed"`
	BusinessModel       BusinessModel                           `json:"business_model"`
	Personas            []persona.CustomerPersona               `json:"personas"`
	InterviewResults    map[core.PersonaID][]interview.Response `json:"interview_results"`
	ValidationResults   []verdict.HypothesisResult              `json:"validation_results"`
	FinancialProjection finance.Projection                      `json:"financial_projection"`
	MarketAnalysis      market.Analysis                         `json:"market_analysis"`
	Summary             Summary                                 `json:"summary"`
}

// Summary holds the headline numbers of a report
type Summary struct {
	TotalPersonas         int             `json:"total_personas"`
	TotalInterviews       int             `json:"total_interviews"`
	ValidatedHypotheses   int             `json:"validated_hypotheses"`
	InvalidatedHypotheses int             `json:"invalidated_hypotheses"`
	PartialHypotheses     int             `json:"partial_hypotheses"`
	BreakEvenMonth        *int            `json:"break_even_month"`
	ProjectedROI          float64         `json:"projected_roi"`
	PersonaProfile        *PersonaProfile `json:"persona_profile,omitempty"`
}

// PersonaProfile describes the shape of a generated population
type PersonaProfile struct {
	Age      DistributionSummary            `json:"age"`
	Traits   map[string]DistributionSummary `json:"traits"`
	Segments map[string]int                 `json:"segments"`
}

// DistributionSummary is a five-number summary plus mean and spread
type DistributionSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// ReportListItem is the row shape returned when listing stored reports
type ReportListItem struct {
	RunID                 core.RunID        `json:"run_id" db:"run_id"`
	SimulationID          core.SimulationID `json:"simulation_id" db:"simulation_id"`
	CreatedAt             core.Timestamp    `json:"created_at" db:"created_at"`
	TotalPersonas         int               `json:"total_personas" db:"total_personas"`
	ValidatedHypotheses   int               `json:"validated_hypotheses" db:"validated_hypotheses"`
	InvalidatedHypotheses int               `json:"invalidated_hypotheses" db:"invalidated_hypotheses"`
}

// ListItem projects the report onto its list row
func (r *Report) ListItem() ReportListItem {
	return ReportListItem{
		RunID:                 r.RunID,
		SimulationID:          r.SimulationID,
		CreatedAt:             r.Timestamp,
		TotalPersonas:         r.Summary.TotalPersonas,
		ValidatedHypotheses:   r.Summary.ValidatedHypotheses,
		InvalidatedHypotheses: r.Summary.InvalidatedHypotheses,
	}
}

// Value implements driver.Valuer so a report can be written to a JSONB column
func (r Report) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner for JSONB report columns
func (r *Report) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	case nil:
		return fmt.Errorf("cannot scan NULL into Report")
	default:
		return fmt.Errorf("cannot scan %T into Report", value)
	}
	return json.Unmarshal(bytes, r)
}
