package verdict

import (
	"encoding/json"
	"fmt"
)

// Status represents the validation status of a hypothesis
type Status int

const (
	StatusValidated Status = iota
	StatusInvalidated
	StatusPartial
)

func (s Status) String() string {
	switch s {
	case StatusValidated:
		return "validated"
	case StatusInvalidated:
		return "invalidated"
	case StatusPartial:
		return "partial"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	switch label {
	case "validated":
		*s = StatusValidated
	case "invalidated":
		*s = StatusInvalidated
	case "partial":
		*s = StatusPartial
	default:
		return fmt.Errorf("unknown validation status %q", label)
	}
	return nil
}

// Decide maps an aggregated confidence score onto a status. Scores above
// threshold validate, scores below 1-threshold invalidate, everything in
// between (inclusive) is partial.
func Decide(score, threshold float64) Status {
	switch {
	case score > threshold:
		return StatusValidated
	case score < 1-threshold:
		return StatusInvalidated
	default:
		return StatusPartial
	}
}

// MaxEvidence caps each evidence list on a result
const MaxEvidence = 5

// HypothesisResult is the judgment on one hypothesis
type HypothesisResult struct {
	Hypothesis         string   `json:"hypothesis"`
	ValidationStatus   Status   `json:"validation_status"`
	ConfidenceScore    float64  `json:"confidence_score"`
	SupportingEvidence []string `json:"supporting_evidence"`
	ContraryEvidence   []string `json:"contrary_evidence"`
	Recommendations    []string `json:"recommendations"`
	PivotSuggestions   []string `json:"pivot_suggestions"`
	RelevantResponses  int      `json:"relevant_responses"`
}
