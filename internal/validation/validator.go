// Package validation scores free-text hypotheses against a run's interview
// responses.
package validation

import (
	"fmt"
	"log/slog"
	"strings"

	"startupsim/domain/core"
	"startupsim/domain/interview"
	"startupsim/domain/persona"
	"startupsim/domain/verdict"
)

// DefaultThreshold is the validation threshold used by full simulations
const DefaultThreshold = 0.6

// Corpus is the evidence a validator reads: the run's personas in generation
// order and the responses recorded per persona
type Corpus interface {
	Personas() []persona.CustomerPersona
	Responses() map[core.PersonaID][]interview.Response
}

// Validator aggregates sentiment-weighted evidence into a verdict
type Validator struct {
	corpus Corpus
	logger *slog.Logger
}

// NewValidator creates a validator over corpus
func NewValidator(corpus Corpus, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{
		corpus: corpus,
		logger: logger.With("component", "hypothesis_validator"),
	}
}

// Validate scores hypothesis against every relevant response. A response is
// relevant when one of its keywords occurs in the lower-cased hypothesis.
func (v *Validator) Validate(hypothesis string, threshold float64) verdict.HypothesisResult {
	text := strings.ToLower(hypothesis)
	personas := v.corpus.Personas()
	responses := v.corpus.Responses()

	var (
		supporting []string
		contrary   []string
		total      float64
		relevant   int
	)

	known := make(map[core.PersonaID]struct{}, len(personas))
	for _, p := range personas {
		known[p.ID] = struct{}{}
		for _, r := range responses[p.ID] {
			if !mentions(text, r.Keywords) {
				continue
			}
			relevant++

			switch r.Sentiment {
			case interview.Positive:
				supporting = append(supporting, evidence(p, r))
				total += r.Confidence
			case interview.Negative:
				contrary = append(contrary, evidence(p, r))
				total += 1 - r.Confidence
			case interview.Neutral:
				total += 0.5
			}
		}
	}

	for id := range responses {
		if _, ok := known[id]; !ok {
			v.logger.Debug("skipping responses for unknown persona", "persona_id", id.String())
		}
	}

	score := 0.5
	if relevant > 0 {
		score = total / float64(relevant)
	}
	status := verdict.Decide(score, threshold)

	return verdict.HypothesisResult{
		Hypothesis:         hypothesis,
		ValidationStatus:   status,
		ConfidenceScore:    score,
		SupportingEvidence: truncate(supporting, verdict.MaxEvidence),
		ContraryEvidence:   truncate(contrary, verdict.MaxEvidence),
		Recommendations:    recommendations(status),
		PivotSuggestions:   pivotSuggestions(status),
		RelevantResponses:  relevant,
	}
}

func mentions(hypothesis string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(hypothesis, kw) {
			return true
		}
	}
	return false
}

func evidence(p persona.CustomerPersona, r interview.Response) string {
	return fmt.Sprintf("%s (%s): %s", p.Name, p.Segment, r.Answer)
}

// truncate keeps the first n items and never returns nil
func truncate(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	if items == nil {
		return []string{}
	}
	return items
}
