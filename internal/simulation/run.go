// Package simulation drives a full persona, interview, validation and
// projection pass over a business model.
package simulation

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"startupsim/domain/core"
	domaininterview "startupsim/domain/interview"
	domainpersona "startupsim/domain/persona"
	"startupsim/domain/verdict"
	"startupsim/internal/errors"
	"startupsim/internal/interview"
	"startupsim/internal/persona"
	"startupsim/internal/sampling"
	"startupsim/internal/validation"
)

// Run is the single-owner context of one simulation: its random source, the
// generated personas in order, and the responses recorded per persona.
// A Run is not safe for concurrent use; parallel work uses separate runs.
type Run struct {
	personas  []domainpersona.CustomerPersona
	responses map[core.PersonaID][]domaininterview.Response

	generator   *persona.Generator
	synthesizer *interview.Synthesizer
	validator   *validation.Validator
	logger      *slog.Logger
}

// NewRun creates an empty run drawing every random value from rng
func NewRun(rng *rand.Rand, logger *slog.Logger) *Run {
	if logger == nil {
		logger = slog.Default()
	}
	sampler := sampling.NewSampler(rng)
	r := &Run{
		responses:   make(map[core.PersonaID][]domaininterview.Response),
		generator:   persona.NewGenerator(sampler, logger),
		synthesizer: interview.NewSynthesizer(sampler),
		logger:      logger.With("component", "simulation_run"),
	}
	r.validator = validation.NewValidator(r, logger)
	return r
}

// GeneratePersonas replaces the run's persona list with count new personas
func (r *Run) GeneratePersonas(count int) ([]domainpersona.CustomerPersona, error) {
	personas, err := r.generator.Generate(count)
	if err != nil {
		return nil, err
	}
	r.personas = personas
	return personas, nil
}

// Interview asks p every question in order and records the answers under the
// persona's id, overwriting earlier answers for that persona
func (r *Run) Interview(ctx context.Context, p domainpersona.CustomerPersona, questions []string) ([]domaininterview.Response, error) {
	responses := make([]domaininterview.Response, 0, len(questions))
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "interview cancelled")
		}
		responses = append(responses, r.synthesizer.Respond(p, q))
	}
	r.responses[p.ID] = responses
	return responses, nil
}

// Validate scores hypothesis against every response recorded so far
func (r *Run) Validate(hypothesis string, threshold float64) verdict.HypothesisResult {
	return r.validator.Validate(hypothesis, threshold)
}

// Personas returns the run's personas in generation order
func (r *Run) Personas() []domainpersona.CustomerPersona {
	return r.personas
}

// Responses returns the recorded responses keyed by persona id
func (r *Run) Responses() map[core.PersonaID][]domaininterview.Response {
	return r.responses
}

// Persona looks up a persona of this run by id
func (r *Run) Persona(id core.PersonaID) (domainpersona.CustomerPersona, error) {
	for _, p := range r.personas {
		if p.ID == id {
			return p, nil
		}
	}
	return domainpersona.CustomerPersona{}, errors.UnknownPersona(id.String())
}
