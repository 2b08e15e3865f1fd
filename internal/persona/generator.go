// Package persona synthesizes customer personas for a simulation run.
package persona

import (
	"fmt"
	"log/slog"

	"startupsim/domain/core"
	domain "startupsim/domain/persona"
	"startupsim/internal/errors"
	"startupsim/internal/sampling"
)

// Generator composes full persona records from sampled traits and the
// fixed vocabularies
type Generator struct {
	sampler *sampling.Sampler
	logger  *slog.Logger
}

// NewGenerator creates a persona generator drawing from sampler
func NewGenerator(sampler *sampling.Sampler, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		sampler: sampler,
		logger:  logger.With("component", "persona_generator"),
	}
}

// Generate creates count personas with sequential ids persona_1..persona_count
func (g *Generator) Generate(count int) ([]domain.CustomerPersona, error) {
	if count <= 0 {
		return nil, errors.InvalidInput(fmt.Sprintf("persona count must be positive, got %d", count))
	}

	personas := make([]domain.CustomerPersona, 0, count)
	for i := 0; i < count; i++ {
		p, err := g.generateOne(i)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to generate persona %d", i+1)
		}
		personas = append(personas, p)
	}

	g.logger.Debug("generated personas", "count", len(personas))
	return personas, nil
}

// generateOne builds the persona at index i. Draw order is fixed so a seed
// reproduces the same population.
func (g *Generator) generateOne(i int) (domain.CustomerPersona, error) {
	segment := g.sampler.SampleSegment()

	gender := domain.Male
	givenNames := maleGivenNames
	if !g.sampler.Bool() {
		gender = domain.Female
		givenNames = femaleGivenNames
	}
	given := g.sampler.Choice(givenNames)
	name := g.sampler.Choice(surnames) + " " + given

	age := g.sampler.SampleAge(segment)
	traits := g.sampler.SampleTraits(segment)
	occupation := g.sampler.Choice(occupations)
	income := g.sampler.Choice(incomeRanges)

	painPoints, err := g.sampler.SampleDistinct(painPointPool, g.sampler.IntRange(minPicks, maxPicks))
	if err != nil {
		return domain.CustomerPersona{}, errors.Wrap(err, "sampling pain points")
	}
	needs, err := g.sampler.SampleDistinct(needPool, g.sampler.IntRange(minPicks, maxPicks))
	if err != nil {
		return domain.CustomerPersona{}, errors.Wrap(err, "sampling needs")
	}

	return domain.CustomerPersona{
		ID:          core.NewPersonaID(i),
		Name:        name,
		Age:         age,
		Gender:      gender,
		Occupation:  occupation,
		IncomeRange: income,
		Segment:     segment,
		PainPoints:  painPoints,
		Needs:       needs,
		Traits:      traits,
	}, nil
}
