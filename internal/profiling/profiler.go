// Package profiling summarizes the trait and age distributions of a generated
// persona population.
package profiling

import (
	"startupsim/domain/persona"
	"startupsim/internal/errors"
	"startupsim/models"
)

// Trait column names used as keys in the profile
const (
	TraitTechSavviness    = "tech_savviness"
	TraitPriceSensitivity = "price_sensitivity"
	TraitBrandLoyalty     = "brand_loyalty"
	TraitSocialInfluence  = "social_influence"
)

// ProfilePersonas builds the population profile attached to report summaries
func ProfilePersonas(personas []persona.CustomerPersona) (*models.PersonaProfile, error) {
	if len(personas) == 0 {
		return nil, errors.InvalidInput("cannot profile an empty persona population")
	}

	columns := map[string][]float64{
		TraitTechSavviness:    make([]float64, 0, len(personas)),
		TraitPriceSensitivity: make([]float64, 0, len(personas)),
		TraitBrandLoyalty:     make([]float64, 0, len(personas)),
		TraitSocialInfluence:  make([]float64, 0, len(personas)),
	}
	ages := make([]float64, 0, len(personas))
	segments := make(map[string]int, len(persona.Segments))
	for _, seg := range persona.Segments {
		segments[seg.String()] = 0
	}

	for _, p := range personas {
		ages = append(ages, float64(p.Age))
		columns[TraitTechSavviness] = append(columns[TraitTechSavviness], float64(p.TechSavviness))
		columns[TraitPriceSensitivity] = append(columns[TraitPriceSensitivity], float64(p.PriceSensitivity))
		columns[TraitBrandLoyalty] = append(columns[TraitBrandLoyalty], float64(p.BrandLoyalty))
		columns[TraitSocialInfluence] = append(columns[TraitSocialInfluence], float64(p.SocialInfluence))
		segments[p.Segment.String()]++
	}

	age, err := Summarize(ages)
	if err != nil {
		return nil, errors.Wrap(err, "summarizing ages")
	}

	profile := &models.PersonaProfile{
		Age:      age,
		Traits:   make(map[string]models.DistributionSummary, len(columns)),
		Segments: segments,
	}
	for name, data := range columns {
		summary, err := Summarize(data)
		if err != nil {
			return nil, errors.Wrapf(err, "summarizing %s", name)
		}
		profile.Traits[name] = summary
	}

	return profile, nil
}
