package profiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startupsim/domain/persona"
	"startupsim/internal/errors"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.Equal(t, 3.0, s.Mean)
	assert.Equal(t, 3.0, s.Median)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.InDelta(t, 1.4142, s.StdDev, 1e-4)
	assert.Equal(t, 2.0, s.Q25)
	assert.Equal(t, 4.0, s.Q75)
}

func TestSummarize_SmallSamples(t *testing.T) {
	s, err := Summarize([]float64{7})
	require.NoError(t, err)
	assert.Equal(t, 7.0, s.Q25)
	assert.Equal(t, 7.0, s.Q75)

	s, err = Summarize([]float64{30, 20})
	require.NoError(t, err)
	assert.Equal(t, 20.0, s.Q25)
	assert.Equal(t, 30.0, s.Q75)

	s, err = Summarize([]float64{45, 25, 35})
	require.NoError(t, err)
	assert.Equal(t, 25.0, s.Q25)
	assert.Equal(t, 45.0, s.Q75)
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(nil)
	assert.Error(t, err)
}

func TestProfilePersonas(t *testing.T) {
	personas := []persona.CustomerPersona{
		{ID: "persona_1", Age: 25, Segment: persona.Innovator, Traits: persona.Traits{TechSavviness: 9, PriceSensitivity: 4, BrandLoyalty: 3, SocialInfluence: 8}},
		{ID: "persona_2", Age: 35, Segment: persona.EarlyMajority, Traits: persona.Traits{TechSavviness: 5, PriceSensitivity: 6, BrandLoyalty: 6, SocialInfluence: 5}},
		{ID: "persona_3", Age: 45, Segment: persona.EarlyMajority, Traits: persona.Traits{TechSavviness: 4, PriceSensitivity: 8, BrandLoyalty: 7, SocialInfluence: 4}},
	}

	profile, err := ProfilePersonas(personas)
	require.NoError(t, err)

	assert.Equal(t, 35.0, profile.Age.Mean)
	assert.Equal(t, 25.0, profile.Age.Min)
	assert.Equal(t, 45.0, profile.Age.Max)

	require.Len(t, profile.Traits, 4)
	assert.Equal(t, 6.0, profile.Traits[TraitTechSavviness].Mean)
	assert.Equal(t, 6.0, profile.Traits[TraitPriceSensitivity].Median)

	assert.Equal(t, 1, profile.Segments["Innovator"])
	assert.Equal(t, 2, profile.Segments["Early Majority"])
	assert.Equal(t, 0, profile.Segments["Laggard"])
	assert.Len(t, profile.Segments, len(persona.Segments))
}

func TestProfilePersonas_Empty(t *testing.T) {
	_, err := ProfilePersonas(nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}
