package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startupsim/domain/core"
	"startupsim/domain/interview"
	"startupsim/domain/persona"
	"startupsim/domain/verdict"
)

type fakeCorpus struct {
	personas  []persona.CustomerPersona
	responses map[core.PersonaID][]interview.Response
}

func (f *fakeCorpus) Personas() []persona.CustomerPersona { return f.personas }
func (f *fakeCorpus) Responses() map[core.PersonaID][]interview.Response { return f.responses }

func newCorpus() *fakeCorpus {
	return &fakeCorpus{responses: make(map[core.PersonaID][]interview.Response)}
}

func (f *fakeCorpus) add(name string, seg persona.Segment, rs ...interview.Response) {
	id := core.NewPersonaID(len(f.personas))
	f.personas = append(f.personas, persona.CustomerPersona{ID: id, Name: name, Segment: seg})
	f.responses[id] = rs
}

func priceAnswer(sentiment interview.Sentiment, confidence float64, answer string) interview.Response {
	return interview.Response{
		Question:   "Is the price right?",
		Answer:     answer,
		Sentiment:  sentiment,
		Confidence: confidence,
		Keywords:   []string{"price", "cost", "budget", "value"},
	}
}

func TestValidate_NoRelevantResponses(t *testing.T) {
	c := newCorpus()
	c.add("Kim Minjun", persona.Innovator, priceAnswer(interview.Positive, 0.8, "fine"))

	res := NewValidator(c, nil).Validate("Users love the onboarding flow", DefaultThreshold)

	assert.Equal(t, 0.5, res.ConfidenceScore)
	assert.Equal(t, verdict.StatusPartial, res.ValidationStatus)
	assert.Equal(t, 0, res.RelevantResponses)
	assert.Empty(t, res.SupportingEvidence)
	assert.Empty(t, res.ContraryEvidence)
	assert.NotNil(t, res.SupportingEvidence)
	assert.Equal(t, partialRecommendations, res.Recommendations)
	assert.Equal(t, partialPivots, res.PivotSuggestions)
}

func TestValidate_EmptyCorpus(t *testing.T) {
	res := NewValidator(newCorpus(), nil).Validate("The price is right", DefaultThreshold)
	assert.Equal(t, 0.5, res.ConfidenceScore)
	assert.Equal(t, verdict.StatusPartial, res.ValidationStatus)
}

func TestValidate_Scoring(t *testing.T) {
	tests := []struct {
		name       string
		responses  []interview.Response
		wantScore  float64
		wantStatus verdict.Status
	}{
		{
			name:       "all positive",
			responses:  []interview.Response{priceAnswer(interview.Positive, 0.8, "a"), priceAnswer(interview.Positive, 0.8, "b")},
			wantScore:  0.8,
			wantStatus: verdict.StatusValidated,
		},
		{
			name:       "all negative",
			responses:  []interview.Response{priceAnswer(interview.Negative, 0.3, "a")},
			wantScore:  0.7,
			wantStatus: verdict.StatusValidated,
		},
		{
			name:       "negative with high confidence",
			responses:  []interview.Response{priceAnswer(interview.Negative, 0.9, "a")},
			wantScore:  0.1,
			wantStatus: verdict.StatusInvalidated,
		},
		{
			name:       "neutral only",
			responses:  []interview.Response{priceAnswer(interview.Neutral, 0.6, "a")},
			wantScore:  0.5,
			wantStatus: verdict.StatusPartial,
		},
		{
			name: "mixed",
			responses: []interview.Response{
				priceAnswer(interview.Positive, 0.8, "a"),
				priceAnswer(interview.Neutral, 0.6, "b"),
				priceAnswer(interview.Negative, 0.9, "c"),
			},
			wantScore:  (0.8 + 0.5 + 0.1) / 3,
			wantStatus: verdict.StatusPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCorpus()
			c.add("Kim Minjun", persona.EarlyMajority, tt.responses...)

			res := NewValidator(c, nil).Validate("A monthly PRICE of 9,900 is acceptable", DefaultThreshold)

			assert.InDelta(t, tt.wantScore, res.ConfidenceScore, 1e-9)
			assert.Equal(t, tt.wantStatus, res.ValidationStatus)
			assert.Equal(t, len(tt.responses), res.RelevantResponses)
		})
	}
}

func TestValidate_EvidenceFormatAndOrder(t *testing.T) {
	c := newCorpus()
	c.add("Kim Minjun", persona.EarlyAdopter, priceAnswer(interview.Positive, 0.8, "Worth it."))
	c.add("Lee Jiwoo", persona.Laggard, priceAnswer(interview.Negative, 0.3, "Too expensive."))

	res := NewValidator(c, nil).Validate("the price is acceptable", DefaultThreshold)

	require.Len(t, res.SupportingEvidence, 1)
	require.Len(t, res.ContraryEvidence, 1)
	assert.Equal(t, "Kim Minjun (Early Adopter): Worth it.", res.SupportingEvidence[0])
	assert.Equal(t, "Lee Jiwoo (Laggard): Too expensive.", res.ContraryEvidence[0])
}

func TestValidate_EvidenceCapped(t *testing.T) {
	c := newCorpus()
	for i := 0; i < 8; i++ {
		c.add(fmt.Sprintf("Fan %d", i), persona.Innovator, priceAnswer(interview.Positive, 0.8, "yes"))
		c.add(fmt.Sprintf("Critic %d", i), persona.Laggard, priceAnswer(interview.Negative, 0.1, "no"))
	}

	res := NewValidator(c, nil).Validate("price", DefaultThreshold)

	assert.Equal(t, 16, res.RelevantResponses)
	assert.Len(t, res.SupportingEvidence, verdict.MaxEvidence)
	assert.Len(t, res.ContraryEvidence, verdict.MaxEvidence)
	assert.Equal(t, "Fan 0 (Innovator): yes", res.SupportingEvidence[0])
	assert.Equal(t, "Critic 4 (Laggard): no", res.ContraryEvidence[4])
}

func TestValidate_SkipsUnknownPersona(t *testing.T) {
	c := newCorpus()
	c.add("Kim Minjun", persona.Innovator, priceAnswer(interview.Positive, 0.8, "yes"))
	c.responses["persona_99"] = []interview.Response{priceAnswer(interview.Negative, 0.9, "ghost")}

	res := NewValidator(c, nil).Validate("price", DefaultThreshold)

	assert.Equal(t, 1, res.RelevantResponses)
	assert.Empty(t, res.ContraryEvidence)
	assert.InDelta(t, 0.8, res.ConfidenceScore, 1e-9)
}

func TestValidate_GuidanceByStatus(t *testing.T) {
	c := newCorpus()
	c.add("Kim Minjun", persona.Innovator, priceAnswer(interview.Positive, 0.8, "yes"))
	validated := NewValidator(c, nil).Validate("price", DefaultThreshold)
	assert.Equal(t, validatedRecommendations, validated.Recommendations)
	assert.Empty(t, validated.PivotSuggestions)

	c = newCorpus()
	c.add("Lee Jiwoo", persona.Laggard, priceAnswer(interview.Negative, 0.9, "no"))
	invalidated := NewValidator(c, nil).Validate("price", DefaultThreshold)
	assert.Equal(t, invalidatedRecommendations, invalidated.Recommendations)
	assert.Equal(t, invalidatedPivots, invalidated.PivotSuggestions)
}

func TestValidate_ThresholdBoundaries(t *testing.T) {
	assert.Equal(t, verdict.StatusPartial, verdict.Decide(0.6, 0.6))
	assert.Equal(t, verdict.StatusValidated, verdict.Decide(0.61, 0.6))
	assert.Equal(t, verdict.StatusInvalidated, verdict.Decide(0.39, 0.6))
}
