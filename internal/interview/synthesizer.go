// Package interview synthesizes rule-based interview answers conditioned on
// persona traits.
package interview

import (
	"fmt"
	"slices"

	domain "startupsim/domain/interview"
	"startupsim/domain/persona"
	"startupsim/internal/sampling"
)

// Synthesizer answers questions on behalf of personas
type Synthesizer struct {
	sampler *sampling.Sampler
}

// NewSynthesizer creates a synthesizer drawing answer text from sampler
func NewSynthesizer(sampler *sampling.Sampler) *Synthesizer {
	return &Synthesizer{sampler: sampler}
}

// Respond classifies the question and lets the matching handler answer it
func (s *Synthesizer) Respond(p persona.CustomerPersona, question string) domain.Response {
	switch ClassifyIntent(question) {
	case domain.IntentPrice:
		return s.priceResponse(p, question)
	case domain.IntentFeature:
		return s.featureResponse(p, question)
	case domain.IntentCompetition:
		return s.competitionResponse(p, question)
	case domain.IntentDiscovery:
		return s.discoveryResponse(p, question)
	case domain.IntentGeneral:
		return s.generalResponse(question)
	}
	return s.generalResponse(question)
}

func (s *Synthesizer) priceResponse(p persona.CustomerPersona, question string) domain.Response {
	var (
		pool       []string
		sentiment  domain.Sentiment
		confidence float64
	)
	switch {
	case p.PriceSensitivity > 7:
		pool, sentiment, confidence = priceResistantAnswers, domain.Negative, 0.3
	case p.PriceSensitivity > 4:
		pool, sentiment, confidence = priceConsideringAnswers, domain.Neutral, 0.6
	default:
		pool, sentiment, confidence = priceAcceptingAnswers, domain.Positive, 0.8
	}
	return s.build(question, s.sampler.Choice(pool), sentiment, confidence, priceKeywords)
}

func (s *Synthesizer) featureResponse(p persona.CustomerPersona, question string) domain.Response {
	if p.TechSavviness > 7 {
		return s.build(question, s.sampler.Choice(advancedFeatureAnswers), domain.Positive, 0.7, featureKeywords)
	}
	return s.build(question, s.sampler.Choice(simplicityAnswers), domain.Neutral, 0.7, featureKeywords)
}

func (s *Synthesizer) competitionResponse(p persona.CustomerPersona, question string) domain.Response {
	if p.BrandLoyalty > 7 {
		return s.build(question, s.sampler.Choice(switchingCostAnswers), domain.Negative, 0.6, competitionKeywords)
	}
	return s.build(question, s.sampler.Choice(openToSwitchAnswers), domain.Positive, 0.6, competitionKeywords)
}

func (s *Synthesizer) discoveryResponse(p persona.CustomerPersona, question string) domain.Response {
	channels := seniorChannels
	switch {
	case p.Age < 30:
		channels = youngChannels
	case p.Age < 40:
		channels = middleChannels
	}
	answer := fmt.Sprintf("I found out about it through %s.", s.sampler.Choice(channels))
	return s.build(question, answer, domain.Neutral, 0.8, discoveryKeywords)
}

func (s *Synthesizer) generalResponse(question string) domain.Response {
	return s.build(question, s.sampler.Choice(generalAnswers), domain.Neutral, 0.5, generalKeywords)
}

func (s *Synthesizer) build(question, answer string, sentiment domain.Sentiment, confidence float64, keywords []string) domain.Response {
	return domain.Response{
		Question:   question,
		Answer:     answer,
		Sentiment:  sentiment,
		Confidence: confidence,
		Keywords:   slices.Clone(keywords),
	}
}
