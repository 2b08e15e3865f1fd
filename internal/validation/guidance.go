package validation

import "startupsim/domain/verdict"

var (
	validatedRecommendations = []string{
		"Keep the current direction and turn it into a concrete execution plan",
		"Run a beta test with the early adopter group",
		"Align the marketing message with the validated value proposition",
	}
	invalidatedRecommendations = []string{
		"Revisit the pricing policy and consider a segmented pricing model",
		"Redefine the customer segments and adjust the target",
		"Clarify the value proposition and strengthen the points of differentiation",
	}
	partialRecommendations = []string{
		"Collect more data through additional customer interviews",
		"Split the hypothesis and validate the parts with A/B tests",
		"Run a pilot program to observe the real market response",
	}

	invalidatedPivots = []string{
		"Consider moving from B2C to B2B",
		"Move from a premium model to premium plus advertising",
		"Shift from a product-centric to a service-centric offering",
		"Expand from a single product into a platform",
	}
	partialPivots = []string{
		"Consider a niche strategy focused on a specific customer segment",
		"Split pricing into tiers",
		"Redefine the core features and drop the unnecessary ones",
		"Strengthen the value proposition through partnerships",
	}
)

// recommendations returns a fresh copy of the fixed block for status
func recommendations(status verdict.Status) []string {
	switch status {
	case verdict.StatusValidated:
		return append([]string(nil), validatedRecommendations...)
	case verdict.StatusInvalidated:
		return append([]string(nil), invalidatedRecommendations...)
	case verdict.StatusPartial:
		return append([]string(nil), partialRecommendations...)
	}
	return []string{}
}

// pivotSuggestions is empty for validated hypotheses
func pivotSuggestions(status verdict.Status) []string {
	switch status {
	case verdict.StatusInvalidated:
		return append([]string(nil), invalidatedPivots...)
	case verdict.StatusPartial:
		return append([]string(nil), partialPivots...)
	case verdict.StatusValidated:
		return []string{}
	}
	return []string{}
}
