package interview

import (
	"strings"
	"unicode"

	domain "startupsim/domain/interview"
)

// Intent keyword sets. Matching is substring containment on the lower-cased
// question, except discoveryHow which must appear as a whole word so "show"
// and "however" do not count.
var (
	priceTerms       = []string{"price", "cost", "subscription"}
	featureTerms     = []string{"feature", "characteristic"}
	competitionTerms = []string{"competit", "compar"}
	discoveryHow     = []string{"how"}
	discoveryKnow    = []string{
		"hear about", "heard about",
		"find out", "found out",
		"come to know", "came to know",
		"learn about", "learned about",
	}
)

// ClassifyIntent routes a question to a handler. Checks run in precedence
// order and the first match wins; discovery needs both a "how" term and a
// "came to know" term.
func ClassifyIntent(question string) domain.Intent {
	q := strings.ToLower(question)
	switch {
	case containsAny(q, priceTerms):
		return domain.IntentPrice
	case containsAny(q, featureTerms):
		return domain.IntentFeature
	case containsAny(q, competitionTerms):
		return domain.IntentCompetition
	case containsWord(q, discoveryHow) && containsAny(q, discoveryKnow):
		return domain.IntentDiscovery
	default:
		return domain.IntentGeneral
	}
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func containsWord(s string, words []string) bool {
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		for _, w := range words {
			if field == w {
				return true
			}
		}
	}
	return false
}
