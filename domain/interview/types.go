package interview

import (
	"encoding/json"
	"fmt"
)

// Sentiment classifies a synthesized answer
type Sentiment int

const (
	Positive Sentiment = iota
	Neutral
	Negative
)

func (s Sentiment) String() string {
	switch s {
	case Positive:
		return "positive"
	case Neutral:
		return "neutral"
	case Negative:
		return "negative"
	}
	return fmt.Sprintf("Sentiment(%d)", int(s))
}

func (s Sentiment) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Sentiment) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	switch label {
	case "positive":
		*s = Positive
	case "neutral":
		*s = Neutral
	case "negative":
		*s = Negative
	default:
		return fmt.Errorf("unknown sentiment %q", label)
	}
	return nil
}

// Intent is the question category that selects a response handler
type Intent int

const (
	IntentPrice Intent = iota
	IntentFeature
	IntentCompetition
	IntentDiscovery
	IntentGeneral
)

func (i Intent) String() string {
	switch i {
	case IntentPrice:
		return "price"
	case IntentFeature:
		return "feature"
	case IntentCompetition:
		return "competition"
	case IntentDiscovery:
		return "discovery"
	case IntentGeneral:
		return "general"
	}
	return fmt.Sprintf("Intent(%d)", int(i))
}

// Response is one persona's answer to one interview question
type Response struct {
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Sentiment  Sentiment `json:"sentiment"`
	Confidence float64   `json:"confidence"`
	Keywords   []string  `json:"keywords"`
}
