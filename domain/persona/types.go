package persona

import (
	"encoding/json"
	"fmt"
	"math"

	"startupsim/domain/core"
)

// Segment is a customer's position on the adoption curve
type Segment int

const (
	Innovator Segment = iota
	EarlyAdopter
	EarlyMajority
	LateMajority
	Laggard
)

// Segments lists every segment in declaration order. Sampling walks this
// order when bucketing a draw.
var Segments = []Segment{Innovator, EarlyAdopter, EarlyMajority, LateMajority, Laggard}

// Share returns the population share of the segment (Rogers' adoption curve).
func (s Segment) Share() float64 {
	switch s {
	case Innovator:
		return 0.025
	case EarlyAdopter:
		return 0.135
	case EarlyMajority:
		return 0.34
	case LateMajority:
		return 0.34
	case Laggard:
		return 0.16
	}
	return 0
}

// String returns the human-readable segment label
func (s Segment) String() string {
	switch s {
	case Innovator:
		return "Innovator"
	case EarlyAdopter:
		return "Early Adopter"
	case EarlyMajority:
		return "Early Majority"
	case LateMajority:
		return "Late Majority"
	case Laggard:
		return "Laggard"
	}
	return fmt.Sprintf("Segment(%d)", int(s))
}

// Valid reports whether s is one of the declared segments
func (s Segment) Valid() bool {
	return s >= Innovator && s <= Laggard
}

func (s Segment) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal unknown segment %d", int(s))
	}
	return json.Marshal(s.String())
}

func (s *Segment) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	for _, seg := range Segments {
		if seg.String() == label {
			*s = seg
			return nil
		}
	}
	return fmt.Errorf("unknown segment %q", label)
}

// ValidateShares checks that the segment shares form a distribution
func ValidateShares() error {
	total := 0.0
	for _, seg := range Segments {
		total += seg.Share()
	}
	if math.Abs(total-1.0) > 1e-9 {
		return fmt.Errorf("segment shares sum to %.6f, want 1.0", total)
	}
	return nil
}

// Gender of a synthesized persona
type Gender int

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

func (g Gender) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

func (g *Gender) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	switch label {
	case "male":
		*g = Male
	case "female":
		*g = Female
	default:
		return fmt.Errorf("unknown gender %q", label)
	}
	return nil
}

// Trait bounds shared by every segment
const (
	MinTrait = 1
	MaxTrait = 10
	MinAge   = 20
	MaxAge   = 65
)

// Traits are the four psychographic scores of a persona, each in [1,10]
type Traits struct {
	TechSavviness    int `json:"tech_savviness"`
	PriceSensitivity int `json:"price_sensitivity"`
	BrandLoyalty     int `json:"brand_loyalty"`
	SocialInfluence  int `json:"social_influence"`
}

// CustomerPersona is a synthesized individual customer. It is created once
// per run and never mutated afterwards.
type CustomerPersona struct {
	ID          core.PersonaID `json:"id"`
	Name        string         `json:"name"`
	Age         int            `json:"age"`
	Gender      Gender         `json:"gender"`
	Occupation  string         `json:"occupation"`
	IncomeRange string         `json:"income_range"`
	Segment     Segment        `json:"segment"`
	PainPoints  []string       `json:"pain_points"`
	Needs       []string       `json:"needs"`
	Traits
}
