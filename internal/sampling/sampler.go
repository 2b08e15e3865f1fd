// Package sampling draws persona attributes from segment-conditioned
// distributions. Every draw consumes the run's random source and nothing else.
package sampling

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"startupsim/domain/persona"
	"startupsim/internal/errors"
)

// Sampler wraps a run's random source
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler over the given source
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// SampleSegment buckets a uniform draw over the cumulative segment shares.
// The first segment whose cumulative share exceeds the draw wins.
func (s *Sampler) SampleSegment() persona.Segment {
	draw := s.rng.Float64()
	cumulative := 0.0
	for _, seg := range persona.Segments {
		cumulative += seg.Share()
		if draw < cumulative {
			return seg
		}
	}
	// floating-point residue past the final bucket
	return persona.Segments[len(persona.Segments)-1]
}

// ageDistribution returns the Gaussian (mean, sd) for a segment
func ageDistribution(seg persona.Segment) (mean, sd float64) {
	switch seg {
	case persona.Innovator:
		return 28, 5
	case persona.EarlyAdopter:
		return 32, 6
	case persona.EarlyMajority, persona.LateMajority, persona.Laggard:
		return 38, 8
	}
	return 38, 8
}

// SampleAge draws from the segment's Gaussian, rounds, then clamps to
// [MinAge, MaxAge]. Clamping after the draw piles the tails onto the bounds.
func (s *Sampler) SampleAge(seg persona.Segment) int {
	mean, sd := ageDistribution(seg)
	dist := distuv.Normal{Mu: mean, Sigma: sd, Src: s.rng}
	age := int(math.Round(dist.Rand()))
	return clamp(age, persona.MinAge, persona.MaxAge)
}

// traitRange is an inclusive integer range
type traitRange struct {
	lo, hi int
}

// traitRanges returns the tech, price, brand and social ranges for a segment
func traitRanges(seg persona.Segment) (tech, price, brand, social traitRange) {
	switch seg {
	case persona.Innovator, persona.EarlyAdopter:
		return traitRange{7, 10}, traitRange{3, 7}, traitRange{2, 6}, traitRange{6, 10}
	case persona.EarlyMajority, persona.LateMajority:
		return traitRange{4, 7}, traitRange{5, 9}, traitRange{5, 8}, traitRange{4, 7}
	case persona.Laggard:
		return traitRange{1, 4}, traitRange{7, 10}, traitRange{6, 10}, traitRange{2, 5}
	}
	return traitRange{4, 7}, traitRange{5, 9}, traitRange{5, 8}, traitRange{4, 7}
}

// SampleTraits draws the four trait scores uniformly from the segment's ranges
func (s *Sampler) SampleTraits(seg persona.Segment) persona.Traits {
	tech, price, brand, social := traitRanges(seg)
	return persona.Traits{
		TechSavviness:    s.IntRange(tech.lo, tech.hi),
		PriceSensitivity: s.IntRange(price.lo, price.hi),
		BrandLoyalty:     s.IntRange(brand.lo, brand.hi),
		SocialInfluence:  s.IntRange(social.lo, social.hi),
	}
}

// SampleDistinct draws k distinct items from pool without replacement,
// using a partial Fisher-Yates pass over the pool's indices.
func (s *Sampler) SampleDistinct(pool []string, k int) ([]string, error) {
	if k < 0 || k > len(pool) {
		return nil, errors.InvalidSampleRequest(k, len(pool))
	}

	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}

	out := make([]string, 0, k)
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out = append(out, pool[idx[i]])
	}
	return out, nil
}

// IntRange draws a uniform integer in [lo, hi]
func (s *Sampler) IntRange(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

// Choice picks one item uniformly. pool must not be empty.
func (s *Sampler) Choice(pool []string) string {
	return pool[s.rng.IntN(len(pool))]
}

// Bool is a fair coin flip
func (s *Sampler) Bool() bool {
	return s.rng.IntN(2) == 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
