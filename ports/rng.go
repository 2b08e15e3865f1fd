package ports

import (
	"math/rand/v2"
)

// RNGPort provides seeded random number generation for deterministic runs
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named operation
	SeededStream(name string, seed int64) *rand.Rand

	// NewSeed draws a fresh high-entropy seed for runs that were not given one
	NewSeed() (int64, error)
}
