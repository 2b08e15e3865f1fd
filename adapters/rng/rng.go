package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"startupsim/domain/core"
	"startupsim/ports"
)

// Adapter implements ports.RNGPort on top of PCG streams
type Adapter struct{}

// NewAdapter creates an RNG adapter
func NewAdapter() ports.RNGPort {
	return &Adapter{}
}

// SeededStream creates a deterministic random number generator for a named operation.
// Two streams with the same name and seed produce identical sequences.
func (a *Adapter) SeededStream(name string, seed int64) *rand.Rand {
	hi := uint64(core.DeriveSeed(seed, name, "hi"))
	lo := uint64(core.DeriveSeed(seed, name, "lo"))
	return rand.New(rand.NewPCG(hi, lo))
}

// NewSeed generates a random seed using crypto/rand
func (a *Adapter) NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
