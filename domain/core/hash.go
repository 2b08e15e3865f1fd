package core

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"
)

// DeriveSeed mixes a base seed with labels into a new deterministic seed.
// The same inputs always give the same seed; different labels give
// unrelated streams.
func DeriveSeed(base int64, labels ...string) int64 {
	h := sha256.New()
	h.Write([]byte(strconv.FormatInt(base, 10)))
	for _, label := range labels {
		h.Write([]byte{0})
		h.Write([]byte(label))
	}
	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
