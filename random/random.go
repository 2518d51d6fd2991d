// Package random provides the randomness source abilities draw from.
//
// The core never seeds anything globally. Callers build a Source (usually
// with New) and hand it to the scorer, so a test can swap in a fixed one.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Source draws uniform values. Uint64n returns a value in [0, n) and may
// panic when n is 0. *rand.Rand from golang.org/x/exp/rand satisfies it.
type Source interface {
	Uint64n(n uint64) uint64
}

// New returns a PCG-backed source for seed. The same seed always yields the
// same sequence.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed returns a seed read from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Between returns a value in the inclusive range [lo, hi]. It panics if
// lo > hi or src is nil.
func Between(src Source, lo, hi uint64) uint64 {
	if src == nil {
		panic("random: nil source")
	}
	if lo > hi {
		panic(fmt.Sprintf("random: empty range [%d, %d]", lo, hi))
	}
	span := hi - lo + 1
	if span == 0 {
		// Full uint64 range; MaxUint64 itself is unreachable through Uint64n.
		return src.Uint64n(math.MaxUint64)
	}
	return lo + src.Uint64n(span)
}
