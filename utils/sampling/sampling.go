// Package sampling implements a deterministic keyed source of pseudo-random
// draws, used to make randomized grid sweeps reproducible from a seed.
package sampling

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Source produces a deterministic stream of draws from a blake2b XOF keyed
// with a seed. Two Sources built from the same seed produce identical
// streams. A Source is not safe for concurrent use.
type Source struct {
	xof blake2b.XOF
}

// NewSource returns a Source seeded with the given key. A nil key yields the
// unkeyed stream.
func NewSource(seed []byte) (*Source, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, seed)
	if err != nil {
		return nil, err
	}
	return &Source{xof: xof}, nil
}

// Uint64 returns the next 8 bytes of the stream as a big-endian uint64.
func (s *Source) Uint64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := s.xof.Read(b); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(b)
}

// Float64 returns the next draw mapped uniformly into [min, max).
func (s *Source) Float64(min, max float64) float64 {
	f := float64(s.Uint64()) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// IntN returns the next draw reduced to [0, n).
func (s *Source) IntN(n int) int {
	return int(s.Uint64() % uint64(n))
}
