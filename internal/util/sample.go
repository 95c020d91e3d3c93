package util

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// SampleSource yields a reproducible stream of pseudo-random values. The seed
// is derived by hashing a label together with the divisor under test, so
// distinct scenarios never share a stream while reruns always see the same
// one.
type SampleSource struct {
	state uint64
}

// NewSampleSource creates a source for the given scenario label and divisor.
func NewSampleSource(label string, divisor uint64) *SampleSource {
	var d [8]byte
	binary.LittleEndian.PutUint64(d[:], divisor)
	h := xxhash.New()
	_, _ = h.WriteString(label)
	_, _ = h.Write(d[:])
	seed := h.Sum64()
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return &SampleSource{state: seed}
}

// Next returns the next 64-bit sample (splitmix64 step).
func (s *SampleSource) Next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// NextMax returns a sample in [0, max], using the multiply-shift reduction so
// no modulo is involved.
func (s *SampleSource) NextMax(max uint64) uint64 {
	if max == ^uint64(0) {
		return s.Next()
	}
	hi, _ := bits.Mul64(s.Next(), max+1)
	return hi
}
