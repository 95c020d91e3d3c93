package qmod

import "qmodgo/internal/bitmath"

// Promoted runs a family's entire composed stack at 64-bit precision and
// presents it at a narrower width U. It exists for divisors whose
// native-width MaxDividend is too restrictive: the 64-bit record is derived
// from the same divisor value, and both bounds are narrowed back to
// min(native maximum, 64-bit bound).
type Promoted[U Uint] struct {
	inner Algorithm[uint64]
	name  string
}

// Promote wraps a fully composed 64-bit algorithm for use at width U.
func Promote[U Uint](inner Algorithm[uint64]) Promoted[U] {
	return Promoted[U]{inner: inner, name: inner.Name() + "_promoted"}
}

// NewMCompPromoted builds the width-promoted multiply-and-compare algorithm
// for divisor d. Panics when d == 0.
func NewMCompPromoted[U Uint](d U) Promoted[U] {
	return Promote[U](NewMComp(uint64(d)))
}

// NewMShiftPromoted builds the width-promoted multiply-and-shift algorithm
// for divisor d. Panics when d == 0.
func NewMShiftPromoted[U Uint](d U) Promoted[U] {
	return Promote[U](NewMShift(uint64(d)))
}

func (p Promoted[U]) Name() string    { return p.name }
func (p Promoted[U]) DivisorValue() U { return U(p.inner.DivisorValue()) }

func (p Promoted[U]) MaxDividend() U {
	return U(min(p.inner.MaxDividend(), uint64(bitmath.Max[U]())))
}

func (p Promoted[U]) MaxRemainder() U {
	return U(min(p.inner.MaxRemainder(), uint64(bitmath.Max[U]())))
}

func (p Promoted[U]) HasRemainder(n, r U) bool {
	return p.inner.HasRemainder(uint64(n), uint64(r))
}

func (p Promoted[U]) HasRemainderLess(n, r U) bool {
	return p.inner.HasRemainderLess(uint64(n), uint64(r))
}

func (p Promoted[U]) HasRemainderLessEqual(n, r U) bool {
	return p.inner.HasRemainderLessEqual(uint64(n), uint64(r))
}

func (p Promoted[U]) HasRemainderGreater(n, r U) bool {
	return p.inner.HasRemainderGreater(uint64(n), uint64(r))
}

func (p Promoted[U]) HasRemainderGreaterEqual(n, r U) bool {
	return p.inner.HasRemainderGreaterEqual(uint64(n), uint64(r))
}

func (p Promoted[U]) AreEquivalent(n, m U) bool {
	return p.inner.AreEquivalent(uint64(n), uint64(m))
}
