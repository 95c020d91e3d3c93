package qmod

import "qmodgo/internal/bitmath"

// BuiltIn evaluates every operation with the native division operator. It is
// the reference the other families are verified against and carries no
// precomputed state beyond the divisor itself.
type BuiltIn[U Uint] struct {
	d U
}

// NewBuiltIn builds the reference algorithm for divisor d. Panics when d == 0.
func NewBuiltIn[U Uint](d U) BuiltIn[U] {
	if d == 0 {
		panic("qmod: divisor must be positive")
	}
	return BuiltIn[U]{d: d}
}

func (a BuiltIn[U]) Name() string    { return "built_in" }
func (a BuiltIn[U]) DivisorValue() U { return a.d }
func (a BuiltIn[U]) MaxDividend() U  { return bitmath.Max[U]() }
func (a BuiltIn[U]) MaxRemainder() U { return bitmath.Max[U]() }

func (a BuiltIn[U]) HasRemainder(n, r U) bool             { return n%a.d == r }
func (a BuiltIn[U]) HasRemainderLess(n, r U) bool         { return n%a.d < r }
func (a BuiltIn[U]) HasRemainderLessEqual(n, r U) bool    { return n%a.d <= r }
func (a BuiltIn[U]) HasRemainderGreater(n, r U) bool      { return n%a.d > r }
func (a BuiltIn[U]) HasRemainderGreaterEqual(n, r U) bool { return n%a.d >= r }
func (a BuiltIn[U]) AreEquivalent(n, m U) bool            { return n%a.d == m%a.d }

// BuiltInDistance is BuiltIn with equivalence routed through the abs-diff
// derivation instead of two native remainders. It exists to exercise that
// derivation over the oracle.
type BuiltInDistance[U Uint] struct {
	BuiltIn[U]
}

// NewBuiltInDistance builds the distance variant for divisor d.
func NewBuiltInDistance[U Uint](d U) BuiltInDistance[U] {
	return BuiltInDistance[U]{BuiltIn: NewBuiltIn(d)}
}

func (a BuiltInDistance[U]) Name() string { return "built_in_distance" }

func (a BuiltInDistance[U]) AreEquivalent(n, m U) bool { return equivalent[U](a, n, m) }
