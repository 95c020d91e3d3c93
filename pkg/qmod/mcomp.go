package qmod

import "qmodgo/internal/bitmath"

// MCompDivisor holds the constants the multiply-and-compare family derives
// from a divisor. With multiplier = ceil(2^w / d), the product
// multiplier * (n - r) stays below Bound exactly when n % d == r, for every
// n <= MaxDividend and r < Value.
type MCompDivisor[U Uint] struct {
	Value       U
	Multiplier  U
	Bound       U
	MaxDividend U
}

// NewMCompDivisor derives the record for d. MaxDividend comes from the
// largest dividend for which multiplier*(d-1) fits without wraparound; it is
// 0 when no dividend is safely representable at this width. Panics when
// d == 0.
func NewMCompDivisor[U Uint](d U) MCompDivisor[U] {
	if d == 0 {
		panic("qmod: divisor must be positive")
	}
	if d == 1 {
		return MCompDivisor[U]{Value: 1, Multiplier: 0, Bound: 1, MaxDividend: bitmath.Max[U]()}
	}

	multiplier := bitmath.CeilSupDividedBy(d)
	extra := multiplier * d // multiplier*d - 2^w, by wraparound
	var bound, maxDividend U
	if extra < multiplier {
		bound = multiplier - extra
	}
	switch {
	case extra == 0:
		maxDividend = bitmath.Max[U]()
	case extra < multiplier:
		maxDividend = (bound-1)/extra*d + d - 1
	}
	return MCompDivisor[U]{Value: d, Multiplier: multiplier, Bound: bound, MaxDividend: maxDividend}
}

// mcompKernel evaluates the family's closed-form primitives. Answers are
// valid only for n <= MaxDividend and r < Value.
type mcompKernel[U Uint] struct {
	d MCompDivisor[U]
}

func (k mcompKernel[U]) HasRemainder(n, r U) bool {
	return k.d.Multiplier*(n-r) < k.d.Bound
}

func (k mcompKernel[U]) HasRemainderLess(n, r U) bool {
	return k.d.Multiplier*n < k.d.Multiplier*r
}

// MComp is the multiply-and-compare algorithm composed with relaxed
// remainders, the derived inequalities and equivalence.
type MComp[U Uint] struct {
	k mcompKernel[U]
}

// NewMComp builds the algorithm for divisor d. Panics when d == 0.
func NewMComp[U Uint](d U) MComp[U] {
	return MComp[U]{k: mcompKernel[U]{d: NewMCompDivisor(d)}}
}

func (a MComp[U]) Name() string { return "mcomp" }

// Divisor returns the precomputed record, for inspection.
func (a MComp[U]) Divisor() MCompDivisor[U] { return a.k.d }

func (a MComp[U]) DivisorValue() U { return a.k.d.Value }
func (a MComp[U]) MaxDividend() U  { return a.k.d.MaxDividend }
func (a MComp[U]) MaxRemainder() U { return a.k.d.MaxDividend }

func (a MComp[U]) HasRemainder(n, r U) bool {
	return relaxedEqual(a.k.d.Value, a.k, n, r)
}

func (a MComp[U]) HasRemainderLess(n, r U) bool {
	return relaxedLess(a.k.d.Value, a.k, n, r)
}

func (a MComp[U]) HasRemainderLessEqual(n, r U) bool    { return lessEqual[U](a.k.d.Value, a, n, r) }
func (a MComp[U]) HasRemainderGreater(n, r U) bool      { return greater[U](a, n, r) }
func (a MComp[U]) HasRemainderGreaterEqual(n, r U) bool { return greaterEqual[U](a, n, r) }
func (a MComp[U]) AreEquivalent(n, m U) bool            { return equivalent[U](a, n, m) }
