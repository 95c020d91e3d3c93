package qmod

import "qmodgo/internal/bitmath"

// MShiftDivisor holds the constants the multiply-and-shift family derives
// from a divisor: multiplier = ceil(2^w / d) and the shift aligning the
// product so that the shifted value is a strictly increasing function of
// n % d for every n <= MaxDividend.
type MShiftDivisor[U Uint] struct {
	Value       U
	Multiplier  U
	Shift       uint
	MaxDividend U
}

// NewMShiftDivisor derives the record for d. MaxDividend is found by testing
// where a near-maximal dividend's multiplied-and-shifted value stays below
// the type maximum; it is 0 when no dividend is safely representable at this
// width. Panics when d == 0.
func NewMShiftDivisor[U Uint](d U) MShiftDivisor[U] {
	if d == 0 {
		panic("qmod: divisor must be positive")
	}
	w := bitmath.NBits[U]()
	multiplier := bitmath.CeilSupDividedBy(d)
	p := bitmath.CeilLog2(d)

	var maxDividend U
	if p != w {
		a := bitmath.Max[U]() / (d - bitmath.RemainderSupDividedBy(d))
		if a >= d-1 {
			b := a
			if a != d-1 {
				b = a - a%d - 1
			}
			maxDividend = b >> p
		}
	}
	return MShiftDivisor[U]{Value: d, Multiplier: multiplier, Shift: w - p, MaxDividend: maxDividend}
}

// mshiftKernel exposes the family's minimal primitive: a monotonic transform
// of n % d. Comparisons are derived by the composition layer.
type mshiftKernel[U Uint] struct {
	d MShiftDivisor[U]
}

// MappedRemainder returns f(n % d) for an unspecified strictly increasing f.
// Valid for n <= MaxDividend.
func (k mshiftKernel[U]) MappedRemainder(n U) U {
	return bitmath.RShift(k.d.Multiplier*n, k.d.Shift)
}

// MappedRemainderBounded is MappedRemainder for values already known < d.
func (k mshiftKernel[U]) MappedRemainderBounded(n U) U {
	return k.MappedRemainder(n)
}

// mshiftComparer is the basic-comparison layer over the mapped kernel.
type mshiftComparer[U Uint] struct {
	k mshiftKernel[U]
}

func (c mshiftComparer[U]) HasRemainder(n, r U) bool     { return mappedEqual(c.k, n, r) }
func (c mshiftComparer[U]) HasRemainderLess(n, r U) bool { return mappedLess(c.k, n, r) }

// MShift is the multiply-and-shift algorithm composed with basic comparison,
// relaxed remainders, the derived inequalities and equivalence.
type MShift[U Uint] struct {
	c mshiftComparer[U]
}

// NewMShift builds the algorithm for divisor d. Panics when d == 0.
func NewMShift[U Uint](d U) MShift[U] {
	return MShift[U]{c: mshiftComparer[U]{k: mshiftKernel[U]{d: NewMShiftDivisor(d)}}}
}

func (a MShift[U]) Name() string { return "mshift" }

// Divisor returns the precomputed record, for inspection.
func (a MShift[U]) Divisor() MShiftDivisor[U] { return a.c.k.d }

func (a MShift[U]) DivisorValue() U { return a.c.k.d.Value }
func (a MShift[U]) MaxDividend() U  { return a.c.k.d.MaxDividend }
func (a MShift[U]) MaxRemainder() U { return a.c.k.d.MaxDividend }

func (a MShift[U]) HasRemainder(n, r U) bool {
	return relaxedEqual(a.c.k.d.Value, a.c, n, r)
}

func (a MShift[U]) HasRemainderLess(n, r U) bool {
	return relaxedLess(a.c.k.d.Value, a.c, n, r)
}

func (a MShift[U]) HasRemainderLessEqual(n, r U) bool    { return lessEqual[U](a.c.k.d.Value, a, n, r) }
func (a MShift[U]) HasRemainderGreater(n, r U) bool      { return greater[U](a, n, r) }
func (a MShift[U]) HasRemainderGreaterEqual(n, r U) bool { return greaterEqual[U](a, n, r) }
func (a MShift[U]) AreEquivalent(n, m U) bool            { return equivalent[U](a, n, m) }
