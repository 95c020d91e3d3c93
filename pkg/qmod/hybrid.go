package qmod

import "qmodgo/internal/bitmath"

// HybridDivisor holds the constants the hybrid family derives from a divisor.
// The derivation searches for the multiplicative order of 2 modulo d's odd
// part; the order fixes a run of output bits that are guaranteed correct,
// which in turn fixes the multiplier and shift. MaxDividend comes from
// checking that the number of unique mapped points fits the available bit
// budget, falling back to the type maximum when any overflow check trips.
type HybridDivisor[U Uint] struct {
	Value       U
	Multiplier  U
	Shift       uint
	MaxDividend U
}

// NewHybridDivisor derives the record for d. When no period exists within the
// width budget the record degenerates to a zero multiplier with an empty
// validity domain. Panics when d == 0.
func NewHybridDivisor[U Uint](d U) HybridDivisor[U] {
	if d == 0 {
		panic("qmod: divisor must be positive")
	}
	w := bitmath.NBits[U]()
	maxPeriod := w - bitmath.Exp2(d)

	// Multiplicative order of 2 modulo odd_part(d), bounded by maxPeriod.
	period := uint(0)
	{
		odd := bitmath.OddPart(d)
		p := uint(1)
		power := U(2) // 2^p mod odd
		for p <= maxPeriod {
			if power == 1 {
				period = p
				break
			}
			p++
			power *= 2
			if power >= odd {
				power -= odd
			}
		}
	}
	if period == 0 {
		return HybridDivisor[U]{Value: d}
	}

	nOnes := maxPeriod / period * period
	multiplier := (bitmath.Max[U]() << (w - nOnes)) / d
	shift := w - nOnes
	nPoints := (multiplier - 1) >> shift

	maxDividend := func() U {
		max := bitmath.Max[U]()
		n := nPoints
		if n >= bitmath.LShift(U(1), shift) {
			return max
		}
		n = nPoints * bitmath.LShift(U(1), nOnes)
		if n > max/d {
			return max
		}
		n = n * d
		if n > -d {
			return max
		}
		return n + d - 1
	}()

	return HybridDivisor[U]{Value: d, Multiplier: multiplier, Shift: shift, MaxDividend: maxDividend}
}

// hybridKernel evaluates the family's closed-form primitives. Valid for
// n <= MaxDividend and r < Value.
type hybridKernel[U Uint] struct {
	d HybridDivisor[U]
}

// fractional approximates 2^w * (n / d) as h<<shift + l, where h and l are
// the high and low halves of multiplier * n.
func (k hybridKernel[U]) fractional(n U) U {
	hi, lo := bitmath.Mul(k.d.Multiplier, n)
	return bitmath.LShift(hi, k.d.Shift) + lo
}

func (k hybridKernel[U]) HasRemainder(n, r U) bool {
	if n < r {
		return false
	}
	return k.HasRemainderLess(n-r, 1)
}

func (k hybridKernel[U]) HasRemainderLess(n, r U) bool {
	return k.fractional(n)+k.d.Multiplier <= k.d.Multiplier*r
}

// Hybrid is the hybrid algorithm composed with relaxed remainders, the
// derived inequalities and equivalence.
type Hybrid[U Uint] struct {
	k hybridKernel[U]
}

// NewHybrid builds the algorithm for divisor d. Panics when d == 0.
func NewHybrid[U Uint](d U) Hybrid[U] {
	return Hybrid[U]{k: hybridKernel[U]{d: NewHybridDivisor(d)}}
}

func (a Hybrid[U]) Name() string { return "hybrid" }

// Divisor returns the precomputed record, for inspection.
func (a Hybrid[U]) Divisor() HybridDivisor[U] { return a.k.d }

func (a Hybrid[U]) DivisorValue() U { return a.k.d.Value }
func (a Hybrid[U]) MaxDividend() U  { return a.k.d.MaxDividend }
func (a Hybrid[U]) MaxRemainder() U { return a.k.d.MaxDividend }

func (a Hybrid[U]) HasRemainder(n, r U) bool {
	return relaxedEqual(a.k.d.Value, a.k, n, r)
}

func (a Hybrid[U]) HasRemainderLess(n, r U) bool {
	return relaxedLess(a.k.d.Value, a.k, n, r)
}

func (a Hybrid[U]) HasRemainderLessEqual(n, r U) bool    { return lessEqual[U](a.k.d.Value, a, n, r) }
func (a Hybrid[U]) HasRemainderGreater(n, r U) bool      { return greater[U](a, n, r) }
func (a Hybrid[U]) HasRemainderGreaterEqual(n, r U) bool { return greaterEqual[U](a, n, r) }
func (a Hybrid[U]) AreEquivalent(n, m U) bool            { return equivalent[U](a, n, m) }
