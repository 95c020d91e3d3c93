package qmod

import "qmodgo/internal/bitmath"

// MInverseDivisor holds the constants the modular-inverse family derives from
// a divisor: the inverse of d's odd part mod 2^w, the rotation given by d's
// power-of-two part, and the quotient/remainder of 2^w / d used to count how
// many residues share a remainder class. Unlike the multiply families this
// record imposes no dividend restriction.
type MInverseDivisor[U Uint] struct {
	Value      U
	Multiplier U
	Rotation   uint
	// SpecialRemainder marks the boundary class -odd_part(d) mod d, where a
	// specialised comparison direction is possible when the remainder is
	// known ahead of time. The general evaluation path does not need it; it
	// is kept for inspection.
	SpecialRemainder U
	QuotientSup      U
	RemainderSup     U
}

// NewMInverseDivisor derives the record for d. Panics when d == 0.
func NewMInverseDivisor[U Uint](d U) MInverseDivisor[U] {
	if d == 0 {
		panic("qmod: divisor must be positive")
	}
	odd := bitmath.OddPart(d)
	return MInverseDivisor[U]{
		Value:            d,
		Multiplier:       bitmath.ModularInverse(odd),
		Rotation:         bitmath.Exp2(d),
		SpecialRemainder: -odd % d,
		QuotientSup:      bitmath.FloorSupDividedBy(d),
		RemainderSup:     bitmath.RemainderSupDividedBy(d),
	}
}

// minverseKernel evaluates the family's closed-form equality. Valid for every
// dividend; the remainder must satisfy r < Value.
type minverseKernel[U Uint] struct {
	d MInverseDivisor[U]
}

// equivalents returns the number of integers in [0, 2^w) equivalent to r mod
// the divisor, reduced mod 2^w. When the divisor is 1 every integer is
// equivalent to 0 and the count wraps to 0; HasRemainder relies on the
// ensuing b-1 wraparound to answer true.
func (k minverseKernel[U]) equivalents(r U) U {
	var extra U
	if r < k.d.RemainderSup {
		extra = 1
	}
	return k.d.QuotientSup + extra
}

func (k minverseKernel[U]) HasRemainder(n, r U) bool {
	b := k.equivalents(r)
	return bitmath.RRotate(k.d.Multiplier*(n-r), k.d.Rotation) <= b-1
}

// MInverse is the modular-inverse algorithm composed with relaxed remainders
// and equivalence. The family exposes no order information about n % d, so
// the inequality operations are deliberately absent from its surface.
type MInverse[U Uint] struct {
	k minverseKernel[U]
}

// NewMInverse builds the algorithm for divisor d. Panics when d == 0.
func NewMInverse[U Uint](d U) MInverse[U] {
	return MInverse[U]{k: minverseKernel[U]{d: NewMInverseDivisor(d)}}
}

func (a MInverse[U]) Name() string { return "minverse" }

// Divisor returns the precomputed record, for inspection.
func (a MInverse[U]) Divisor() MInverseDivisor[U] { return a.k.d }

func (a MInverse[U]) DivisorValue() U { return a.k.d.Value }
func (a MInverse[U]) MaxDividend() U  { return bitmath.Max[U]() }
func (a MInverse[U]) MaxRemainder() U { return bitmath.Max[U]() }

func (a MInverse[U]) HasRemainder(n, r U) bool {
	return relaxedEqual(a.k.d.Value, a.k, n, r)
}

func (a MInverse[U]) AreEquivalent(n, m U) bool { return equivalent[U](a, n, m) }
