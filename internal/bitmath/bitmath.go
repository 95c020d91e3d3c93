// Package bitmath provides width-generic bit and arithmetic helpers used by
// the divisor precomputations and the evaluation kernels.
//
// All functions are pure and branch-light. Functions taking a divisor or a
// strictly positive argument document their precondition; behaviour outside
// it is unspecified.
package bitmath

import "math/bits"

// Uint is the set of unsigned integer widths the library operates on.
type Uint interface {
	~uint32 | ~uint64
}

// Max returns the largest value representable by U.
func Max[U Uint]() U {
	var zero U
	return ^zero
}

// NBits returns the size of U in bits.
func NBits[U Uint]() uint {
	return uint(bits.OnesCount64(uint64(Max[U]())))
}

// PopCount returns the number of 1-bits of n.
func PopCount[U Uint](n U) uint {
	return uint(bits.OnesCount64(uint64(n)))
}

// RShift returns n >> c. The result is 0 when c is the width of U or more.
func RShift[U Uint](n U, c uint) U {
	if c >= NBits[U]() {
		return 0
	}
	return n >> c
}

// LShift returns n << c. The result is 0 when c is the width of U or more.
func LShift[U Uint](n U, c uint) U {
	if c >= NBits[U]() {
		return 0
	}
	return n << c
}

// RRotate rotates the bits of n to the right by c mod NBits positions.
func RRotate[U Uint](n U, c uint) U {
	w := NBits[U]()
	c %= w
	if c == 0 {
		return n
	}
	return n>>c | n<<(w-c)
}

// IsPow2 reports whether n is a power of 2.
func IsPow2[U Uint](n U) bool {
	return n != 0 && n&(n-1) == 0
}

// EvenPart returns 2^p for the unique decomposition n = 2^p * o with o odd.
// Pre: n > 0.
func EvenPart[U Uint](n U) U {
	return n & -n
}

// OddPart returns o for the unique decomposition n = 2^p * o with o odd.
// Pre: n > 0.
func OddPart[U Uint](n U) U {
	return n / EvenPart(n)
}

// Exp2 returns p for the unique decomposition n = 2^p * o with o odd.
// Pre: n > 0.
func Exp2[U Uint](n U) uint {
	return uint(bits.TrailingZeros64(uint64(n)))
}

// CeilLog2 returns the smallest k such that n <= 2^k. Pre: n > 0.
func CeilLog2[U Uint](n U) uint {
	k := uint(bits.Len64(uint64(n)))
	if IsPow2(n) {
		k--
	}
	return k
}

// CeilSupDividedBy returns ceil(2^w / d) mod 2^w, where w = NBits[U].
// When d == 1 the true value 2^w wraps to 0; callers must treat that as a
// meaningful result. Pre: d > 0.
func CeilSupDividedBy[U Uint](d U) U {
	return Max[U]()/d + 1
}

// FloorSupDividedBy returns floor(2^w / d) mod 2^w, where w = NBits[U].
// When d == 1 the true value 2^w wraps to 0. Pre: d > 0.
func FloorSupDividedBy[U Uint](d U) U {
	if IsPow2(d) {
		return Max[U]()/d + 1
	}
	return Max[U]() / d
}

// RemainderSupDividedBy returns the remainder of 2^w divided by d, where
// w = NBits[U]. The two's-complement identity -(floor(2^w/d) * d) == 2^w mod d
// avoids a second division. Pre: d > 0.
func RemainderSupDividedBy[U Uint](d U) U {
	return -(FloorSupDividedBy(d) * d)
}

// ModularInverse returns m such that n * m == 1 (mod 2^w), w = NBits[U].
// The Newton-style iteration doubles the number of correct low bits per step:
// the seed 3n ^ 2 is correct to 5 bits, four refinements reach 80, enough for
// both supported widths. See
// https://marc-b-reynolds.github.io/math/2017/09/18/ModInverse.html
// Pre: n is odd.
func ModularInverse[U Uint](n U) U {
	m := 3*n ^ 2
	m *= 2 - n*m
	m *= 2 - n*m
	m *= 2 - n*m
	m *= 2 - n*m
	return m
}

// AbsDiff returns |n - m|.
func AbsDiff[U Uint](n, m U) U {
	if n >= m {
		return n - m
	}
	return m - n
}

// Mul returns the full 2w-bit product of x and y as a (hi, lo) pair.
func Mul[U Uint](x, y U) (hi, lo U) {
	if NBits[U]() == 32 {
		h, l := bits.Mul32(uint32(x), uint32(y))
		return U(h), U(l)
	}
	h, l := bits.Mul64(uint64(x), uint64(y))
	return U(h), U(l)
}
