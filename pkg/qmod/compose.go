package qmod

import "qmodgo/internal/bitmath"

// Capability composition: each derivation below extends a minimal kernel
// contract into a larger one. The logic lives here once; the composed family
// types route their method sets through these functions instead of re-deriving
// the arithmetic per algorithm.

// remainderMapper is the contract of kernels that expose a monotonic mapped
// remainder instead of direct comparisons (the multiply-and-shift family).
type remainderMapper[U Uint] interface {
	// MappedRemainder returns f(n % d) for an unspecified strictly
	// increasing f.
	MappedRemainder(n U) U
	// MappedRemainderBounded is MappedRemainder restricted to n < d.
	MappedRemainderBounded(n U) U
}

// mappedEqual derives n % d == r by comparing mapped values. Pre: r < d.
func mappedEqual[U Uint](k remainderMapper[U], n, r U) bool {
	return k.MappedRemainder(n) == k.MappedRemainderBounded(r)
}

// mappedLess derives n % d < r by comparing mapped values. Pre: r < d.
func mappedLess[U Uint](k remainderMapper[U], n, r U) bool {
	return k.MappedRemainder(n) < k.MappedRemainderBounded(r)
}

// relaxedEqual widens a kernel's equality to arbitrary remainders: an
// out-of-range remainder can never be hit, so the answer is false.
func relaxedEqual[U Uint](d U, k RemainderEqual[U], n, r U) bool {
	return r < d && k.HasRemainder(n, r)
}

// relaxedLess widens a kernel's strict inequality to arbitrary remainders:
// every remainder is below an out-of-range bound.
func relaxedLess[U Uint](d U, k RemainderLess[U], n, r U) bool {
	return r >= d || k.HasRemainderLess(n, r)
}

// lessEqual, greater and greaterEqual derive the remaining inequalities from
// the (already relaxed) strict one. n % d <= r is vacuously true for
// r >= d-1, which keeps the r+1 below from ever wrapping at the type maximum.
func lessEqual[U Uint](d U, a RemainderLess[U], n, r U) bool {
	return r >= d-1 || a.HasRemainderLess(n, r+1)
}

func greater[U Uint](a RemainderLessEqual[U], n, r U) bool {
	return !a.HasRemainderLessEqual(n, r)
}

func greaterEqual[U Uint](a RemainderLess[U], n, r U) bool {
	return !a.HasRemainderLess(n, r)
}

// equivalent derives n % d == m % d from equality against zero:
// d | (n - m) exactly when |n - m| % d == 0.
func equivalent[U Uint](a RemainderEqual[U], n, m U) bool {
	return a.HasRemainder(bitmath.AbsDiff(n, m), 0)
}
