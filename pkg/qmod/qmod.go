// Package qmod answers relational questions about n % d (equality against a
// remainder, the four inequalities, and equivalence of two dividends) without
// executing a division instruction.
//
// Four algorithm families trade precomputation cost, validity range and
// instruction count differently: multiply-and-compare (MComp), multiply-and-
// shift (MShift), modular-inverse-and-rotate (MInverse) and a hybrid (Hybrid).
// BuiltIn answers the same questions with the native % operator and serves as
// the correctness oracle.
//
// Every algorithm is an immutable value built once per divisor; construction
// performs the precomputation, evaluation is a handful of multiplications,
// shifts and comparisons. Values are safe to share between goroutines.
//
// Answers are guaranteed only inside the validity domain
// [0, MaxDividend] x [0, MaxRemainder]; the composed types already relax the
// raw kernels so that any remainder up to MaxRemainder yields a defined
// boolean. When a family's native-width MaxDividend is too small, Promote
// re-runs its whole stack at 64-bit precision.
package qmod

import "qmodgo/internal/bitmath"

// Uint is the set of unsigned widths algorithms operate on.
type Uint = bitmath.Uint

// Evaluator is the minimal surface every composed algorithm exposes to
// callers that generate boundary-aware inputs (tests, benchmarks, the
// inspection CLI).
type Evaluator[U Uint] interface {
	// Name identifies the algorithm family for reporting.
	Name() string
	// DivisorValue returns the divisor the instance was built for.
	DivisorValue() U
	// MaxDividend returns the largest dividend for which every implemented
	// operation is correct. Zero means no dividend is safely representable
	// and the caller should promote to a wider width.
	MaxDividend() U
	// MaxRemainder returns the largest accepted second operand of the
	// remainder comparisons.
	MaxRemainder() U
}

// Capability interfaces, one per relational operation. A family implements
// the subset its composition derived; Implements probes for them.
type (
	RemainderEqual[U Uint]        interface{ HasRemainder(n, r U) bool }
	RemainderLess[U Uint]         interface{ HasRemainderLess(n, r U) bool }
	RemainderLessEqual[U Uint]    interface{ HasRemainderLessEqual(n, r U) bool }
	RemainderGreater[U Uint]      interface{ HasRemainderGreater(n, r U) bool }
	RemainderGreaterEqual[U Uint] interface{ HasRemainderGreaterEqual(n, r U) bool }
	Equivalent[U Uint]            interface{ AreEquivalent(n, m U) bool }
)

// Algorithm is the full six-operation surface. MComp, MShift, Hybrid,
// BuiltIn and Promoted satisfy it; MInverse derives only equality and
// equivalence.
type Algorithm[U Uint] interface {
	Evaluator[U]
	RemainderEqual[U]
	RemainderLess[U]
	RemainderLessEqual[U]
	RemainderGreater[U]
	RemainderGreaterEqual[U]
	Equivalent[U]
}
