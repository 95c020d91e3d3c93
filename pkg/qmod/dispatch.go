package qmod

import "fmt"

// Function enumerates the six relational operations. The set is closed:
// callers iterate Functions and probe a family's support with Implements.
type Function uint8

const (
	HasRemainder Function = iota
	HasRemainderLess
	HasRemainderLessEqual
	HasRemainderGreater
	HasRemainderGreaterEqual
	AreEquivalent
)

// Functions lists every operation in declaration order.
var Functions = [...]Function{
	HasRemainder,
	HasRemainderLess,
	HasRemainderLessEqual,
	HasRemainderGreater,
	HasRemainderGreaterEqual,
	AreEquivalent,
}

// String returns the operation's tag name.
func (f Function) String() string {
	switch f {
	case HasRemainder:
		return "has_remainder"
	case HasRemainderLess:
		return "has_remainder_less"
	case HasRemainderLessEqual:
		return "has_remainder_less_equal"
	case HasRemainderGreater:
		return "has_remainder_greater"
	case HasRemainderGreaterEqual:
		return "has_remainder_greater_equal"
	case AreEquivalent:
		return "are_equivalent"
	}
	return fmt.Sprintf("Function(%d)", uint8(f))
}

// Expression returns the operation's display form for reporting.
func (f Function) Expression() string {
	switch f {
	case HasRemainder:
		return "n % d == r"
	case HasRemainderLess:
		return "n % d <  r"
	case HasRemainderLessEqual:
		return "n % d <= r"
	case HasRemainderGreater:
		return "n % d >  r"
	case HasRemainderGreaterEqual:
		return "n % d >= r"
	case AreEquivalent:
		return "n % d == m % d"
	}
	return ""
}

// Implements reports whether algorithm a derived operation f.
func Implements[U Uint](a Evaluator[U], f Function) bool {
	_, ok := MethodOf(a, f)
	return ok
}

// MethodOf returns operation f bound to a as a two-argument call, or false
// when a's family never derived f.
func MethodOf[U Uint](a Evaluator[U], f Function) (func(n, m U) bool, bool) {
	switch f {
	case HasRemainder:
		if x, ok := a.(RemainderEqual[U]); ok {
			return x.HasRemainder, true
		}
	case HasRemainderLess:
		if x, ok := a.(RemainderLess[U]); ok {
			return x.HasRemainderLess, true
		}
	case HasRemainderLessEqual:
		if x, ok := a.(RemainderLessEqual[U]); ok {
			return x.HasRemainderLessEqual, true
		}
	case HasRemainderGreater:
		if x, ok := a.(RemainderGreater[U]); ok {
			return x.HasRemainderGreater, true
		}
	case HasRemainderGreaterEqual:
		if x, ok := a.(RemainderGreaterEqual[U]); ok {
			return x.HasRemainderGreaterEqual, true
		}
	case AreEquivalent:
		if x, ok := a.(Equivalent[U]); ok {
			return x.AreEquivalent, true
		}
	}
	return nil, false
}

// Max1st returns the largest valid first argument of any operation of a.
func Max1st[U Uint](a Evaluator[U]) U {
	return a.MaxDividend()
}

// Max2nd returns the largest valid second argument of operation f on a: a
// dividend bound for AreEquivalent, a remainder bound otherwise.
func Max2nd[U Uint](a Evaluator[U], f Function) U {
	if f == AreEquivalent {
		return a.MaxDividend()
	}
	return a.MaxRemainder()
}
