package bitmath

import (
	"fmt"
	"math/bits"
	"testing"
)

func TestMaxAndNBits(t *testing.T) {
	if got := Max[uint32](); got != 0xFFFFFFFF {
		t.Errorf("Max[uint32]() = %#x, want 0xFFFFFFFF", got)
	}
	if got := Max[uint64](); got != 0xFFFFFFFFFFFFFFFF {
		t.Errorf("Max[uint64]() = %#x, want 0xFFFFFFFFFFFFFFFF", got)
	}
	if got := NBits[uint32](); got != 32 {
		t.Errorf("NBits[uint32]() = %d, want 32", got)
	}
	if got := NBits[uint64](); got != 64 {
		t.Errorf("NBits[uint64]() = %d, want 64", got)
	}
}

func TestShiftsAtWidth(t *testing.T) {
	if got := RShift(uint32(0xDEADBEEF), 31); got != 1 {
		t.Errorf("RShift(0xDEADBEEF, 31) = %d, want 1", got)
	}
	if got := RShift(uint32(0xDEADBEEF), 32); got != 0 {
		t.Errorf("RShift by width = %d, want 0", got)
	}
	if got := RShift(uint64(1)<<63, 64); got != 0 {
		t.Errorf("RShift[uint64] by width = %d, want 0", got)
	}
	if got := LShift(uint32(3), 31); got != 0x80000000 {
		t.Errorf("LShift(3, 31) = %#x, want 0x80000000", got)
	}
	if got := LShift(uint32(3), 32); got != 0 {
		t.Errorf("LShift by width = %d, want 0", got)
	}
	if got := LShift(uint64(3), 64); got != 0 {
		t.Errorf("LShift[uint64] by width = %d, want 0", got)
	}
}

func TestRRotate(t *testing.T) {
	cases := []struct {
		n    uint32
		c    uint
		want uint32
	}{
		{0x80000001, 0, 0x80000001},
		{0x80000001, 1, 0xC0000000},
		{0x80000001, 32, 0x80000001},
		{0x80000001, 33, 0xC0000000},
		{0x00000001, 4, 0x10000000},
	}
	for _, tc := range cases {
		if got := RRotate(tc.n, tc.c); got != tc.want {
			t.Errorf("RRotate(%#x, %d) = %#x, want %#x", tc.n, tc.c, got, tc.want)
		}
	}
	for c := uint(0); c < 64; c++ {
		n := uint64(0xDEADBEEFCAFEF00D)
		if got, want := RRotate(n, c), bits.RotateLeft64(n, -int(c)); got != want {
			t.Errorf("RRotate(%#x, %d) = %#x, want %#x", n, c, got, want)
		}
	}
}

func TestPartsAndExp2(t *testing.T) {
	cases := []struct {
		n    uint64
		even uint64
		odd  uint64
		exp  uint
	}{
		{1, 1, 1, 0},
		{2, 2, 1, 1},
		{12, 4, 3, 2},
		{21, 1, 21, 0},
		{64, 64, 1, 6},
		{247808, 2048, 121, 11},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d", tc.n), func(t *testing.T) {
			if got := EvenPart(tc.n); got != tc.even {
				t.Errorf("EvenPart = %d, want %d", got, tc.even)
			}
			if got := OddPart(tc.n); got != tc.odd {
				t.Errorf("OddPart = %d, want %d", got, tc.odd)
			}
			if got := Exp2(tc.n); got != tc.exp {
				t.Errorf("Exp2 = %d, want %d", got, tc.exp)
			}
		})
	}
}

func TestCeilLog2(t *testing.T) {
	cases := []struct {
		n    uint32
		want uint
	}{
		{1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4},
		{247808, 18}, {0x80000000, 31}, {0x80000001, 32}, {0xFFFFFFFF, 32},
	}
	for _, tc := range cases {
		if got := CeilLog2(tc.n); got != tc.want {
			t.Errorf("CeilLog2(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestIsPow2(t *testing.T) {
	for _, n := range []uint64{1, 2, 4, 1 << 11, 1 << 63} {
		if !IsPow2(n) {
			t.Errorf("IsPow2(%d) = false, want true", n)
		}
	}
	for _, n := range []uint64{0, 3, 6, 247808, Max[uint64]()} {
		if IsPow2(n) {
			t.Errorf("IsPow2(%d) = true, want false", n)
		}
	}
}

// The three 2^w/d helpers are tied together: floor*d + remainder must wrap to
// exactly 0 (i.e. 2^w), the remainder must be a proper remainder, and ceil is
// floor except for non powers of two where it is floor+1.
func TestSupDividedByIdentities(t *testing.T) {
	divisors := []uint64{1, 2, 3, 5, 6, 7, 10, 16, 21, 63, 64, 100, 247808,
		1 << 31, 1 << 32, 1<<32 + 1, 1 << 63, Max[uint64]() - 1, Max[uint64]()}
	for _, d := range divisors {
		t.Run(fmt.Sprintf("d=%d", d), func(t *testing.T) {
			floor := FloorSupDividedBy(d)
			ceil := CeilSupDividedBy(d)
			rem := RemainderSupDividedBy(d)
			if floor*d+rem != 0 {
				t.Errorf("floor*d + rem = %d, want wraparound to 0", floor*d+rem)
			}
			if rem >= d {
				t.Errorf("remainder %d not below divisor %d", rem, d)
			}
			wantCeil := floor
			if !IsPow2(d) {
				wantCeil = floor + 1
			}
			if ceil != wantCeil {
				t.Errorf("ceil = %d, want %d", ceil, wantCeil)
			}
		})
	}

	// Degenerate d == 1: the true value 2^w wraps to 0 at both widths.
	if got := CeilSupDividedBy(uint32(1)); got != 0 {
		t.Errorf("CeilSupDividedBy[uint32](1) = %d, want 0", got)
	}
	if got := FloorSupDividedBy(uint64(1)); got != 0 {
		t.Errorf("FloorSupDividedBy[uint64](1) = %d, want 0", got)
	}
	if got := CeilSupDividedBy(uint32(3)); got != 1431655766 {
		t.Errorf("CeilSupDividedBy[uint32](3) = %d, want 1431655766", got)
	}
	if got := RemainderSupDividedBy(uint32(10)); got != 6 {
		t.Errorf("RemainderSupDividedBy[uint32](10) = %d, want 6", got)
	}
}

func TestModularInverse(t *testing.T) {
	for n := uint64(1); n < 20000; n += 2 {
		if got := ModularInverse(n) * n; got != 1 {
			t.Fatalf("ModularInverse(%d): n*m = %d, want 1", n, got)
		}
		n32 := uint32(n)
		if got := ModularInverse(n32) * n32; got != 1 {
			t.Fatalf("ModularInverse[uint32](%d): n*m = %d, want 1", n32, got)
		}
	}
	for _, n := range []uint64{0xFFFFFFFFFFFFFFFF, 0xDEADBEEFCAFEF00D, 1<<63 + 1} {
		if got := ModularInverse(n) * n; got != 1 {
			t.Errorf("ModularInverse(%#x): n*m = %d, want 1", n, got)
		}
	}
}

func TestAbsDiff(t *testing.T) {
	cases := []struct {
		n, m, want uint64
	}{
		{0, 0, 0},
		{5, 3, 2},
		{3, 5, 2},
		{Max[uint64](), 0, Max[uint64]()},
		{0, Max[uint64](), Max[uint64]()},
	}
	for _, tc := range cases {
		if got := AbsDiff(tc.n, tc.m); got != tc.want {
			t.Errorf("AbsDiff(%d, %d) = %d, want %d", tc.n, tc.m, got, tc.want)
		}
	}
}

func TestMul(t *testing.T) {
	hi, lo := Mul(uint32(0xFFFFFFFF), uint32(0xFFFFFFFF))
	if hi != 0xFFFFFFFE || lo != 1 {
		t.Errorf("Mul[uint32](max, max) = (%#x, %#x), want (0xFFFFFFFE, 0x1)", hi, lo)
	}
	for _, tc := range [][2]uint64{
		{0, 0},
		{1, Max[uint64]()},
		{0xDEADBEEFCAFEF00D, 0x123456789ABCDEF0},
		{Max[uint64](), Max[uint64]()},
	} {
		wantHi, wantLo := bits.Mul64(tc[0], tc[1])
		gotHi, gotLo := Mul(tc[0], tc[1])
		if gotHi != wantHi || gotLo != wantLo {
			t.Errorf("Mul[uint64](%#x, %#x) = (%#x, %#x), want (%#x, %#x)",
				tc[0], tc[1], gotHi, gotLo, wantHi, wantLo)
		}
	}
}

func TestPopCount(t *testing.T) {
	if got := PopCount(uint32(0xF0F0F0F0)); got != 16 {
		t.Errorf("PopCount(0xF0F0F0F0) = %d, want 16", got)
	}
	if got := PopCount(Max[uint64]()); got != 64 {
		t.Errorf("PopCount(max) = %d, want 64", got)
	}
}
