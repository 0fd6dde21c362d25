// Package shift emulates each kind of right shift with the other one.
//
// ARITHMETIC VS LOGICAL:
// A logical right shift fills the vacated high-order bits with zeros. An
// arithmetic right shift copies the sign bit into them. In Go, >> on a
// signed operand is arithmetic and >> on an unsigned operand is logical,
// so the emulations below only reinterpret the operand and then fix the
// top k bits with a mask.
//
// Shift amounts must lie in [0, w). Go defines a shift by w or more as
// yielding 0 (or -1 for negative signed values), which the mask
// construction relies on for k == 0: ^0 << w is 0, so its complement is
// all ones.
package shift

import (
	"github.com/gregLibert/bit-puzzles/pkg/bits"
)

func checkAmount(op string, k uint) error {
	if k >= bits.Width {
		return bits.DomainError(op, "k", k, 0, bits.Width-1)
	}
	return nil
}

// LogicalViaArithmeticChecked computes x >> k (logical) using only an
// arithmetic shift and a mask.
func LogicalViaArithmeticChecked(x uint32, k uint) (uint32, error) {
	if err := checkAmount("logical right shift", k); err != nil {
		return 0, err
	}

	xsra := uint32(int32(x) >> k)
	// Top k bits zero, remaining w-k bits one.
	mask := ^(^uint32(0) << (bits.Width - k))
	return xsra & mask, nil
}

// LogicalViaArithmetic is LogicalViaArithmeticChecked that panics when k is
// outside [0, 32).
func LogicalViaArithmetic(x uint32, k uint) uint32 {
	r, err := LogicalViaArithmeticChecked(x, k)
	if err != nil {
		panic(err)
	}
	return r
}

// ArithmeticViaLogicalChecked computes x >> k (arithmetic) using only a
// logical shift and a mask.
func ArithmeticViaLogicalChecked(x int32, k uint) (int32, error) {
	if err := checkAmount("arithmetic right shift", k); err != nil {
		return 0, err
	}

	xsrl := uint32(x) >> k
	if bits.IsSet(uint32(x), bits.Width-1) {
		// Restore the sign extension in the top k bits.
		xsrl |= ^uint32(0) << (bits.Width - k)
	}
	return int32(xsrl), nil
}

// ArithmeticViaLogical is ArithmeticViaLogicalChecked that panics when k is
// outside [0, 32).
func ArithmeticViaLogical(x int32, k uint) int32 {
	r, err := ArithmeticViaLogicalChecked(x, k)
	if err != nil {
		panic(err)
	}
	return r
}

// minusOne is a variable so the probe below is evaluated at run time.
var minusOne int32 = -1

// IsArithmeticShiftMachine reports whether right shifting a negative signed
// value replicates the sign bit.
func IsArithmeticShiftMachine() bool {
	return minusOne>>1 == minusOne
}
