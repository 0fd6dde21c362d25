// Package bits implements bit-level puzzles over 32-bit two's-complement
// integers: accessors, predicates and mask constructors.
package bits

import (
	"errors"
	"fmt"
)

const (
	// Width is the bit width w of every value handled by this module.
	Width = 32
	// WidthBytes is Width expressed in bytes.
	WidthBytes = Width / 8
)

// ErrOutOfDomain is wrapped by every precondition violation (shift amount,
// mask length, rotation count) reported by this module.
var ErrOutOfDomain = errors.New("argument out of domain")

// DomainError builds an error wrapping ErrOutOfDomain for argument name,
// its value and the accepted closed range [lo, hi].
func DomainError(op, name string, v, lo, hi uint) error {
	return fmt.Errorf("%s: %s=%d not in [%d, %d]: %w", op, name, v, lo, hi, ErrOutOfDomain)
}

// Bit returns a value with only the n-th bit set (0 to 31).
func Bit(n uint) uint32 {
	if n >= Width {
		return 0
	}
	return 1 << n
}

// IsSet checks if the n-th bit is set (0 to 31).
func IsSet(x uint32, n uint) bool {
	return x&Bit(n) != 0
}

// GetRange extracts the value from a range of bits (e.g., bits 7 to 4).
// Example: GetRange(0xA5, 7, 4) returns 0xA
func GetRange(x uint32, high, low uint) uint32 {
	if high < low || high >= Width {
		return 0
	}

	width := high - low + 1
	return (x >> low) & LowBitsMask(width)
}

// ByteAt returns the logical byte i of x, 0 being the least significant.
// Out of range indices yield 0.
func ByteAt(x uint32, i int) byte {
	if i < 0 || i >= WidthBytes {
		return 0
	}
	return byte(x >> (8 * uint(i)))
}
