package bits

// LeftmostOneMask returns a mask holding only the most significant 1 bit of
// x, or 0 when x is 0.
// Example: LeftmostOneMask(0x6600) returns 0x4000
func LeftmostOneMask(x uint32) uint32 {
	// Smear the top bit downward: 0..01xx..x becomes 0..011..1.
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	return x &^ (x >> 1)
}

// HostIntIs32Bits reports whether Go's int is 32 bits wide on this host.
//
// Bit 31 must be settable and one more shift must push it out. The shift
// is done in two steps so that no single shift reaches the full width.
func HostIntIs32Bits() bool {
	one := 1
	setMSB := one << 31
	beyondMSB := setMSB << 1
	return setMSB != 0 && beyondMSB == 0
}

// LowBitsMaskChecked returns a mask with the low n bits set, 1 <= n <= 32.
func LowBitsMaskChecked(n uint) (uint32, error) {
	if n < 1 || n > Width {
		return 0, DomainError("low bits mask", "n", n, 1, Width)
	}
	// Widened so that n == Width does not wrap the shift to zero.
	return uint32(uint64(1)<<n - 1), nil
}

// LowBitsMask is LowBitsMaskChecked that panics on an out of domain n.
func LowBitsMask(n uint) uint32 {
	m, err := LowBitsMaskChecked(n)
	if err != nil {
		panic(err)
	}
	return m
}

// RotateLeftChecked rotates x left by n bits, 0 <= n <= 32. Bits leaving
// the top re-enter at the bottom.
func RotateLeftChecked(x uint32, n uint) (uint32, error) {
	if n > Width {
		return 0, DomainError("rotate left", "n", n, 0, Width)
	}
	if n == 0 || n == Width {
		return x, nil
	}
	return x<<n | x>>(Width-n), nil
}

// RotateLeft is RotateLeftChecked that panics on an out of domain n.
func RotateLeft(x uint32, n uint) uint32 {
	r, err := RotateLeftChecked(x, n)
	if err != nil {
		panic(err)
	}
	return r
}

// FitsInNBitsChecked reports whether x is representable as an n-bit
// two's-complement number, 1 <= n <= 32.
func FitsInNBitsChecked(x int32, n uint) (bool, error) {
	if n < 1 || n > Width {
		return false, DomainError("fits bits", "n", n, 1, Width)
	}
	shift := Width - n
	// Sign extend the low n bits back to full width.
	return (x<<shift)>>shift == x, nil
}

// FitsInNBits is FitsInNBitsChecked that panics on an out of domain n.
func FitsInNBits(x int32, n uint) bool {
	ok, err := FitsInNBitsChecked(x, n)
	if err != nil {
		panic(err)
	}
	return ok
}
