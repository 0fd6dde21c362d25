package bits

// Byte predicates.
//
// Each check is phrased as "the XOR against the expected pattern leaves
// nothing", which is how the puzzles are stated when == and != are off
// limits. Go only yields a bool from a comparison, so the final test
// against zero stays.

// AllOnes reports whether every bit of x is 1.
func AllOnes(x int32) bool {
	return x^^0 == 0
}

// AllZero reports whether every bit of x is 0.
func AllZero(x int32) bool {
	return x^0 == 0
}

// LowByteAllOnes reports whether the least significant byte of x is 0xFF.
func LowByteAllOnes(x int32) bool {
	return (x&0xFF)^0xFF == 0
}

// HighByteAllZero reports whether the most significant byte of x (bits 24
// to 31) is 0. The arithmetic shift smears the sign bit, the mask drops it.
func HighByteAllZero(x int32) bool {
	return (x>>(Width-8))&0xFF == 0
}

// oddPositions has every bit at an odd index set (1, 3, ..., 31).
const oddPositions uint32 = 0xAAAAAAAA

// HasAnyOddPositionBitSet reports whether any bit at an odd index is set.
func HasAnyOddPositionBitSet(x uint32) bool {
	return x&oddPositions != 0
}

// HasOddParity reports whether x contains an odd number of 1 bits.
//
// Each step folds the upper half of the remaining width onto the lower
// half; after five folds bit 0 holds the XOR of all 32 bits.
func HasOddParity(x uint32) bool {
	x ^= x >> 16
	x ^= x >> 8
	x ^= x >> 4
	x ^= x >> 2
	x ^= x >> 1
	return x&1 != 0
}
