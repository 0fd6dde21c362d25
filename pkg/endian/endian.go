// Package endian exposes the host byte order and byte-level edits of 32-bit
// words.
//
// BYTE ORDER:
// A multi-byte integer is stored either least significant byte first
// (little-endian) or most significant byte first (big-endian). The logical
// index of a byte (0 = least significant) therefore maps to physical
// offset i on a little-endian host and to offset size-1-i on a big-endian
// one.
//
// Functions working on physical layout take an explicit binary.ByteOrder.
// The host variants query the running machine through IsLittleEndian.
package endian

import (
	"encoding/binary"
	"unsafe"

	"github.com/gregLibert/bit-puzzles/pkg/bits"
)

// Fixed is the set of fixed-width numeric kinds BytesOf accepts.
type Fixed interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// BytesOf returns a copy of v's in-memory representation, lowest address
// first. The result depends on the host byte order.
func BytesOf[T Fixed](v T) []byte {
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}

// IsLittleEndian reports whether the host stores the least significant byte
// of an integer at the lowest address.
func IsLittleEndian() bool {
	val := uint32(1)
	return *(*byte)(unsafe.Pointer(&val)) == 1
}

// HostOrder returns the binary.ByteOrder matching the running host.
func HostOrder() binary.ByteOrder {
	if IsLittleEndian() {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// MergeByte keeps the least significant byte of x and takes the three
// upper bytes from y.
// Example: MergeByte(0x89ABCDEF, 0x76543210) returns 0x765432EF
func MergeByte(x, y uint32) uint32 {
	const m = 0xFF
	return (x & m) | (y &^ m)
}

// ReplaceByte replaces the logical byte i of x (0 = least significant) with
// b, going through the host memory layout. Indices outside [0, 4) return x
// unchanged.
func ReplaceByte(x uint32, b byte, i int) uint32 {
	return ReplaceByteOrder(HostOrder(), x, b, i)
}

// littleFirst probes order the same way IsLittleEndian probes the host.
func littleFirst(order binary.ByteOrder) bool {
	var probe [bits.WidthBytes]byte
	order.PutUint32(probe[:], 1)
	return probe[0] == 1
}

// ReplaceByteOrder is ReplaceByte for a word laid out with the given order.
func ReplaceByteOrder(order binary.ByteOrder, x uint32, b byte, i int) uint32 {
	if i < 0 || i >= bits.WidthBytes {
		return x
	}

	var buf [bits.WidthBytes]byte
	order.PutUint32(buf[:], x)

	if littleFirst(order) {
		buf[i] = b
	} else {
		buf[bits.WidthBytes-1-i] = b
	}

	return order.Uint32(buf[:])
}
