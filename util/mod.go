package util

import (
	"fmt"
	"strings"
	"unsafe"
)

// Word is any fixed-width unsigned integer a generator state can be made of.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitWidth returns the width of T in bits.
func BitWidth[T Word]() int {
	var x T
	return int(unsafe.Sizeof(x) * 8)
}

// RotL rotates x left by k at the exact width of T. RotL(x, 0) == x since
// shifting by the full width yields 0 in Go.
func RotL[T Word](x T, k uint) T {
	bitWidth := unsafe.Sizeof(x) * 8
	return (x << k) | (x >> (uint(bitWidth) - k))
}

// FormatWord renders v as 0x followed by bits/4 uppercase hex digits.
func FormatWord(v uint64, bits int) string {
	return fmt.Sprintf("0x%0[1]*[2]X", bits/4, v)
}

// JoinWords renders every word with FormatWord, separated by ", ".
func JoinWords(arr []uint64, bits int) string {
	var sb strings.Builder

	for i, v := range arr {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatWord(v, bits))
	}

	return sb.String()
}

// ArrayToString is JoinWords for a typed state array.
func ArrayToString[T Word](arr []T) string {
	wide := make([]uint64, len(arr))
	for i, v := range arr {
		wide[i] = uint64(v)
	}

	return JoinWords(wide, BitWidth[T]())
}

// Mask returns the all-ones value for a word of the given width.
func Mask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}
