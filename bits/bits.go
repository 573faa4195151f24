// Package bits provides the masking and shifting helpers used to pull
// fields out of fixed-width instruction words.
//
// Usage:
//
//	mask := bits.Mask(5, 21)          // 0x03E00000
//	rs := bits.Extract(word, mask)    // right-justified bits [25:21]
package bits

import mathbits "math/bits"

// LowestSetBit returns the index of the lowest set bit in mask.
// It returns 32 for a zero mask.
func LowestSetBit(mask uint32) uint32 {
	return uint32(mathbits.TrailingZeros32(mask))
}

// Extract returns the bits of word selected by mask, shifted down so the
// lowest mask bit lands at bit 0. A zero mask yields 0.
func Extract(word, mask uint32) uint32 {
	return (word & mask) >> (LowestSetBit(mask) & 31)
}

// Insert returns word with the bits selected by mask replaced by value,
// shifted up to the lowest mask bit. Bits of value that fall outside mask
// are dropped.
func Insert(word, mask, value uint32) uint32 {
	return (word &^ mask) | ((value << (LowestSetBit(mask) & 31)) & mask)
}

// Mask builds a contiguous mask of width bits starting at offset.
func Mask(width, offset uint32) uint32 {
	if width >= 32 {
		return 0xFFFFFFFF << offset
	}
	return ((1 << width) - 1) << offset
}

// SignExtend treats the low width bits of value as a two's-complement
// number and returns it widened to 64 bits.
func SignExtend(value, width uint32) int64 {
	shift := 64 - width
	return int64(uint64(value)<<shift) >> shift
}
