package simd

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

func indexByteVector(haystack []byte, needle byte) int {
	return bytes.IndexByte(haystack, needle)
}

// memchrGeneric is the portable search. It reads eight bytes at a time as a
// little-endian uint64 and detects a zero byte in chunk^mask with
//
//	(v - 0x01..01) & ^v & 0x80..80
//
// The lowest set bit of the result marks the first matching byte.
func memchrGeneric(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8
	i := 0
	for ; i+8 <= n; i += 8 {
		v := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		if z := (v - lo8) & ^v & hi8; z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
