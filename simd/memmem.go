package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. An empty needle matches at 0.
//
// Candidates are found by scanning for the rarest byte of needle (see
// RarestByte) with Memchr and then verified in full.
//
// Example:
//
//	pos := simd.Memmem([]byte("aaaaaabaaaa"), []byte("aab"))
//	// pos == 4
func Memmem(haystack, needle []byte) int {
	n, m := len(haystack), len(needle)
	switch {
	case m == 0:
		return 0
	case m > n:
		return -1
	case m == 1:
		return Memchr(haystack, needle[0])
	}

	rare, at := RarestByte(needle)
	from := at
	for from < n {
		i := Memchr(haystack[from:], rare)
		if i < 0 {
			return -1
		}
		cand := from + i - at
		if cand+m > n {
			return -1
		}
		if bytes.Equal(haystack[cand:cand+m], needle) {
			return cand
		}
		from += i + 1
	}
	return -1
}
