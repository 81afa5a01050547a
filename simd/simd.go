// Package simd provides the byte scanning primitives behind the prefilters:
// single byte search, byte set search and substring search.
//
// The package picks an implementation once at startup from the CPU features
// reported by golang.org/x/sys/cpu. On CPUs with wide vector units the
// runtime's vectorized bytes.IndexByte is used; elsewhere a SWAR (SIMD Within
// A Register) loop scans eight bytes per iteration.
package simd

import "golang.org/x/sys/cpu"

// vectorMinLen is the smallest haystack handed to the vectorized search.
// Below it the setup cost outweighs the gain.
const vectorMinLen = 32

// hasVector reports whether the runtime's byte search runs on vector units.
var hasVector = cpu.X86.HasAVX2 || cpu.X86.HasSSE42 || cpu.ARM64.HasASIMD

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// It is equivalent to bytes.IndexByte.
func Memchr(haystack []byte, needle byte) int {
	if hasVector && len(haystack) >= vectorMinLen {
		return indexByteVector(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// MemchrInTable returns the index of the first byte b of haystack for which
// table[b] is set, or -1 if there is none.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}
