package simd

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestMemchrBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		needle   byte
		want     int
	}{
		{"empty_haystack", []byte{}, 'a', -1},
		{"single_match", []byte{'a'}, 'a', 0},
		{"single_no_match", []byte{'a'}, 'b', -1},
		{"first_position", []byte("hello"), 'h', 0},
		{"middle_position", []byte("hello"), 'l', 2},
		{"last_position", []byte("hello"), 'o', 4},
		{"null_byte", []byte{1, 2, 0, 3}, 0, 2},
		{"high_byte", []byte{1, 2, 255, 4}, 255, 2},
		{"second_word", []byte("abcdefghXjk"), 'X', 8},
		{"longer_found", []byte("the quick brown fox jumps over the lazy dog"), 'q', 4},
		{"longer_last_char", []byte("the quick brown fox jumps over the lazy dog"), 'g', 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Memchr(tt.haystack, tt.needle); got != tt.want {
				t.Errorf("Memchr(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
			if got := memchrGeneric(tt.haystack, tt.needle); got != tt.want {
				t.Errorf("memchrGeneric(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

// TestMemchrSizes crosses the word and vector thresholds with the needle
// at every interesting position.
func TestMemchrSizes(t *testing.T) {
	sizes := []int{1, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 255, 256, 1025, 4097}

	for _, size := range sizes {
		for _, at := range []int{0, size / 2, size - 1, -1} {
			t.Run(fmt.Sprintf("size_%d_at_%d", size, at), func(t *testing.T) {
				haystack := bytes.Repeat([]byte{'a'}, size)
				if at >= 0 {
					haystack[at] = 'X'
				}
				want := bytes.IndexByte(haystack, 'X')
				if got := Memchr(haystack, 'X'); got != want {
					t.Errorf("Memchr = %d, want %d", got, want)
				}
				if got := memchrGeneric(haystack, 'X'); got != want {
					t.Errorf("memchrGeneric = %d, want %d", got, want)
				}
			})
		}
	}
}

func TestMemchrInTable(t *testing.T) {
	var digits [256]bool
	for c := '0'; c <= '9'; c++ {
		digits[c] = true
	}
	tests := []struct {
		haystack string
		want     int
	}{
		{"", -1},
		{"abc", -1},
		{"7", 0},
		{"abc123", 3},
		{strings.Repeat("x", 100) + "0", 100},
	}
	for _, tt := range tests {
		if got := MemchrInTable([]byte(tt.haystack), &digits); got != tt.want {
			t.Errorf("MemchrInTable(%q) = %d, want %d", tt.haystack, got, tt.want)
		}
	}
}

func TestRarestByte(t *testing.T) {
	tests := []struct {
		needle string
		want   byte
		index  int
	}{
		{"", 0, -1},
		{"a", 'a', 0},
		{"ex", 'x', 1},
		{"Qu", 'Q', 0},
		{"zz", 'z', 1},
		{"the@home", '@', 3},
	}
	for _, tt := range tests {
		b, i := RarestByte([]byte(tt.needle))
		if b != tt.want || i != tt.index {
			t.Errorf("RarestByte(%q) = (%q, %d), want (%q, %d)", tt.needle, b, i, tt.want, tt.index)
		}
	}
}

func BenchmarkMemchr(b *testing.B) {
	haystack := append(bytes.Repeat([]byte{'a'}, 64*1024), 'X')
	b.SetBytes(int64(len(haystack)))
	for b.Loop() {
		Memchr(haystack, 'X')
	}
}
