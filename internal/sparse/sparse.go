// Package sparse provides a sparse set of small non-negative integers.
//
// A sparse set supports O(1) insertion, membership testing and clearing
// while keeping a dense list of its members. The required-literal scan uses
// one to record which literals it has already found without zeroing a table
// on every search.
package sparse

import "github.com/coregx/regexlight/internal/conv"

// Set is a set of values in [0, capacity).
// It keeps a sparse array mapping values to positions in a dense array of
// members; a value is present only when the two agree.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// New creates a set that can hold values in [0, capacity).
func New(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds v and reports whether it was absent.
// Panics if v is outside [0, capacity).
func (s *Set) Insert(v int) bool {
	if s.Contains(v) {
		return false
	}
	s.sparse[v] = conv.IntToUint32(len(s.dense))
	s.dense = append(s.dense, conv.IntToUint32(v))
	return true
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v int) bool {
	if v < 0 || v >= len(s.sparse) {
		return false
	}
	idx := int(s.sparse[v])
	return idx < len(s.dense) && int(s.dense[idx]) == v
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// Clear removes all members in O(1) time
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}
