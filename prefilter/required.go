package prefilter

import (
	"sync"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/regexlight/internal/sparse"
	"github.com/coregx/regexlight/literal"
	"github.com/coregx/regexlight/simd"
)

// Required checks that a text contains every literal a match needs.
//
// A single literal is searched with simd.Memmem. Several literals are found
// in one pass with an Aho-Corasick automaton.
type Required struct {
	literals [][]byte
	index    map[string]int
	auto     *ahocorasick.Automaton

	// found holds *sparse.Set values recording which literals a scan has
	// seen so far.
	found sync.Pool
}

// NewRequired builds a Required set from seq. The literals should be
// minimized: when no literal contains another, no two can start at the same
// position and the scan below finds every one of them. A nil or empty seq
// yields a nil *Required, which admits every text.
func NewRequired(seq *literal.Seq) (*Required, error) {
	if seq.IsEmpty() {
		return nil, nil
	}

	r := &Required{
		literals: make([][]byte, seq.Len()),
		index:    make(map[string]int, seq.Len()),
	}
	for i := range seq.Len() {
		b := seq.Get(i).Bytes
		r.literals[i] = b
		r.index[string(b)] = i
	}
	if len(r.literals) == 1 {
		return r, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range r.literals {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	r.auto = auto
	n := len(r.literals)
	r.found.New = func() any { return sparse.New(n) }
	return r, nil
}

// Len returns the number of required literals.
func (r *Required) Len() int {
	if r == nil {
		return 0
	}
	return len(r.literals)
}

// Admit reports whether text contains every required literal. A false
// result proves the pattern cannot match text.
func (r *Required) Admit(text []byte) bool {
	if r == nil {
		return true
	}
	if r.auto == nil {
		return simd.Memmem(text, r.literals[0]) >= 0
	}

	found := r.found.Get().(*sparse.Set)
	defer func() {
		found.Clear()
		r.found.Put(found)
	}()

	for at := 0; at < len(text) && found.Len() < len(r.literals); {
		m := r.auto.Find(text, at)
		if m == nil {
			break
		}
		if i, ok := r.index[string(text[m.Start:m.End])]; ok {
			found.Insert(i)
		}
		at = m.Start + 1
	}
	return found.Len() == len(r.literals)
}

// HeapBytes returns the bytes held by the literal copies. The automaton's
// own tables are not counted.
func (r *Required) HeapBytes() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, lit := range r.literals {
		n += len(lit)
	}
	return n
}
