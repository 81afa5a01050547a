// Package literal extracts literal byte strings from compiled patterns.
//
// The extracted literals feed the prefilters: a text that lacks a required
// literal cannot match, and the first byte of an anchored literal prefix
// tells the matcher which offsets are worth trying.
//
// Key concepts:
//   - A Literal is a concrete byte sequence that every match contains
//   - A Seq is a set of such literals, all of which must be present
//   - Minimize drops literals implied by longer ones
package literal

import (
	"bytes"
	"slices"
)

// Literal represents a literal byte sequence extracted from a pattern.
// The Complete flag reports that the literal is the entire pattern, so finding
// it is the same as matching.
//
// Example:
//   - Pattern /hello/ → Literal{[]byte("hello"), true}
//   - Pattern /hello.*world/ → Literal{[]byte("hello"), false}
type Literal struct {
	// Bytes contains the literal byte sequence.
	Bytes []byte

	// Complete indicates the literal is the whole pattern.
	Complete bool
}

// NewLiteral creates a new Literal from the given bytes and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging.
// Format: "literal{bytes, complete=true/false}"
//
// Example:
//
//	lit := literal.NewLiteral([]byte("test"), true)
//	fmt.Println(lit.String()) // Output: literal{test, complete=true}
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of literals that must all occur in any matching text.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), false),
//	    literal.NewLiteral([]byte("bar"), false),
//	)
//	fmt.Printf("Sequence has %d literals\n", seq.Len()) // Output: Sequence has 2 literals
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// Strings returns the literals as strings, in sequence order.
func (s *Seq) Strings() []string {
	if s.IsEmpty() {
		return nil
	}
	out := make([]string, len(s.literals))
	for i, lit := range s.literals {
		out[i] = string(lit.Bytes)
	}
	return out
}

// Minimize removes redundant literals from the sequence.
//
// Because every literal is required, a literal L is redundant when a longer
// kept literal contains L: any text holding the longer one also holds L.
// The survivors are ordered longest first, which is also the most selective
// order in which to test them.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), false),
//	    literal.NewLiteral([]byte("xfoo"), false),
//	    literal.NewLiteral([]byte("bar"), false),
//	)
//	seq.Minimize()
//	fmt.Println(seq.Strings()) // Output: [xfoo bar]
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	slices.SortStableFunc(s.literals, func(a, b Literal) int {
		return len(b.Bytes) - len(a.Bytes)
	})

	kept := s.literals[:0]
	for _, current := range s.literals {
		redundant := false
		for _, k := range kept {
			if bytes.Contains(k.Bytes, current.Bytes) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, current)
		}
	}
	clear(s.literals[len(kept):])
	s.literals = kept
}

// Truncate keeps at most n literals. Minimize first so the longest survive.
func (s *Seq) Truncate(n int) {
	if s == nil || n < 0 || len(s.literals) <= n {
		return
	}
	clear(s.literals[n:])
	s.literals = s.literals[:n]
}
