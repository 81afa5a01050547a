// Package prefilter provides fast candidate filtering ahead of the
// backtracking matcher.
//
// The matcher tries every text offset in turn. A prefilter narrows that to
// offsets where a match can actually begin, using the byte scanning
// primitives in package simd:
//   - Literal prefix of one byte → memchr prefilter
//   - Longer literal prefix → memmem prefilter
//   - Leading bracket expression → byte table prefilter
//
// Independently, a Required set built from the literals every match contains
// rejects a whole text up front when one of them is missing.
//
// Example usage:
//
//	p, _ := prog.Compile("hello.*world", nil)
//	pf := prefilter.NewBuilder(p, literal.New(literal.DefaultConfig())).Build()
//	pos := pf.Find([]byte("say hello, world"), 0)
//	// pos == 4
package prefilter

import (
	"github.com/coregx/regexlight/backtrack"
	"github.com/coregx/regexlight/literal"
	"github.com/coregx/regexlight/prog"
	"github.com/coregx/regexlight/simd"
)

// Prefilter finds candidate match positions before the matcher runs.
type Prefilter interface {
	// Find returns the smallest candidate position at or after start, or -1
	// if no match can begin at or after start.
	//
	// A candidate is a position where a match may begin. The caller must
	// still run the matcher there unless IsComplete reports true.
	Find(haystack []byte, start int) int

	// IsComplete returns true if a candidate is itself a match of
	// LiteralLen bytes.
	IsComplete() bool

	// LiteralLen returns the length of the matched literal when IsComplete
	// is true, and 0 otherwise.
	LiteralLen() int

	// HeapBytes returns the number of heap bytes used by this prefilter.
	HeapBytes() int
}

// Candidates adapts pf to the matcher's candidate function. A nil pf yields
// a nil function, which makes the matcher try every offset.
func Candidates(pf Prefilter) backtrack.Candidates {
	if pf == nil {
		return nil
	}
	return pf.Find
}

// Builder selects a prefilter for a compiled pattern.
type Builder struct {
	p         *prog.Prog
	extractor *literal.Extractor
}

// NewBuilder creates a builder for p. A nil extractor uses the default
// extraction limits.
func NewBuilder(p *prog.Prog, extractor *literal.Extractor) *Builder {
	if extractor == nil {
		extractor = literal.New(literal.DefaultConfig())
	}
	return &Builder{p: p, extractor: extractor}
}

// Build returns the prefilter for the pattern, or nil when no prefilter
// applies. Patterns anchored with a leading ^ get none: the matcher only
// tries offset 0 for them.
func (b *Builder) Build() Prefilter {
	if b.p.Kind(0) == prog.Begin {
		return nil
	}
	if lit, ok := b.extractor.ExtractPrefix(b.p); ok {
		if lit.Len() == 1 {
			return newMemchrPrefilter(lit.Bytes[0], lit.Complete)
		}
		return newMemmemPrefilter(lit.Bytes, lit.Complete)
	}
	if a := b.p.Atom(0); a.Kind == prog.Bracket {
		if q := b.p.Kind(1); q != prog.Question && q != prog.Star {
			return newClassPrefilter(a.Class)
		}
	}
	return nil
}

// memchrPrefilter finds the single byte every match starts with.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) Prefilter {
	return &memchrPrefilter{needle: needle, complete: complete}
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	if pos := simd.Memchr(haystack[start:], p.needle); pos >= 0 {
		return start + pos
	}
	return -1
}

func (p *memchrPrefilter) IsComplete() bool {
	return p.complete
}

func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

func (p *memchrPrefilter) HeapBytes() int {
	return 0
}

// memmemPrefilter finds the literal prefix every match starts with.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func newMemmemPrefilter(needle []byte, complete bool) Prefilter {
	return &memmemPrefilter{needle: needle, complete: complete}
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start > len(haystack)-len(p.needle) {
		return -1
	}
	if pos := simd.Memmem(haystack[start:], p.needle); pos >= 0 {
		return start + pos
	}
	return -1
}

func (p *memmemPrefilter) IsComplete() bool {
	return p.complete
}

func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

func (p *memmemPrefilter) HeapBytes() int {
	return len(p.needle)
}
