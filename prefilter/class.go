package prefilter

import (
	"github.com/coregx/regexlight/backtrack"
	"github.com/coregx/regexlight/simd"
)

// classPrefilter finds bytes admitted by the bracket expression every match
// starts with.
type classPrefilter struct {
	table [256]bool
}

func newClassPrefilter(class []byte) Prefilter {
	p := &classPrefilter{}
	for c := range 256 {
		p.table[c] = backtrack.MatchClass(class, byte(c))
	}
	return p
}

func (p *classPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	if pos := simd.MemchrInTable(haystack[start:], &p.table); pos >= 0 {
		return start + pos
	}
	return -1
}

func (p *classPrefilter) IsComplete() bool {
	return false
}

func (p *classPrefilter) LiteralLen() int {
	return 0
}

func (p *classPrefilter) HeapBytes() int {
	return len(p.table)
}
