package prog

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"strings"
)

// atomSize is the width of one encoded atom record:
//
//	[0]   kind
//	[1]   literal byte
//	[2:4] class length (uint16, little-endian)
//	[4:8] class offset or group ordinal (uint32, little-endian)
const atomSize = 8

// MaxGroups is the largest number of groups a pattern may declare.
// Bit 0 of a coverage mask belongs to the whole match.
const MaxGroups = 63

// Prog is a compiled pattern.
//
// A Prog is read-only after Compile and safe to share between goroutines.
// Free must not be called while another goroutine is still using the Prog.
type Prog struct {
	block   []byte
	natoms  int
	nsub    int
	pattern string
	alloc   Allocator
}

// Pattern returns the source text the Prog was compiled from.
func (p *Prog) Pattern() string {
	return p.pattern
}

// Len returns the number of atoms including the trailing Term.
func (p *Prog) Len() int {
	return p.natoms
}

// NumSubexp returns the number of parenthesized groups.
func (p *Prog) NumSubexp() int {
	return p.nsub
}

// Size returns the size in bytes of the owned block.
func (p *Prog) Size() int {
	return len(p.block)
}

// Atom decodes the atom at index i. Any index outside the sequence decodes
// as Term, so lookahead past the end is always safe.
func (p *Prog) Atom(i int) Atom {
	if i < 0 || i >= p.natoms {
		return Atom{Kind: Term}
	}
	rec := p.block[i*atomSize : (i+1)*atomSize]
	a := Atom{Kind: Kind(rec[0]), Ch: rec[1]}
	n := int(binary.LittleEndian.Uint16(rec[2:4]))
	v := int(binary.LittleEndian.Uint32(rec[4:8]))
	switch a.Kind {
	case Bracket:
		base := p.natoms*atomSize + v
		a.Class = p.block[base : base+n : base+n]
	case GroupOpen, GroupClose:
		a.Group = v
	}
	return a
}

// Kind returns the kind of the atom at index i without decoding its payload.
func (p *Prog) Kind(i int) Kind {
	if i < 0 || i >= p.natoms {
		return Term
	}
	return Kind(p.block[i*atomSize])
}

// Free returns the block to the allocator. The Prog then behaves as the
// empty pattern. Calling Free more than once is harmless.
func (p *Prog) Free() {
	if p.block == nil {
		return
	}
	p.alloc.Free(p.block)
	p.block = nil
	p.natoms = 0
	p.nsub = 0
}

// String dumps the atom sequence, one atom per line.
func (p *Prog) String() string {
	var sb strings.Builder
	for i := 0; i < p.natoms; i++ {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		sb.WriteString(p.Atom(i).String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equal reports whether a and b encode the same atom sequence.
func Equal(a, b *Prog) bool {
	if a.natoms != b.natoms || a.nsub != b.nsub {
		return false
	}
	for i := 0; i < a.natoms; i++ {
		x, y := a.Atom(i), b.Atom(i)
		if x.Kind != y.Kind || x.Ch != y.Ch || x.Group != y.Group || !bytes.Equal(x.Class, y.Class) {
			return false
		}
	}
	return true
}
