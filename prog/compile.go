package prog

import (
	"encoding/binary"
	"math"

	"github.com/coregx/regexlight/internal/conv"
)

// Contents of the predefined classes behind \w, \s and \d.
const (
	classWord  = "a-zA-Z0-9_"
	classSpace = " \t\f\r\n"
	classDigit = "0-9"
)

// sink receives the atoms of a pattern scan. The compiler scans every
// pattern twice: once into a measure to size the block, then into a writer
// that fills it.
type sink interface {
	atom(k Kind, ch byte)
	group(k Kind, ordinal int)
	class(content string)
}

type measure struct {
	atoms    int
	classLen int
	maxClass int
}

func (m *measure) atom(Kind, byte) { m.atoms++ }
func (m *measure) group(Kind, int) { m.atoms++ }

func (m *measure) class(content string) {
	m.atoms++
	m.classLen += len(content)
	m.maxClass = max(m.maxClass, len(content))
}

type writer struct {
	block    []byte
	next     int // next atom index
	classOff int // next free byte in the class region, relative to its start
	base     int // start of the class region
}

func (w *writer) record() []byte {
	rec := w.block[w.next*atomSize : (w.next+1)*atomSize]
	w.next++
	clear(rec)
	return rec
}

func (w *writer) atom(k Kind, ch byte) {
	rec := w.record()
	rec[0] = byte(k)
	rec[1] = ch
}

func (w *writer) group(k Kind, ordinal int) {
	rec := w.record()
	rec[0] = byte(k)
	binary.LittleEndian.PutUint32(rec[4:8], conv.IntToUint32(ordinal))
}

func (w *writer) class(content string) {
	rec := w.record()
	rec[0] = byte(Bracket)
	binary.LittleEndian.PutUint16(rec[2:4], conv.IntToUint16(len(content)))
	binary.LittleEndian.PutUint32(rec[4:8], conv.IntToUint32(w.classOff))
	copy(w.block[w.base+w.classOff:], content)
	w.classOff += len(content)
}

// Compile compiles pattern into a Prog whose block is obtained from alloc.
// A nil alloc uses HeapAllocator.
//
// Compile never rejects a pattern for its syntax. Unbalanced parentheses and
// unterminated bracket expressions compile to whatever atoms the scan
// produces; the matcher gives them a defined meaning. The only errors are
// capacity limits (ErrTooManyGroups, ErrClassTooLong).
func Compile(pattern string, alloc Allocator) (*Prog, error) {
	if alloc == nil {
		alloc = HeapAllocator{}
	}

	var m measure
	nsub := scan(pattern, &m)
	if nsub > MaxGroups {
		return nil, &CompileError{Pattern: pattern, Err: ErrTooManyGroups}
	}
	if m.maxClass > math.MaxUint16 {
		return nil, &CompileError{Pattern: pattern, Err: ErrClassTooLong}
	}

	size := m.atoms*atomSize + m.classLen
	block := alloc.Alloc(size)[:size]
	w := &writer{block: block, base: m.atoms * atomSize}
	scan(pattern, w)

	return &Prog{
		block:   block,
		natoms:  m.atoms,
		nsub:    nsub,
		pattern: pattern,
		alloc:   alloc,
	}, nil
}

// scan walks pattern left to right, emitting atoms into s, and returns the
// number of groups opened. A Term atom is always emitted last.
func scan(pattern string, s sink) int {
	var (
		nsub int
		open []int // ordinals of groups not yet closed
	)
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '.':
			s.atom(Dot, 0)
		case '?':
			s.atom(Question, 0)
		case '*':
			s.atom(Star, 0)
		case '+':
			s.atom(Plus, 0)
		case '^':
			s.atom(Begin, 0)
		case '$':
			s.atom(End, 0)
		case '(':
			nsub++
			open = append(open, nsub)
			s.group(GroupOpen, nsub)
		case ')':
			ordinal := 0
			if n := len(open); n > 0 {
				ordinal = open[n-1]
				open = open[:n-1]
			}
			s.group(GroupClose, ordinal)
		case '\\':
			if i+1 == len(pattern) {
				s.atom(Lit, '\\')
				break
			}
			i++
			switch pattern[i] {
			case 'w':
				s.class(classWord)
			case 's':
				s.class(classSpace)
			case 'd':
				s.class(classDigit)
			default:
				s.atom(Lit, pattern[i])
			}
		case '[':
			end := classEnd(pattern, i+1)
			s.class(pattern[i+1 : end])
			// Resume after the closing bracket, or at the end of an
			// unterminated class.
			i = end
		default:
			s.atom(Lit, c)
		}
	}
	s.atom(Term, 0)
	return nsub
}

// classEnd returns the index of the first unescaped ']' at or after start,
// or len(pattern) if there is none.
func classEnd(pattern string, start int) int {
	j := start
	for j < len(pattern) && pattern[j] != ']' {
		if pattern[j] == '\\' && j+1 < len(pattern) {
			j++
		}
		j++
	}
	return j
}
