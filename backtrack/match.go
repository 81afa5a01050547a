// Package backtrack implements the recursive backtracking matcher that runs
// a compiled prog.Prog against a byte string.
//
// The matcher is greedy with local backtracking: quantifiers take the
// longest run first and shrink it only when the rest of the pattern fails,
// and a group body that has matched is not re-entered to try a shorter
// alternative. Capture information is recorded eagerly, one coverage
// bitmask per byte, and rolled back whenever a speculative attempt is
// abandoned.
//
// The matcher never writes to the Prog. Group bodies are delimited by
// passing the index of their closing atom down the recursion as the logical
// end of the sequence.
//
// Nested quantified groups such as ((a*)*)* can take exponential time on
// inputs that do not match. There is no timeout or cancellation.
package backtrack

import "github.com/coregx/regexlight/prog"

// Candidates returns the first offset at or after from where a match could
// start, or -1 if none can. It lets a prefilter skip hopeless offsets.
type Candidates func(text []byte, from int) int

type matcher struct {
	p    *prog.Prog
	s    *State
	text []byte
}

// Exec searches text for the leftmost match of p.
//
// Start offsets are tried in increasing order; a pattern beginning with ^
// is only tried at offset 0. next may be nil. On success the coverage of
// the winning attempt is left in s for DecodeCaptures.
func Exec(s *State, p *prog.Prog, text []byte, next Candidates) (start, end int, ok bool) {
	s.reset(text)
	m := &matcher{p: p, s: s, text: text}
	stop := max(p.Len()-1, 0)

	if p.Kind(0) == prog.Begin {
		if e := m.matchHere(1, stop, 0); e >= 0 {
			return 0, e, true
		}
		s.clearAttempt()
		return -1, -1, false
	}

	for start = 0; start <= len(text); start++ {
		if next != nil {
			if start = next(text, start); start < 0 {
				break
			}
		}
		if e := m.matchHere(0, stop, start); e >= 0 {
			return start, e, true
		}
		s.clearAttempt()
	}
	return -1, -1, false
}

// kind returns the kind of atom i, treating stop and beyond as Term.
func (m *matcher) kind(i, stop int) prog.Kind {
	if i >= stop {
		return prog.Term
	}
	return m.p.Kind(i)
}

// matchOne reports whether atom i accepts the byte at pos.
func (m *matcher) matchOne(i, pos int) bool {
	if pos >= len(m.text) {
		return false
	}
	a := m.p.Atom(i)
	switch a.Kind {
	case prog.Lit:
		return a.Ch == m.text[pos]
	case prog.Dot:
		return true
	case prog.Bracket:
		return MatchClass(a.Class, m.text[pos])
	}
	return false
}

// matchHere matches atoms i..stop at pos and returns the end offset of the
// match, or -1. A failed call leaves the State as it found it.
func (m *matcher) matchHere(i, stop, pos int) int {
	k := m.kind(i, stop)
	switch k {
	case prog.Term:
		return pos
	case prog.GroupOpen:
		return m.matchGroup(i, stop, pos)
	case prog.GroupClose:
		// unopened ')' matches the empty string
		return m.matchHere(i+1, stop, pos)
	}

	switch m.kind(i+1, stop) {
	case prog.Question:
		return m.matchQuestion(i, stop, pos)
	case prog.Star:
		return m.matchStar(i, stop, pos, 0)
	case prog.Plus:
		return m.matchStar(i, stop, pos, 1)
	}

	switch k {
	case prog.End:
		if pos != len(m.text) {
			return -1
		}
		return m.matchHere(i+1, stop, pos)
	case prog.Begin:
		if pos != 0 {
			return -1
		}
		return m.matchHere(i+1, stop, pos)
	}

	if !m.matchOne(i, pos) {
		return -1
	}
	j := m.s.mark(pos)
	if e := m.matchHere(i+1, stop, pos+1); e >= 0 {
		return e
	}
	m.s.unwind(j)
	return -1
}

// matchQuestion matches atom i zero or one time, preferring one.
func (m *matcher) matchQuestion(i, stop, pos int) int {
	if m.matchOne(i, pos) {
		j := m.s.mark(pos)
		if e := m.matchHere(i+2, stop, pos+1); e >= 0 {
			return e
		}
		m.s.unwind(j)
	}
	return m.matchHere(i+2, stop, pos)
}

// matchStar matches atom i at least `least` times, taking the longest run
// first and giving back one byte at a time until the rest matches.
func (m *matcher) matchStar(i, stop, pos, least int) int {
	n := pos
	for m.matchOne(i, n) {
		n++
	}
	if n-pos < least {
		return -1
	}

	j := len(m.s.journal)
	mask := m.s.openMask()
	for p := pos; p < n; p++ {
		m.s.set(p, mask)
	}
	for end := n; end >= pos+least; end-- {
		if e := m.matchHere(i+2, stop, end); e >= 0 {
			return e
		}
		// give back the byte at end-1
		m.s.unwind(j + max(end-1-pos, 0))
	}
	m.s.unwind(j)
	return -1
}
