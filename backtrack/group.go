package backtrack

import "github.com/coregx/regexlight/prog"

// closeOf finds the GroupClose balancing the GroupOpen at i, counting the
// groups nested inside it. A group left open runs to stop.
func (m *matcher) closeOf(i, stop int) (closeIdx, inner int) {
	depth := 0
	for j := i + 1; j < stop; j++ {
		switch m.p.Kind(j) {
		case prog.GroupOpen:
			depth++
			inner++
		case prog.GroupClose:
			if depth == 0 {
				return j, inner
			}
			depth--
		}
	}
	return stop, inner
}

// group describes one group occurrence during a search.
type group struct {
	open  int // index of the GroupOpen atom
	close int // index of the matching GroupClose, the body's logical end
	index int // capture index
	inner int // number of groups nested in the body
	rest  int // first atom after the group and its quantifier
}

// matchGroup matches the group opened at i and whatever follows it.
func (m *matcher) matchGroup(i, stop, pos int) int {
	closeIdx, inner := m.closeOf(i, stop)
	g := group{open: i, close: closeIdx, index: m.p.Atom(i).Group, inner: inner, rest: closeIdx + 1}
	if closeIdx >= stop {
		g.rest = stop
	}

	q := m.kind(g.rest, stop)
	if q.IsQuantifier() {
		g.rest++
	}
	switch q {
	case prog.Question:
		return m.groupQuestion(g, stop, pos)
	case prog.Star:
		return m.groupStar(g, stop, pos, pos)
	case prog.Plus:
		return m.groupPlus(g, stop, pos)
	}

	sn := m.s.save()
	if e := m.groupOnce(g, pos, pos); e >= 0 {
		if r := m.matchHere(g.rest, stop, e); r >= 0 {
			return r
		}
	}
	m.s.restore(sn)
	return -1
}

// groupOnce matches the body of g exactly once at pos and returns its end
// offset. prev is where the previous repetition of g started, or pos for
// the first one; the marks g and its inner groups left in [prev, pos) are
// dropped first, so the group reports its latest repetition.
func (m *matcher) groupOnce(g group, prev, pos int) int {
	s := m.s
	sn := s.save()
	if err := s.stack.push(s.cur); err != nil {
		s.overflow = true
		return -1
	}
	s.cur = g.index
	s.max = max(s.max, g.index)
	s.clearGroups(g.index, g.index+g.inner, prev, pos)

	e := m.matchHere(g.open+1, g.close, pos)
	if e < 0 {
		s.restore(sn)
		return -1
	}
	s.cur = s.stack.pop()
	return e
}

// groupQuestion matches g zero or one time, preferring one.
func (m *matcher) groupQuestion(g group, stop, pos int) int {
	sn := m.s.save()
	if e := m.groupOnce(g, pos, pos); e >= 0 {
		if r := m.matchHere(g.rest, stop, e); r >= 0 {
			return r
		}
	}
	m.s.restore(sn)
	return m.matchHere(g.rest, stop, pos)
}

// groupStar matches g as many times as it can, then the rest. When a
// repetition or everything after it fails, that repetition is undone and
// the rest is tried from the previous position. prev is the start of the
// repetition that ended at pos.
func (m *matcher) groupStar(g group, stop, prev, pos int) int {
	sn := m.s.save()
	// A repetition that consumed nothing ends the loop.
	if e := m.groupOnce(g, prev, pos); e > pos {
		if r := m.groupStar(g, stop, pos, e); r >= 0 {
			return r
		}
	}
	m.s.restore(sn)
	return m.matchHere(g.rest, stop, pos)
}

// groupPlus matches g at least once, then behaves as groupStar.
func (m *matcher) groupPlus(g group, stop, pos int) int {
	sn := m.s.save()
	e := m.groupOnce(g, pos, pos)
	if e < 0 {
		return -1
	}
	var r int
	if e > pos {
		r = m.groupStar(g, stop, pos, e)
	} else {
		r = m.matchHere(g.rest, stop, e)
	}
	if r >= 0 {
		return r
	}
	m.s.restore(sn)
	return -1
}
