package backtrack

// MaxGroupDepth is the capacity of the saved-group stack, and therefore the
// deepest group nesting a pattern can match through.
const MaxGroupDepth = 10

// groupStack holds the group index that was current when each still-open
// ancestor group was entered. It is a value type so snapshots copy it.
type groupStack struct {
	items [MaxGroupDepth]int
	n     int
}

func (s *groupStack) push(g int) error {
	if s.n == MaxGroupDepth {
		return ErrGroupStackOverflow
	}
	s.items[s.n] = g
	s.n++
	return nil
}

func (s *groupStack) pop() int {
	if s.n == 0 {
		return 0
	}
	s.n--
	return s.items[s.n]
}

// mask returns the coverage bits of every saved group.
func (s *groupStack) mask() uint64 {
	var m uint64
	for _, g := range s.items[:s.n] {
		m |= 1 << g
	}
	return m
}

// undo records the previous coverage value of one position.
type undo struct {
	pos int
	old uint64
}

// snapshot captures everything a speculative attempt may change. Coverage
// is restored by unwinding the journal back to the recorded length.
type snapshot struct {
	journal int
	cur     int
	max     int
	stack   groupStack
}

// State is the mutable state of one search.
//
// cov holds one bitmask per text position: bit i set means the byte is
// currently attributed to group i, bit 0 to the whole match. Every write to
// cov is journaled so that an abandoned attempt can be rolled back exactly.
//
// A State must not be shared between concurrent searches.
type State struct {
	cur      int // innermost open group, 0 when none
	max      int // highest group index opened in this attempt
	stack    groupStack
	cov      []uint64
	journal  []undo
	hi       int // cov[hi:] is all zero
	overflow bool
}

// NewState returns an empty State. It grows on first use.
func NewState() *State {
	return &State{}
}

// reset prepares the State for a search over text.
func (s *State) reset(text []byte) {
	if cap(s.cov) >= len(text) {
		s.cov = s.cov[:len(text)]
		clear(s.cov)
	} else {
		s.cov = make([]uint64, len(text))
	}
	s.journal = s.journal[:0]
	s.hi = 0
	s.cur, s.max = 0, 0
	s.stack = groupStack{}
	s.overflow = false
}

// clearAttempt discards all marks and counters after a failed start offset.
func (s *State) clearAttempt() {
	clear(s.cov[:s.hi])
	s.hi = 0
	s.journal = s.journal[:0]
	s.cur, s.max = 0, 0
	s.stack = groupStack{}
}

// Release trims buffers that grew past limit so a pooled State does not
// pin memory from one unusually large search.
func (s *State) Release(limit int) {
	if cap(s.cov) > limit {
		s.cov = nil
	}
	if cap(s.journal) > limit {
		s.journal = nil
	}
	s.journal = s.journal[:0]
}

// Coverage returns the per-position group bitmasks of the last search.
// The slice is owned by the State and valid until its next search.
func (s *State) Coverage() []uint64 {
	return s.cov
}

// MaxGroup returns the highest group index opened by the successful attempt.
func (s *State) MaxGroup() int {
	return s.max
}

// Overflowed reports whether any attempt of the last search was cut short
// by ErrGroupStackOverflow.
func (s *State) Overflowed() bool {
	return s.overflow
}

func (s *State) set(pos int, v uint64) {
	s.journal = append(s.journal, undo{pos: pos, old: s.cov[pos]})
	s.cov[pos] = v
	if pos >= s.hi {
		s.hi = pos + 1
	}
}

// openMask is the coverage value for a byte matched right now.
func (s *State) openMask() uint64 {
	return 1 | 1<<s.cur | s.stack.mask()
}

// mark attributes the byte at pos to every open group and returns the
// journal length to unwind to if the attempt is abandoned.
func (s *State) mark(pos int) int {
	j := len(s.journal)
	s.set(pos, s.openMask())
	return j
}

func (s *State) unwind(j int) {
	for k := len(s.journal) - 1; k >= j; k-- {
		u := s.journal[k]
		s.cov[u.pos] = u.old
	}
	s.journal = s.journal[:j]
}

func (s *State) save() snapshot {
	return snapshot{journal: len(s.journal), cur: s.cur, max: s.max, stack: s.stack}
}

func (s *State) restore(sn snapshot) {
	s.unwind(sn.journal)
	s.cur = sn.cur
	s.max = sn.max
	s.stack = sn.stack
}

// clearGroups removes groups lo..hi from the positions in [from, to), the
// span of the previous repetition, so a repeated group only reports its
// latest repetition. Repetitions before that one were cleared when the
// previous repetition started.
func (s *State) clearGroups(lo, hi, from, to int) {
	var m uint64
	for g := lo; g <= hi && g < 64; g++ {
		m |= 1 << g
	}
	for p := max(from, 0); p < min(to, s.hi); p++ {
		if s.cov[p]&m != 0 {
			s.set(p, s.cov[p]&^m)
		}
	}
}
