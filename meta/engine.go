package meta

import (
	"sync/atomic"

	"github.com/coregx/regexlight/backtrack"
	"github.com/coregx/regexlight/literal"
	"github.com/coregx/regexlight/prefilter"
	"github.com/coregx/regexlight/prog"
)

// Engine is a compiled pattern ready for searching.
//
// Thread safety: an Engine is safe for concurrent searches. The compiled
// Prog, the prefilter and the required-literal set are read-only; each
// search borrows its own backtrack.State from a pool. Free must not run
// concurrently with a search.
//
// Example:
//
//	engine, err := meta.Compile(`(\w+)@(\w+)\.com`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	spans, ok := engine.Exec([]byte("mail bob@example.com"), 3)
//	// ok == true, spans[1] == {5, 8}, spans[2] == {9, 16}
type Engine struct {
	// IMPORTANT: stats MUST be first field for proper 8-byte alignment on 32-bit platforms.
	// atomic.AddUint64 requires 8-byte aligned addresses.
	stats Stats

	prog     *prog.Prog
	config   Config
	strategy Strategy

	pf       prefilter.Prefilter
	next     backtrack.Candidates
	required *prefilter.Required

	states *searchStatePool
}

// Stats tracks execution statistics for performance analysis.
// The counters are updated atomically.
type Stats struct {
	// Searches counts all searches.
	Searches uint64

	// Matches counts searches that found a match.
	Matches uint64

	// RequiredRejects counts searches rejected because the text lacked a
	// required literal.
	RequiredRejects uint64

	// PrefilterSkips counts searches the prefilter answered without running
	// the matcher because no match could begin anywhere in the text.
	PrefilterSkips uint64

	// LiteralSearches counts searches answered by a substring search alone.
	LiteralSearches uint64

	// StackOverflows counts searches in which some attempt failed because
	// groups nested deeper than backtrack.MaxGroupDepth.
	StackOverflows uint64
}

// Compile compiles a pattern with DefaultConfig.
//
// Example:
//
//	engine, err := meta.Compile("a(b*)c")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Steps:
//  1. Validate the configuration
//  2. Compile the pattern to a prog.Prog in a block from config.Allocator
//  3. Extract required literals and a start prefilter (if enabled)
//  4. Select the strategy
//
// Returns a *ConfigError for an invalid configuration and a
// *prog.CompileError when the pattern exceeds a capacity limit.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p, err := prog.Compile(pattern, config.Allocator)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		prog:   p,
		config: config,
		states: newSearchStatePool(config.MaxStateBytes),
	}

	if config.EnablePrefilter {
		extractor := literal.New(literal.ExtractorConfig{
			MinLiteralLen: config.MinLiteralLen,
			MaxLiterals:   config.MaxLiterals,
		})
		e.pf = prefilter.NewBuilder(p, extractor).Build()
		if e.pf == nil || !e.pf.IsComplete() {
			// A failed automaton build only costs the early rejection.
			if req, err := prefilter.NewRequired(extractor.ExtractRequired(p)); err == nil {
				e.required = req
			}
		}
	}

	e.strategy = selectStrategy(p, e.pf)
	e.next = prefilter.Candidates(e.pf)
	return e, nil
}

// Pattern returns the source text of the compiled pattern.
func (e *Engine) Pattern() string {
	return e.prog.Pattern()
}

// Prog returns the compiled atom sequence.
func (e *Engine) Prog() *prog.Prog {
	return e.prog
}

// NumSubexp returns the number of parenthesized groups in the pattern.
func (e *Engine) NumSubexp() int {
	return e.prog.NumSubexp()
}

// Strategy returns the execution strategy selected for this engine.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// HeapBytes returns the bytes held by the compiled pattern: the atom block,
// the prefilter and the required-literal copies.
func (e *Engine) HeapBytes() int {
	n := e.prog.Size() + e.required.HeapBytes()
	if e.pf != nil {
		n += e.pf.HeapBytes()
	}
	return n
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:        atomic.LoadUint64(&e.stats.Searches),
		Matches:         atomic.LoadUint64(&e.stats.Matches),
		RequiredRejects: atomic.LoadUint64(&e.stats.RequiredRejects),
		PrefilterSkips:  atomic.LoadUint64(&e.stats.PrefilterSkips),
		LiteralSearches: atomic.LoadUint64(&e.stats.LiteralSearches),
		StackOverflows:  atomic.LoadUint64(&e.stats.StackOverflows),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Searches, 0)
	atomic.StoreUint64(&e.stats.Matches, 0)
	atomic.StoreUint64(&e.stats.RequiredRejects, 0)
	atomic.StoreUint64(&e.stats.PrefilterSkips, 0)
	atomic.StoreUint64(&e.stats.LiteralSearches, 0)
	atomic.StoreUint64(&e.stats.StackOverflows, 0)
}

// Free releases the compiled pattern's block to its allocator. Afterwards
// the engine behaves as the empty pattern. Calling Free more than once is
// harmless.
func (e *Engine) Free() {
	e.prog.Free()
	e.pf = nil
	e.next = nil
	e.required = nil
	e.strategy = selectStrategy(e.prog, nil)
}

// Exec searches haystack and reports the match as nmatch spans: index 0
// is the whole match and index i the span of group i. Slots for groups
// that did not participate, or that the pattern does not have, are
// backtrack.Unset. A quantified group reports its last repetition.
//
// It returns nil, false when there is no match. nmatch <= 0 only reports
// whether a match exists.
func (e *Engine) Exec(haystack []byte, nmatch int) ([]backtrack.Span, bool) {
	spans := make([]backtrack.Span, max(nmatch, 0))
	if _, _, ok := e.search(haystack, 0, spans); !ok {
		return nil, false
	}
	return spans, true
}

// ExecAt is like Exec but only considers matches starting at or after at.
// Anchors still refer to the whole haystack: ^ only matches at offset 0.
func (e *Engine) ExecAt(haystack []byte, at, nmatch int) ([]backtrack.Span, bool) {
	spans := make([]backtrack.Span, max(nmatch, 0))
	if _, _, ok := e.search(haystack, at, spans); !ok {
		return nil, false
	}
	return spans, true
}

// IsMatch reports whether haystack contains a match.
func (e *Engine) IsMatch(haystack []byte) bool {
	_, _, ok := e.search(haystack, 0, nil)
	return ok
}

// FindIndices returns the bounds of the leftmost match.
func (e *Engine) FindIndices(haystack []byte) (start, end int, found bool) {
	return e.search(haystack, 0, nil)
}

// FindIndicesAt returns the bounds of the leftmost match starting at or
// after at.
func (e *Engine) FindIndicesAt(haystack []byte, at int) (start, end int, found bool) {
	return e.search(haystack, at, nil)
}

// search runs one search from offset at. When spans is non-empty it is
// filled with the decoded captures of the match.
func (e *Engine) search(haystack []byte, at int, spans []backtrack.Span) (start, end int, ok bool) {
	atomic.AddUint64(&e.stats.Searches, 1)

	if at < 0 || at > len(haystack) || (at > 0 && e.strategy == UseAnchored) {
		return -1, -1, false
	}
	if !e.required.Admit(haystack[at:]) {
		atomic.AddUint64(&e.stats.RequiredRejects, 1)
		return -1, -1, false
	}

	switch e.strategy {
	case UseLiteral:
		atomic.AddUint64(&e.stats.LiteralSearches, 1)
		pos := e.pf.Find(haystack, at)
		if pos < 0 {
			return -1, -1, false
		}
		start, end = pos, pos+e.pf.LiteralLen()
		for i := range spans {
			spans[i] = backtrack.Unset
		}
		if len(spans) > 0 {
			spans[0] = backtrack.Span{Start: start, End: end}
		}
		atomic.AddUint64(&e.stats.Matches, 1)
		return start, end, true
	case UsePrefilter:
		if e.pf.Find(haystack, at) < 0 {
			atomic.AddUint64(&e.stats.PrefilterSkips, 1)
			return -1, -1, false
		}
	}

	next := e.next
	if at > 0 {
		next = e.candidatesFrom(at)
	}

	state := e.states.get()
	defer e.states.put(state)

	start, end, ok = backtrack.Exec(state, e.prog, haystack, next)
	if state.Overflowed() {
		atomic.AddUint64(&e.stats.StackOverflows, 1)
	}
	if !ok {
		return -1, -1, false
	}
	if len(spans) > 0 {
		// Groups above the highest one opened carry no marks.
		n := min(len(spans), state.MaxGroup()+1)
		backtrack.DecodeCaptures(state.Coverage(), spans[:n])
		for i := n; i < len(spans); i++ {
			spans[i] = backtrack.Unset
		}
		spans[0] = backtrack.Span{Start: start, End: end}
	}
	atomic.AddUint64(&e.stats.Matches, 1)
	return start, end, true
}

// candidatesFrom returns a candidate function that never proposes an offset
// below at.
func (e *Engine) candidatesFrom(at int) backtrack.Candidates {
	inner := e.next
	return func(text []byte, from int) int {
		from = max(from, at)
		if inner == nil {
			return from
		}
		return inner(text, from)
	}
}
