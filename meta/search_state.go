package meta

import (
	"sync"

	"github.com/coregx/regexlight/backtrack"
)

// searchStatePool manages backtrack.State values for thread-safe reuse.
// This follows the stdlib regexp pattern of using sync.Pool for concurrent
// safety: the compiled Prog is shared read-only, and every search borrows
// its own State.
type searchStatePool struct {
	pool sync.Pool

	// limit is the largest buffer, in coverage entries, a returned State
	// may keep.
	limit int
}

func newSearchStatePool(maxStateBytes int) *searchStatePool {
	p := &searchStatePool{limit: maxStateBytes / 8}
	p.pool = sync.Pool{
		New: func() any {
			return backtrack.NewState()
		},
	}
	return p
}

// get retrieves a State from the pool, creating one if necessary.
func (p *searchStatePool) get() *backtrack.State {
	return p.pool.Get().(*backtrack.State)
}

// put returns a State to the pool for reuse.
func (p *searchStatePool) put(state *backtrack.State) {
	if state == nil {
		return
	}
	state.Release(p.limit)
	p.pool.Put(state)
}
