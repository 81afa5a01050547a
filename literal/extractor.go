package literal

import "github.com/coregx/regexlight/prog"

// ExtractorConfig configures literal extraction limits.
//
// Example:
//
//	config := literal.ExtractorConfig{
//	    MinLiteralLen: 2,
//	    MaxLiterals:   8,
//	    MaxLiteralLen: 64,
//	}
//	extractor := literal.New(config)
type ExtractorConfig struct {
	// MinLiteralLen drops required literals shorter than this. Single bytes
	// are common enough in text that checking for them rarely pays off.
	// Default: 2.
	MinLiteralLen int

	// MaxLiterals limits the number of required literals kept after
	// minimization. Default: 8.
	MaxLiterals int

	// MaxLiteralLen splits longer literal runs into pieces of at most this
	// length. Default: 64.
	MaxLiteralLen int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MinLiteralLen: 2,
		MaxLiterals:   8,
		MaxLiteralLen: 64,
	}
}

// Extractor extracts literals from a compiled pattern.
//
// It walks the atom sequence of a prog.Prog and reports:
//   - Required literals: byte strings every match must contain
//   - Prefix: the literal every match must start with
//
// Example:
//
//	p, _ := prog.Compile(`(ab)+c\d`, nil)
//	e := literal.New(literal.DefaultConfig())
//	seq := e.ExtractRequired(p)
//	// seq.Strings() == ["ab"]
type Extractor struct {
	config ExtractorConfig
}

// New creates a new Extractor with the given configuration.
// Non-positive limits are replaced by their defaults.
func New(config ExtractorConfig) *Extractor {
	def := DefaultConfig()
	if config.MinLiteralLen <= 0 {
		config.MinLiteralLen = def.MinLiteralLen
	}
	if config.MaxLiterals <= 0 {
		config.MaxLiterals = def.MaxLiterals
	}
	if config.MaxLiteralLen <= 0 {
		config.MaxLiteralLen = def.MaxLiteralLen
	}
	return &Extractor{config: config}
}

// ExtractRequired returns the literals that any text matched by p contains,
// minimized and truncated to MaxLiterals. The result may be empty but is
// never nil.
//
// A run of literal atoms is broken by anything that is not a literal. A
// literal under ? or * is optional and leaves the run; a literal under +
// ends the run it belongs to and starts the next one, since its last
// repetition sits directly before what follows. Groups under ? or * are
// skipped whole; other group bodies are walked on their own.
//
// Examples:
//
//	"hello.*world"  → ["hello", "world"]
//	"ab?cd"         → ["cd"]
//	"xa+b"          → ["xa", "ab"]
//	"(foo)?bar"     → ["bar"]
func (e *Extractor) ExtractRequired(p *prog.Prog) *Seq {
	w := &walker{p: p, cfg: e.config, seq: NewSeq()}
	w.walk(0, max(p.Len()-1, 0))
	w.seq.Minimize()
	w.seq.Truncate(e.config.MaxLiterals)
	return w.seq
}

// ExtractPrefix returns the literal every match of p starts with. The
// literal is Complete when it is the entire pattern. ok is false when
// matches may start with different bytes.
//
// Examples:
//
//	"abc"    → literal{abc, complete=true}
//	"ab+c"   → literal{ab, complete=false}
//	"ab?"    → literal{a, complete=false}
//	"^ab"    → literal{ab, complete=false}
//	".ab"    → not ok
func (e *Extractor) ExtractPrefix(p *prog.Prog) (lit Literal, ok bool) {
	end := max(p.Len()-1, 0)
	i := 0
	if p.Kind(0) == prog.Begin {
		i++
	}
	var run []byte
	plain := i == 0
	for i < end && len(run) < e.config.MaxLiteralLen {
		a := p.Atom(i)
		if a.Kind != prog.Lit {
			break
		}
		next := p.Kind(i + 1)
		if next == prog.Question || next == prog.Star {
			plain = false
			break
		}
		run = append(run, a.Ch)
		i++
		if next == prog.Plus {
			plain = false
			break
		}
	}
	if len(run) == 0 {
		return Literal{}, false
	}
	return NewLiteral(run, plain && i == end), true
}

type walker struct {
	p   *prog.Prog
	cfg ExtractorConfig
	seq *Seq
	run []byte
}

func (w *walker) flush() {
	if len(w.run) >= w.cfg.MinLiteralLen {
		w.seq.literals = append(w.seq.literals, NewLiteral(w.run, false))
	}
	w.run = nil
}

func (w *walker) add(c byte) {
	if len(w.run) == w.cfg.MaxLiteralLen {
		w.flush()
	}
	w.run = append(w.run, c)
}

// walk scans atoms [lo, hi).
func (w *walker) walk(lo, hi int) {
	kind := func(i int) prog.Kind {
		if i >= hi {
			return prog.Term
		}
		return w.p.Kind(i)
	}

	i := lo
	for i < hi {
		a := w.p.Atom(i)
		next := kind(i + 1)
		switch a.Kind {
		case prog.Lit:
			switch next {
			case prog.Question, prog.Star:
				w.flush()
				i += 2
			case prog.Plus:
				w.add(a.Ch)
				w.flush()
				w.run = []byte{a.Ch}
				i += 2
			default:
				w.add(a.Ch)
				i++
			}
		case prog.GroupOpen:
			w.flush()
			end := groupEnd(w.p, i, hi)
			q := kind(end + 1)
			if end < hi && (q == prog.Question || q == prog.Star) {
				i = end + 2
				continue
			}
			w.walk(i+1, end)
			w.flush()
			i = end + 1
			if q == prog.Plus {
				i++
			}
		default:
			w.flush()
			i++
			if next.IsQuantifier() {
				i++
			}
		}
	}
	w.flush()
}

// groupEnd returns the index of the GroupClose matching the GroupOpen at
// open, or hi when the group is never closed before hi.
func groupEnd(p *prog.Prog, open, hi int) int {
	depth := 0
	for i := open + 1; i < hi; i++ {
		switch p.Kind(i) {
		case prog.GroupOpen:
			depth++
		case prog.GroupClose:
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return hi
}
