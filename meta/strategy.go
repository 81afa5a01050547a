package meta

import (
	"github.com/coregx/regexlight/prefilter"
	"github.com/coregx/regexlight/prog"
)

// Strategy represents the execution strategy for a compiled pattern.
//
// Strategy selection is automatic based on pattern analysis.
type Strategy int

const (
	// UseBacktrack runs the matcher at every start offset.
	// Selected for:
	//   - Patterns whose first atom is optional or a wildcard
	//   - When EnablePrefilter is false in config
	UseBacktrack Strategy = iota

	// UseAnchored runs the matcher at offset 0 only.
	// Selected for patterns beginning with ^.
	UseAnchored

	// UsePrefilter runs the matcher only at offsets returned by a prefilter.
	// Selected for patterns that begin with a literal or a bracket
	// expression that must match at least once.
	UsePrefilter

	// UseLiteral answers searches with a substring search alone.
	// Selected for patterns that are a plain literal string without groups,
	// where finding the literal is the match.
	UseLiteral
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseBacktrack:
		return "UseBacktrack"
	case UseAnchored:
		return "UseAnchored"
	case UsePrefilter:
		return "UsePrefilter"
	case UseLiteral:
		return "UseLiteral"
	default:
		return "Unknown"
	}
}

// selectStrategy picks the strategy for p given the prefilter that was
// built for it (nil when none applies or prefiltering is disabled).
func selectStrategy(p *prog.Prog, pf prefilter.Prefilter) Strategy {
	if p.Kind(0) == prog.Begin {
		return UseAnchored
	}
	if pf == nil {
		return UseBacktrack
	}
	if pf.IsComplete() && p.NumSubexp() == 0 {
		return UseLiteral
	}
	return UsePrefilter
}
