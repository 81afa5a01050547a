package backtrack

import "math/bits"

// Span is a half-open byte range [Start, End). Unset spans are (-1, -1).
type Span struct {
	Start int
	End   int
}

// Unset is the span of a group that did not participate in the match.
var Unset = Span{Start: -1, End: -1}

// DecodeCaptures rebuilds group spans from a coverage buffer into spans.
// Every slot is reset to Unset first; slots beyond the groups present in
// the coverage stay Unset.
//
// Positions are scanned from the end towards the start. The first covered
// position seen sets a group's End; every earlier covered position moves
// its Start left. The scan stops at the first uncovered position after a
// covered run, so only one contiguous run is decoded.
func DecodeCaptures(cov []uint64, spans []Span) {
	for i := range spans {
		spans[i] = Unset
	}
	if len(spans) == 0 {
		return
	}

	seen := false
	i := len(cov) - 1
	for ; i >= 0; i-- {
		mask := cov[i]
		if mask == 0 {
			if seen {
				break
			}
			continue
		}
		seen = true
		for m := mask; m != 0; m &= m - 1 {
			g := bits.TrailingZeros64(m)
			if g >= len(spans) {
				break
			}
			if spans[g].End < 0 {
				spans[g].End = i + 1
			}
			spans[g].Start = i
		}
	}
	if seen {
		spans[0].Start = i + 1
	}
}
