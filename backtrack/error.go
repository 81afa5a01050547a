package backtrack

import "errors"

// ErrGroupStackOverflow indicates groups nested deeper than MaxGroupDepth.
// The attempt that needed the extra level fails; the search continues.
var ErrGroupStackOverflow = errors.New("group nesting exceeds stack capacity")
