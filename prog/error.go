package prog

import (
	"errors"
	"fmt"
)

// Compilation limits. These are capacity errors, not syntax errors: the
// compiler accepts any byte sequence as a pattern.
var (
	// ErrTooManyGroups indicates the pattern has more groups than a coverage
	// bitmask can attribute.
	ErrTooManyGroups = errors.New("too many capture groups")

	// ErrClassTooLong indicates a bracket expression does not fit an atom record.
	ErrClassTooLong = errors.New("bracket expression too long")
)

// CompileError wraps compilation errors with the offending pattern.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("regexlight: compiling %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("regexlight: compile: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
