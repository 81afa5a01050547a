// Package meta implements the engine that ties compilation, prefiltering and
// the backtracking matcher together.
//
// The engine coordinates:
//   - prog: the compiled atom sequence, allocated through the configured Allocator
//   - literal + prefilter: required-literal rejection and candidate start offsets
//   - backtrack: the matcher itself, run with pooled per-search State
//
// Strategy selection is based on the shape of the compiled pattern (see
// Strategy). The engine exposes the compile/execute/free contract that the
// public API is built on.
package meta

import "github.com/coregx/regexlight/prog"

// Config controls engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // Try every offset with the matcher
//	engine, err := meta.CompileWithConfig("a(b*)c", config)
type Config struct {
	// EnablePrefilter enables literal-based prefiltering: rejecting texts
	// that lack a required literal and skipping offsets where no match can
	// begin. When false, the matcher runs at every offset.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the minimum length of a required literal.
	// Shorter literals have too many false positives to be worth checking.
	// Default: 2
	MinLiteralLen int

	// MaxLiterals limits the number of required literals checked per search.
	// Default: 8
	MaxLiterals int

	// MaxStateBytes caps the coverage buffer a pooled search state keeps
	// between searches. Larger buffers are dropped after the search.
	// Default: 1 MiB
	MaxStateBytes int

	// Allocator supplies the compiled pattern's block. Nil means
	// prog.HeapAllocator.
	Allocator prog.Allocator
}

// DefaultConfig returns a configuration with sensible defaults.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.Allocator = prog.NewBucketAllocator(64, 4096)
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MinLiteralLen:   2,
		MaxLiterals:     8,
		MaxStateBytes:   1 << 20,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - MinLiteralLen: 1 to 64
//   - MaxLiterals: 1 to 256
//   - MaxStateBytes: 0 to 1 GiB
func (c Config) Validate() error {
	if c.EnablePrefilter {
		if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
			return &ConfigError{
				Field:   "MinLiteralLen",
				Message: "must be between 1 and 64",
			}
		}
		if c.MaxLiterals < 1 || c.MaxLiterals > 256 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 256",
			}
		}
	}

	if c.MaxStateBytes < 0 || c.MaxStateBytes > 1<<30 {
		return &ConfigError{
			Field:   "MaxStateBytes",
			Message: "must be between 0 and 1 GiB",
		}
	}

	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regexlight: invalid config: " + e.Field + ": " + e.Message
}
