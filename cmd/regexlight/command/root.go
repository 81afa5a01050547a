// Package command holds the cobra command tree of the regexlight tool.
package command

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/coregx/regexlight"
	"github.com/coregx/regexlight/meta"
	"github.com/coregx/regexlight/prog"
)

// Bucket bounds for --bucket-alloc.
const (
	bucketMin = 64
	bucketMax = 4096
)

// options carries the persistent flags and the state derived from them.
type options struct {
	logLevel    string
	logFormat   string
	color       string
	bucketAlloc bool

	logger   *slog.Logger
	colorOut bool
	alloc    *prog.CountingAllocator
}

// NewRoot builds the regexlight command tree. Each call returns an
// independent tree with its own flag values.
func NewRoot() *cobra.Command {
	opts := &options{
		logLevel:  "warn",
		logFormat: "tint",
		color:     "auto",
		logger:    slog.New(slog.DiscardHandler),
	}

	root := &cobra.Command{
		Use:   "regexlight",
		Short: "regexlight compiles and runs small backtracking regular expressions.",
		Long: "`regexlight` compiles patterns with the regexlight engine.\n\n" +
			"Supported syntax: literals, `.`, `^`, `$`, `?`, `*`, `+`, bracket expressions,\n" +
			"`\\w`, `\\s`, `\\d` and capturing groups. Malformed patterns are accepted.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	fs := root.PersistentFlags()
	fs.StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level: debug, info, warn, or error.")
	fs.StringVar(&opts.logFormat, "log-fmt", opts.logFormat, "Log format: json, logfmt, or tint.")
	fs.StringVar(&opts.color, "color", opts.color, "Colorize output: auto, always, or never.")
	fs.BoolVar(&opts.bucketAlloc, "bucket-alloc", false, "Allocate compiled patterns from size-bucketed pools.")

	root.AddCommand(newCheck(opts), newMatch(opts), newDump(opts))
	return root
}

// config returns the engine configuration selected by the flags.
func (o *options) config() meta.Config {
	config := regexlight.DefaultConfig()
	if o.bucketAlloc {
		if o.alloc == nil {
			o.alloc = prog.NewCountingAllocator(prog.NewBucketAllocator(bucketMin, bucketMax))
		}
		config.Allocator = o.alloc
	}
	return config
}

// compile compiles pattern with the flag configuration and logs the result.
func (o *options) compile(pattern string) (*regexlight.Regex, error) {
	re, err := regexlight.CompileWithConfig(pattern, o.config())
	if err != nil {
		o.logger.Error("compile failed", "pattern", pattern, "error", err)
		return nil, err
	}
	o.logger.Debug("compiled", "pattern", pattern, "groups", re.NumSubexp())
	return re, nil
}

// free releases re and reports the allocator balance when pooling is on.
func (o *options) free(re *regexlight.Regex) {
	re.Free()
	if o.alloc != nil {
		o.logger.Debug("pattern freed",
			"allocs", o.alloc.Allocs(),
			"frees", o.alloc.Frees(),
			"live_bytes", o.alloc.LiveBytes())
	}
}
