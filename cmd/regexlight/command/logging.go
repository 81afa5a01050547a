package command

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// setup resolves the persistent flags into a logger and colour settings.
func (o *options) setup(cmd *cobra.Command) error {
	if err := validateFlags(cmd.Flags()); err != nil {
		return err
	}

	var err error
	if o.colorOut, err = useColor(o.color, cmd.OutOrStdout()); err != nil {
		return err
	}
	colorErr, err := useColor(o.color, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	level, err := slogLevel(o.logLevel)
	if err != nil {
		return err
	}
	handler, err := slogHandler(o.logFormat, cmd.ErrOrStderr(), level, colorErr)
	if err != nil {
		return err
	}
	o.logger = slog.New(handler).With("cmd", cmd.Name())
	return nil
}

// validateFlags rejects empty values for flags that were set explicitly.
func validateFlags(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err == nil && f.Changed && f.Value.Type() == "string" && strings.TrimSpace(f.Value.String()) == "" {
			err = fmt.Errorf("flag --%s must not be empty", f.Name)
		}
	})
	return err
}

// slogLevel maps the log-level flag value to a slog.Level.
func slogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", level)
	}
}

// slogHandler returns a [slog.Handler] writing to w in the given format.
func slogHandler(format string, w io.Writer, level slog.Level, color bool) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case "logfmt":
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}), nil
	case "tint":
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !color,
		}), nil
	default:
		return nil, fmt.Errorf("invalid log-fmt %q: expected json, logfmt, or tint", format)
	}
}

// useColor resolves the --color mode for w. In auto mode only terminals
// get colour.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(interface{ Fd() uintptr })
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid color %q: expected auto, always, or never", mode)
	}
}

const (
	ansiGreen = "\x1b[32;1m"
	ansiRed   = "\x1b[31;1m"
	ansiReset = "\x1b[m"
)

func (o *options) paint(color, s string) string {
	if !o.colorOut {
		return s
	}
	return color + s + ansiReset
}
