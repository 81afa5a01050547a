package command

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/coregx/regexlight/meta"
)

func newDump(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dump PATTERN",
		Short: "Prints the compiled atom stream of PATTERN.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runDump(cmd.OutOrStdout(), args[0])
		},
	}
}

func (o *options) runDump(w io.Writer, pattern string) error {
	engine, err := meta.CompileWithConfig(pattern, o.config())
	if err != nil {
		return err
	}
	defer engine.Free()

	p := engine.Prog()
	fmt.Fprintf(w, "pattern:  %q\n", pattern)
	fmt.Fprintf(w, "groups:   %d\n", p.NumSubexp())
	fmt.Fprintf(w, "size:     %d bytes\n", p.Size())
	fmt.Fprintf(w, "heap:     %d bytes\n", engine.HeapBytes())
	fmt.Fprintf(w, "strategy: %s\n", engine.Strategy())
	fmt.Fprint(w, p.String())
	return nil
}
