package command

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coregx/regexlight"
)

// ErrNoMatches is returned by match when none of the texts matched.
var ErrNoMatches = errors.New("no text matched")

func newMatch(o *options) *cobra.Command {
	var groups int
	cmd := &cobra.Command{
		Use:   "match [--groups N] PATTERN TEXT...",
		Short: "Prints the match and group spans of PATTERN in each TEXT.",
		Long: "Prints one line per TEXT: the quoted text followed by slot:[start,end]\n" +
			"pairs, where slot 0 is the whole match and slot i is group i. Groups that\n" +
			"did not participate print as [-1,-1].",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runMatch(cmd.OutOrStdout(), args[0], args[1:], groups)
		},
	}
	cmd.Flags().IntVar(&groups, "groups", -1, "Number of slots to report; negative reports the whole match and every group.")
	return cmd
}

func (o *options) runMatch(w io.Writer, pattern string, texts []string, nmatch int) error {
	re, err := o.compile(pattern)
	if err != nil {
		return err
	}
	defer o.free(re)

	if nmatch < 0 {
		nmatch = re.NumSubexp() + 1
	}

	matched := 0
	for _, text := range texts {
		m, err := re.Regexec(text, nmatch, 0)
		if errors.Is(err, regexlight.ErrNoMatch) {
			fmt.Fprintf(w, "%q: no match\n", text)
			continue
		}
		if err != nil {
			return err
		}
		matched++
		fmt.Fprintf(w, "%q:%s\n", text, formatSpans(m))
	}

	st := re.Stats()
	o.logger.Debug("match finished",
		"texts", len(texts),
		"matched", matched,
		"required_rejects", st.RequiredRejects,
		"prefilter_skips", st.PrefilterSkips,
		"stack_overflows", st.StackOverflows)

	if matched == 0 {
		return ErrNoMatches
	}
	return nil
}

func formatSpans(m []regexlight.Regmatch) string {
	if len(m) == 0 {
		return " match"
	}
	var sb strings.Builder
	for i, r := range m {
		fmt.Fprintf(&sb, " %d:[%d,%d]", i, r.So, r.Eo)
	}
	return sb.String()
}
