package command

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// scenario is one row of the built-in conformance table.
type scenario struct {
	pattern string
	text    string
	want    bool
}

var scenarios = []scenario{
	{"a?", "c", true},
	{"ab?c", "cb", false},
	{"ab?", "a", true},
	{"ab?", "abc", true},
	{"ab?c", "abc", true},
	{"a?b?c?", "abc", true},
	{"a?b?c?", "bc", true},
	{"a?b?c?", "c", true},
	{"a?b?c?", "ac", true},
	{"a?b?c?", "a", true},
	{"a?b?c?", "ab", true},
	{"a?b?c?", "", true},
	{"a.?c", "abc", true},
	{"a.?c", "ac", true},
	{"ab", "abc", true},
	{"ab", "zabc", true},
	{"ab", "zab", true},
	{"^ab", "abc", true},
	{"^ab", "jc", false},
	{"a$", "abca", true},
	{"a*", "bd", true},
	{"a*", "bad", true},
	{"a*", "baad", true},
	{"a*", "baaaaaad", true},
	{"^a$", "a", true},
	{"^a$", "aa", false},
	{"^a$", "ab", false},
	{"^a$", "ba", false},
	{"ab*$", "abb", true},
	{"^ab*c$", "abc", true},
	{"^ab*c$", "abbbbbbc", true},
	{".", "a", true},
	{"..", "a", false},
	{".*", "aaaaaa", true},
	{"", "", true},
	{"a(b*)c", "abbc", true},
	{"(ab)+c", "ababx", false},
	{`[0-9]+`, "a9853_z", true},
	{`(\w+)@(\w+)\.com`, "mail bob@example.com", true},
}

func newCheck(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Runs the built-in conformance scenarios.",
		Long: "Runs every built-in (pattern, text, expectation) scenario and prints one\n" +
			"success or fail line per scenario. Exits non-zero when any scenario fails.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runCheck(cmd.OutOrStdout(), scenarios)
		},
	}
}

func (o *options) runCheck(w io.Writer, table []scenario) error {
	failed := 0
	for _, sc := range table {
		re, err := o.compile(sc.pattern)
		if err != nil {
			return err
		}
		got := re.MatchString(sc.text)
		o.free(re)

		label := o.paint(ansiGreen, "success")
		if got != sc.want {
			failed++
			label = o.paint(ansiRed, "fail   ")
			o.logger.Warn("scenario failed", "pattern", sc.pattern, "text", sc.text, "want", sc.want)
		}
		not := " "
		if !sc.want {
			not = " NOT "
		}
		fmt.Fprintf(w, "%s <- /%s/ should%smatch %q\n", label, sc.pattern, not, sc.text)
	}

	o.logger.Info("check finished", "scenarios", len(table), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(table))
	}
	return nil
}
