// regexlight compiles patterns with the regexlight engine and runs them
// against text from the command line.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/coregx/regexlight/cmd/regexlight/command"
)

func main() {
	if err := command.NewRoot().Execute(); err != nil {
		if !errors.Is(err, command.ErrNoMatches) {
			fmt.Fprintln(os.Stderr, "regexlight:", err)
		}
		os.Exit(1)
	}
}
