package cli

import (
	"fmt"
	"io"
	"strings"

	"archwiz/internal/ui/wizard"
)

// runThemes builds the handler for the themes command.
func runThemes(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(args, " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		for _, name := range wizard.ThemeNames() {
			if name == wizard.ThemeDefault.String() {
				fmt.Fprintf(stdout, "%s (default)\n", name)
				continue
			}
			fmt.Fprintln(stdout, name)
		}
		return ExitOK
	}
}
