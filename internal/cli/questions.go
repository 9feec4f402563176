package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// runQuestions builds the handler for the questions command.
func runQuestions(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		catalogPath := fs.String("catalog", "", "Path to a question catalog (default: built-in)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		catalog, err := loadCatalog(*catalogPath)
		if err != nil {
			fmt.Fprintf(stderr, "Questions failed: %v\n", err)
			return ExitError
		}
		if err := checkProfileKeys(catalog); err != nil {
			fmt.Fprintf(stderr, "Questions failed: %v\n", err)
			return ExitError
		}

		for i, q := range catalog.Questions {
			fmt.Fprintf(stdout, "%2d. %s [%s]\n", i+1, q.Prompt, q.Kind)
			if choices := q.Choices(); len(choices) > 0 {
				fmt.Fprintf(stdout, "    %s\n", strings.Join(choices, ", "))
			}
		}
		return ExitOK
	}
}
