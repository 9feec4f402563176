package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"archwiz/internal/config"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", config.DefaultFileName, "Settings path to write")
		force := fs.Bool("force", false, "Overwrite an existing settings file")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if err := config.Scaffold(*configPath, *force); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			if errors.Is(err, config.ErrExists) {
				fmt.Fprintln(stderr, "Use -force to overwrite.")
			}
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *configPath)
		return ExitOK
	}
}
