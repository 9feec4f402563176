package cli

import (
	"fmt"
	"io"
	"strings"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches a command line. A bare invocation, or one that starts
// with a flag, runs the wizard.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		if isHelpArg(args[0]) {
			printUsage(stdout)
			return ExitOK
		}
		if cmd := findCommand(args[0]); cmd != nil {
			return cmd.Run(args[1:], stdout, stderr)
		}
		if !strings.HasPrefix(args[0], "-") {
			fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
			printUsage(stderr)
			return ExitUsage
		}
	}
	return findCommand("run").Run(args, stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  archwiz [options]")
	fmt.Fprintln(w, "  archwiz <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nRunning archwiz without a command starts the wizard.")
	fmt.Fprintln(w, "Use \"archwiz <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("run", "Run the installer wizard", []string{
		"archwiz run [-config <path>] [-catalog <path>] [-output <path>] [-theme <name>]",
		"archwiz run [-splash-seconds <n>] [-no-splash] [-no-color] [-verbose]",
	}, runWizard),
	command("init", "Scaffold an archwiz.yaml settings file", []string{
		"archwiz init [-config <path>] [-force]",
	}, runInit),
	command("questions", "List the questions a session will ask", []string{
		"archwiz questions [-catalog <path>]",
	}, runQuestions),
	command("themes", "List the built-in themes", []string{
		"archwiz themes",
	}, runThemes),
}
