package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"archwiz/internal/config"
	"archwiz/internal/profile"
	"archwiz/internal/ui/wizard"
)

// runWizardSession launches the interactive program. Tests swap it out to
// drive the command without a terminal.
var runWizardSession = wizard.Run

// runWizard builds the handler for the run command.
func runWizard(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to archwiz.yaml (default: auto-detect)")
		catalogPath := fs.String("catalog", "", "Path to a question catalog (default: built-in)")
		outputPath := fs.String("output", "", "Profile path to write")
		themeName := fs.String("theme", "", "Theme: default, dark, or light")
		splashSeconds := fs.Int("splash-seconds", -1, "Splash screen hold in seconds")
		noSplash := fs.Bool("no-splash", false, "Skip the splash screen")
		noColor := fs.Bool("no-color", false, "Disable ANSI styling")
		verbose := fs.Bool("verbose", false, "Log session diagnostics to stderr")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		settings, source, err := loadSettings(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		if *catalogPath != "" {
			settings.Catalog = *catalogPath
		}
		if *outputPath != "" {
			settings.Output = *outputPath
		}
		if *themeName != "" {
			settings.Theme = *themeName
		}
		if *splashSeconds >= 0 {
			settings.SplashSeconds = splashSeconds
		}
		if *noSplash {
			zero := 0
			settings.SplashSeconds = &zero
		}
		if *noColor {
			settings.NoColor = true
		}

		logVerbose(*verbose, stderr, settings.NoColor, styleDefault, "settings: %s", source)

		theme, err := wizard.ParseThemeID(settings.Theme)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			if *themeName != "" {
				return ExitUsage
			}
			return ExitError
		}

		catalog, err := loadCatalog(settings.Catalog)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		if err := checkProfileKeys(catalog); err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		catalogSource := "built-in"
		if settings.Catalog != "" {
			catalogSource = settings.Catalog
		}
		logVerbose(*verbose, stderr, settings.NoColor, styleDefault, "catalog: %s (%d questions)", catalogSource, len(catalog.Questions))

		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "stdout is not a terminal (wizard needs an interactive TTY)")
			return ExitError
		}

		sessionID, err := newSessionID()
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		logVerbose(*verbose, stderr, settings.NoColor, styleSession, "session %s starting (theme %s, splash %s)", sessionID, theme, settings.SplashDelay())

		final, err := runWizardSession(catalog, wizard.Options{
			Theme:       theme,
			SplashDelay: settings.SplashDelay(),
			NoColor:     settings.NoColor,
		}, stdout)
		if err != nil {
			logVerbose(*verbose, stderr, settings.NoColor, styleError, "session %s failed: %v", sessionID, err)
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		if final.Quit {
			logVerbose(*verbose, stderr, settings.NoColor, styleSession, "session %s aborted after %d answers", sessionID, len(final.Answers))
			fmt.Fprintln(stdout, "aborted, nothing written")
			return ExitOK
		}

		prof, err := profile.FromAnswers(catalog, final.Answers)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		if err := profile.Save(settings.Output, prof); err != nil {
			logVerbose(*verbose, stderr, settings.NoColor, styleError, "session %s failed: %v", sessionID, err)
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		logVerbose(*verbose, stderr, settings.NoColor, styleMetrics, "session %s completed with %d answers", sessionID, len(final.Answers))
		fmt.Fprintf(stdout, "wrote %s\n", settings.Output)
		return ExitOK
	}
}

// loadSettings resolves the effective settings and names their source for
// the verbose log. An explicit path must exist; the default path is
// optional and falls back to built-in defaults.
func loadSettings(path string) (config.Settings, string, error) {
	if path != "" {
		settings, err := config.Load(path)
		return settings, path, err
	}
	if _, err := os.Stat(config.DefaultFileName); err == nil {
		settings, loadErr := config.Load(config.DefaultFileName)
		return settings, config.DefaultFileName, loadErr
	} else if !os.IsNotExist(err) {
		return config.Settings{}, "", fmt.Errorf("stat settings file: %w", err)
	}
	return config.Default(), "defaults", nil
}
