package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"archwiz/internal/profile"
	"archwiz/internal/question"
	"archwiz/internal/ui/wizard"
)

// fakeTerminal makes the run command believe stdout is interactive.
func fakeTerminal(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(io.Writer) bool { return true }
	t.Cleanup(func() { isTerminal = orig })
}

// stubSession replaces the interactive program with a canned final state
// and returns a pointer to the options the command passed in.
func stubSession(t *testing.T, final wizard.State, err error) *wizard.Options {
	t.Helper()
	got := &wizard.Options{}
	orig := runWizardSession
	runWizardSession = func(_ question.Catalog, opts wizard.Options, _ io.Writer) (wizard.State, error) {
		*got = opts
		return final, err
	}
	t.Cleanup(func() { runWizardSession = orig })
	return got
}

func completedState() wizard.State {
	return wizard.State{
		Index: 12,
		Answers: []string{
			"archbox", "alice", "hunter2", "UTC", "en_US.UTF-8", "us",
			"btrfs", "pacman", "grub", "gnome", "US", "true",
		},
	}
}

func runCommand(t *testing.T, args []string) (int, string, string) {
	t.Helper()
	cmd := findCommand("run")
	if cmd == nil {
		t.Fatalf("run command not found")
	}
	var stdout, stderr bytes.Buffer
	code := cmd.Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// TestRunRefusesNonTerminal verifies the command never starts a session
// against a pipe.
func TestRunRefusesNonTerminal(t *testing.T) {
	code, _, stderr := runCommand(t, nil)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr, "stdout is not a terminal") {
		t.Fatalf("expected terminal refusal, got %q", stderr)
	}
}

// TestRunWritesProfileOnCompletion verifies a finished session lands on disk.
func TestRunWritesProfileOnCompletion(t *testing.T) {
	fakeTerminal(t)
	stubSession(t, completedState(), nil)
	output := filepath.Join(t.TempDir(), "arch_config.toml")

	code, stdout, stderr := runCommand(t, []string{"-output", output})
	if code != ExitOK {
		t.Fatalf("unexpected exit: %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "wrote "+output) {
		t.Fatalf("expected wrote message, got %q", stdout)
	}
	prof, err := profile.Load(output)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if prof.Hostname != "archbox" {
		t.Fatalf("unexpected hostname: %q", prof.Hostname)
	}
	if !prof.EnableSSH {
		t.Fatalf("expected ssh enabled")
	}
}

// TestRunQuitWritesNothing verifies an aborted session leaves no file.
func TestRunQuitWritesNothing(t *testing.T) {
	fakeTerminal(t)
	stubSession(t, wizard.State{Quit: true}, nil)
	output := filepath.Join(t.TempDir(), "arch_config.toml")

	code, stdout, _ := runCommand(t, []string{"-output", output})
	if code != ExitOK {
		t.Fatalf("expected quit to exit cleanly, got %d", code)
	}
	if !strings.Contains(stdout, "aborted, nothing written") {
		t.Fatalf("expected abort message, got %q", stdout)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Fatalf("expected no profile file, stat: %v", err)
	}
}

// TestRunSessionOptionsFromFlags verifies flags reach the program options.
func TestRunSessionOptionsFromFlags(t *testing.T) {
	fakeTerminal(t)
	opts := stubSession(t, completedState(), nil)
	output := filepath.Join(t.TempDir(), "arch_config.toml")

	code, _, stderr := runCommand(t, []string{"-output", output, "-theme", "dark", "-no-splash", "-no-color"})
	if code != ExitOK {
		t.Fatalf("unexpected exit: %d, stderr: %s", code, stderr)
	}
	if opts.Theme != wizard.ThemeDark {
		t.Fatalf("expected dark theme, got %v", opts.Theme)
	}
	if opts.SplashDelay != 0 {
		t.Fatalf("expected splash disabled, got %v", opts.SplashDelay)
	}
	if !opts.NoColor {
		t.Fatalf("expected no-color enabled")
	}
}

// TestRunSettingsFileDrivesOptions verifies archwiz.yaml values reach the
// program options and the output path.
func TestRunSettingsFileDrivesOptions(t *testing.T) {
	fakeTerminal(t)
	opts := stubSession(t, completedState(), nil)
	dir := t.TempDir()
	output := filepath.Join(dir, "profile.toml")
	configPath := filepath.Join(dir, "archwiz.yaml")
	body := "theme: light\nsplash_seconds: 1\noutput: " + output + "\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	code, stdout, stderr := runCommand(t, []string{"-config", configPath})
	if code != ExitOK {
		t.Fatalf("unexpected exit: %d, stderr: %s", code, stderr)
	}
	if opts.Theme != wizard.ThemeLight {
		t.Fatalf("expected light theme, got %v", opts.Theme)
	}
	if opts.SplashDelay != time.Second {
		t.Fatalf("expected one second splash, got %v", opts.SplashDelay)
	}
	if !strings.Contains(stdout, "wrote "+output) {
		t.Fatalf("expected profile at settings output, got %q", stdout)
	}
	if _, err := os.Stat(output); err != nil {
		t.Fatalf("expected profile file: %v", err)
	}
}

// TestRunFlagOverridesSettingsFile verifies flag precedence over the file.
func TestRunFlagOverridesSettingsFile(t *testing.T) {
	fakeTerminal(t)
	opts := stubSession(t, completedState(), nil)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "archwiz.yaml")
	if err := os.WriteFile(configPath, []byte("theme: light\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	code, _, stderr := runCommand(t, []string{
		"-config", configPath,
		"-theme", "dark",
		"-output", filepath.Join(dir, "out.toml"),
	})
	if code != ExitOK {
		t.Fatalf("unexpected exit: %d, stderr: %s", code, stderr)
	}
	if opts.Theme != wizard.ThemeDark {
		t.Fatalf("expected flag theme to win, got %v", opts.Theme)
	}
}

// TestRunRejectsUnknownTheme verifies a bad -theme is a usage error.
func TestRunRejectsUnknownTheme(t *testing.T) {
	code, _, stderr := runCommand(t, []string{"-theme", "solarized"})
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(stderr, "unknown theme") {
		t.Fatalf("expected unknown theme error, got %q", stderr)
	}
}

// TestRunRejectsUnknownThemeFromSettings verifies a bad file value is a
// runtime error, not a usage error.
func TestRunRejectsUnknownThemeFromSettings(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "archwiz.yaml")
	if err := os.WriteFile(configPath, []byte("theme: solarized\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	code, _, stderr := runCommand(t, []string{"-config", configPath})
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr, "unknown theme") {
		t.Fatalf("expected unknown theme error, got %q", stderr)
	}
}

// TestRunRejectsCatalogWithUnknownKey verifies a catalog is checked before
// any session starts.
func TestRunRejectsCatalogWithUnknownKey(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "questions.yml")
	body := "version: 1\nquestions:\n  - key: shell\n    prompt: \"Pick a shell\"\n    kind: free_text\n"
	if err := os.WriteFile(catalogPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	code, _, stderr := runCommand(t, []string{"-catalog", catalogPath})
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr, "does not map to a profile field") {
		t.Fatalf("expected profile key error, got %q", stderr)
	}
}

// TestRunCustomCatalogSession verifies a short catalog produces a partial
// profile with defaults for the unasked fields.
func TestRunCustomCatalogSession(t *testing.T) {
	fakeTerminal(t)
	stubSession(t, wizard.State{Index: 2, Answers: []string{"box", "false"}}, nil)
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "questions.yml")
	body := "version: 1\nquestions:\n" +
		"  - key: hostname\n    prompt: \"Hostname:\"\n    kind: free_text\n" +
		"  - key: enable_ssh\n    prompt: \"Enable SSH?\"\n    kind: boolean\n"
	if err := os.WriteFile(catalogPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	output := filepath.Join(dir, "arch_config.toml")

	code, _, stderr := runCommand(t, []string{"-catalog", catalogPath, "-output", output})
	if code != ExitOK {
		t.Fatalf("unexpected exit: %d, stderr: %s", code, stderr)
	}
	prof, err := profile.Load(output)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if prof.Hostname != "box" {
		t.Fatalf("unexpected hostname: %q", prof.Hostname)
	}
	if prof.EnableSSH {
		t.Fatalf("expected ssh disabled")
	}
	if prof.Timezone != "" {
		t.Fatalf("expected unasked fields to stay empty, got %q", prof.Timezone)
	}
}

// TestRunVerboseLogsSession verifies -verbose narrates the session on stderr.
func TestRunVerboseLogsSession(t *testing.T) {
	fakeTerminal(t)
	stubSession(t, completedState(), nil)
	output := filepath.Join(t.TempDir(), "arch_config.toml")

	code, _, stderr := runCommand(t, []string{"-output", output, "-verbose"})
	if code != ExitOK {
		t.Fatalf("unexpected exit: %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stderr, "[verbose]") {
		t.Fatalf("expected verbose prefix, got %q", stderr)
	}
	if !strings.Contains(stderr, "completed with 12 answers") {
		t.Fatalf("expected completion line, got %q", stderr)
	}
	if !strings.Contains(stderr, "catalog: built-in (12 questions)") {
		t.Fatalf("expected catalog line, got %q", stderr)
	}
}

// TestRunReportsWriteFailure verifies a failed save surfaces as an error.
func TestRunReportsWriteFailure(t *testing.T) {
	fakeTerminal(t)
	stubSession(t, completedState(), nil)
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	code, _, stderr := runCommand(t, []string{"-output", filepath.Join(blocker, "out.toml")})
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr, "Run failed:") {
		t.Fatalf("expected run failure, got %q", stderr)
	}
}

// TestRunRejectsPositionalArgs verifies stray arguments are a usage error.
func TestRunRejectsPositionalArgs(t *testing.T) {
	code, _, stderr := runCommand(t, []string{"extra"})
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(stderr, "unexpected arguments") {
		t.Fatalf("expected unexpected arguments error, got %q", stderr)
	}
}
