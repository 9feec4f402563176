package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultSettings = `# archwiz settings. Every field is optional; flags override file values.

# theme selects the wizard palette: default, dark, or light.
theme: default

# output is the profile path written after the final question.
output: arch_config.toml

# splash_seconds holds the splash screen before the first question.
# Zero disables the splash entirely.
splash_seconds: 3

# no_color strips ANSI styling from the wizard and the verbose log.
no_color: false

# catalog points at a YAML or JSON question catalog. Leave it empty to
# use the built-in Arch questions.
# catalog: questions.yml
`

// ErrExists reports that a settings file is already present at the
// scaffold path.
var ErrExists = errors.New("settings file already exists")

// Scaffold writes a commented default settings file. It refuses to
// overwrite an existing file unless force is set.
func Scaffold(path string, force bool) error {
	if path == "" {
		return fmt.Errorf("settings path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("settings path %q is a directory", path)
		}
		if !force {
			return fmt.Errorf("%w at %q", ErrExists, path)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat settings file: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(defaultSettings), 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
