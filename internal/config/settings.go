package config

import (
	"time"

	"archwiz/internal/profile"
)

// Settings file constants used by the CLI.
const (
	DefaultFileName      = "archwiz.yaml"
	DefaultSplashSeconds = 3
)

// Settings holds the optional archwiz.yaml configuration. Flags override
// file values, which override defaults.
type Settings struct {
	Theme         string `yaml:"theme"`
	Output        string `yaml:"output"`
	SplashSeconds *int   `yaml:"splash_seconds"`
	NoColor       bool   `yaml:"no_color"`
	Catalog       string `yaml:"catalog"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	seconds := DefaultSplashSeconds
	return Settings{
		Theme:         "default",
		Output:        profile.DefaultPath,
		SplashSeconds: &seconds,
	}
}

// SplashDelay returns the splash duration implied by the settings. Zero
// seconds disables the splash screen.
func (s Settings) SplashDelay() time.Duration {
	if s.SplashSeconds == nil {
		return DefaultSplashSeconds * time.Second
	}
	return time.Duration(*s.SplashSeconds) * time.Second
}
