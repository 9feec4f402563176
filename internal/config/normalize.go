package config

import (
	"fmt"
	"strings"

	"archwiz/internal/profile"
)

// Normalize trims string fields and fills defaults for anything unset.
func Normalize(settings *Settings) {
	settings.Theme = strings.TrimSpace(settings.Theme)
	if settings.Theme == "" {
		settings.Theme = "default"
	}
	settings.Output = strings.TrimSpace(settings.Output)
	if settings.Output == "" {
		settings.Output = profile.DefaultPath
	}
	if settings.SplashSeconds == nil {
		seconds := DefaultSplashSeconds
		settings.SplashSeconds = &seconds
	}
	settings.Catalog = strings.TrimSpace(settings.Catalog)
}

// Validate rejects settings no command could act on. Theme names are
// checked by the CLI, which owns the list of known themes.
func Validate(settings Settings) error {
	if settings.SplashSeconds != nil && *settings.SplashSeconds < 0 {
		return fmt.Errorf("settings validation failed: splash_seconds must not be negative")
	}
	return nil
}
