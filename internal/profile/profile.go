package profile

import (
	"fmt"
	"strconv"

	"archwiz/internal/question"
)

// DefaultPath is the profile location used when no output flag is given.
const DefaultPath = "arch_config.toml"

// Profile is the collected installer configuration written to disk.
type Profile struct {
	Hostname           string `toml:"hostname"`
	Username           string `toml:"username"`
	Password           string `toml:"password"`
	Timezone           string `toml:"timezone"`
	Locale             string `toml:"locale"`
	KeyboardLayout     string `toml:"keyboard_layout"`
	FormatType         string `toml:"format_type"`
	PackageManager     string `toml:"package_manager"`
	Bootloader         string `toml:"bootloader"`
	DesktopEnvironment string `toml:"desktop_environment"`
	ReflectorCountry   string `toml:"reflector_country"`
	EnableSSH          bool   `toml:"enable_ssh"`
}

// FromAnswers builds a profile from raw session answers in catalog order.
// Boolean answers arrive as "true" or "false".
func FromAnswers(catalog question.Catalog, answers []string) (Profile, error) {
	if len(answers) != len(catalog.Questions) {
		return Profile{}, fmt.Errorf("expected %d answers, got %d", len(catalog.Questions), len(answers))
	}
	var p Profile
	for i, q := range catalog.Questions {
		if err := p.setField(q.Key, answers[i]); err != nil {
			return Profile{}, err
		}
	}
	return p, nil
}

// IsKnownKey reports whether a catalog key maps to a profile field.
func IsKnownKey(key string) bool {
	var p Profile
	return p.setField(key, "false") == nil
}

// setField assigns a raw answer to the profile field named by key.
func (p *Profile) setField(key, value string) error {
	switch key {
	case "hostname":
		p.Hostname = value
	case "username":
		p.Username = value
	case "password":
		p.Password = value
	case "timezone":
		p.Timezone = value
	case "locale":
		p.Locale = value
	case "keyboard_layout":
		p.KeyboardLayout = value
	case "format_type":
		p.FormatType = value
	case "package_manager":
		p.PackageManager = value
	case "bootloader":
		p.Bootloader = value
	case "desktop_environment":
		p.DesktopEnvironment = value
	case "reflector_country":
		p.ReflectorCountry = value
	case "enable_ssh":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parse enable_ssh: %w", err)
		}
		p.EnableSSH = enabled
	default:
		return fmt.Errorf("unknown profile field %q", key)
	}
	return nil
}
