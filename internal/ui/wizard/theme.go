package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeID names one of the built-in color themes.
type ThemeID int

const (
	// ThemeDefault is the classic green and yellow installer palette.
	ThemeDefault ThemeID = iota
	// ThemeDark is a cool palette for dark terminals.
	ThemeDark
	// ThemeLight is a high-contrast palette for light terminals.
	ThemeLight
)

const themeCount = 3

// Next returns the successor theme in the cycle default, dark, light.
func (id ThemeID) Next() ThemeID {
	return (id + 1) % themeCount
}

// String returns the theme name.
func (id ThemeID) String() string {
	switch id {
	case ThemeDark:
		return "dark"
	case ThemeLight:
		return "light"
	default:
		return "default"
	}
}

// ParseThemeID resolves a theme name, case-insensitively. The empty string
// resolves to the default theme.
func ParseThemeID(name string) (ThemeID, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return ThemeDefault, nil
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	}
	return ThemeDefault, fmt.Errorf("unknown theme %q", name)
}

// ThemeNames lists the built-in theme names in cycle order.
func ThemeNames() []string {
	return []string{"default", "dark", "light"}
}

// Theme bundles the styles for every element the wizard draws.
type Theme struct {
	Border    lipgloss.Style
	Title     lipgloss.Style
	Prompt    lipgloss.Style
	Progress  lipgloss.Style
	Option    lipgloss.Style
	Cursor    lipgloss.Style
	Input     lipgloss.Style
	Filter    lipgloss.Style
	NoMatches lipgloss.Style
	Footer    lipgloss.Style
	Banner    lipgloss.Style
}

// ThemeFor returns the style set for a theme.
func ThemeFor(id ThemeID) Theme {
	switch id {
	case ThemeDark:
		return darkTheme()
	case ThemeLight:
		return lightTheme()
	default:
		return defaultTheme()
	}
}

// activeTheme resolves the styles for a frame. With noColor set every
// theme renders as the plain variant, borders included.
func activeTheme(id ThemeID, noColor bool) Theme {
	if noColor {
		return plainTheme()
	}
	return ThemeFor(id)
}

func plainTheme() Theme {
	return Theme{
		Border:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		Title:     lipgloss.NewStyle(),
		Prompt:    lipgloss.NewStyle(),
		Progress:  lipgloss.NewStyle(),
		Option:    lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle(),
		Input:     lipgloss.NewStyle(),
		Filter:    lipgloss.NewStyle(),
		NoMatches: lipgloss.NewStyle(),
		Footer:    lipgloss.NewStyle(),
		Banner:    lipgloss.NewStyle(),
	}
}

func defaultTheme() Theme {
	green := lipgloss.Color("2")
	yellow := lipgloss.Color("3")
	grey := lipgloss.Color("242")

	return Theme{
		Border:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		Title:     lipgloss.NewStyle().Bold(true),
		Prompt:    lipgloss.NewStyle().Foreground(green),
		Progress:  lipgloss.NewStyle().Foreground(grey),
		Option:    lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Foreground(yellow).Bold(true),
		Input:     lipgloss.NewStyle().Foreground(yellow),
		Filter:    lipgloss.NewStyle().Foreground(yellow),
		NoMatches: lipgloss.NewStyle().Foreground(grey),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Banner:    lipgloss.NewStyle().Foreground(green),
	}
}

func darkTheme() Theme {
	blue := lipgloss.Color("39")
	cyan := lipgloss.Color("45")
	text := lipgloss.Color("252")
	grey := lipgloss.Color("242")

	return Theme{
		Border:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")),
		Title:     lipgloss.NewStyle().Foreground(blue).Bold(true),
		Prompt:    lipgloss.NewStyle().Foreground(blue),
		Progress:  lipgloss.NewStyle().Foreground(grey),
		Option:    lipgloss.NewStyle().Foreground(text),
		Cursor:    lipgloss.NewStyle().Foreground(cyan).Bold(true),
		Input:     lipgloss.NewStyle().Foreground(cyan),
		Filter:    lipgloss.NewStyle().Foreground(cyan),
		NoMatches: lipgloss.NewStyle().Foreground(grey),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Banner:    lipgloss.NewStyle().Foreground(blue),
	}
}

func lightTheme() Theme {
	ink := lipgloss.Color("235")
	magenta := lipgloss.Color("127")
	grey := lipgloss.Color("245")

	return Theme{
		Border:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(ink),
		Title:     lipgloss.NewStyle().Foreground(ink).Bold(true),
		Prompt:    lipgloss.NewStyle().Foreground(magenta),
		Progress:  lipgloss.NewStyle().Foreground(grey),
		Option:    lipgloss.NewStyle().Foreground(ink),
		Cursor:    lipgloss.NewStyle().Foreground(magenta).Bold(true),
		Input:     lipgloss.NewStyle().Foreground(magenta),
		Filter:    lipgloss.NewStyle().Foreground(magenta),
		NoMatches: lipgloss.NewStyle().Foreground(grey),
		Footer:    lipgloss.NewStyle().Foreground(grey),
		Banner:    lipgloss.NewStyle().Foreground(magenta),
	}
}
