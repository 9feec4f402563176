package wizard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const banner = `
    _____                .__      .____    .__
   /  _  \   _______  __ |  |__   |    |   |__| ____  __ _____  ___
  /  /_\  \ /___/  / |  ||  |  \  |    |   |  |/    \|  |  \  \/  /
 /    |    <  /\  /_/  ||   Y  \ |    |___|  |   |  \  |  />    <
/\____|__  /\___  /|____|___|  / |_______ \__|___|  /____//__/\_ \
        \/     \/           \/          \/       \/            \/
`

// Splash renders the splash frame at the given terminal size. The spin
// argument is the current spinner glyph; it may be empty.
func Splash(state State, spin string, noColor bool, width, height int) string {
	theme := activeTheme(state.Theme, noColor)
	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Banner.Render(strings.Trim(banner, "\n")),
		"",
		theme.Title.Render(frameTitle),
		"",
		theme.Progress.Render(spin+" preparing installer profile"),
	)
	style := theme.Border
	if width > 2 {
		style = style.Width(width - 2)
	}
	if height > 2 {
		style = style.Height(height - 2)
	}
	style = style.AlignHorizontal(lipgloss.Center).AlignVertical(lipgloss.Center)
	return style.Render(content)
}
