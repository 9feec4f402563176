package wizard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"archwiz/internal/question"
)

const frameTitle = "Arch Linux Installer"

// View renders one question frame at the given terminal size. It is a pure
// projection of the session state and touches no clock or I/O.
func View(catalog question.Catalog, state State, noColor bool, width, height int) string {
	current, ok := Current(catalog, state)
	if !ok {
		return ""
	}
	theme := activeTheme(state.Theme, noColor)
	main := renderMain(theme, current, state, len(catalog.Questions), width)
	footer := renderFooter(theme, current, state, width)
	frame := lipgloss.JoinVertical(lipgloss.Left, main, footer)
	return place(frame, width, height)
}

// renderMain renders the bordered question panel.
func renderMain(theme Theme, q question.Question, state State, total int, width int) string {
	title := theme.Title.Render(frameTitle) + "  " +
		theme.Progress.Render(fmt.Sprintf("question %d of %d", state.Index+1, total))
	prompt := theme.Prompt.Render(q.Prompt)
	body := renderBody(theme, q, state)
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", prompt, "", body)
	return panel(theme, content, width)
}

// renderBody renders the kind-specific question content.
func renderBody(theme Theme, q question.Question, state State) string {
	if q.Kind == question.FreeText {
		return theme.Cursor.Render("> ") + theme.Input.Render(state.Input+"█")
	}
	visible := VisibleChoices(q, state.Filter)
	if len(visible) == 0 {
		return theme.NoMatches.Render(fmt.Sprintf("no matches for %q", state.Filter))
	}
	rows := make([]string, 0, len(visible))
	for i, choice := range visible {
		if i == state.Selected {
			rows = append(rows, theme.Cursor.Render("> "+choice))
		} else {
			rows = append(rows, theme.Option.Render("  "+choice))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter renders the bordered key hint strip.
func renderFooter(theme Theme, q question.Question, state State, width int) string {
	var line string
	switch q.Kind {
	case question.FreeText:
		line = theme.Footer.Render("Press Enter to confirm, Esc to quit")
	case question.MultipleChoice:
		line = theme.Footer.Render("Press Enter to confirm, Arrow keys to navigate, 'q' to quit, Type to filter the choice:") +
			theme.Filter.Render(state.Filter)
	case question.Boolean:
		line = theme.Footer.Render("Press Enter to confirm, Arrow keys to navigate, 'q' to quit")
	}
	line += theme.Footer.Render(" | Ctrl+T theme: " + state.Theme.String())
	return panel(theme, line, width)
}

// panel wraps content in the themed border, stretched to the frame width.
func panel(theme Theme, content string, width int) string {
	style := theme.Border
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(content)
}

// place anchors the frame at the top left of the terminal.
func place(frame string, width, height int) string {
	if width <= 0 || height <= 0 {
		return frame
	}
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, frame)
}
