package wizard

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"archwiz/internal/question"
)

// Run executes the wizard program against a terminal and returns the final
// session state. The alternate screen is held for the whole session and
// restored on every exit path, error exits included.
func Run(catalog question.Catalog, opts Options, stdout io.Writer) (State, error) {
	model := NewModel(catalog, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return State{}, fmt.Errorf("run wizard: %w", err)
	}
	finished, ok := final.(Model)
	if !ok {
		return State{}, fmt.Errorf("run wizard: unexpected model %T", final)
	}
	return finished.FinalState(), nil
}
