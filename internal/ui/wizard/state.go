package wizard

import "archwiz/internal/question"

// State captures a wizard session at a point in time. Index is the current
// question position; Index == len(catalog.Questions) means the session
// completed naturally. Answers holds one raw value per answered question in
// catalog order; Boolean answers are stored as "true" or "false".
type State struct {
	Index    int
	Selected int
	Input    string
	Filter   string
	Theme    ThemeID
	Answers  []string
	Quit     bool
}

// NewState returns the initial session state with the given theme.
func NewState(theme ThemeID) State {
	return State{Theme: theme}
}

// Done reports whether every question has been answered.
func Done(catalog question.Catalog, state State) bool {
	return !state.Quit && state.Index >= len(catalog.Questions)
}

// Current returns the question under the cursor, if the session is live.
func Current(catalog question.Catalog, state State) (question.Question, bool) {
	if state.Quit || state.Index < 0 || state.Index >= len(catalog.Questions) {
		return question.Question{}, false
	}
	return catalog.Questions[state.Index], true
}

// VisibleChoices returns the selectable rows for a question after applying
// the filter buffer. FreeText questions have no rows.
func VisibleChoices(q question.Question, filter string) []string {
	return question.FilterChoices(q.Choices(), filter)
}
