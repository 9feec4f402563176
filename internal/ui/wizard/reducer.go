package wizard

import "archwiz/internal/question"

// Reduce applies a session event to the state and returns the successor.
// It never mutates its arguments. Terminal states (quit or every question
// answered) are returned unchanged.
func Reduce(catalog question.Catalog, state State, event Event) State {
	current, ok := Current(catalog, state)
	if !ok {
		return state
	}
	switch event.Kind {
	case EventConfirm:
		return reduceConfirm(current, state)
	case EventQuit:
		state.Quit = true
		return state
	case EventThemeCycle:
		state.Theme = state.Theme.Next()
		return state
	case EventMoveUp, EventMoveDown:
		return reduceMove(current, state, event.Kind)
	case EventRune:
		return reduceRune(current, state, event.Rune)
	case EventBackspace:
		return reduceBackspace(current, state)
	}
	return state
}

// reduceConfirm commits the current answer and advances one question.
// Confirming a choice question with no visible rows is a no-op.
func reduceConfirm(q question.Question, state State) State {
	var value string
	switch q.Kind {
	case question.FreeText:
		value = state.Input
	case question.MultipleChoice:
		visible := VisibleChoices(q, state.Filter)
		if len(visible) == 0 || state.Selected >= len(visible) {
			return state
		}
		value = visible[state.Selected]
	case question.Boolean:
		if state.Selected == 0 {
			value = "true"
		} else {
			value = "false"
		}
	default:
		return state
	}
	state.Answers = appendAnswer(state.Answers, value)
	state.Index++
	state.Selected = 0
	state.Input = ""
	state.Filter = ""
	return state
}

// reduceMove shifts the highlight within the visible rows, clamped at both
// ends. The bound is the filtered row count, not the full option set.
func reduceMove(q question.Question, state State, kind EventKind) State {
	visible := VisibleChoices(q, state.Filter)
	if len(visible) == 0 {
		return state
	}
	if kind == EventMoveUp && state.Selected > 0 {
		state.Selected--
	} else if kind == EventMoveDown && state.Selected < len(visible)-1 {
		state.Selected++
	}
	return state
}

// reduceRune appends a character to the input or filter buffer. Editing the
// filter resets the highlight to the first visible row.
func reduceRune(q question.Question, state State, r rune) State {
	switch q.Kind {
	case question.FreeText:
		state.Input += string(r)
	case question.MultipleChoice:
		state.Filter += string(r)
		state.Selected = 0
	}
	return state
}

// reduceBackspace removes the trailing character from the active buffer.
func reduceBackspace(q question.Question, state State) State {
	switch q.Kind {
	case question.FreeText:
		state.Input = trimLastRune(state.Input)
	case question.MultipleChoice:
		state.Filter = trimLastRune(state.Filter)
		state.Selected = 0
	}
	return state
}

// appendAnswer returns a copy of answers extended with value, so derived
// states never share a backing array.
func appendAnswer(answers []string, value string) []string {
	next := make([]string, len(answers)+1)
	copy(next, answers)
	next[len(answers)] = value
	return next
}

// trimLastRune drops the final rune from a string.
func trimLastRune(value string) string {
	if value == "" {
		return value
	}
	runes := []rune(value)
	return string(runes[:len(runes)-1])
}
