package wizard

// EventKind identifies the type of session event.
type EventKind int

const (
	// EventConfirm commits the current answer and advances.
	EventConfirm EventKind = iota
	// EventQuit abandons the session without saving.
	EventQuit
	// EventThemeCycle switches to the successor theme.
	EventThemeCycle
	// EventMoveUp moves the highlight up one visible row.
	EventMoveUp
	// EventMoveDown moves the highlight down one visible row.
	EventMoveDown
	// EventRune appends a character to the active buffer.
	EventRune
	// EventBackspace removes the last character of the active buffer.
	EventBackspace
)

// Event carries a session input event.
type Event struct {
	Kind EventKind
	Rune rune
}
