package wizard

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"archwiz/internal/question"
)

// phase tracks which screen the wizard is showing.
type phase int

const (
	phaseSplash phase = iota
	phaseQuestions
	phaseDone
)

// Model drives a wizard session with Bubble Tea.
type Model struct {
	catalog question.Catalog
	state   State
	keys    KeyMap
	phase   phase
	spinner spinner.Model
	splash  time.Duration
	noColor bool
	width   int
	height  int
}

// Options configures the wizard model.
type Options struct {
	Theme       ThemeID
	SplashDelay time.Duration
	NoColor     bool
}

// NewModel constructs a wizard model over a catalog. A non-positive splash
// delay skips the splash screen entirely.
func NewModel(catalog question.Catalog, opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = activeTheme(opts.Theme, opts.NoColor).Banner
	model := Model{
		catalog: catalog,
		state:   NewState(opts.Theme),
		keys:    DefaultKeyMap(),
		phase:   phaseSplash,
		spinner: sp,
		splash:  opts.SplashDelay,
		noColor: opts.NoColor,
	}
	if model.splash <= 0 {
		model.phase = phaseQuestions
	}
	return model
}

// splashDoneMsg signals the end of the splash delay.
type splashDoneMsg struct{}

// Init starts the splash timer and spinner.
func (m Model) Init() tea.Cmd {
	if m.phase != phaseSplash {
		return nil
	}
	return tea.Batch(m.spinner.Tick, splashTimer(m.splash))
}

// splashTimer emits splashDoneMsg after the fixed delay. Key presses never
// shorten it.
func splashTimer(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return splashDoneMsg{} })
}

// Update consumes key presses, window sizes, and splash timing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case splashDoneMsg:
		if m.phase == phaseSplash {
			m.phase = phaseQuestions
		}
		return m, nil
	case spinner.TickMsg:
		if m.phase != phaseSplash {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// handleKey routes a key press by phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.phase == phaseSplash {
		switch {
		case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.QuitRune):
			m.state.Quit = true
			m.phase = phaseDone
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.state.Theme = m.state.Theme.Next()
			m.spinner.Style = activeTheme(m.state.Theme, m.noColor).Banner
		}
		return m, nil
	}
	if m.phase != phaseQuestions {
		return m, nil
	}
	event, ok := m.eventFor(msg)
	if !ok {
		return m, nil
	}
	m.state = Reduce(m.catalog, m.state, event)
	if m.state.Quit || Done(m.catalog, m.state) {
		m.phase = phaseDone
		return m, tea.Quit
	}
	return m, nil
}

// eventFor maps a key press to a session event for the current question.
func (m Model) eventFor(msg tea.KeyMsg) (Event, bool) {
	current, ok := Current(m.catalog, m.state)
	if !ok {
		return Event{}, false
	}
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		return Event{Kind: EventQuit}, true
	case key.Matches(msg, m.keys.QuitRune) && current.Kind != question.FreeText:
		return Event{Kind: EventQuit}, true
	case key.Matches(msg, m.keys.Theme):
		return Event{Kind: EventThemeCycle}, true
	case key.Matches(msg, m.keys.Confirm):
		return Event{Kind: EventConfirm}, true
	case key.Matches(msg, m.keys.Up):
		return Event{Kind: EventMoveUp}, true
	case key.Matches(msg, m.keys.Down):
		return Event{Kind: EventMoveDown}, true
	case key.Matches(msg, m.keys.Backspace):
		return Event{Kind: EventBackspace}, true
	}
	if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && len(msg.Runes) > 0 {
		return Event{Kind: EventRune, Rune: msg.Runes[0]}, true
	}
	if msg.Type == tea.KeySpace {
		return Event{Kind: EventRune, Rune: ' '}, true
	}
	return Event{}, false
}

// View renders the current frame for the active phase.
func (m Model) View() string {
	switch m.phase {
	case phaseSplash:
		return Splash(m.state, m.spinner.View(), m.noColor, m.width, m.height)
	case phaseQuestions:
		return View(m.catalog, m.state, m.noColor, m.width, m.height)
	default:
		return ""
	}
}

// FinalState returns the session state once the program has finished.
func (m Model) FinalState() State {
	return m.state
}
