package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Harisholympas/echoes-within1/internal/catalog"
	"github.com/Harisholympas/echoes-within1/internal/config"
	"github.com/Harisholympas/echoes-within1/internal/logging"
	"github.com/Harisholympas/echoes-within1/internal/outcome"
	"github.com/Harisholympas/echoes-within1/internal/report"
	"github.com/Harisholympas/echoes-within1/internal/scoring"
	"github.com/Harisholympas/echoes-within1/internal/session"
)

// Timer messages carry the PhaseSeq captured when the timer was scheduled.
// The flow drops them when the phase has since changed, so a torn-down
// screen can never advance a newer one.
type (
	cutsceneLineMsg struct{ seq uint64 }
	cutsceneDoneMsg struct{ seq uint64 }
	loadingDoneMsg  struct{ seq uint64 }

	archiveDoneMsg struct{ err error }
	sendResultMsg  struct {
		id  string
		err error
	}
)

// KeyMap is the keyboard surface of the experience.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Send    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "less")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "more")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		Send:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "send")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "begin again")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "leave")),
	}
}

// Model drives the whole experience. It owns the Flow (the single writer of
// session state) and renders whichever screen the current phase calls for.
type Model struct {
	flow    *session.Flow
	cfg     config.Config
	styles  Styles
	keys    KeyMap
	archive *report.Archive // nil when the archive could not be opened
	courier *report.Courier

	// Widgets
	nameInput textinput.Model
	textInput textarea.Model
	spin      spinner.Model
	prog      progress.Model

	// Per-screen state
	cursor       int // selected option index, -1 for none
	scale        int
	cutsceneLine int // lines revealed so far, beyond the first

	// Result state
	reading   *report.Reading
	sendState report.SendState
	sendErr   string

	width  int
	height int
}

// New builds the model. The archive may be nil; the courier may be disabled.
func New(cat *catalog.Catalog, cfg config.Config, archive *report.Archive, courier *report.Courier) Model {
	styles := NewStyles(DetectTheme())

	name := textinput.New()
	name.Placeholder = "inscribe your name here"
	name.CharLimit = 40
	name.Width = 34

	answer := textarea.New()
	answer.Placeholder = "Let the words flow..."
	answer.CharLimit = 400
	answer.SetHeight(3)
	answer.SetWidth(54)
	answer.ShowLineNumbers = false

	spin := spinner.New(
		spinner.WithSpinner(spinner.Moon),
		spinner.WithStyle(styles.Faint),
	)

	prog := progress.New(progress.WithSolidFill(string(styles.Theme.Faint)))
	prog.Width = 40
	prog.ShowPercentage = false

	return Model{
		flow:      session.NewFlow(cat),
		cfg:       cfg,
		styles:    styles,
		keys:      DefaultKeyMap(),
		archive:   archive,
		courier:   courier,
		nameInput: name,
		textInput: answer,
		spin:      spin,
		prog:      prog,
		cursor:    -1,
		scale:     catalog.DefaultScaleValue,
	}
}

// Flow exposes the underlying state machine, mainly for tests.
func (m Model) Flow() *session.Flow { return m.flow }

// Reading returns the finished reading, if the session has produced one.
func (m Model) Reading() *report.Reading { return m.reading }

// SendState returns the transmission state of the result screen.
func (m Model) SendState() report.SendState { return m.sendState }

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// enterPhase resets per-screen state and schedules whatever the new phase
// needs. Called after every flow transition.
func (m *Model) enterPhase() tea.Cmd {
	seq := m.flow.PhaseSeq()
	switch m.flow.Phase() {
	case session.PhaseName:
		m.nameInput.SetValue("")
		return m.nameInput.Focus()

	case session.PhaseQuestions:
		m.cursor = -1
		m.scale = catalog.DefaultScaleValue
		m.textInput.Reset()
		if q, ok := m.flow.Current(); ok && q.Type == catalog.TypeText {
			return m.textInput.Focus()
		}
		return nil

	case session.PhaseCutscene:
		m.cutsceneLine = 0
		return tea.Batch(
			tick(m.cfg.Timing.CutsceneLine(), cutsceneLineMsg{seq: seq}),
			tick(m.cfg.Timing.CutsceneTotal(), cutsceneDoneMsg{seq: seq}),
		)

	case session.PhaseLoading:
		// The questions are complete; score once, then archive off-loop.
		st := m.flow.State()
		analysis := scoring.Analyze(st.Answers)
		chosen := outcome.Select(analysis)
		r := report.Build(st.PlayerName, st.Answers, analysis, chosen)
		m.reading = &r
		logging.Scoring("reading %s: trust=%s attachment=%s tone=%s outcome=%q",
			r.ID, analysis.TrustLevel, analysis.Attachment, analysis.EmotionalTone, chosen.Title)
		return tea.Batch(
			m.spin.Tick,
			m.archiveCmd(r),
			tick(m.cfg.Timing.Loading(), loadingDoneMsg{seq: seq}),
		)

	case session.PhaseResult:
		return nil
	}
	return nil
}

// archiveCmd appends the reading to the local archive. Failure is logged and
// swallowed; the archive is not essential to the experience.
func (m *Model) archiveCmd(r report.Reading) tea.Cmd {
	archive := m.archive
	return func() tea.Msg {
		if archive == nil {
			return archiveDoneMsg{}
		}
		return archiveDoneMsg{err: archive.Append(r)}
	}
}

// sendCmd dispatches the reading to the webhook.
func (m *Model) sendCmd(r report.Reading) tea.Cmd {
	courier := m.courier
	timeout := m.cfg.SendTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return sendResultMsg{id: r.ID, err: courier.Send(ctx, r)}
	}
}

// restart clears everything for a fresh visitor.
func (m *Model) restart() tea.Cmd {
	if !m.flow.Restart() {
		return nil
	}
	logging.Flow("session restarted")
	m.reading = nil
	m.sendState = report.SendIdle
	m.sendErr = ""
	m.cursor = -1
	m.scale = catalog.DefaultScaleValue
	m.cutsceneLine = 0
	m.nameInput.SetValue("")
	m.textInput.Reset()
	return nil
}
