package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Harisholympas/echoes-within1/internal/catalog"
	"github.com/Harisholympas/echoes-within1/internal/logging"
	"github.com/Harisholympas/echoes-within1/internal/report"
	"github.com/Harisholympas/echoes-within1/internal/session"
)

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case cutsceneLineMsg:
		// Reveal the next line; keep ticking while lines remain. The seq
		// fence makes a tick from an abandoned cutscene inert.
		if m.flow.Phase() != session.PhaseCutscene || m.flow.PhaseSeq() != msg.seq {
			return m, nil
		}
		scene := cutscenes[(m.flow.State().CutsceneCount-1)%len(cutscenes)]
		if m.cutsceneLine < len(scene.lines)-1 {
			m.cutsceneLine++
			return m, tick(m.cfg.Timing.CutsceneLine(), cutsceneLineMsg{seq: msg.seq})
		}
		return m, nil

	case cutsceneDoneMsg:
		if m.flow.CutsceneDone(msg.seq) {
			logging.Flow("cutscene complete, resuming questions at index %d", m.flow.State().QuestionIndex)
			return m, m.enterPhase()
		}
		return m, nil

	case loadingDoneMsg:
		if m.flow.LoadingDone(msg.seq) {
			logging.Flow("loading complete, revealing result")
			return m, m.enterPhase()
		}
		return m, nil

	case archiveDoneMsg:
		// Best-effort: a failed append is logged inside the archive and
		// never surfaced to the visitor.
		return m, nil

	case sendResultMsg:
		if m.reading == nil || m.reading.ID != msg.id {
			return m, nil
		}
		if msg.err != nil {
			m.sendState = report.SendFailed
			m.sendErr = msg.err.Error()
		} else {
			m.sendState = report.SendSucceeded
			m.sendErr = ""
		}
		return m, nil

	case spinner.TickMsg:
		if m.flow.Phase() != session.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m.updateWidgets(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.flow.Phase() {
	case session.PhaseIntro:
		if key.Matches(msg, m.keys.Confirm) {
			m.flow.Start()
			return m, m.enterPhase()
		}
		return m, nil

	case session.PhaseName:
		if key.Matches(msg, m.keys.Confirm) {
			if m.flow.SubmitName(m.nameInput.Value()) {
				logging.Flow("visitor %q entered", m.flow.State().PlayerName)
				return m, m.enterPhase()
			}
			// Empty name: the submit silently refuses.
			return m, nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd

	case session.PhaseQuestions:
		return m.handleQuestionKey(msg)

	case session.PhaseResult:
		switch {
		case key.Matches(msg, m.keys.Restart):
			return m, m.restart()
		case key.Matches(msg, m.keys.Send):
			if m.courier.Enabled() && m.sendState.CanSend() && m.reading != nil {
				m.sendState = report.SendPending
				m.sendErr = ""
				return m, m.sendCmd(*m.reading)
			}
			return m, nil
		}
		return m, nil
	}

	// Cutscene and loading ignore everything but quit.
	return m, nil
}

func (m Model) handleQuestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, ok := m.flow.Current()
	if !ok {
		return m, nil
	}

	switch q.Type {
	case catalog.TypeChoice:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			} else if m.cursor < 0 {
				m.cursor = 0
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(q.Options)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Confirm):
			if m.cursor >= 0 && m.cursor < len(q.Options) {
				if m.flow.SubmitChoice(q.Options[m.cursor].ID) {
					return m, m.enterPhase()
				}
			}
			// No selection yet: continue stays disabled.
		default:
			// Digit shortcuts jump straight to an option.
			if n := digit(msg.String()); n >= 1 && n <= len(q.Options) {
				m.cursor = n - 1
			}
		}
		return m, nil

	case catalog.TypeScale:
		switch {
		case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Down):
			if m.scale > catalog.ScaleMin {
				m.scale--
			}
		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Up):
			if m.scale < catalog.ScaleMax {
				m.scale++
			}
		case key.Matches(msg, m.keys.Confirm):
			// A scale always holds a valid value and is always submittable.
			if m.flow.SubmitScale(m.scale) {
				return m, m.enterPhase()
			}
		default:
			if n := digit(msg.String()); n >= 1 && n <= 9 {
				m.scale = n
			} else if msg.String() == "0" {
				m.scale = catalog.ScaleMax
			}
		}
		return m, nil

	case catalog.TypeText:
		if key.Matches(msg, m.keys.Confirm) {
			if m.flow.SubmitText(m.textInput.Value()) {
				return m, m.enterPhase()
			}
			// Whitespace-only text: stay put.
			return m, nil
		}
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateWidgets forwards non-key messages (blink ticks and the like) to
// whichever widget is on screen.
func (m Model) updateWidgets(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.flow.Phase() {
	case session.PhaseName:
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	case session.PhaseQuestions:
		if q, ok := m.flow.Current(); ok && q.Type == catalog.TypeText {
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func digit(s string) int {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0
	}
	return int(s[0] - '0')
}
