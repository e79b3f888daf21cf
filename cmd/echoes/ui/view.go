package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Harisholympas/echoes-within1/internal/catalog"
	"github.com/Harisholympas/echoes-within1/internal/report"
	"github.com/Harisholympas/echoes-within1/internal/session"
)

// View satisfies tea.Model.
func (m Model) View() string {
	var screen string
	switch m.flow.Phase() {
	case session.PhaseIntro:
		screen = m.viewIntro()
	case session.PhaseName:
		screen = m.viewName()
	case session.PhaseQuestions:
		screen = m.viewQuestion()
	case session.PhaseCutscene:
		screen = m.viewCutscene()
	case session.PhaseLoading:
		screen = m.viewLoading()
	case session.PhaseResult:
		screen = m.viewResult()
	}

	if m.width <= 0 || m.height <= 0 {
		return screen
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, screen)
}

func (m Model) center(lines ...string) string {
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) viewIntro() string {
	s := m.styles
	return m.center(
		s.Faint.Render(sketchEye),
		"",
		s.Title.Render("Echoes"),
		s.Divider.Render(sketchDivider),
		"",
		s.Quote.Render("\"Some things are felt"),
		s.Quote.Render("before they are understood.\""),
		"",
		s.Text.Render("Someone sent you here for a reason."),
		s.Text.Render("Let's see what surfaces."),
		"",
		s.Hint.Render("[enter] Enter"),
		"",
		s.Faint.Render("~ take a breath before you enter ~"),
	)
}

func (m Model) viewName() string {
	s := m.styles
	return m.center(
		s.Subtitle.Render("T H E   V I S I T O R ' S   L O G"),
		"",
		s.Title.Render("Before we begin..."),
		s.Divider.Render(sketchDivider),
		"",
		s.Quote.Render("\"A name is but a breath given form—"),
		s.Quote.Render("yet it shapes all that follows.\""),
		"",
		m.nameInput.View(),
		"",
		s.Hint.Render("[enter] Step inside"),
	)
}

func (m Model) viewQuestion() string {
	s := m.styles
	q, ok := m.flow.Current()
	if !ok {
		return ""
	}
	st := m.flow.State()
	number := st.QuestionIndex + 1
	total := m.flow.Catalog().Len()

	header := m.center(
		s.Faint.Render(fmt.Sprintf("%d of %d", number, total)),
		m.prog.ViewAs(float64(number)/float64(total)),
	)

	prompt := []string{s.Title.Render(q.Prompt)}
	if q.Subtext != "" {
		prompt = append(prompt, s.Quote.Render(q.Subtext))
	}

	var body string
	switch q.Type {
	case catalog.TypeChoice:
		body = m.viewChoices(q)
	case catalog.TypeText:
		body = m.textInput.View()
	case catalog.TypeScale:
		body = m.viewScale(q)
	}

	hint := "[enter] Continue"
	if q.Type == catalog.TypeChoice && m.cursor < 0 {
		hint = "choose an answer first"
	}

	return m.center(
		header,
		"",
		m.center(prompt...),
		s.Divider.Render(sketchDivider),
		"",
		body,
		"",
		s.Hint.Render(hint),
	)
}

func (m Model) viewChoices(q catalog.Question) string {
	s := m.styles
	rows := make([]string, 0, len(q.Options))
	for i, opt := range q.Options {
		label := fmt.Sprintf("%d. %s", i+1, opt.Text)
		if i == m.cursor {
			rows = append(rows, s.OptionSelected.Render(label))
		} else {
			rows = append(rows, s.Option.Render(label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewScale(q catalog.Question) string {
	s := m.styles

	var labels string
	if q.ScaleLabels != nil {
		gap := 46 - len(q.ScaleLabels.Left) - len(q.ScaleLabels.Right)
		if gap < 2 {
			gap = 2
		}
		labels = s.Faint.Render(q.ScaleLabels.Left + strings.Repeat(" ", gap) + q.ScaleLabels.Right)
	}

	var track strings.Builder
	for v := catalog.ScaleMin; v <= catalog.ScaleMax; v++ {
		if v == m.scale {
			track.WriteString(s.ScaleValue.Render("●"))
		} else {
			track.WriteString(s.Faint.Render("·"))
		}
		if v < catalog.ScaleMax {
			track.WriteString(s.Faint.Render("──"))
		}
	}

	return m.center(
		labels,
		"",
		track.String(),
		"",
		s.ScaleValue.Render(fmt.Sprintf("%d", m.scale)),
	)
}

func (m Model) viewCutscene() string {
	s := m.styles
	count := m.flow.State().CutsceneCount
	if count < 1 {
		return ""
	}
	scene := cutscenes[(count-1)%len(cutscenes)]

	lines := []string{s.Faint.Render(scene.art), ""}
	for i, line := range scene.lines {
		if i <= m.cutsceneLine {
			lines = append(lines, s.Title.Render(line))
		}
	}
	return m.center(lines...)
}

func (m Model) viewLoading() string {
	s := m.styles
	card := s.Card.Render(m.center(
		s.Faint.Render("Ephemeral Processing"),
		"",
		s.Text.Render("This space stores nothing. Your reflections exist only"),
		s.Text.Render("in this moment, dissolving as you move forward."),
	))
	return m.center(
		m.spin.View(),
		"",
		s.Title.Render("Gathering the fragments..."),
		"",
		s.Quote.Render("\"Every answer leaves an impression,"),
		s.Quote.Render("like ink bleeding into parchment...\""),
		"",
		card,
		"",
		s.Faint.Render("~ the void remembers what it chooses ~"),
	)
}

func (m Model) viewResult() string {
	s := m.styles
	if m.reading == nil {
		return ""
	}
	r := m.reading

	poem := make([]string, 0, len(r.OutcomePoemLines))
	for _, line := range r.OutcomePoemLines {
		poem = append(poem, s.Quote.Render(line))
	}

	lines := []string{
		s.Faint.Render(sketchEye),
		"",
		s.Faint.Render("A reflection for " + r.PlayerName),
		s.Title.Render(r.OutcomeTitle),
		s.Divider.Render(sketchDivider),
		"",
		s.Card.Render(lipgloss.JoinVertical(lipgloss.Left, poem...)),
		"",
		s.Text.Render("The echoes have been gathered."),
		s.Text.Render("What they reveal is for another to know."),
		"",
	}

	lines = append(lines, m.sendStatusLine())
	lines = append(lines,
		"",
		s.Hint.Render(m.resultHints()),
		"",
		s.Faint.Render("~ the void keeps what it learns ~"),
	)
	return m.center(lines...)
}

func (m Model) sendStatusLine() string {
	s := m.styles
	if !m.courier.Enabled() {
		return ""
	}
	switch m.sendState {
	case report.SendPending:
		return s.Faint.Render("sending the echoes onward...")
	case report.SendSucceeded:
		return s.Success.Render("the echoes have been carried away")
	case report.SendFailed:
		return s.Err.Render("the echoes would not carry: " + m.sendErr)
	default:
		return ""
	}
}

func (m Model) resultHints() string {
	hints := []string{"[r] begin again", "[esc] leave"}
	if m.courier.Enabled() && m.sendState.CanSend() {
		hints = append([]string{"[s] send the echoes"}, hints...)
	}
	return strings.Join(hints, "   ")
}
