package session

import (
	"strings"

	"github.com/Harisholympas/echoes-within1/internal/catalog"
)

// DefaultCutsceneAfter lists the answer counts after which a cutscene plays,
// provided more questions remain.
var DefaultCutsceneAfter = []int{4, 8}

// Flow is the single writer of session state. It validates submissions
// against the current question, decides phase transitions, and fences stale
// timer events. Invalid submissions are rejected without any state change;
// none of the methods ever fail for conformant input.
type Flow struct {
	cat           *catalog.Catalog
	cutsceneAfter map[int]bool
	state         State
}

// NewFlow creates a flow over the given catalog with the default cutscene
// trigger points.
func NewFlow(cat *catalog.Catalog) *Flow {
	return NewFlowWithCutscenes(cat, DefaultCutsceneAfter)
}

// NewFlowWithCutscenes creates a flow with explicit cutscene trigger points.
func NewFlowWithCutscenes(cat *catalog.Catalog, cutsceneAfter []int) *Flow {
	triggers := make(map[int]bool, len(cutsceneAfter))
	for _, n := range cutsceneAfter {
		triggers[n] = true
	}
	return &Flow{
		cat:           cat,
		cutsceneAfter: triggers,
		state:         State{Phase: PhaseIntro},
	}
}

// State returns a snapshot of the current state.
func (f *Flow) State() State { return f.state }

// Phase returns the current phase.
func (f *Flow) Phase() Phase { return f.state.Phase }

// PhaseSeq returns the fencing token for the current phase entry.
func (f *Flow) PhaseSeq() uint64 { return f.state.PhaseSeq }

// Catalog returns the catalog the flow runs over.
func (f *Flow) Catalog() *catalog.Catalog { return f.cat }

// Current returns the question awaiting an answer, if the flow is in the
// questions phase.
func (f *Flow) Current() (catalog.Question, bool) {
	return f.state.Question(f.cat)
}

func (f *Flow) enter(p Phase) {
	f.state.Phase = p
	f.state.PhaseSeq++
}

// Start moves from the intro to name entry. No-op in any other phase.
func (f *Flow) Start() bool {
	if f.state.Phase != PhaseIntro {
		return false
	}
	f.enter(PhaseName)
	return true
}

// SubmitName records the respondent's name and begins the questions. A name
// that is empty after trimming is rejected with no state change.
func (f *Flow) SubmitName(name string) bool {
	if f.state.Phase != PhaseName {
		return false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	f.state.PlayerName = name
	f.enter(PhaseQuestions)
	return true
}

// SubmitChoice answers the current choice question with the given option id.
// Rejected if the current question is not a choice question or the id does
// not resolve to one of its options.
func (f *Flow) SubmitChoice(optionID string) bool {
	q, ok := f.Current()
	if !ok || q.Type != catalog.TypeChoice {
		return false
	}
	opt, ok := q.Option(optionID)
	if !ok {
		return false
	}
	f.append(Answer{
		QuestionID:    q.ID,
		Value:         opt.ID,
		HiddenMeaning: opt.HiddenValue,
	})
	return true
}

// SubmitText answers the current text question. Text that is empty after
// trimming is rejected.
func (f *Flow) SubmitText(text string) bool {
	q, ok := f.Current()
	if !ok || q.Type != catalog.TypeText {
		return false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	f.append(Answer{QuestionID: q.ID, Value: text})
	return true
}

// SubmitScale answers the current scale question. Values outside [1,10] are
// clamped rather than rejected; a scale widget always holds a valid value.
func (f *Flow) SubmitScale(value int) bool {
	q, ok := f.Current()
	if !ok || q.Type != catalog.TypeScale {
		return false
	}
	if value < catalog.ScaleMin {
		value = catalog.ScaleMin
	}
	if value > catalog.ScaleMax {
		value = catalog.ScaleMax
	}
	f.append(Answer{QuestionID: q.ID, Scale: value})
	return true
}

// append records the answer and advances: into a cutscene when the trigger
// set says so and questions remain, into loading when the catalog is
// exhausted, otherwise to the next question.
func (f *Flow) append(a Answer) {
	f.state.Answers = append(f.state.Answers, a)
	next := f.state.QuestionIndex + 1

	if f.cutsceneAfter[next] && next < f.cat.Len() {
		f.state.QuestionIndex = next
		f.state.CutsceneCount++
		f.enter(PhaseCutscene)
		return
	}
	if next >= f.cat.Len() {
		f.enter(PhaseLoading)
		return
	}
	f.state.QuestionIndex = next
	f.enter(PhaseQuestions)
}

// CutsceneDone resumes the questions after a cutscene. The seq must be the
// PhaseSeq captured when the cutscene was entered; a stale seq means the
// phase already changed and the timer event is dropped.
func (f *Flow) CutsceneDone(seq uint64) bool {
	if f.state.Phase != PhaseCutscene || f.state.PhaseSeq != seq {
		return false
	}
	f.enter(PhaseQuestions)
	return true
}

// LoadingDone reveals the result. Fenced the same way as CutsceneDone.
func (f *Flow) LoadingDone(seq uint64) bool {
	if f.state.Phase != PhaseLoading || f.state.PhaseSeq != seq {
		return false
	}
	f.enter(PhaseResult)
	return true
}

// Restart clears everything back to the intro. Only valid from the result
// phase; the seq bump invalidates any timer still in flight.
func (f *Flow) Restart() bool {
	if f.state.Phase != PhaseResult {
		return false
	}
	f.state = State{Phase: PhaseIntro, PhaseSeq: f.state.PhaseSeq + 1}
	return true
}
