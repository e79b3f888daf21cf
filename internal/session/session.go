// Package session owns the state of a single reading: the respondent's name,
// the current phase, and the answers collected so far. All mutation goes
// through the Flow state machine; everything else reads snapshots.
package session

import "github.com/Harisholympas/echoes-within1/internal/catalog"

// Phase is one discrete state of the reading flow.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseName
	PhaseQuestions
	PhaseCutscene
	PhaseLoading
	PhaseResult
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseName:
		return "name"
	case PhaseQuestions:
		return "questions"
	case PhaseCutscene:
		return "cutscene"
	case PhaseLoading:
		return "loading"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// Answer is one collected response. For choice questions Value holds the
// chosen option id (not its display text) and HiddenMeaning carries the
// option's hidden tag. For text questions Value holds the trimmed free text.
// For scale questions Scale holds a value in [1,10] and Value is empty.
// Answers are appended in question order and never mutated afterwards.
type Answer struct {
	QuestionID    string `json:"questionId"`
	Value         string `json:"value,omitempty"`
	Scale         int    `json:"scale,omitempty"`
	HiddenMeaning string `json:"hiddenMeaning,omitempty"`
}

// State is the full mutable state of a reading. Flow hands out copies; the
// Answers slice in a copy must be treated as read-only.
type State struct {
	PlayerName    string
	Phase         Phase
	QuestionIndex int
	Answers       []Answer

	// CutsceneCount counts cutscenes entered this session. The cutscene
	// content cycles over it.
	CutsceneCount int

	// PhaseSeq increments on every phase change. Timer callbacks capture the
	// value at phase entry and are ignored if it has moved on, which is what
	// guarantees at-most-once auto-advance per phase entry.
	PhaseSeq uint64
}

// Question returns the catalog question the state currently points at.
func (s State) Question(cat *catalog.Catalog) (catalog.Question, bool) {
	if s.Phase != PhaseQuestions || s.QuestionIndex >= cat.Len() {
		return catalog.Question{}, false
	}
	return cat.Question(s.QuestionIndex), true
}
