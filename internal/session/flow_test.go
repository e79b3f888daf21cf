package session

import (
	"testing"

	"github.com/Harisholympas/echoes-within1/internal/catalog"
)

// answerCurrent submits a valid answer for whatever question the flow is on.
func answerCurrent(t *testing.T, f *Flow) {
	t.Helper()
	q, ok := f.Current()
	if !ok {
		t.Fatalf("no current question in phase %s", f.Phase())
	}
	var submitted bool
	switch q.Type {
	case catalog.TypeChoice:
		submitted = f.SubmitChoice(q.Options[0].ID)
	case catalog.TypeText:
		submitted = f.SubmitText("something real")
	case catalog.TypeScale:
		submitted = f.SubmitScale(5)
	}
	if !submitted {
		t.Fatalf("failed to answer question %q", q.ID)
	}
}

// begin walks a fresh flow into the questions phase.
func begin(t *testing.T) *Flow {
	t.Helper()
	f := NewFlow(catalog.Default())
	if !f.Start() {
		t.Fatal("Start failed from intro")
	}
	if !f.SubmitName("Ada") {
		t.Fatal("SubmitName failed")
	}
	if f.Phase() != PhaseQuestions {
		t.Fatalf("expected questions, got %s", f.Phase())
	}
	return f
}

func TestInitialState(t *testing.T) {
	t.Parallel()

	f := NewFlow(catalog.Default())
	st := f.State()
	if st.Phase != PhaseIntro || st.QuestionIndex != 0 || len(st.Answers) != 0 || st.PlayerName != "" {
		t.Errorf("unexpected initial state: %+v", st)
	}
}

func TestNameValidation(t *testing.T) {
	t.Parallel()

	f := NewFlow(catalog.Default())
	f.Start()

	for _, bad := range []string{"", "   ", "\t\n"} {
		if f.SubmitName(bad) {
			t.Errorf("SubmitName(%q) should be rejected", bad)
		}
		if f.Phase() != PhaseName {
			t.Fatalf("rejected name must not transition, got %s", f.Phase())
		}
	}

	if !f.SubmitName("  Ada  ") {
		t.Fatal("trimmed non-empty name should be accepted")
	}
	if got := f.State().PlayerName; got != "Ada" {
		t.Errorf("expected trimmed name 'Ada', got %q", got)
	}
}

func TestStartOnlyFromIntro(t *testing.T) {
	t.Parallel()

	f := begin(t)
	if f.Start() {
		t.Error("Start should be rejected outside the intro")
	}
}

func TestCutsceneAfterFourthAnswer(t *testing.T) {
	t.Parallel()

	f := begin(t)
	for i := 0; i < 3; i++ {
		answerCurrent(t, f)
		if f.Phase() != PhaseQuestions {
			t.Fatalf("answer %d: expected questions, got %s", i+1, f.Phase())
		}
	}
	answerCurrent(t, f)
	if f.Phase() != PhaseCutscene {
		t.Fatalf("fourth answer should enter the cutscene, got %s", f.Phase())
	}
	st := f.State()
	if st.QuestionIndex != 4 {
		t.Errorf("expected index 4 going into the cutscene, got %d", st.QuestionIndex)
	}
	if st.CutsceneCount != 1 {
		t.Errorf("expected cutscene count 1, got %d", st.CutsceneCount)
	}
}

func TestCutsceneDoneFencing(t *testing.T) {
	t.Parallel()

	f := begin(t)
	for i := 0; i < 4; i++ {
		answerCurrent(t, f)
	}
	seq := f.PhaseSeq()

	if f.CutsceneDone(seq - 1) {
		t.Error("stale seq must not advance the cutscene")
	}
	if f.Phase() != PhaseCutscene {
		t.Fatalf("phase moved on a stale seq: %s", f.Phase())
	}
	if !f.CutsceneDone(seq) {
		t.Fatal("current seq should advance the cutscene")
	}
	if f.Phase() != PhaseQuestions {
		t.Fatalf("expected questions after cutscene, got %s", f.Phase())
	}
	// The timer that already fired can never fire again.
	if f.CutsceneDone(seq) {
		t.Error("a consumed seq must not fire twice")
	}
}

func TestFullRun(t *testing.T) {
	t.Parallel()

	f := begin(t)
	total := catalog.Default().Len()
	answered := 0
	for answered < total {
		switch f.Phase() {
		case PhaseQuestions:
			answerCurrent(t, f)
			answered++
		case PhaseCutscene:
			if !f.CutsceneDone(f.PhaseSeq()) {
				t.Fatal("cutscene failed to complete")
			}
		default:
			t.Fatalf("unexpected phase %s after %d answers", f.Phase(), answered)
		}
	}

	if f.Phase() != PhaseLoading {
		t.Fatalf("expected loading after the last answer, got %s", f.Phase())
	}
	if got := len(f.State().Answers); got != total {
		t.Fatalf("expected %d answers, got %d", total, got)
	}
	if got := f.State().CutsceneCount; got != 2 {
		t.Errorf("expected 2 cutscenes in a full run, got %d", got)
	}

	if !f.LoadingDone(f.PhaseSeq()) {
		t.Fatal("loading failed to complete")
	}
	if f.Phase() != PhaseResult {
		t.Fatalf("expected result, got %s", f.Phase())
	}
}

func TestRestartClearsEverything(t *testing.T) {
	t.Parallel()

	f := begin(t)
	for f.Phase() != PhaseLoading {
		if f.Phase() == PhaseCutscene {
			f.CutsceneDone(f.PhaseSeq())
			continue
		}
		answerCurrent(t, f)
	}
	f.LoadingDone(f.PhaseSeq())

	if !f.Restart() {
		t.Fatal("Restart failed from result")
	}
	st := f.State()
	if st.Phase != PhaseIntro {
		t.Errorf("expected intro after restart, got %s", st.Phase)
	}
	if len(st.Answers) != 0 || st.QuestionIndex != 0 || st.PlayerName != "" || st.CutsceneCount != 0 {
		t.Errorf("restart left state behind: %+v", st)
	}
}

func TestRestartOnlyFromResult(t *testing.T) {
	t.Parallel()

	f := begin(t)
	if f.Restart() {
		t.Error("Restart should be rejected outside the result phase")
	}
}

func TestChoiceValidation(t *testing.T) {
	t.Parallel()

	f := begin(t)
	answerCurrent(t, f) // first_memory is text; next is the color choice

	q, _ := f.Current()
	if q.Type != catalog.TypeChoice {
		t.Fatalf("expected a choice question, got %s", q.Type)
	}

	if f.SubmitChoice("") {
		t.Error("empty selection must be rejected")
	}
	if f.SubmitChoice("zz") {
		t.Error("unknown option id must be rejected")
	}
	if f.SubmitText("not a text question") {
		t.Error("text submission against a choice question must be rejected")
	}
	if got := len(f.State().Answers); got != 1 {
		t.Fatalf("rejected submissions must not append answers, got %d", got)
	}

	if !f.SubmitChoice(q.Options[1].ID) {
		t.Fatal("valid option id should be accepted")
	}
	last := f.State().Answers[1]
	if last.Value != q.Options[1].ID {
		t.Errorf("answer value should be the option id, got %q", last.Value)
	}
	if last.HiddenMeaning != q.Options[1].HiddenValue {
		t.Errorf("answer should carry the option's hidden tag, got %q", last.HiddenMeaning)
	}
}

func TestTextValidation(t *testing.T) {
	t.Parallel()

	f := begin(t)
	if f.SubmitText("   ") {
		t.Error("whitespace-only text must be rejected")
	}
	if !f.SubmitText("  a beach  ") {
		t.Fatal("non-empty text should be accepted")
	}
	if got := f.State().Answers[0].Value; got != "a beach" {
		t.Errorf("text answers should be stored trimmed, got %q", got)
	}
}

func TestScaleClamping(t *testing.T) {
	t.Parallel()

	f := NewFlowWithCutscenes(catalog.Default(), nil)
	f.Start()
	f.SubmitName("Ada")
	// Walk to silence_together, the first scale question.
	for {
		q, ok := f.Current()
		if !ok {
			t.Fatal("ran out of questions before the scale")
		}
		if q.Type == catalog.TypeScale {
			break
		}
		answerCurrent(t, f)
	}

	if !f.SubmitScale(42) {
		t.Fatal("scale submission should always be accepted")
	}
	answers := f.State().Answers
	if got := answers[len(answers)-1].Scale; got != catalog.ScaleMax {
		t.Errorf("expected clamp to %d, got %d", catalog.ScaleMax, got)
	}
}

func TestNoCutsceneWhenTriggerIsPastCatalogEnd(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Parse([]byte(`
questions:
  - {id: q1, type: text, prompt: p}
  - {id: q2, type: text, prompt: p}
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Trigger after answer 2, but 2 is also the catalog length: loading wins.
	f := NewFlowWithCutscenes(cat, []int{2})
	f.Start()
	f.SubmitName("Ada")
	f.SubmitText("one")
	f.SubmitText("two")
	if f.Phase() != PhaseLoading {
		t.Errorf("expected loading when the trigger equals the catalog length, got %s", f.Phase())
	}
}
