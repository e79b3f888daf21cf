package outcome

import (
	"testing"

	"github.com/Harisholympas/echoes-within1/internal/scoring"
)

func TestSelectIsTotal(t *testing.T) {
	t.Parallel()

	trusts := []scoring.TrustLevel{scoring.TrustHigh, scoring.TrustMixed, scoring.TrustGuarded}
	attachments := []scoring.Attachment{scoring.AttachmentStrong, scoring.AttachmentModerate}
	tones := []scoring.Tone{scoring.TonePositive, scoring.ToneComplex, scoring.ToneConflicted}
	importances := []scoring.Importance{scoring.ImportanceVery, scoring.ImportanceModerate, scoring.ImportancePeripheral}

	valid := map[Title]bool{
		TheAnchor:           true,
		TheDistantStar:      true,
		TheThornAndRose:     true,
		TheUnfinishedLetter: true,
		TheQuietThread:      true,
	}

	for _, tr := range trusts {
		for _, at := range attachments {
			for _, tn := range tones {
				for _, im := range importances {
					o := Select(scoring.Analysis{
						TrustLevel:    tr,
						Attachment:    at,
						EmotionalTone: tn,
						Importance:    im,
					})
					if !valid[o.Title] {
						t.Errorf("trust=%s attach=%s tone=%s importance=%s: unknown outcome %q",
							tr, at, tn, im, o.Title)
					}
				}
			}
		}
	}
}

// TestRulePrecedence builds an analysis matching both the anchor rule and
// the distant-star rule; the anchor must win because it comes first.
func TestRulePrecedence(t *testing.T) {
	t.Parallel()

	o := Select(scoring.Analysis{
		TrustLevel:    scoring.TrustHigh,
		Attachment:    scoring.AttachmentStrong,
		EmotionalTone: scoring.ToneConflicted, // also matches the distant star
		Importance:    scoring.ImportanceVery,
	})
	if o.Title != TheAnchor {
		t.Errorf("expected %q by rule precedence, got %q", TheAnchor, o.Title)
	}
}

func TestGuardedAlwaysDistantStar(t *testing.T) {
	t.Parallel()

	for _, at := range []scoring.Attachment{scoring.AttachmentStrong, scoring.AttachmentModerate} {
		for _, tn := range []scoring.Tone{scoring.TonePositive, scoring.ToneComplex, scoring.ToneConflicted} {
			o := Select(scoring.Analysis{
				TrustLevel:    scoring.TrustGuarded,
				Attachment:    at,
				EmotionalTone: tn,
				Importance:    scoring.ImportanceVery,
			})
			if o.Title != TheDistantStar {
				t.Errorf("guarded trust with attach=%s tone=%s: expected %q, got %q",
					at, tn, TheDistantStar, o.Title)
			}
		}
	}
}

func TestThornAndRose(t *testing.T) {
	t.Parallel()

	o := Select(scoring.Analysis{
		TrustLevel:    scoring.TrustHigh,
		Attachment:    scoring.AttachmentStrong,
		EmotionalTone: scoring.ToneComplex,
		Importance:    scoring.ImportanceModerate,
	})
	if o.Title != TheThornAndRose {
		t.Errorf("expected %q, got %q", TheThornAndRose, o.Title)
	}
}

func TestUnfinishedLetter(t *testing.T) {
	t.Parallel()

	o := Select(scoring.Analysis{
		TrustLevel:    scoring.TrustMixed,
		Attachment:    scoring.AttachmentModerate,
		EmotionalTone: scoring.TonePositive,
		Importance:    scoring.ImportancePeripheral,
	})
	if o.Title != TheUnfinishedLetter {
		t.Errorf("expected %q, got %q", TheUnfinishedLetter, o.Title)
	}
}

func TestQuietThreadDefault(t *testing.T) {
	t.Parallel()

	o := Select(scoring.Analysis{
		TrustLevel:    scoring.TrustHigh,
		Attachment:    scoring.AttachmentModerate,
		EmotionalTone: scoring.TonePositive,
		Importance:    scoring.ImportanceModerate,
	})
	if o.Title != TheQuietThread {
		t.Errorf("expected %q, got %q", TheQuietThread, o.Title)
	}
}

// TestPoemText pins the literal poem bodies; they are data the experience
// must reproduce exactly.
func TestPoemText(t *testing.T) {
	t.Parallel()

	anchor, ok := ByTitle(TheAnchor)
	if !ok {
		t.Fatal("missing outcome: The Anchor")
	}
	if anchor.Poem[0] != "Some souls arrive like anchors in the storm," {
		t.Errorf("anchor poem drifted: %q", anchor.Poem[0])
	}
	if anchor.Poem[3] != "The kind of presence that makes wanderers stay." {
		t.Errorf("anchor poem drifted: %q", anchor.Poem[3])
	}

	if got := len(All()); got != 5 {
		t.Fatalf("expected 5 outcomes, got %d", got)
	}
	for _, o := range All() {
		for i, line := range o.Poem {
			if line == "" {
				t.Errorf("outcome %q: poem line %d is empty", o.Title, i)
			}
		}
	}
}
