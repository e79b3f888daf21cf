// Package outcome maps an analysis to one of five fixed poetic readings.
// Select is total: every analysis produces exactly one outcome, decided by
// strict rule precedence.
package outcome

import "github.com/Harisholympas/echoes-within1/internal/scoring"

// Title is the closed set of outcome labels.
type Title string

const (
	TheAnchor           Title = "The Anchor"
	TheDistantStar      Title = "The Distant Star"
	TheThornAndRose     Title = "The Thorn and Rose"
	TheUnfinishedLetter Title = "The Unfinished Letter"
	TheQuietThread      Title = "The Quiet Thread"
)

// Outcome is a fixed title and four-line poem. Outcomes are chosen, never
// constructed.
type Outcome struct {
	Title Title     `json:"title"`
	Poem  [4]string `json:"poem"`
}

var outcomes = map[Title]Outcome{
	TheAnchor: {
		Title: TheAnchor,
		Poem: [4]string{
			"Some souls arrive like anchors in the storm,",
			"Holding fast when all else drifts away.",
			"In you, a harbor takes its quiet form—",
			"The kind of presence that makes wanderers stay.",
		},
	},
	TheDistantStar: {
		Title: TheDistantStar,
		Poem: [4]string{
			"You shine from distances I cannot name,",
			"A light I watch but rarely try to hold.",
			"Perhaps the beauty lies within the frame—",
			"Some stories are more felt than they are told.",
		},
	},
	TheThornAndRose: {
		Title: TheThornAndRose,
		Poem: [4]string{
			"Beauty wrapped in edges, soft and sharp,",
			"A melody in minor keys that sings.",
			"You've carved your name across my inner map—",
			"The kind of mark that only loving brings.",
		},
	},
	TheUnfinishedLetter: {
		Title: TheUnfinishedLetter,
		Poem: [4]string{
			"Between the lines of what we say and mean,",
			"There lives a conversation yet unspoken.",
			"Perhaps in time the spaces in-between",
			"Will fill with words that heal what once was broken.",
		},
	},
	TheQuietThread: {
		Title: TheQuietThread,
		Poem: [4]string{
			"Not every bond announces its own weight,",
			"Some threads are woven softly, sight unseen.",
			"In ordinary moments, something great—",
			"A gentle presence, steady and serene.",
		},
	},
}

// ByTitle returns the outcome with the given title.
func ByTitle(t Title) (Outcome, bool) {
	o, ok := outcomes[t]
	return o, ok
}

// All returns every outcome.
func All() []Outcome {
	return []Outcome{
		outcomes[TheAnchor],
		outcomes[TheDistantStar],
		outcomes[TheThornAndRose],
		outcomes[TheUnfinishedLetter],
		outcomes[TheQuietThread],
	}
}

// Select evaluates the rules in fixed priority order; the first match wins
// and later rules are never consulted.
func Select(a scoring.Analysis) Outcome {
	switch {
	case a.Attachment == scoring.AttachmentStrong &&
		a.TrustLevel == scoring.TrustHigh &&
		a.Importance == scoring.ImportanceVery:
		return outcomes[TheAnchor]

	case a.EmotionalTone == scoring.ToneConflicted || a.TrustLevel == scoring.TrustGuarded:
		return outcomes[TheDistantStar]

	case a.Attachment == scoring.AttachmentStrong && a.EmotionalTone == scoring.ToneComplex:
		return outcomes[TheThornAndRose]

	case a.TrustLevel == scoring.TrustMixed:
		return outcomes[TheUnfinishedLetter]

	default:
		return outcomes[TheQuietThread]
	}
}
