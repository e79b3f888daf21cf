// Package scoring derives the structured analysis from a completed answer
// list. Analyze is a pure function: same answers in, same analysis out, no
// clock, no randomness, no external state. It never fails; missing data
// degrades to documented defaults.
package scoring

import (
	"github.com/Harisholympas/echoes-within1/internal/catalog"
	"github.com/Harisholympas/echoes-within1/internal/session"
)

// TrustLevel classifies how guarded the respondent is with the subject.
type TrustLevel string

const (
	TrustHigh    TrustLevel = "high"
	TrustMixed   TrustLevel = "mixed"
	TrustGuarded TrustLevel = "guarded"
)

// Attachment classifies how strongly the respondent is bound to the subject.
type Attachment string

const (
	AttachmentStrong   Attachment = "strong"
	AttachmentModerate Attachment = "moderate"
)

// Tone classifies the overall emotional color of the answers.
type Tone string

const (
	TonePositive   Tone = "positive"
	ToneComplex    Tone = "complex"
	ToneConflicted Tone = "conflicted"
)

// Comfort buckets the silence_together scale answer.
type Comfort string

const (
	ComfortVery     Comfort = "very comfortable"
	ComfortSomewhat Comfort = "somewhat comfortable"
	ComfortNot      Comfort = "uncomfortable"
)

// Importance buckets the final_truth scale answer.
type Importance string

const (
	ImportanceVery       Importance = "very important"
	ImportanceModerate   Importance = "moderately important"
	ImportancePeripheral Importance = "peripheral"
)

// Tag sets the counts are taken against. Tags outside these sets still appear
// in Analysis.HiddenValues but carry no score weight.
var (
	trustPositiveTags = tagSet("deep_trust", "feels_safe", "open_communicative", "lasting_bond")
	trustNegativeTags = tagSet("guarded", "self_protective", "detached", "emotionally_distant")
	attachmentTags    = tagSet("deeply_attached", "lasting_bond", "deepening", "comfort_warmth")
	tonePositiveTags  = tagSet("positive_energy", "comfort_warmth", "feels_safe", "deep_trust")
	toneNegativeTags  = tagSet("anxious_uncertain", "chaotic_intense", "bittersweet", "self_protective")
)

func tagSet(tags ...string) map[string]bool {
	s := make(map[string]bool, len(tags))
	for _, t := range tags {
		s[t] = true
	}
	return s
}

// Analysis is the derived summary of a completed reading. Always recomputed
// from scratch, never stored as mutable state.
type Analysis struct {
	TrustLevel       TrustLevel `json:"trustLevel"`
	Attachment       Attachment `json:"attachment"`
	EmotionalTone    Tone       `json:"emotionalTone"`
	ComfortInSilence Comfort    `json:"comfortInSilence"`
	Importance       Importance `json:"importance"`

	// Verbatim text answers, empty when absent.
	RawMemory       string `json:"rawMemory"`
	EmotionWord     string `json:"emotionWord"`
	UnspokenThought string `json:"unspokenThought"`

	// HiddenValues lists every hidden tag carried by the answers, in answer
	// order.
	HiddenValues []string `json:"hiddenValues"`
}

// Analyze scores a completed answer list. Absent scale answers count as 0,
// which buckets into the lowest category; absent text answers come back as
// empty strings.
func Analyze(answers []session.Answer) Analysis {
	var hidden []string
	for _, a := range answers {
		if a.HiddenMeaning != "" {
			hidden = append(hidden, a.HiddenMeaning)
		}
	}

	var trustPos, trustNeg, attach, tonePos, toneNeg int
	for _, tag := range hidden {
		if trustPositiveTags[tag] {
			trustPos++
		}
		if trustNegativeTags[tag] {
			trustNeg++
		}
		if attachmentTags[tag] {
			attach++
		}
		if tonePositiveTags[tag] {
			tonePos++
		}
		if toneNegativeTags[tag] {
			toneNeg++
		}
	}

	silence := scaleValue(answers, catalog.QuestionSilenceTogether)
	importance := scaleValue(answers, catalog.QuestionFinalTruth)

	return Analysis{
		TrustLevel:       trustLevel(trustPos, trustNeg),
		Attachment:       attachment(attach),
		EmotionalTone:    tone(tonePos, toneNeg),
		ComfortInSilence: comfort(silence),
		Importance:       importanceBucket(importance),
		RawMemory:        textValue(answers, catalog.QuestionFirstMemory),
		EmotionWord:      textValue(answers, catalog.QuestionOneWord),
		UnspokenThought:  textValue(answers, catalog.QuestionUnsaid),
		HiddenValues:     hidden,
	}
}

func trustLevel(pos, neg int) TrustLevel {
	switch {
	case pos > neg:
		return TrustHigh
	case pos < neg:
		return TrustGuarded
	default:
		return TrustMixed
	}
}

func attachment(count int) Attachment {
	if count >= 2 {
		return AttachmentStrong
	}
	return AttachmentModerate
}

func tone(pos, neg int) Tone {
	switch {
	case pos > neg:
		return TonePositive
	case pos < neg:
		return ToneConflicted
	default:
		return ToneComplex
	}
}

func comfort(v int) Comfort {
	switch {
	case v >= 7:
		return ComfortVery
	case v >= 4:
		return ComfortSomewhat
	default:
		return ComfortNot
	}
}

func importanceBucket(v int) Importance {
	switch {
	case v >= 8:
		return ImportanceVery
	case v >= 5:
		return ImportanceModerate
	default:
		return ImportancePeripheral
	}
}

// scaleValue finds the scale answer for the given question id. Absent means
// 0, deliberately below the lowest bucket threshold.
func scaleValue(answers []session.Answer, id string) int {
	for _, a := range answers {
		if a.QuestionID == id {
			return a.Scale
		}
	}
	return 0
}

func textValue(answers []session.Answer, id string) string {
	for _, a := range answers {
		if a.QuestionID == id {
			return a.Value
		}
	}
	return ""
}
