// Package report assembles the final payload of a reading and delivers it to
// the two sinks: a best-effort local SQLite archive and an optional webhook.
// Scoring and outcome selection are already done by the time this package is
// involved; nothing here feeds back into the flow.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/Harisholympas/echoes-within1/internal/outcome"
	"github.com/Harisholympas/echoes-within1/internal/scoring"
	"github.com/Harisholympas/echoes-within1/internal/session"
)

// Reading is the full record of one finished session. Its JSON shape is the
// wire format for the webhook and the archived payload, so the field names
// are load-bearing.
type Reading struct {
	ID         string           `json:"id"`
	PlayerName string           `json:"playerName"`
	Timestamp  time.Time        `json:"timestamp"`
	Analysis   scoring.Analysis `json:"analysis"`

	OutcomeTitle     string    `json:"outcomeTitle"`
	OutcomePoemLines [4]string `json:"outcomePoemLines"`

	PerQuestionAnswers []session.Answer `json:"perQuestionAnswers"`
}

// Build assembles a Reading from a completed session. The id is random and
// the timestamp is taken here, so Build is the only impure step of the
// pipeline.
func Build(playerName string, answers []session.Answer, analysis scoring.Analysis, o outcome.Outcome) Reading {
	return Reading{
		ID:                 uuid.NewString(),
		PlayerName:         playerName,
		Timestamp:          time.Now().UTC(),
		Analysis:           analysis,
		OutcomeTitle:       string(o.Title),
		OutcomePoemLines:   o.Poem,
		PerQuestionAnswers: answers,
	}
}
