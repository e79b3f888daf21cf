// Package ui implements the full-screen terminal experience: six screens
// driven by a single Bubble Tea model over the session flow.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette. The experience is meant to feel like ink on parchment, so the
// defaults lean warm and low-contrast; a dark variant exists for terminals
// that report a dark background preference.
var (
	parchment  = lipgloss.Color("#f0ead9")
	charcoal   = lipgloss.Color("#2b2621")
	inkLight   = lipgloss.Color("#5c544a")
	inkFaint   = lipgloss.Color("#8a8074")
	sealRed    = lipgloss.Color("#8e3b2f")
	nightPaper = lipgloss.Color("#1a1713")
	nightInk   = lipgloss.Color("#d8d0c0")
	nightFaint = lipgloss.Color("#6e675c")
)

// Theme holds the resolved colors.
type Theme struct {
	Paper  lipgloss.Color
	Ink    lipgloss.Color
	Soft   lipgloss.Color
	Faint  lipgloss.Color
	Accent lipgloss.Color
	IsDark bool
}

// LightTheme returns the parchment theme.
func LightTheme() Theme {
	return Theme{Paper: parchment, Ink: charcoal, Soft: inkLight, Faint: inkFaint, Accent: sealRed}
}

// DarkTheme returns the night variant.
func DarkTheme() Theme {
	return Theme{Paper: nightPaper, Ink: nightInk, Soft: nightInk, Faint: nightFaint, Accent: sealRed, IsDark: true}
}

// DetectTheme picks a theme from common environment hints, defaulting to
// dark, which reads better on the majority of terminals.
func DetectTheme() Theme {
	switch strings.ToLower(os.Getenv("ECHOES_THEME")) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	}
	if strings.Contains(strings.ToLower(os.Getenv("COLORFGBG")), ";15") {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles bundles every lipgloss style the screens use.
type Styles struct {
	Theme Theme

	Title    lipgloss.Style // big screen headings
	Subtitle lipgloss.Style // uppercase kicker above headings
	Text     lipgloss.Style // body copy
	Quote    lipgloss.Style // italic interstitial lines
	Faint    lipgloss.Style // whispers and footers
	Hint     lipgloss.Style // key hints

	Option         lipgloss.Style // unselected choice row
	OptionSelected lipgloss.Style // highlighted choice row
	ScaleValue     lipgloss.Style // the big number under the scale

	Card    lipgloss.Style // bordered panel (poem, loading note)
	Divider lipgloss.Style // the little sketch divider
	Err     lipgloss.Style // send failure notice
	Success lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Theme:    t,
		Title:    lipgloss.NewStyle().Foreground(t.Ink).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(t.Faint).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(t.Soft),
		Quote:    lipgloss.NewStyle().Foreground(t.Soft).Italic(true),
		Faint:    lipgloss.NewStyle().Foreground(t.Faint),
		Hint:     lipgloss.NewStyle().Foreground(t.Faint),

		Option: lipgloss.NewStyle().
			Foreground(t.Soft).
			Padding(0, 2),
		OptionSelected: lipgloss.NewStyle().
			Foreground(t.Ink).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Accent),
		ScaleValue: lipgloss.NewStyle().Foreground(t.Ink).Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Faint).
			Padding(1, 3),
		Divider: lipgloss.NewStyle().Foreground(t.Faint),
		Err:     lipgloss.NewStyle().Foreground(lipgloss.Color("#b4453a")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#6a8f5f")),
	}
}
