package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Harisholympas/echoes-within1/internal/config"
	"github.com/Harisholympas/echoes-within1/internal/report"
)

var resultsLimit int

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List archived readings",
	Long:  `Lists the readings archived locally, newest first.`,
	RunE:  listResults,
}

var resultsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one archived reading in full",
	Long: `Renders an archived reading as markdown: the poem, the hidden
analysis, and every raw answer. An unambiguous id prefix is enough.`,
	Args: cobra.ExactArgs(1),
	RunE: showResult,
}

func init() {
	resultsCmd.Flags().IntVar(&resultsLimit, "limit", 20, "maximum readings to list (0 for all)")
	resultsCmd.AddCommand(resultsShowCmd)
}

func openArchive() (*report.Archive, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return report.OpenArchive(dir)
}

func listResults(cmd *cobra.Command, args []string) error {
	archive, err := openArchive()
	if err != nil {
		return err
	}
	defer archive.Close()

	readings, err := archive.List(resultsLimit)
	if err != nil {
		return err
	}
	if len(readings) == 0 {
		fmt.Println("The archive is empty. Run `echoes` to collect a reading.")
		return nil
	}

	logger.Debug("listing readings", zap.Int("count", len(readings)))
	for _, r := range readings {
		fmt.Printf("%-8s  %s  %-22s  %s\n",
			shortID(r.ID),
			r.Timestamp.Local().Format("2006-01-02 15:04"),
			r.PlayerName,
			r.OutcomeTitle,
		)
	}
	return nil
}

func showResult(cmd *cobra.Command, args []string) error {
	archive, err := openArchive()
	if err != nil {
		return err
	}
	defer archive.Close()

	r, err := archive.Get(args[0])
	if err != nil {
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to build renderer: %w", err)
	}
	out, err := renderer.Render(readingMarkdown(r))
	if err != nil {
		return fmt.Errorf("failed to render reading: %w", err)
	}
	fmt.Print(out)
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// readingMarkdown lays an archived reading out as a markdown document, the
// operator-facing counterpart to the poem the visitor saw.
func readingMarkdown(r report.Reading) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.OutcomeTitle)
	fmt.Fprintf(&b, "A reflection for **%s** — %s\n\n", r.PlayerName, r.Timestamp.Local().Format("January 2, 2006 15:04"))

	for _, line := range r.OutcomePoemLines {
		fmt.Fprintf(&b, "> %s\n", line)
	}
	b.WriteString("\n## Hidden analysis\n\n")
	a := r.Analysis
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Trust level | %s |\n", a.TrustLevel)
	fmt.Fprintf(&b, "| Attachment | %s |\n", a.Attachment)
	fmt.Fprintf(&b, "| Emotional tone | %s |\n", a.EmotionalTone)
	fmt.Fprintf(&b, "| Comfort in silence | %s |\n", a.ComfortInSilence)
	fmt.Fprintf(&b, "| Importance | %s |\n", a.Importance)

	b.WriteString("\n## The raw responses\n\n")
	fmt.Fprintf(&b, "- First memory: %q\n", a.RawMemory)
	fmt.Fprintf(&b, "- One word: %q\n", a.EmotionWord)
	fmt.Fprintf(&b, "- Never said: %q\n", a.UnspokenThought)

	if len(a.HiddenValues) > 0 {
		fmt.Fprintf(&b, "\nHidden tags: `%s`\n", strings.Join(a.HiddenValues, "`, `"))
	}

	b.WriteString("\n## Every answer\n\n")
	for _, ans := range r.PerQuestionAnswers {
		if ans.Value != "" {
			fmt.Fprintf(&b, "- `%s`: %q\n", ans.QuestionID, ans.Value)
		} else {
			fmt.Fprintf(&b, "- `%s`: %d\n", ans.QuestionID, ans.Scale)
		}
	}
	return b.String()
}
