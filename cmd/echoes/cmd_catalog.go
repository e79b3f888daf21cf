package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Harisholympas/echoes-within1/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [path]",
	Short: "Validate and summarize a question catalog",
	Long: `Validates a catalog YAML file and reports anything the analysis
will miss. With no path, the embedded default catalog is summarized.`,
	Args: cobra.MaximumNArgs(1),
	RunE: checkCatalog,
}

func checkCatalog(cmd *cobra.Command, args []string) error {
	var (
		cat *catalog.Catalog
		err error
		src = "embedded"
	)
	if len(args) == 1 {
		src = args[0]
		cat, err = catalog.Load(args[0])
		if err != nil {
			return err
		}
	} else {
		cat = catalog.Default()
	}

	counts := map[catalog.QuestionType]int{}
	for _, q := range cat.Questions {
		counts[q.Type]++
	}
	fmt.Printf("Catalog %s: %d questions (%d choice, %d text, %d scale)\n",
		src, cat.Len(), counts[catalog.TypeChoice], counts[catalog.TypeText], counts[catalog.TypeScale])

	warnings := cat.Lint()
	for _, w := range warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	if len(warnings) == 0 {
		fmt.Println("  all analysis contract questions present")
	}
	return nil
}
