// Command echoes runs a short interactive personality reading in the
// terminal. The default command is the full-screen experience; subcommands
// inspect the local archive, re-send readings, and validate catalogs.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Harisholympas/echoes-within1/cmd/echoes/ui"
	"github.com/Harisholympas/echoes-within1/internal/catalog"
	"github.com/Harisholympas/echoes-within1/internal/config"
	"github.com/Harisholympas/echoes-within1/internal/logging"
	"github.com/Harisholympas/echoes-within1/internal/report"
)

var (
	verbose    bool
	configPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "echoes",
	Short: "Echoes - a personality reading in the terminal",
	Long: `Echoes is a short interactive reading: a handful of questions about
someone in your life, a few quiet interludes, and a poem at the end.

Run without arguments to begin. The raw reading is archived locally and can
optionally be sent to a configured webhook.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive reading owns the terminal; zap would scribble on
		// the alt screen, so it is only built for the other commands.
		if cmd.Use == "echoes" && cmd.CalledAs() == "echoes" {
			return nil
		}
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReading()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.json (default ~/.echoes/config.json)")

	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(catalogCmd)
}

// loadConfig resolves the config, downgrading a broken file to defaults.
func loadConfig() config.Config {
	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "echoes: using default config: %v\n", err)
	}
	return cfg
}

// loadCatalog resolves the question catalog from config, falling back to the
// embedded one.
func loadCatalog(cfg config.Config) *catalog.Catalog {
	if cfg.CatalogPath == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "echoes: using embedded catalog: %v\n", err)
		return catalog.Default()
	}
	return cat
}

func runReading() error {
	cfg := loadConfig()
	cat := loadCatalog(cfg)

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	if err := logging.Initialize(dir, logging.Options{
		DebugMode:  cfg.Logging.DebugMode,
		Level:      cfg.Logging.Level,
		Categories: cfg.Logging.Categories,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "echoes: debug logging unavailable: %v\n", err)
	}
	defer logging.CloseAll()
	logging.Boot("echoes starting, catalog of %d questions", cat.Len())

	// A broken archive never blocks the reading.
	archive, err := report.OpenArchive(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "echoes: archive unavailable: %v\n", err)
		archive = nil
	} else {
		defer archive.Close()
	}

	courier := report.NewCourier(cfg.WebhookURL, cfg.SendTimeout())

	p := tea.NewProgram(ui.New(cat, cfg, archive, courier), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("the reading ended badly: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
