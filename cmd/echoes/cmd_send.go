package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Harisholympas/echoes-within1/internal/report"
)

var sendCmd = &cobra.Command{
	Use:   "send [id]",
	Short: "Send an archived reading to the configured webhook",
	Long: `Re-dispatches an archived reading to the webhook from the config.
Useful when the send from the result screen failed, or was skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: sendReading,
}

func sendReading(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cfg.WebhookURL == "" {
		return fmt.Errorf("no webhook_url configured")
	}

	archive, err := openArchive()
	if err != nil {
		return err
	}
	defer archive.Close()

	r, err := archive.Get(args[0])
	if err != nil {
		return err
	}

	courier := report.NewCourier(cfg.WebhookURL, cfg.SendTimeout())
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.SendTimeout())
	defer cancel()

	if err := courier.Send(ctx, r); err != nil {
		logger.Warn("send failed", zap.String("id", r.ID), zap.Error(err))
		return err
	}
	logger.Info("reading sent", zap.String("id", r.ID), zap.String("player", r.PlayerName))
	fmt.Printf("Reading %s sent.\n", shortID(r.ID))
	return nil
}
