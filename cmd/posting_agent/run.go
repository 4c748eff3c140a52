package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/posting-optimizer/internal/engine"
	"github.com/jonathan/posting-optimizer/internal/rules"
	"github.com/jonathan/posting-optimizer/internal/store"
	"github.com/jonathan/posting-optimizer/internal/worker"
	"github.com/jonathan/posting-optimizer/internal/wordpress"
)

var (
	runBatchSize   int
	runConcurrency int
	runNoPush      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one batch optimization pass",
	Long: `Read pending postings from storage, optimize each one, record the audit
trail, and push results to the content system. Push failures are logged and
do not fail the run.`,
	RunE: runBatch,
}

func init() {
	runCmd.Flags().IntVar(&runBatchSize, "batch-size", 0, "Max postings per pass (overrides config)")
	runCmd.Flags().IntVar(&runConcurrency, "concurrency", 0, "Parallel optimizations (overrides config)")
	runCmd.Flags().BoolVar(&runNoPush, "no-push", false, "Skip pushing results to the content system")
	rootCmd.AddCommand(runCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if runBatchSize != 0 {
		cfg.BatchSize = runBatchSize
	}
	if runConcurrency != 0 {
		cfg.Concurrency = runConcurrency
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("a database URL is required for batch runs (set DATABASE_URL)")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ruleTables, err := rules.Load()
	if err != nil {
		return fmt.Errorf("failed to load rule tables: %w", err)
	}

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	var content worker.ContentPusher
	if !runNoPush && cfg.ContentBaseURL != "" {
		content = wordpress.New(cfg.ContentBaseURL, cfg.ContentPostType,
			cfg.ContentUser, cfg.ContentPassword)
	}

	w := worker.New(st, engine.New(ruleTables), content, cfg.BatchSize, cfg.Concurrency)
	summary, err := w.Run(ctx)
	if err != nil {
		return fmt.Errorf("batch run failed: %w", err)
	}

	slog.Info("batch run complete",
		"processed", summary.Processed,
		"pushed", summary.Pushed,
		"push_errors", summary.PushErrors)
	return nil
}
