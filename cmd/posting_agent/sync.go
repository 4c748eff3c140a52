package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/posting-optimizer/internal/store"
	"github.com/jonathan/posting-optimizer/internal/wordpress"
)

var syncCmd = &cobra.Command{
	Use:   "sync <remote-id> [remote-id...]",
	Short: "Fetch postings from the content system into storage",
	Long: `Fetch the given postings from the content system by their numeric IDs and
create or refresh the matching storage rows. Synced postings become pending
and are picked up by the next batch run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("a database URL is required for sync (set DATABASE_URL)")
	}
	if cfg.ContentBaseURL == "" {
		return fmt.Errorf("a content system base URL is required for sync (set CONTENT_BASE_URL)")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	client := wordpress.New(cfg.ContentBaseURL, cfg.ContentPostType,
		cfg.ContentUser, cfg.ContentPassword)

	for _, arg := range args {
		remoteID, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid remote ID %q: %w", arg, err)
		}

		posting, err := client.FetchPosting(ctx, remoteID)
		if err != nil {
			return fmt.Errorf("failed to sync posting %d: %w", remoteID, err)
		}

		stored, err := st.UpsertPosting(ctx, &store.PostingInput{
			RemoteID:    posting.RemoteID,
			Title:       posting.Title,
			Description: posting.Description,
			Company:     posting.Company,
			Location:    posting.Location,
			JobType:     posting.JobType,
			Category:    posting.Category,
			Salary:      posting.Salary,
		})
		if err != nil {
			return fmt.Errorf("failed to store posting %d: %w", remoteID, err)
		}
		slog.Info("synced posting", "remote_id", remoteID, "posting_id", stored.ID)
	}
	return nil
}
