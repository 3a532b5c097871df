package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkoehler/startupscan/internal/config"
	"github.com/tkoehler/startupscan/internal/database"
	"github.com/tkoehler/startupscan/internal/output"
	"github.com/tkoehler/startupscan/internal/review"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show labeling progress",
	Long: `Display the current labeling statistics: how many companies were
scored, how many were auto-labeled, how many you decided yourself, and how
many are still waiting for review.

Statistics are derived from a reconciliation pass, so running stats with a
new threshold applies the same retraction and auto-labeling rules as
'startupscan review'.

Examples:
  startupscan stats                # at the last applied threshold
  startupscan stats --threshold 3  # preview a different threshold
  startupscan stats -o json`,
	RunE: runStats,
}

var statsThreshold float64

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Float64Var(&statsThreshold, "threshold", 0,
		"Score threshold (default: last applied)")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	session, err := db.GetSessionState(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session state: %w", err)
	}
	if session.LastIngestAt == nil {
		return database.ErrNoScoredData
	}

	threshold := session.LastThreshold
	if cmd.Flags().Changed("threshold") {
		threshold = statsThreshold
	}

	engine := review.New(db, nil, 0)
	outcome, err := engine.Reconcile(ctx, session.LastThreshold, threshold)
	if err != nil {
		return err
	}

	if threshold != session.LastThreshold {
		session.LastThreshold = threshold
		session.Cursor = 0
		if err := db.UpdateSessionState(ctx, session); err != nil {
			return fmt.Errorf("failed to save session state: %w", err)
		}
	}

	return output.Output(outputFmt, &outcome.Stats)
}
