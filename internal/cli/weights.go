package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkoehler/startupscan/internal/config"
	"github.com/tkoehler/startupscan/internal/database"
	"github.com/tkoehler/startupscan/internal/output"
	"github.com/tkoehler/startupscan/internal/weights"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show the keyword weight table",
	Long: `Display the current keyword weights, highest first.

Weights start from the base dictionary and grow whenever a confirmed
startup's description contains the keyword. They never shrink.

Examples:
  startupscan weights
  startupscan weights -o json`,
	RunE: runWeights,
}

func init() {
	rootCmd.AddCommand(weightsCmd)
}

func runWeights(cmd *cobra.Command, args []string) error {
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

	store := weights.NewStore(db, cfg.Scoring.BaseKeywords)
	snapshot, err := store.Load(ctx)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, snapshot)
}
