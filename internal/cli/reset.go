package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tkoehler/startupscan/internal/config"
	"github.com/tkoehler/startupscan/internal/database"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all labels",
	Long: `Delete every label (manual and auto) and restart the review from the
beginning. The learned keyword weights are kept.`,
	RunE: runReset,
}

var resetForce bool

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if !resetForce {
		fmt.Print("This deletes all labels, including your manual decisions. Type 'yes' to confirm: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil || strings.TrimSpace(line) != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.ResetLabels(ctx); err != nil {
		return fmt.Errorf("failed to reset labels: %w", err)
	}

	fmt.Println("Labels have been reset. Keyword weights were kept.")
	return nil
}
