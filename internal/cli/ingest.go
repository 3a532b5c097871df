package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkoehler/startupscan/internal/config"
	"github.com/tkoehler/startupscan/internal/database"
	"github.com/tkoehler/startupscan/internal/ingest"
	"github.com/tkoehler/startupscan/internal/output"
	"github.com/tkoehler/startupscan/internal/scoring"
	"github.com/tkoehler/startupscan/internal/weights"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file.csv>",
	Short: "Score a raw company extract",
	Long: `Parse a CSV of company records, score each one against the keyword
dictionary, and store the result sorted by score.

The file needs columns company_name, zip and description; a location column
is accepted but not used for scoring. Ingesting replaces any previously
scored dataset; existing labels are kept.

Examples:
  startupscan ingest companies.csv
  startupscan ingest companies.csv --top 20`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

var ingestTop int

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().IntVar(&ingestTop, "top", 10, "Number of top-scored rows to print after ingest")
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	companies, err := ingest.ReadCompanies(f)
	if err != nil {
		return err
	}
	if len(companies) == 0 {
		return fmt.Errorf("no records found in %s", args[0])
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// One weight snapshot for the whole batch, so every row is scored
	// against the same table.
	store := weights.NewStore(db, cfg.Scoring.BaseKeywords)
	snapshot, err := store.Load(ctx)
	if err != nil {
		return err
	}

	scorer := scoring.NewScorer(cfg.Scoring)
	scored := scorer.ScoreAll(companies, snapshot)

	rows := make([]database.ScoredCompany, 0, len(scored))
	for _, s := range scored {
		row := database.ScoredCompany{
			CompanyName: s.Company.CompanyName,
			Zip:         s.Company.Zip,
			Description: s.Company.Description,
			Score:       s.Score,
		}
		if s.Company.Location != "" {
			loc := s.Company.Location
			row.Location = &loc
		}
		rows = append(rows, row)
	}

	if err := db.ReplaceScoredCompanies(ctx, rows); err != nil {
		return fmt.Errorf("failed to store scored dataset: %w", err)
	}

	fmt.Printf("Scored %d companies.\n", len(rows))

	if ingestTop > 0 {
		top := rows
		if len(top) > ingestTop {
			top = top[:ingestTop]
		}
		fmt.Println()
		if err := output.Output(outputFmt, top); err != nil {
			return err
		}
	}

	fmt.Println("\nRun 'startupscan review' to start labeling.")
	return nil
}
