package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkoehler/startupscan/internal/config"
	"github.com/tkoehler/startupscan/internal/database"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export labeled companies to CSV or JSON",
	Long: `Export labeled companies to stdout.

By default only companies you confirmed as startups are exported. Use
--all for the full label store including auto-labeled rows.

Supported formats:
  - csv: Comma-separated values (spreadsheet-compatible)
  - json: JSON array of label objects

Examples:
  startupscan export > startups.csv
  startupscan export --format=json > startups.json
  startupscan export --all > labels.csv`,
	RunE: runExport,
}

var (
	exportFormat string
	exportAll    bool
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format (csv, json)")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every label, not just confirmed startups")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	labels, err := db.ListLabels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list labels: %w", err)
	}

	if !exportAll {
		var confirmed []database.Label
		for _, l := range labels {
			if l.Decision == database.DecisionYes {
				confirmed = append(confirmed, l)
			}
		}
		labels = confirmed
	}

	if len(labels) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to export yet.")
		return nil
	}

	switch exportFormat {
	case "csv":
		return exportCSV(labels)
	case "json":
		return exportJSON(labels)
	default:
		return fmt.Errorf("unknown format: %s (use csv or json)", exportFormat)
	}
}

func exportCSV(labels []database.Label) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"company_name", "zip", "description", "is_startup", "source"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, l := range labels {
		record := []string{
			l.CompanyName,
			l.Zip,
			l.Description,
			string(l.Decision),
			string(l.Source),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func exportJSON(labels []database.Label) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(labels); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
