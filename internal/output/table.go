package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/olekukonko/tablewriter"

	"github.com/tkoehler/startupscan/internal/database"
	"github.com/tkoehler/startupscan/internal/review"
	"github.com/tkoehler/startupscan/internal/scoring"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []database.ScoredCompany:
		return scoredTable(w, v)
	case []database.Label:
		return labelsTable(w, v)
	case *review.Stats:
		return statsTable(w, v)
	case scoring.Weights:
		return weightsTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func scoredTable(w io.Writer, companies []database.ScoredCompany) error {
	if len(companies) == 0 {
		fmt.Fprintln(w, "No scored companies found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"COMPANY", "ZIP", "SCORE", "DESCRIPTION"})

	for _, c := range companies {
		table.Append([]string{
			truncate(c.CompanyName, 30),
			c.Zip,
			formatScore(c.Score),
			truncate(c.Description, 60),
		})
	}

	return table.Render()
}

func labelsTable(w io.Writer, labels []database.Label) error {
	if len(labels) == 0 {
		fmt.Fprintln(w, "No labels found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"COMPANY", "ZIP", "STARTUP", "SOURCE", "DESCRIPTION"})

	for _, l := range labels {
		table.Append([]string{
			truncate(l.CompanyName, 30),
			l.Zip,
			string(l.Decision),
			string(l.Source),
			truncate(l.Description, 50),
		})
	}

	return table.Render()
}

func statsTable(w io.Writer, s *review.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total companies:\t%d\n", s.TotalCompanies)
	fmt.Fprintf(tw, "Auto-labeled No:\t%d\n", s.AutoLabeledNo)
	fmt.Fprintf(tw, "Manually Yes:\t%d\n", s.ManualYes)
	fmt.Fprintf(tw, "Manually No:\t%d\n", s.ManualNo)
	fmt.Fprintf(tw, "Left to label:\t%d\n", s.LeftToLabel)
	return tw.Flush()
}

func weightsTable(w io.Writer, weights scoring.Weights) error {
	if len(weights) == 0 {
		fmt.Fprintln(w, "No keyword weights found.")
		return nil
	}

	type entry struct {
		keyword string
		weight  float64
	}
	entries := make([]entry, 0, len(weights))
	for kw, wt := range weights {
		entries = append(entries, entry{kw, wt})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].weight != entries[j].weight {
			return entries[i].weight > entries[j].weight
		}
		return entries[i].keyword < entries[j].keyword
	})

	table := tablewriter.NewWriter(w)
	table.Header([]string{"KEYWORD", "WEIGHT"})
	for _, e := range entries {
		table.Append([]string{e.keyword, formatScore(e.weight)})
	}

	return table.Render()
}

// formatScore renders a score without trailing zeros, so base weights print
// as integers while reinforced ones keep their fraction.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
