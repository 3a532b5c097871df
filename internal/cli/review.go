package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tkoehler/startupscan/internal/config"
	"github.com/tkoehler/startupscan/internal/database"
	"github.com/tkoehler/startupscan/internal/output"
	"github.com/tkoehler/startupscan/internal/review"
	"github.com/tkoehler/startupscan/internal/weights"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Label companies above the review threshold",
	Long: `Walk through the companies whose score exceeds the threshold and
label each one as a startup or not.

Lowering the threshold pulls previously auto-labeled companies back into
the queue; raising it auto-labels more of them No. Your own decisions are
never touched by threshold changes. Confirming a company as a startup
bumps the weights of the keywords found in its description.

Examples:
  startupscan review                  # use the configured threshold
  startupscan review --threshold 3    # only review scores above 3`,
	RunE: runReview,
}

var reviewThreshold float64

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.Flags().Float64Var(&reviewThreshold, "threshold", 0,
		"Score threshold; only companies scoring above it are reviewed")
}

func runReview(cmd *cobra.Command, args []string) error {
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

	threshold := cfg.Review.DefaultThreshold
	if cmd.Flags().Changed("threshold") {
		threshold = reviewThreshold
	}

	learner := weights.NewStore(db, cfg.Scoring.BaseKeywords)
	engine := review.New(db, learner, cfg.Review.LearningRate)

	outcome, err := engine.Reconcile(ctx, session.LastThreshold, threshold)
	if err != nil {
		return err
	}

	cursor := session.Cursor
	if threshold != session.LastThreshold {
		cursor = 0
	}
	session.LastThreshold = threshold

	term := NewTerminal()

	fmt.Printf("Threshold: %g\n", threshold)
	if outcome.Retracted > 0 {
		fmt.Printf("%d auto-labeled companies returned to the queue.\n", outcome.Retracted)
	}
	if outcome.AutoLabeled > 0 {
		fmt.Printf("%d companies auto-labeled No.\n", outcome.AutoLabeled)
	}
	fmt.Println()
	if err := output.TableTo(os.Stdout, &outcome.Stats); err != nil {
		return err
	}
	fmt.Println()

	queue := outcome.Queue
	if len(queue) == 0 || cursor >= len(queue) {
		session.Cursor = 0
		if err := db.UpdateSessionState(ctx, session); err != nil {
			return err
		}
		fmt.Println(term.Color(ColorGreen, "All companies have been reviewed!"))
		return nil
	}

	reader := bufio.NewReader(os.Stdin)
	decided := 0
	i := cursor

loop:
	for i < len(queue) {
		c := queue[i]

		fmt.Println(term.Color(ColorGray, strings.Repeat("-", 60)))
		fmt.Println(term.Bar(i+1, len(queue), 30))
		fmt.Printf("%s  %s\n", term.Color(ColorCyan, c.CompanyName), term.Color(ColorGray, c.Zip))
		fmt.Printf("Score: %s\n", term.Color(ColorYellow, fmt.Sprintf("%g", c.Score)))
		fmt.Printf("%s\n\n", c.Description)

		fmt.Print("Startup? [y]es / [n]o / [s]kip / [q]uit: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF on stdin ends the session like quit.
			fmt.Println()
			break
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			if err := engine.Decide(ctx, c, database.DecisionYes); err != nil {
				return err
			}
			fmt.Println(term.Color(ColorGreen, "Labeled Yes. Keyword weights updated."))
			decided++
			i++
		case "n", "no":
			if err := engine.Decide(ctx, c, database.DecisionNo); err != nil {
				return err
			}
			fmt.Println(term.Color(ColorRed, "Labeled No."))
			decided++
			i++
		case "s", "skip":
			i++
		case "q", "quit":
			break loop
		default:
			fmt.Println("Please answer y, n, s or q.")
		}
	}

	// The cursor counts skipped records only: decided ones disappear from
	// the next queue, skipped ones shift to its front.
	session.Cursor = i - decided
	if err := db.UpdateSessionState(ctx, session); err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}

	if i >= len(queue) {
		fmt.Println(term.Color(ColorGreen, "All remaining companies have been reviewed!"))
	} else {
		fmt.Printf("Stopped at %d/%d. Run 'startupscan review' to continue.\n", i, len(queue))
	}

	return nil
}
