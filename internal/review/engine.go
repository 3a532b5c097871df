// Package review implements the threshold-driven label reconciliation engine.
//
// Every company record is in exactly one derived state: unlabeled, auto No,
// manual Yes, or manual No. The state is never stored; it follows from the
// scored dataset, the label store, and the current threshold. Only two
// events move records between states: a threshold change and a manual
// decision.
package review

import (
	"context"
	"fmt"

	"github.com/tkoehler/startupscan/internal/database"
	"github.com/tkoehler/startupscan/internal/scoring"
)

// Store provides access to the scored dataset and the label store
type Store interface {
	ListScoredCompanies(ctx context.Context) ([]database.ScoredCompany, error)
	ListLabels(ctx context.Context) ([]database.Label, error)
	InsertLabels(ctx context.Context, labels []database.Label) error
	DeleteLabels(ctx context.Context, keys []database.BusinessKey) error
}

// Learner receives reinforcement signals from manual Yes decisions
type Learner interface {
	Reinforce(ctx context.Context, description string, rate float64) (scoring.Weights, bool, error)
}

// Stats is the summary snapshot exposed after a reconciliation pass. It is
// recomputed on every pass, never cached.
type Stats struct {
	TotalCompanies int `json:"total_companies"`
	AutoLabeledNo  int `json:"auto_labeled_no"`
	ManualYes      int `json:"manual_yes"`
	ManualNo       int `json:"manual_no"`
	LeftToLabel    int `json:"left_to_label"`
}

// Outcome is the result of one reconciliation pass
type Outcome struct {
	// Queue holds the records still needing manual review, score descending.
	Queue []database.ScoredCompany `json:"queue"`
	Stats Stats                    `json:"stats"`

	// Retracted counts auto labels removed because the threshold dropped
	// below their score; AutoLabeled counts fresh auto No labels inserted.
	Retracted   int `json:"retracted"`
	AutoLabeled int `json:"auto_labeled"`
}

// Engine reconciles the label store against the scored dataset and a moving
// threshold, and records manual decisions.
type Engine struct {
	store   Store
	learner Learner
	rate    float64
}

// New creates an Engine. The learner may be nil for read-only passes.
func New(store Store, learner Learner, rate float64) *Engine {
	return &Engine{store: store, learner: learner, rate: rate}
}

// Reconcile brings the label store in line with the given threshold and
// returns the remaining work queue.
//
// When the threshold was lowered, auto labels whose score now exceeds it are
// retracted and re-enter the queue; manual labels are immune regardless of
// score. Then every scored record at or below the threshold without a label
// gets an auto No, in one batch insert. Running the same reconciliation twice
// converges to the same queue.
func (e *Engine) Reconcile(ctx context.Context, prevThreshold, threshold float64) (*Outcome, error) {
	scored, err := e.store.ListScoredCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scored companies: %w", err)
	}

	labels, err := e.store.ListLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}

	outcome := &Outcome{}

	if threshold < prevThreshold {
		labels, outcome.Retracted, err = e.retractStaleAutoLabels(ctx, scored, labels, threshold)
		if err != nil {
			return nil, err
		}
	}

	labeled := make(map[database.BusinessKey]bool, len(labels))
	for i := range labels {
		labeled[labels[i].Key()] = true
	}

	var autoNo []database.Label
	for i := range scored {
		c := &scored[i]
		// Boundary is inclusive on the auto side: a score equal to the
		// threshold never reaches the manual queue.
		if c.Score <= threshold && !labeled[c.Key()] {
			autoNo = append(autoNo, database.Label{
				CompanyName: c.CompanyName,
				Zip:         c.Zip,
				Description: c.Description,
				Decision:    database.DecisionNo,
				Source:      database.SourceAuto,
			})
		}
	}
	if len(autoNo) > 0 {
		if err := e.store.InsertLabels(ctx, autoNo); err != nil {
			return nil, fmt.Errorf("failed to insert auto labels: %w", err)
		}
		for i := range autoNo {
			labeled[autoNo[i].Key()] = true
		}
		labels = append(labels, autoNo...)
		outcome.AutoLabeled = len(autoNo)
	}

	for i := range scored {
		c := &scored[i]
		if c.Score > threshold && !labeled[c.Key()] {
			outcome.Queue = append(outcome.Queue, *c)
		}
	}

	outcome.Stats = computeStats(scored, labels, threshold, len(outcome.Queue))
	return outcome, nil
}

// retractStaleAutoLabels removes auto labels whose underlying score exceeds
// the new, lower threshold. An auto label with no matching scored record is
// left alone rather than dropped.
func (e *Engine) retractStaleAutoLabels(
	ctx context.Context,
	scored []database.ScoredCompany,
	labels []database.Label,
	threshold float64,
) ([]database.Label, int, error) {
	scoreByKey := make(map[database.BusinessKey]float64, len(scored))
	for i := range scored {
		scoreByKey[scored[i].Key()] = scored[i].Score
	}

	var stale []database.BusinessKey
	kept := labels[:0]
	for _, l := range labels {
		if l.Source == database.SourceAuto {
			if score, ok := scoreByKey[l.Key()]; ok && score > threshold {
				stale = append(stale, l.Key())
				continue
			}
		}
		kept = append(kept, l)
	}

	if len(stale) == 0 {
		return kept, 0, nil
	}

	if err := e.store.DeleteLabels(ctx, stale); err != nil {
		return nil, 0, fmt.Errorf("failed to retract auto labels: %w", err)
	}

	return kept, len(stale), nil
}

// Decide records a manual decision for a company in the work queue. Manual
// decisions are final: no later threshold change removes or alters them.
// A Yes decision also reinforces the keyword weights with the company's
// description.
func (e *Engine) Decide(ctx context.Context, c database.ScoredCompany, decision database.Decision) error {
	if decision != database.DecisionYes && decision != database.DecisionNo {
		return fmt.Errorf("invalid decision: %q", decision)
	}

	if decision == database.DecisionYes && e.learner != nil {
		if _, _, err := e.learner.Reinforce(ctx, c.Description, e.rate); err != nil {
			return fmt.Errorf("failed to reinforce weights: %w", err)
		}
	}

	label := database.Label{
		CompanyName: c.CompanyName,
		Zip:         c.Zip,
		Description: c.Description,
		Decision:    decision,
		Source:      database.SourceManual,
	}
	if err := e.store.InsertLabels(ctx, []database.Label{label}); err != nil {
		return fmt.Errorf("failed to save label: %w", err)
	}

	return nil
}

func computeStats(scored []database.ScoredCompany, labels []database.Label, threshold float64, queued int) Stats {
	stats := Stats{
		TotalCompanies: len(scored),
		LeftToLabel:    queued,
	}

	for i := range scored {
		if scored[i].Score <= threshold {
			stats.AutoLabeledNo++
		}
	}

	for i := range labels {
		if labels[i].Source != database.SourceManual {
			continue
		}
		switch labels[i].Decision {
		case database.DecisionYes:
			stats.ManualYes++
		case database.DecisionNo:
			stats.ManualNo++
		}
	}

	return stats
}
