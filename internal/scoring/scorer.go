package scoring

import (
	"sort"

	"github.com/tkoehler/startupscan/internal/config"
)

// Weights is a snapshot of the keyword weight table. Scoring a batch against
// a single snapshot keeps every score in the batch comparable.
type Weights map[string]float64

// Company represents one raw input record
type Company struct {
	CompanyName string
	Zip         string
	Description string
	Location    string
}

// Scored combines a company with its computed score
type Scored struct {
	Company Company
	Score   float64
}

// Scorer computes relevance scores from keyword matches. It is pure: the
// same record and weight snapshot always produce the same score.
type Scorer struct {
	disqualifiers []string
	negatives     []string
	penalty       float64
	veto          float64
}

// NewScorer creates a Scorer from the scoring configuration
func NewScorer(cfg config.ScoringConfig) *Scorer {
	return &Scorer{
		disqualifiers: foldAll(cfg.DisqualifyingNames),
		negatives:     foldAll(cfg.NegativeKeywords),
		penalty:       cfg.NegativePenalty,
		veto:          cfg.VetoScore,
	}
}

// Score computes the score for a single record. Rules, in order:
//
//  1. A disqualifying token in the company name vetoes the record outright;
//     no other rule applies.
//  2. Every dictionary keyword contained in the description adds its weight.
//     Matches accumulate; there is no cap and no length normalization.
//  3. Every negative keyword contained in the description subtracts the
//     fixed penalty. These compound too.
//
// All containment checks are case-insensitive substring matches.
func (s *Scorer) Score(c Company, weights Weights) float64 {
	name := fold(c.CompanyName)
	for _, token := range s.disqualifiers {
		if contains(name, token) {
			return s.veto
		}
	}

	desc := fold(c.Description)

	score := 0.0
	for keyword, weight := range weights {
		if contains(desc, fold(keyword)) {
			score += weight
		}
	}

	for _, token := range s.negatives {
		if contains(desc, token) {
			score -= s.penalty
		}
	}

	return score
}

// ScoreAll scores a batch of records against one weight snapshot and returns
// the results sorted by score descending. The sort is stable; ties keep their
// input order.
func (s *Scorer) ScoreAll(companies []Company, weights Weights) []Scored {
	scored := make([]Scored, 0, len(companies))
	for _, c := range companies {
		scored = append(scored, Scored{
			Company: c,
			Score:   s.Score(c, weights),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
