// Package weights owns the persistent keyword weight table and its
// reinforcement rule: weights only ever grow, are never removed, and have
// no cap. Unbounded growth is accepted because reinforcement happens only
// on manual Yes decisions.
package weights

import (
	"context"
	"fmt"

	"github.com/tkoehler/startupscan/internal/scoring"
)

// Repository provides durable storage for the weight table
type Repository interface {
	LoadWeights(ctx context.Context) (map[string]float64, error)
	SaveWeights(ctx context.Context, weights map[string]float64) error
}

// Store manages the keyword weight table
type Store struct {
	repo Repository
	base map[string]float64
}

// NewStore creates a Store backed by the given repository, seeding from the
// base dictionary when no persisted table exists yet.
func NewStore(repo Repository, base map[string]float64) *Store {
	return &Store{repo: repo, base: base}
}

// Load returns the persisted weight table, bootstrapping it from the base
// dictionary on first use. The seed is written before returning so later
// reads observe the same table.
func (s *Store) Load(ctx context.Context) (scoring.Weights, error) {
	stored, err := s.repo.LoadWeights(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weights: %w", err)
	}

	if len(stored) > 0 {
		return scoring.Weights(stored), nil
	}

	seed := make(map[string]float64, len(s.base))
	for kw, w := range s.base {
		seed[kw] = w
	}
	if err := s.repo.SaveWeights(ctx, seed); err != nil {
		return nil, fmt.Errorf("failed to seed weights: %w", err)
	}

	return scoring.Weights(seed), nil
}

// Reinforce adds rate to the weight of every keyword contained in the
// description (case-insensitive). When nothing matches, the table is left
// untouched and not rewritten. Returns the resulting table and whether
// anything changed.
func (s *Store) Reinforce(ctx context.Context, description string, rate float64) (scoring.Weights, bool, error) {
	current, err := s.Load(ctx)
	if err != nil {
		return nil, false, err
	}

	matched := scoring.MatchingKeywords(description, current)
	if len(matched) == 0 {
		return current, false, nil
	}

	updated := make(map[string]float64, len(matched))
	for _, kw := range matched {
		current[kw] += rate
		updated[kw] = current[kw]
	}

	if err := s.repo.SaveWeights(ctx, updated); err != nil {
		return nil, false, fmt.Errorf("failed to save weights: %w", err)
	}

	return current, true, nil
}
