package weights

import (
	"context"
	"testing"
)

// fakeRepo records every save so tests can inspect write behavior.
type fakeRepo struct {
	stored map[string]float64
	saves  int
}

func (r *fakeRepo) LoadWeights(ctx context.Context) (map[string]float64, error) {
	out := make(map[string]float64, len(r.stored))
	for k, v := range r.stored {
		out[k] = v
	}
	return out, nil
}

func (r *fakeRepo) SaveWeights(ctx context.Context, weights map[string]float64) error {
	if r.stored == nil {
		r.stored = make(map[string]float64)
	}
	for k, v := range weights {
		r.stored[k] = v
	}
	r.saves++
	return nil
}

func TestStore_LoadBootstrapsFromBase(t *testing.T) {
	repo := &fakeRepo{}
	base := map[string]float64{"AI": 1, "SaaS": 2}
	store := NewStore(repo, base)

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(loaded) != 2 || loaded["AI"] != 1 || loaded["SaaS"] != 2 {
		t.Errorf("unexpected bootstrap table: %v", loaded)
	}
	if repo.saves != 1 {
		t.Errorf("expected the seed to be persisted once, got %d saves", repo.saves)
	}

	// A second load reads the persisted table without reseeding.
	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("second Load() error: %v", err)
	}
	if repo.saves != 1 {
		t.Errorf("second load wrote again: %d saves", repo.saves)
	}
}

func TestStore_LoadPrefersPersistedTable(t *testing.T) {
	repo := &fakeRepo{stored: map[string]float64{"AI": 1.3}}
	store := NewStore(repo, map[string]float64{"AI": 1, "SaaS": 2})

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Persisted weights win; base entries are not merged back in.
	if loaded["AI"] != 1.3 {
		t.Errorf("AI = %g, want persisted 1.3", loaded["AI"])
	}
	if _, ok := loaded["SaaS"]; ok {
		t.Error("base keyword leaked into persisted table")
	}
}

func TestStore_ReinforceBumpsMatchedKeywords(t *testing.T) {
	repo := &fakeRepo{stored: map[string]float64{"AI": 1, "SaaS": 2, "Cloud": 1}}
	store := NewStore(repo, nil)

	updated, changed, err := store.Reinforce(context.Background(), "AI powered saas platform", 0.1)
	if err != nil {
		t.Fatalf("Reinforce() error: %v", err)
	}
	if !changed {
		t.Fatal("expected a change")
	}

	if updated["AI"] != 1.1 {
		t.Errorf("AI = %g, want 1.1", updated["AI"])
	}
	if updated["SaaS"] != 2.1 {
		t.Errorf("SaaS = %g, want 2.1", updated["SaaS"])
	}
	if updated["Cloud"] != 1 {
		t.Errorf("Cloud = %g, want unchanged 1", updated["Cloud"])
	}

	if repo.stored["AI"] != 1.1 || repo.stored["SaaS"] != 2.1 {
		t.Errorf("bumped weights not persisted: %v", repo.stored)
	}
}

func TestStore_ReinforceNoMatchIsNoOp(t *testing.T) {
	repo := &fakeRepo{stored: map[string]float64{"AI": 1}}
	store := NewStore(repo, nil)

	_, changed, err := store.Reinforce(context.Background(), "traditional bakery", 0.1)
	if err != nil {
		t.Fatalf("Reinforce() error: %v", err)
	}
	if changed {
		t.Error("expected no change")
	}
	if repo.saves != 0 {
		t.Errorf("table was rewritten on a non-match: %d saves", repo.saves)
	}
	if repo.stored["AI"] != 1 {
		t.Errorf("AI = %g, want 1", repo.stored["AI"])
	}
}

func TestStore_WeightsOnlyGrow(t *testing.T) {
	repo := &fakeRepo{stored: map[string]float64{"AI": 1}}
	store := NewStore(repo, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, _, err := store.Reinforce(ctx, "AI company", 0.1); err != nil {
			t.Fatalf("Reinforce() error: %v", err)
		}
	}

	got := repo.stored["AI"]
	if got < 1.29 || got > 1.31 {
		t.Errorf("AI = %g, want ~1.3 after three reinforcements", got)
	}
}
