package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoScoredData indicates the scored dataset has not been ingested yet
var ErrNoScoredData = errors.New("no scored dataset: run 'startupscan ingest' first")

// ReplaceScoredCompanies atomically replaces the scored dataset with a fresh
// batch. Callers pass the rows already sorted by score descending. Exact
// duplicate rows in the batch collapse into one.
func (db *DB) ReplaceScoredCompanies(ctx context.Context, companies []ScoredCompany) error {
	now := time.Now()

	return db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM scored_companies`); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO scored_companies (
				id, company_name, zip, description, location, keyword_count, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(company_name, zip, description) DO NOTHING
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i := range companies {
			c := &companies[i]
			if c.ID == "" {
				c.ID = uuid.New().String()
			}
			c.CreatedAt = now

			if _, err := stmt.ExecContext(ctx,
				c.ID, c.CompanyName, c.Zip, c.Description,
				NullString(c.Location), c.Score, c.CreatedAt,
			); err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx, `UPDATE session_state SET last_ingest_at = ? WHERE id = 1`, now)
		return err
	})
}

// ListScoredCompanies retrieves the scored dataset ordered by score descending
func (db *DB) ListScoredCompanies(ctx context.Context) ([]ScoredCompany, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, company_name, zip, description, location, keyword_count, created_at
		FROM scored_companies
		ORDER BY keyword_count DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []ScoredCompany
	for rows.Next() {
		c := ScoredCompany{}
		var location sql.NullString

		if err := rows.Scan(
			&c.ID, &c.CompanyName, &c.Zip, &c.Description,
			&location, &c.Score, &c.CreatedAt,
		); err != nil {
			return nil, err
		}

		c.Location = StringPtr(location)
		companies = append(companies, c)
	}

	return companies, rows.Err()
}

// CountScoredCompanies returns the number of rows in the scored dataset
func (db *DB) CountScoredCompanies(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scored_companies`).Scan(&count)
	return count, err
}

// InsertLabels inserts a batch of labels in one transaction. A label whose
// business key is already present is skipped, keeping at most one label per
// key at any time.
func (db *DB) InsertLabels(ctx context.Context, labels []Label) error {
	if len(labels) == 0 {
		return nil
	}

	return db.Transaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO labels (id, company_name, zip, description, is_startup, source, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(company_name, zip, description) DO NOTHING
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i := range labels {
			l := &labels[i]
			if l.ID == "" {
				l.ID = uuid.New().String()
			}
			l.CreatedAt = time.Now()

			if _, err := stmt.ExecContext(ctx,
				l.ID, l.CompanyName, l.Zip, l.Description, l.Decision, l.Source, l.CreatedAt,
			); err != nil {
				return err
			}
		}

		return nil
	})
}

// ListLabels retrieves all labels
func (db *DB) ListLabels(ctx context.Context) ([]Label, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, company_name, zip, description, is_startup, source, created_at
		FROM labels
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []Label
	for rows.Next() {
		l := Label{}
		if err := rows.Scan(
			&l.ID, &l.CompanyName, &l.Zip, &l.Description, &l.Decision, &l.Source, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}

	return labels, rows.Err()
}

// DeleteLabels removes the labels for the given business keys in one
// transaction. Keys with no matching label are ignored.
func (db *DB) DeleteLabels(ctx context.Context, keys []BusinessKey) error {
	if len(keys) == 0 {
		return nil
	}

	return db.Transaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			DELETE FROM labels WHERE company_name = ? AND zip = ? AND description = ?
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, k := range keys {
			if _, err := stmt.ExecContext(ctx, k.CompanyName, k.Zip, k.Description); err != nil {
				return err
			}
		}

		return nil
	})
}

// ResetLabels clears the label store and the review cursor. The keyword
// weight table is untouched.
func (db *DB) ResetLabels(ctx context.Context) error {
	return db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM labels`); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `UPDATE session_state SET cursor = 0 WHERE id = 1`)
		return err
	})
}

// LoadWeights retrieves the persisted keyword weight table. An empty map
// means the table has never been seeded.
func (db *DB) LoadWeights(ctx context.Context) (map[string]float64, error) {
	rows, err := db.QueryContext(ctx, `SELECT keyword, weight FROM keyword_weights`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weights := make(map[string]float64)
	for rows.Next() {
		var keyword string
		var weight float64
		if err := rows.Scan(&keyword, &weight); err != nil {
			return nil, err
		}
		weights[keyword] = weight
	}

	return weights, rows.Err()
}

// SaveWeights upserts the given keyword weights in one transaction
func (db *DB) SaveWeights(ctx context.Context, weights map[string]float64) error {
	if len(weights) == 0 {
		return nil
	}

	return db.Transaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO keyword_weights (keyword, weight)
			VALUES (?, ?)
			ON CONFLICT(keyword) DO UPDATE SET weight = excluded.weight
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for keyword, weight := range weights {
			if _, err := stmt.ExecContext(ctx, keyword, weight); err != nil {
				return err
			}
		}

		return nil
	})
}

// GetSessionState retrieves the current session state
func (db *DB) GetSessionState(ctx context.Context) (*SessionState, error) {
	state := &SessionState{}
	var lastIngestAt sql.NullTime

	err := db.QueryRowContext(ctx, `
		SELECT id, last_threshold, cursor, last_ingest_at
		FROM session_state WHERE id = 1
	`).Scan(&state.ID, &state.LastThreshold, &state.Cursor, &lastIngestAt)
	if err != nil {
		return nil, err
	}

	if lastIngestAt.Valid {
		state.LastIngestAt = &lastIngestAt.Time
	}
	return state, nil
}

// UpdateSessionState updates the session state
func (db *DB) UpdateSessionState(ctx context.Context, state *SessionState) error {
	_, err := db.ExecContext(ctx, `
		UPDATE session_state SET
			last_threshold = ?, cursor = ?, last_ingest_at = ?
		WHERE id = 1
	`, state.LastThreshold, state.Cursor, state.LastIngestAt)
	return err
}
