package database

import (
	"database/sql"
	"time"
)

// Decision represents a startup classification decision
type Decision string

const (
	DecisionYes Decision = "Yes"
	DecisionNo  Decision = "No"
)

// Source represents the provenance of a label
type Source string

const (
	SourceManual Source = "manual"
	SourceAuto   Source = "auto"
)

// BusinessKey is the identity of a company record. Two records are the same
// iff all three fields match exactly; no normalization is applied.
type BusinessKey struct {
	CompanyName string
	Zip         string
	Description string
}

// ScoredCompany represents one row of the scored dataset. The persisted score
// is the source of truth; it is never recomputed after ingest.
type ScoredCompany struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	Zip         string    `json:"zip"`
	Description string    `json:"description"`
	Location    *string   `json:"location,omitempty"`
	Score       float64   `json:"keyword_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Key returns the business key for this record
func (c *ScoredCompany) Key() BusinessKey {
	return BusinessKey{CompanyName: c.CompanyName, Zip: c.Zip, Description: c.Description}
}

// Label represents a classification decision for one company
type Label struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	Zip         string    `json:"zip"`
	Description string    `json:"description"`
	Decision    Decision  `json:"is_startup"`
	Source      Source    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// Key returns the business key for this label
func (l *Label) Key() BusinessKey {
	return BusinessKey{CompanyName: l.CompanyName, Zip: l.Zip, Description: l.Description}
}

// SessionState tracks the last applied threshold and the review cursor
type SessionState struct {
	ID            int        `json:"id"`
	LastThreshold float64    `json:"last_threshold"`
	Cursor        int        `json:"cursor"`
	LastIngestAt  *time.Time `json:"last_ingest_at,omitempty"`
}

// NullString is a helper to convert *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr converts sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
