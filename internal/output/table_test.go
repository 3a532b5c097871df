package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tkoehler/startupscan/internal/database"
	"github.com/tkoehler/startupscan/internal/review"
	"github.com/tkoehler/startupscan/internal/scoring"
)

func TestTableTo_ScoredCompanies(t *testing.T) {
	companies := []database.ScoredCompany{
		{CompanyName: "Acme GmbH", Zip: "10115", Description: "AI platform", Score: 3},
	}

	var buf bytes.Buffer
	if err := TableTo(&buf, companies); err != nil {
		t.Fatalf("TableTo() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Acme GmbH", "10115", "3", "AI platform"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTableTo_EmptyScoredCompanies(t *testing.T) {
	var buf bytes.Buffer
	if err := TableTo(&buf, []database.ScoredCompany{}); err != nil {
		t.Fatalf("TableTo() error: %v", err)
	}
	if !strings.Contains(buf.String(), "No scored companies") {
		t.Errorf("unexpected empty output: %s", buf.String())
	}
}

func TestTableTo_Stats(t *testing.T) {
	stats := &review.Stats{
		TotalCompanies: 10,
		AutoLabeledNo:  6,
		ManualYes:      2,
		ManualNo:       1,
		LeftToLabel:    1,
	}

	var buf bytes.Buffer
	if err := TableTo(&buf, stats); err != nil {
		t.Fatalf("TableTo() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Total companies", "10", "Auto-labeled No", "Left to label"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTableTo_Weights(t *testing.T) {
	weights := scoring.Weights{"AI": 1.2, "SaaS": 2}

	var buf bytes.Buffer
	if err := TableTo(&buf, weights); err != nil {
		t.Fatalf("TableTo() error: %v", err)
	}

	out := buf.String()
	// Highest weight first.
	if strings.Index(out, "SaaS") > strings.Index(out, "AI") {
		t.Errorf("weights not sorted descending:\n%s", out)
	}
	if !strings.Contains(out, "1.2") {
		t.Errorf("fractional weight not rendered:\n%s", out)
	}
}

func TestTableTo_UnsupportedType(t *testing.T) {
	var buf bytes.Buffer
	if err := TableTo(&buf, 42); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestJSONTo(t *testing.T) {
	labels := []database.Label{
		{CompanyName: "Acme", Zip: "10115", Description: "AI", Decision: database.DecisionYes, Source: database.SourceManual},
	}

	var buf bytes.Buffer
	if err := JSONTo(&buf, labels); err != nil {
		t.Fatalf("JSONTo() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"is_startup": "Yes"`) {
		t.Errorf("unexpected JSON:\n%s", out)
	}
	if !strings.Contains(out, `"source": "manual"`) {
		t.Errorf("unexpected JSON:\n%s", out)
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1, "1"},
		{1.1, "1.1"},
		{-100, "-100"},
		{2.5, "2.5"},
	}

	for _, tt := range tests {
		if got := formatScore(tt.score); got != tt.want {
			t.Errorf("formatScore(%g) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate() = %s", got)
	}
	if got := truncate("a very long description here", 10); got != "a very ..." {
		t.Errorf("truncate() = %s", got)
	}
	if len(truncate("a very long description here", 10)) != 10 {
		t.Error("truncated string exceeds max")
	}
}
