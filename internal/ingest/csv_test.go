package ingest

import (
	"errors"
	"strings"
	"testing"
)

func TestReadCompanies(t *testing.T) {
	input := `company_name,zip,description,location
Acme GmbH,10115,AI powered SaaS,Berlin
Beta UG,80331,Traditional bakery,
`

	companies, err := ReadCompanies(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCompanies() error: %v", err)
	}

	if len(companies) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(companies))
	}

	first := companies[0]
	if first.CompanyName != "Acme GmbH" || first.Zip != "10115" {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.Location != "Berlin" {
		t.Errorf("Location = %q, want Berlin", first.Location)
	}
	if companies[1].Location != "" {
		t.Errorf("empty location cell parsed as %q", companies[1].Location)
	}
}

func TestReadCompanies_ColumnOrderIrrelevant(t *testing.T) {
	input := `description,company_name,zip
AI platform,Acme GmbH,10115
`

	companies, err := ReadCompanies(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCompanies() error: %v", err)
	}
	if companies[0].CompanyName != "Acme GmbH" || companies[0].Description != "AI platform" {
		t.Errorf("columns mapped by position, not by name: %+v", companies[0])
	}
}

func TestReadCompanies_BOMHeader(t *testing.T) {
	input := "\ufeffcompany_name,zip,description\nAcme,10115,AI\n"

	companies, err := ReadCompanies(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCompanies() error: %v", err)
	}
	if len(companies) != 1 || companies[0].CompanyName != "Acme" {
		t.Errorf("BOM header not handled: %+v", companies)
	}
}

func TestReadCompanies_MissingColumn(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "no description column",
			input: "company_name,zip\nAcme,10115\n",
		},
		{
			name:  "no company name column",
			input: "zip,description\n10115,AI\n",
		},
		{
			name:  "empty file",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCompanies(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("error %v does not wrap ErrMalformedInput", err)
			}
		})
	}
}

func TestReadCompanies_RaggedRow(t *testing.T) {
	input := "company_name,zip,description\nAcme,10115\n"

	_, err := ReadCompanies(strings.NewReader(input))
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("ragged row: got %v, want ErrMalformedInput", err)
	}
}

func TestReadCompanies_HeaderOnly(t *testing.T) {
	input := "company_name,zip,description\n"

	companies, err := ReadCompanies(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCompanies() error: %v", err)
	}
	if len(companies) != 0 {
		t.Errorf("expected no records, got %d", len(companies))
	}
}
