// Package ingest parses raw company uploads. A malformed file aborts the
// whole batch; nothing is written for a batch that fails to parse.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tkoehler/startupscan/internal/scoring"
)

// ErrMalformedInput indicates the upload is missing required fields or is
// unparsable
var ErrMalformedInput = errors.New("malformed input")

// Required columns for a raw upload. The location column is accepted but
// unused by scoring.
var requiredColumns = []string{"company_name", "zip", "description"}

// ReadCompanies parses a raw CSV upload into company records. The header row
// must name the required columns; extra columns are ignored.
func ReadCompanies(r io.Reader) ([]scoring.Company, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMalformedInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		// Strip a UTF-8 BOM from the first cell; spreadsheet exports add one.
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		index[name] = i
	}

	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrMalformedInput, col)
		}
	}

	var companies []scoring.Company
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		c := scoring.Company{
			CompanyName: record[index["company_name"]],
			Zip:         record[index["zip"]],
			Description: record[index["description"]],
		}
		if i, ok := index["location"]; ok && i < len(record) {
			c.Location = record[i]
		}

		companies = append(companies, c)
	}

	return companies, nil
}
