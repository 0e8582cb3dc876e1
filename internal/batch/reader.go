// Package batch is the input/output harness around the analysis pipeline:
// it loads an ordered record batch from CSV, fans the records out to the
// analyzer, and writes one result row per input record back to CSV. No
// decision logic lives here.
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"storylint/internal/analysis"
)

// Column headers recognized in the input CSV, matched case-insensitively.
const (
	storyColumn    = "user story"
	criteriaColumn = "acceptance criteria"
)

// ReadRecords loads the ordered record batch from a CSV file. The header row
// must name a "User Story" and/or "Acceptance Criteria" column; missing or
// blank cells become empty strings so absence reaches the analyzer as an
// analyzable condition, never as a harness error.
func ReadRecords(path string) ([]analysis.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("batch: opening %s: %w", path, err)
	}
	defer f.Close()

	return parseRecords(f)
}

func parseRecords(r io.Reader) ([]analysis.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("batch: input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("batch: reading header: %w", err)
	}

	storyIdx, criteriaIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case storyColumn:
			storyIdx = i
		case criteriaColumn:
			criteriaIdx = i
		}
	}
	if storyIdx < 0 && criteriaIdx < 0 {
		return nil, fmt.Errorf("batch: no %q or %q column in header", storyColumn, criteriaColumn)
	}

	var records []analysis.Record
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("batch: reading row %d: %w", len(records)+2, err)
		}
		records = append(records, analysis.Record{
			Story:              cell(fields, storyIdx),
			AcceptanceCriteria: cell(fields, criteriaIdx),
		})
	}
	return records, nil
}

// cell returns the trimmed field at idx, or "" when the column is absent or
// the row is short.
func cell(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}
