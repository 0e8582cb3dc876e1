package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"storylint/internal/analysis"
)

// OutputColumns is the fixed sink schema, one row per input record.
var OutputColumns = []string{
	"Story",
	"Acceptance Criteria",
	"Structure Score", "Structure Message",
	"Ambiguity Score", "Ambiguity Message", "Ambiguity Severity",
	"INVEST Score", "INVEST Message",
	"AC Score", "AC Message",
	"NFR Score", "NFR Message",
	"Automation Tier", "Automation Rationale",
	"Merged Severity",
	"Improved Story",
	"Improved Acceptance Criteria",
}

// WriteRows persists the ordered result rows as a CSV with the fixed column
// schema.
func WriteRows(path string, rows []analysis.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := writeRows(f, rows); err != nil {
		return err
	}
	return f.Close()
}

func writeRows(w io.Writer, rows []analysis.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(OutputColumns); err != nil {
		return fmt.Errorf("batch: writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(outputFields(row)); err != nil {
			return fmt.Errorf("batch: writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("batch: flushing output: %w", err)
	}
	return nil
}

// outputFields flattens one analysis row into the sink schema.
func outputFields(row analysis.Row) []string {
	// The worse ambiguity verdict of the two artifacts represents the row.
	ambiguity := row.StoryAmbiguity
	severity := row.StorySeverity
	if row.CriteriaSeverity > severity {
		ambiguity = row.CriteriaAmbiguity
		severity = row.CriteriaSeverity
	}

	return []string{
		row.Record.Story,
		row.Record.AcceptanceCriteria,
		string(row.Structure.Outcome), row.Structure.Message,
		string(ambiguity.Outcome), ambiguity.Message, severity.String(),
		investOutcome(row.Invest), row.InvestSummary,
		string(row.Gherkin.Outcome), row.Gherkin.Message,
		string(row.NFR.Outcome), row.NFR.Message,
		string(row.Automation), row.AutomationRationale,
		row.MergedSeverity.String(),
		rewriteField(row.StoryRewrite),
		rewriteField(row.CriteriaRewrite),
	}
}

func investOutcome(card analysis.ScoreCard) string {
	if card.Failures() == 0 {
		return string(analysis.Pass)
	}
	return string(analysis.Fail)
}

// rewriteField renders a rewrite result for the sink: refused rewrites keep
// their reason visible instead of silently emitting an empty cell.
func rewriteField(r analysis.RewriteResult) string {
	if r.Refused {
		return "[not rewritable] " + r.Reason
	}
	// Criteria rewrites may span lines; the sink keeps them on one line.
	return strings.ReplaceAll(r.Text, "\n", " | ")
}
