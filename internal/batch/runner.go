package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"storylint/internal/analysis"
)

// Runner fans a record batch out to the analyzer. Artifacts are independent
// of one another, so the loop is embarrassingly parallel; the only shared
// state is the analyzer's read-only configuration. Results land in an
// index-addressed slice so output order always matches input order.
type Runner struct {
	analyzer *analysis.Analyzer
	workers  int
}

// NewRunner constructs a Runner. A non-positive worker count falls back to 1.
func NewRunner(analyzer *analysis.Analyzer, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{analyzer: analyzer, workers: workers}
}

// Run analyzes every record and returns the rows in input order. Analysis
// itself never fails per-row; the error channel exists for context
// cancellation only.
func (r *Runner) Run(ctx context.Context, records []analysis.Record) ([]analysis.Row, error) {
	rows := make([]analysis.Row, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, rec := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = r.analyzer.Analyze(rec)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// Summary tallies the merged severities of a result set.
type Summary struct {
	Rows     int `json:"rows"`
	None     int `json:"none"`
	Medium   int `json:"medium"`
	High     int `json:"high"`
	Critical int `json:"critical"`
}

// Summarize counts rows per merged severity level.
func Summarize(rows []analysis.Row) Summary {
	s := Summary{Rows: len(rows)}
	for _, row := range rows {
		switch row.MergedSeverity {
		case analysis.SeverityCritical:
			s.Critical++
		case analysis.SeverityHigh:
			s.High++
		case analysis.SeverityMedium:
			s.Medium++
		default:
			s.None++
		}
	}
	return s
}
