package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"storylint/internal/batch"
	"storylint/internal/store"
)

// BatchAnalyzeTool handles the batch_analyze MCP tool: run the full pipeline
// over a CSV of records and write the result table next to it.
type BatchAnalyzeTool struct {
	runner  *batch.Runner
	history *store.Store // nullable; runs are then not recorded
}

// NewBatchAnalyzeTool creates a BatchAnalyzeTool. history may be nil; the
// tool then skips run recording.
func NewBatchAnalyzeTool(runner *batch.Runner, history *store.Store) *BatchAnalyzeTool {
	return &BatchAnalyzeTool{runner: runner, history: history}
}

// Definition returns the MCP tool definition for registration.
func (t *BatchAnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("batch_analyze",
		mcp.WithDescription(
			"Analyze a CSV batch of user stories and acceptance criteria. "+
				"The input must have a 'User Story' and/or 'Acceptance "+
				"Criteria' column; the output CSV has one result row per "+
				"input record in the original order. The run is recorded to "+
				"local history when available.",
		),
		mcp.WithString("input_path",
			mcp.Required(),
			mcp.Description("Path to the input CSV."),
		),
		mcp.WithString("output_path",
			mcp.Description("Path for the output CSV. Defaults to the input "+
				"path with an '.analyzed.csv' suffix."),
		),
	)
}

// Handle processes the batch_analyze tool call.
func (t *BatchAnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputPath := strings.TrimSpace(req.GetString("input_path", ""))
	if inputPath == "" {
		return mcp.NewToolResultError("'input_path' is required: path to the CSV batch to analyze"), nil
	}
	outputPath := strings.TrimSpace(req.GetString("output_path", ""))
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, ".csv") + ".analyzed.csv"
	}

	records, err := batch.ReadRecords(inputPath)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rows, err := t.runner.Run(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("running batch: %w", err)
	}

	if err := batch.WriteRows(outputPath, rows); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	summary := batch.Summarize(rows)

	var sb strings.Builder
	sb.WriteString("# Batch Analysis Complete\n\n")
	fmt.Fprintf(&sb, "- Input: %s (%d rows)\n", inputPath, summary.Rows)
	fmt.Fprintf(&sb, "- Output: %s\n", outputPath)
	fmt.Fprintf(&sb, "- Severities: %d critical, %d high, %d medium, %d clean\n",
		summary.Critical, summary.High, summary.Medium, summary.None)

	if t.history != nil {
		if runID, err := t.history.SaveRun(inputPath, rows); err == nil {
			fmt.Fprintf(&sb, "- Recorded as run %s\n", runID)
		} else {
			fmt.Fprintf(&sb, "- Run not recorded: %v\n", err)
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}
