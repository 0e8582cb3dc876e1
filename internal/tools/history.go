package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"storylint/internal/store"
)

// HistoryTool handles the run_history MCP tool. It is only registered when
// the history store is available.
type HistoryTool struct {
	history *store.Store
}

// NewHistoryTool creates a HistoryTool.
func NewHistoryTool(history *store.Store) *HistoryTool {
	return &HistoryTool{history: history}
}

// Definition returns the MCP tool definition for registration.
func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("run_history",
		mcp.WithDescription(
			"List recorded batch analysis runs, newest first, with their "+
				"per-severity row counts.",
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of runs to return. Default: 20."),
		),
	)
}

// Handle processes the run_history tool call.
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 20)

	runs, err := t.history.ListRuns(limit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(runs) == 0 {
		return mcp.NewToolResultText("No recorded runs."), nil
	}

	var sb strings.Builder
	sb.WriteString("# Recorded Runs\n\n")
	for _, r := range runs {
		fmt.Fprintf(&sb, "- **%s** (%s): %s, %d rows: %d critical, %d high, %d medium, %d clean\n",
			r.ID, r.CreatedAt, r.Source, r.Rows, r.Critical, r.High, r.Medium, r.None)
	}
	return mcp.NewToolResultText(sb.String()), nil
}
