package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"storylint/internal/analysis"
)

// RewriteStoryTool handles the story_rewrite MCP tool.
type RewriteStoryTool struct {
	analyzer *analysis.Analyzer
}

// NewRewriteStoryTool creates a RewriteStoryTool.
func NewRewriteStoryTool(analyzer *analysis.Analyzer) *RewriteStoryTool {
	return &RewriteStoryTool{analyzer: analyzer}
}

// Definition returns the MCP tool definition for registration.
func (t *RewriteStoryTool) Definition() mcp.Tool {
	return mcp.NewTool("story_rewrite",
		mcp.WithDescription(
			"Rewrite a user story into the canonical 'As a ..., I want ..., "+
				"so that ...' shape. Refuses when the story contains "+
				"incomplete (TBD) information; complete the story first.",
		),
		mcp.WithString("story",
			mcp.Required(),
			mcp.Description("The user story text to rewrite."),
		),
	)
}

// Handle processes the story_rewrite tool call. A refusal is surfaced as a
// tool error so the caller can distinguish it from a successful rewrite.
func (t *RewriteStoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := t.analyzer.RewriteStory(req.GetString("story", ""))
	if result.Refused {
		return mcp.NewToolResultError(result.Reason), nil
	}
	return mcp.NewToolResultText(result.Text), nil
}

// RewriteCriteriaTool handles the criteria_rewrite MCP tool.
type RewriteCriteriaTool struct {
	analyzer *analysis.Analyzer
}

// NewRewriteCriteriaTool creates a RewriteCriteriaTool.
func NewRewriteCriteriaTool(analyzer *analysis.Analyzer) *RewriteCriteriaTool {
	return &RewriteCriteriaTool{analyzer: analyzer}
}

// Definition returns the MCP tool definition for registration.
func (t *RewriteCriteriaTool) Definition() mcp.Tool {
	return mcp.NewTool("criteria_rewrite",
		mcp.WithDescription(
			"Normalize an acceptance-criteria block toward well-formed "+
				"Given/When/Then structure: synthesizes missing clauses, "+
				"re-labels keyword casing, and never reorders the author's "+
				"lines. Refuses when the block contains incomplete (TBD) "+
				"information.",
		),
		mcp.WithString("acceptance_criteria",
			mcp.Required(),
			mcp.Description("The acceptance-criteria block to normalize."),
		),
	)
}

// Handle processes the criteria_rewrite tool call.
func (t *RewriteCriteriaTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := t.analyzer.RewriteCriteria(req.GetString("acceptance_criteria", ""))
	if result.Refused {
		return mcp.NewToolResultError(result.Reason), nil
	}
	return mcp.NewToolResultText(result.Text), nil
}
