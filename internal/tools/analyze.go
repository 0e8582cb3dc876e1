// Package tools implements the MCP tool handlers for storylint.
//
// Each tool receives its dependencies via its struct and exposes the
// Definition()/Handle() pair mcp-go expects. One file per tool; tools hold
// no state beyond the injected analyzer and store.
package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"storylint/internal/analysis"
)

// AnalyzeTool handles the story_analyze MCP tool: the full checker battery
// over a single story and its optional acceptance criteria.
type AnalyzeTool struct {
	analyzer *analysis.Analyzer
}

// NewAnalyzeTool creates an AnalyzeTool.
func NewAnalyzeTool(analyzer *analysis.Analyzer) *AnalyzeTool {
	return &AnalyzeTool{analyzer: analyzer}
}

// Definition returns the MCP tool definition for registration.
func (t *AnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("story_analyze",
		mcp.WithDescription(
			"Analyze a user story and its acceptance criteria against the "+
				"storylint quality rules: structural pattern, ambiguity and "+
				"incompleteness, INVEST principles, Given/When/Then structure, "+
				"NFR coverage, and automation readiness. Returns every "+
				"checker's verdict, the merged severity, and suggested rewrites.",
		),
		mcp.WithString("story",
			mcp.Required(),
			mcp.Description("The user story text to analyze."),
		),
		mcp.WithString("acceptance_criteria",
			mcp.Description("The acceptance-criteria block for the story. "+
				"Optional; leaving it out is analyzed as a missing criterion."),
		),
	)
}

// Handle processes the story_analyze tool call.
func (t *AnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	story := req.GetString("story", "")
	ac := req.GetString("acceptance_criteria", "")

	if strings.TrimSpace(story) == "" && strings.TrimSpace(ac) == "" {
		return mcp.NewToolResultError("'story' is required: provide the user story text to analyze"), nil
	}

	row := t.analyzer.Analyze(analysis.Record{Story: story, AcceptanceCriteria: ac})
	return mcp.NewToolResultText(renderRow(row)), nil
}

// renderRow builds the markdown analysis report for one row.
func renderRow(row analysis.Row) string {
	var sb strings.Builder
	sb.WriteString("# Story Analysis Report\n\n")

	fmt.Fprintf(&sb, "**Merged severity: %s**\n\n", row.MergedSeverity)

	sb.WriteString("## Structure\n\n")
	fmt.Fprintf(&sb, "- %s: %s\n", row.Structure.Outcome, row.Structure.Message)
	if row.StoryParts != (analysis.StoryParts{}) {
		fmt.Fprintf(&sb, "- Extracted (advisory): role=%q action=%q benefit=%q\n",
			row.StoryParts.Role, row.StoryParts.Action, row.StoryParts.Benefit)
	}
	sb.WriteString("\n")

	sb.WriteString("## Ambiguity\n\n")
	fmt.Fprintf(&sb, "- Story: %s (%s): %s\n", row.StoryAmbiguity.Outcome, row.StorySeverity, row.StoryAmbiguity.Message)
	fmt.Fprintf(&sb, "- Acceptance criteria: %s (%s): %s\n", row.CriteriaAmbiguity.Outcome, row.CriteriaSeverity, row.CriteriaAmbiguity.Message)
	sb.WriteString("\n")

	sb.WriteString("## INVEST\n\n")
	for _, axis := range []string{"Independent", "Negotiable", "Valuable", "Estimable", "Small", "Testable"} {
		fmt.Fprintf(&sb, "- %s: %s\n", axis, row.Invest[axis])
	}
	fmt.Fprintf(&sb, "- Summary: %s\n\n", row.InvestSummary)

	sb.WriteString("## Acceptance Criteria (Gherkin)\n\n")
	fmt.Fprintf(&sb, "- %s: %s\n\n", row.Gherkin.Outcome, row.Gherkin.Message)

	sb.WriteString("## NFR Coverage\n\n")
	fmt.Fprintf(&sb, "- %s: %s\n\n", row.NFR.Outcome, row.NFR.Message)

	sb.WriteString("## Automation Readiness\n\n")
	fmt.Fprintf(&sb, "- Tier %s. %s\n\n", row.Automation, row.AutomationRationale)

	sb.WriteString("## Suggested Rewrites\n\n")
	sb.WriteString("### Story\n\n")
	writeRewrite(&sb, row.StoryRewrite)
	sb.WriteString("### Acceptance Criteria\n\n")
	writeRewrite(&sb, row.CriteriaRewrite)

	return sb.String()
}

func writeRewrite(sb *strings.Builder, r analysis.RewriteResult) {
	if r.Refused {
		fmt.Fprintf(sb, "_Not rewritable: %s._\n\n", r.Reason)
		return
	}
	fmt.Fprintf(sb, "```\n%s\n```\n\n", r.Text)
}
