// Package server wires the MCP components and creates the server instance.
//
// This is the composition root: it resolves the configuration, builds the
// analyzer and its collaborators, and injects them into the tools and
// prompts. No analysis logic lives here.
package server

import (
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"storylint/internal/analysis"
	"storylint/internal/batch"
	"storylint/internal/config"
	"storylint/internal/lang"
	"storylint/internal/prompts"
	"storylint/internal/store"
	"storylint/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with all tools and prompts registered.
//
// The returned cleanup function closes the history store's database
// connection and must be called on shutdown. It is always non-nil and safe
// to call even when history init failed.
func New(cfg *config.Config) (*server.MCPServer, func(), error) {
	analyzer, err := analysis.NewAnalyzer(cfg.Analysis(), lang.NewRuleTagger())
	if err != nil {
		return nil, noop, fmt.Errorf("creating analyzer: %w", err)
	}

	s := server.NewMCPServer(
		"storylint",
		Version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	analyzeTool := tools.NewAnalyzeTool(analyzer)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	storyRewrite := tools.NewRewriteStoryTool(analyzer)
	s.AddTool(storyRewrite.Definition(), storyRewrite.Handle)

	criteriaRewrite := tools.NewRewriteCriteriaTool(analyzer)
	s.AddTool(criteriaRewrite.Definition(), criteriaRewrite.Handle)

	// History is independent infrastructure: when it fails to open, batch
	// analysis still works, runs are just not recorded.
	cleanup := noop
	history, histErr := store.New(historyConfig(cfg))
	if histErr != nil {
		log.Printf("WARNING: run history disabled: %v", histErr)
		history = nil
	} else {
		cleanup = func() {
			if err := history.Close(); err != nil {
				log.Printf("WARNING: history store close: %v", err)
			}
		}
	}

	runner := batch.NewRunner(analyzer, cfg.Workers)
	batchTool := tools.NewBatchAnalyzeTool(runner, history)
	s.AddTool(batchTool.Definition(), batchTool.Handle)

	if history != nil {
		historyTool := tools.NewHistoryTool(history)
		s.AddTool(historyTool.Definition(), historyTool.Handle)
	}

	reviewPrompt := prompts.NewReviewPrompt()
	s.AddPrompt(reviewPrompt.Definition(), reviewPrompt.Handle)

	return s, cleanup, nil
}

// noop is the default cleanup when history is disabled.
func noop() {}

func historyConfig(cfg *config.Config) store.Config {
	sc := store.DefaultConfig()
	if cfg.HistoryDir != "" {
		sc.DataDir = cfg.HistoryDir
	}
	return sc
}

// serverInstructions tells the AI how to use storylint effectively.
func serverInstructions() string {
	return `You have access to storylint, a requirement quality analyzer for
agile artifacts: user stories and their acceptance criteria.

## When to use storylint

Use it whenever the user writes, refines, or reviews backlog items:
- Before implementation starts on a story, analyze it
- When acceptance criteria look vague, validate their Given/When/Then shape
- When grooming a whole backlog export, use batch_analyze on the CSV

## Tools

- story_analyze: the full checker battery on one story (+ optional
  acceptance criteria). Verdicts cover structure, ambiguity, INVEST,
  Gherkin shape, NFR coverage, and automation readiness, merged into one
  severity (None < Medium < High < Critical).
- story_rewrite / criteria_rewrite: best-effort normalization. These REFUSE
  on incomplete (TBD) content: that is by contract, not an error in your
  call. Ask the user to fill in the missing detail, then retry.
- batch_analyze: CSV in, CSV out, one result row per input row in input
  order. Recorded to run history when available.
- run_history: list previous batch runs with severity tallies.

## Interpreting severities

- Critical: incomplete (TBD) or missing content. Block the story; nothing
  else matters until the content exists.
- High: acceptance criteria structurally broken (missing or misordered
  Given/When/Then). Fix the structure next.
- Medium: hedge words ("may", "should", "approximately"). Push the user for
  precise wording.
- None: clean. Proceed.

## Important rules

- The rewrites are advisory: always re-run story_analyze on a rewritten
  artifact before declaring it fixed.
- A refused rewrite is never retried with the same text: the content itself
  is incomplete and only the user can complete it.
- Analysis verdicts are deterministic rule checks, not your judgment. Report
  them as what they are; add your own reasoning on top, clearly separated.`
}
