// Storylint: requirement quality analysis for agile user stories.
//
// Runs a deterministic checker battery (structure, ambiguity, INVEST,
// Gherkin shape, NFR coverage, automation readiness) over stories and
// acceptance criteria, either on a CSV backlog export or as an MCP
// server for AI coding tools.
//
// Usage:
//
//	storylint analyze <input.csv> [output.csv]   # Analyze a backlog export
//	storylint serve                              # Start MCP server (stdio transport)
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"storylint/internal/analysis"
	"storylint/internal/batch"
	"storylint/internal/config"
	"storylint/internal/lang"
	slserver "storylint/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "analyze":
		if err := runAnalyze(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("storylint v%s\n", slserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	s, cleanup, err := slserver.New(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// Graceful shutdown on interrupt.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	return serveStdio(ctx, s, os.Stdin, os.Stdout)
}

// serveStdio runs the stdio transport until the input closes or the context
// is cancelled.
func serveStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s).Listen(ctx, in, out)
}

// runAnalyze is the offline path: CSV in, analyzed CSV out, summary on
// stderr so the output path stays clean for piping.
func runAnalyze(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("analyze requires an input CSV path")
	}
	inputPath := args[0]
	outputPath := strings.TrimSuffix(inputPath, ".csv") + ".analyzed.csv"
	if len(args) > 1 {
		outputPath = args[1]
	}

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	analyzer, err := analysis.NewAnalyzer(cfg.Analysis(), lang.NewRuleTagger())
	if err != nil {
		return fmt.Errorf("creating analyzer: %w", err)
	}

	records, err := batch.ReadRecords(inputPath)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(analyzer, cfg.Workers)
	rows, err := runner.Run(context.Background(), records)
	if err != nil {
		return err
	}

	if err := batch.WriteRows(outputPath, rows); err != nil {
		return err
	}

	summary := batch.Summarize(rows)
	fmt.Fprintf(os.Stderr, "Analyzed %d rows: %d critical, %d high, %d medium, %d clean\n",
		summary.Rows, summary.Critical, summary.High, summary.Medium, summary.None)
	fmt.Fprintf(os.Stderr, "Results written to %s\n", outputPath)
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Storylint v%s: requirement quality analysis for agile user stories

Usage:
  storylint analyze <input.csv> [output.csv]   Analyze a backlog CSV export
  storylint serve                              Start the MCP server (stdio transport)

The input CSV needs a "User Story" column; an "Acceptance Criteria"
column is optional. Output defaults to <input>.analyzed.csv.

Configuration:
  Reads %s from the working directory when present.

  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "storylint": {
        "command": "storylint",
        "args": ["serve"]
      }
    }
  }
`, slserver.Version, config.DefaultFile)
}
