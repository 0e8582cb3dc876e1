package main

import (
	"context"
	"io"
	"testing"

	"storylint/internal/config"
	slserver "storylint/internal/server"
)

func TestServeStdio_ReturnsOnCancelledContext(t *testing.T) {
	cfg := config.Default()
	cfg.HistoryDir = t.TempDir()

	s, cleanup, err := slserver.New(cfg)
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The pipe never delivers input, so only the cancelled context can end
	// the serve loop.
	pr, pw := io.Pipe()
	defer pw.Close()
	defer pr.Close()

	if err := serveStdio(ctx, s, pr, io.Discard); err == nil {
		t.Fatal("serveStdio should return once the context is cancelled")
	}
}
