// VocabForge - Multi-Language Vocabulary Catalog
//
// An offline-tolerant CLI for curating app vocabulary datasets: import
// terms, generate linguistic content with AI providers, and keep a
// local cache in sync with the shared remote catalog.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vocab-forge/vocabforge/internal/cli"
	"github.com/vocab-forge/vocabforge/internal/config"
	"github.com/vocab-forge/vocabforge/internal/db"
	"github.com/vocab-forge/vocabforge/internal/log"
	"github.com/vocab-forge/vocabforge/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Load config and open database for the persistent tracking ID
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	paths := config.GetPaths(cfg)
	if err := log.Init(paths.Logs); err != nil {
		os.Exit(1)
	}

	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		os.Exit(1)
	}
	defer func() {
		_ = database.Close()
	}()

	// Use persistent tracking ID from database
	telemetryClient := telemetry.New(database)
	defer telemetryClient.Close()

	if err := cli.Execute(ctx, telemetryClient); err != nil {
		os.Exit(1)
	}
}
