// Package main is the entry point for the taskline CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskline/internal/cli"
	"taskline/internal/commands"
	"taskline/internal/config"
	"taskline/internal/store"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create store factory
	factory := func(ctx context.Context, cfg *config.Config) (store.Store, error) {
		return openStore(cfg)
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}

// openStore opens the store selected by cfg.
func openStore(cfg *config.Config) (store.Store, error) {
	// A file store pointed at an explicit --file path writes wherever
	// the user said; everything else lives in the data directory.
	needsDir := cfg.Store != config.StoreMemory && !(cfg.Store == config.StoreFile && cfg.File != "")
	if needsDir {
		if err := cfg.EnsureDir(); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	switch cfg.Store {
	case config.StoreMemory:
		return store.NewMemoryStore(), nil
	case config.StoreFile:
		return store.NewFileStore(cfg.TaskFilePath()), nil
	case config.StoreSQLite:
		return store.NewSQLiteStore(cfg.DBPath())
	case config.StoreNutsDB:
		return store.NewNutsStore(cfg.KVPath())
	default:
		return nil, fmt.Errorf("unknown store kind: %s", cfg.Store)
	}
}
