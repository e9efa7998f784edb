// Package config handles the XDG data directory and store selection.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "taskline"

	// TasksFile is the task file name for the file store.
	TasksFile = "tasks.txt"

	// DBFile is the database file name for the sqlite store.
	DBFile = "tasks.db"

	// KVDir is the directory name for the nutsdb store.
	KVDir = "kv"
)

// Store kinds accepted by --store and TASKLINE_STORE.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreNutsDB = "nutsdb"
	StoreMemory = "memory"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the data directory path.
	Dir string

	// Store is the store backend kind (file, sqlite, nutsdb, memory).
	Store string

	// File overrides the task file path for the file store.
	File string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified data directory.
// If dataDir is empty, uses XDG_DATA_HOME/taskline or
// $HOME/.local/share/taskline. The store kind defaults to the
// TASKLINE_STORE environment variable, then to the file store.
func New(dataDir string) (*Config, error) {
	dir := dataDir
	if dir == "" {
		dir = DefaultDataDir()
	}
	return &Config{
		Dir:   dir,
		Store: getEnv("TASKLINE_STORE", StoreFile),
	}, nil
}

// DefaultDataDir returns the default data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// Validate checks that the configured store kind is known.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreSQLite, StoreNutsDB, StoreMemory:
		return nil
	default:
		return fmt.Errorf("unknown store kind: %s", c.Store)
	}
}

// TaskFilePath returns the task file path for the file store.
func (c *Config) TaskFilePath() string {
	if c.File != "" {
		return c.File
	}
	return filepath.Join(c.Dir, TasksFile)
}

// DBPath returns the database path for the sqlite store.
func (c *Config) DBPath() string {
	return filepath.Join(c.Dir, DBFile)
}

// KVPath returns the directory for the nutsdb store.
func (c *Config) KVPath() string {
	return filepath.Join(c.Dir, KVDir)
}

// EnsureDir creates the data directory if it doesn't exist.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0755)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
