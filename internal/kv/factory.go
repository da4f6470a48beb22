package kv

import (
	"fmt"
	"log/slog"
)

// Backend identifies a Store implementation.
type Backend string

const (
	MemoryBackend Backend = "memory"
	FileBackend   Backend = "file"
	SQLiteBackend Backend = "sqlite"
)

func (b Backend) String() string { return string(b) }

// IsValid returns true if the backend type is known.
func (b Backend) IsValid() bool {
	switch b {
	case MemoryBackend, FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Backends lists all valid backend types.
func Backends() []Backend {
	return []Backend{MemoryBackend, FileBackend, SQLiteBackend}
}

// Config holds what Open needs to build a Store.
type Config struct {
	Backend      Backend
	DataDir      string
	SQLiteDBPath string
}

// CleanupFunc releases backend resources; may be nil.
type CleanupFunc func() error

// Open builds the configured Store and an optional cleanup function.
func Open(cfg Config, logger *slog.Logger) (Store, CleanupFunc, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Backend {
	case MemoryBackend:
		logger.Info("Initialized memory store")
		return NewMemoryStore(), nil, nil

	case FileBackend:
		dir := cfg.DataDir
		if dir == "" {
			dir = "data"
		}
		store, err := NewFileStore(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize file store: %w", err)
		}
		logger.Info("Initialized file store", "data_directory", dir)
		return store, nil, nil

	case SQLiteBackend:
		store, err := NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized sqlite store", "db_path", cfg.SQLiteDBPath)
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("invalid storage backend: %s", cfg.Backend)
	}
}
