// Package storage provides the key-value stores a session is saved into.
//
// Every backend follows the same contract: a missing key reads as an empty
// string with no error, and deleting a missing key is not an error.
package storage

import (
	"context"
	"fmt"
	"log/slog"
)

// Store is a synchronous string key-value store
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Kind names a backend
type Kind string

const (
	KindMemory Kind = "memory"
	KindFile   Kind = "file"
	KindRedis  Kind = "redis"
	KindSQLite Kind = "sqlite"
)

// Options selects and configures a backend
type Options struct {
	Kind       Kind
	Dir        string // file backend
	RedisURL   string // redis backend
	SQLitePath string // sqlite backend
}

// loggerOrDefault lets callers pass a nil logger
func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// Open creates the configured store
func Open(ctx context.Context, opts Options, logger *slog.Logger) (Store, error) {
	logger = loggerOrDefault(logger)
	switch opts.Kind {
	case KindMemory:
		return NewMemoryStore(), nil
	case KindFile, "":
		return NewFileStore(opts.Dir, logger)
	case KindRedis:
		s, err := NewRedisStore(opts.RedisURL, logger)
		if err != nil {
			return nil, err
		}
		if err := s.Ping(ctx); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil
	case KindSQLite:
		return NewSQLiteStore(ctx, opts.SQLitePath, logger)
	default:
		return nil, fmt.Errorf("unknown store kind %q", opts.Kind)
	}
}
