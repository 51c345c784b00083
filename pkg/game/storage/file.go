package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one file per key under a directory
type FileStore struct {
	dir    string
	logger *slog.Logger
}

// NewFileStore creates the directory if needed
func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve save directory: %w", err)
		}
		dir = filepath.Join(base, "moneymoves")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &FileStore{dir: dir, logger: loggerOrDefault(logger)}, nil
}

func (f *FileStore) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(f.dir, safe+".json")
}

// Get reads the value or returns "" when the file does not exist
func (f *FileStore) Get(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.logger.Debug("Save file not found", "key", key)
			return "", nil
		}
		f.logger.Error("Failed to read save file", "key", key, "error", err)
		return "", fmt.Errorf("failed to read save file: %w", err)
	}
	return string(data), nil
}

// Set writes the value through a temporary file and rename
func (f *FileStore) Set(_ context.Context, key, value string) error {
	target := f.path(key)
	tmp, err := os.CreateTemp(f.dir, ".save-*")
	if err != nil {
		return fmt.Errorf("failed to create temp save file: %w", err)
	}
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		f.logger.Error("Failed to replace save file", "key", key, "error", err)
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}

// Delete removes the file; a missing file is fine
func (f *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete save file: %w", err)
	}
	return nil
}

// Close is a no-op
func (f *FileStore) Close() error {
	return nil
}
