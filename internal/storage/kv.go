package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"aestheticpomodoro/internal/core/model"
)

// KeyValue is the local persistence primitive: one opaque value per key.
type KeyValue interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// FileKV stores every key as <dir>/<key>.json. Writes go through a temp file
// and a rename so a crash never leaves a truncated entry behind.
type FileKV struct {
	dir string
}

// NewFileKV returns a store rooted at dir, creating it if needed.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

// Get returns the stored value, or an error wrapping model.ErrNotFound.
func (store *FileKV) Get(key string) ([]byte, error) {
	path, err := store.pathFor(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("key %q: %w", key, model.ErrNotFound)
		}
		return nil, fmt.Errorf("read key %q: %w", key, err)
	}
	return data, nil
}

// Set overwrites the value of key.
func (store *FileKV) Set(key string, value []byte) error {
	path, err := store.pathFor(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(store.dir, "."+key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write key %q: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close key %q: %w", key, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace key %q: %w", key, err)
	}
	return nil
}

func (store *FileKV) pathFor(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(store.dir, key+".json"), nil
}
