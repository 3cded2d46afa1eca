// Package storage provides the on-device key-value store backing Blush's
// persisted state. Each key maps to one JSON file under the data directory,
// the terminal-app equivalent of a phone's per-key application storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Logical keys used by the application.
const (
	KeyUser     = "user"
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
)

// KV is an opaque asynchronous-friendly key-value store. Get reports absence
// through its second return rather than an error.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	DeleteMany(ctx context.Context, keys ...string) error
}

// Ensure Dir implements KV at compile time.
var _ KV = (*Dir)(nil)

// Dir stores each key as <dir>/<key>.json.
type Dir struct {
	dir string
}

const defaultDataDir = "~/.local/share/blush"

// DefaultDir returns the default data directory path.
func DefaultDir() string {
	return defaultDataDir
}

// Open resolves the data directory, creating it when needed. An empty dir
// selects the default.
func Open(dir string) (*Dir, error) {
	resolved, err := resolveDir(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(resolved, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Dir{dir: resolved}, nil
}

// Get reads the value stored under key. A missing file is absence, not an error.
func (d *Dir) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(d.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes the value stored under key.
func (d *Dir) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(d.path(key), value, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// DeleteMany removes the given keys. Keys that are already absent are ignored;
// real removal failures are reported joined.
func (d *Dir) DeleteMany(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var errs []error
	for _, key := range keys {
		if err := os.Remove(d.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func (d *Dir) path(key string) string {
	return filepath.Join(d.dir, key+".json")
}

func resolveDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return expandPath(defaultDataDir)
	}
	return expandPath(dir)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
