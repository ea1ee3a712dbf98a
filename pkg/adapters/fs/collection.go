// Package fs persists record collections as flat JSON files.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/keeper/pkg/core"
)

// Collection implements core.Store backed by a single JSON file holding an
// array of records. A missing file reads as an empty collection; every save
// rewrites the whole array atomically.
type Collection[T any] struct {
	Path   string
	logger *slog.Logger
}

// NewCollection creates a collection stored at path.
// The containing directory is not created here; the caller is expected to
// have prepared it (keeper.Open does this once at construction).
func NewCollection[T any](path string, logger *slog.Logger) *Collection[T] {
	return &Collection[T]{Path: path, logger: logger}
}

// Load reads and decodes the full collection.
//
// Workflow:
//  1. Missing file: return an empty slice, not an error.
//  2. Present but undecodable: fail with core.ErrMalformed. There is no
//     automatic repair; a corrupted file needs manual attention.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	data, err := os.ReadFile(c.Path)
	if os.IsNotExist(err) {
		if c.logger != nil {
			c.logger.Debug("collection file absent, starting empty", "path", c.Path)
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w (%s): %v", core.ErrMalformed, c.Path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save serializes items and replaces the file atomically.
// The encoding is indented so the files stay hand-editable.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		// Keep the on-disk form an array even when empty.
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to serialize collection: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("writing collection", "path", c.Path, "records", len(items))
	}

	if err := writeFileAtomic(c.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write collection: %w", err)
	}
	return nil
}

var _ core.Store[struct{}] = (*Collection[struct{}])(nil)
