package fs

import (
	"os"

	"github.com/aretw0/introspection"
)

// CollectionState exposes internal state for observability.
type CollectionState struct {
	Path      string `json:"path"`
	Exists    bool   `json:"exists"`
	SizeBytes int64  `json:"size_bytes"`
}

// State implements introspection.Introspectable.
func (c *Collection[T]) State() any {
	state := CollectionState{Path: c.Path}
	if info, err := os.Stat(c.Path); err == nil {
		state.Exists = true
		state.SizeBytes = info.Size()
	}
	return state
}

// ComponentType implements introspection.Component.
func (c *Collection[T]) ComponentType() string {
	return "json-collection"
}

var _ introspection.Introspectable = (*Collection[struct{}])(nil)
var _ introspection.Component = (*Collection[struct{}])(nil)
