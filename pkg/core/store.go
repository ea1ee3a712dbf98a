package core

import (
	"context"
	"fmt"
)

// Store defines the contract for persisting an ordered record collection.
// Adhering to this interface keeps the books independent of the underlying
// storage mechanism (filesystem, memory, SQL, S3, etc).
type Store[T any] interface {
	// Load returns the full collection, in stored order.
	// A store with no persisted data yet returns an empty slice.
	Load(ctx context.Context) ([]T, error)

	// Save replaces the persisted collection with items, preserving order.
	Save(ctx context.Context, items []T) error
}

// EventType represents the type of an external change to stored data.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an external change observed on a data file.
type Event struct {
	Type      EventType
	Name      string // file name relative to the data directory
	Timestamp int64  // Unix timestamp
}

// String implements fmt.Stringer (and lifecycle.Event).
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Name)
}
