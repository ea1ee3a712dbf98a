package keeper

import (
	"log/slog"
	"time"

	"github.com/aretw0/keeper/pkg/core"
)

// options holds the internal configuration for the keeper facade.
type options struct {
	logger       *slog.Logger
	clock        func() time.Time
	contactStore core.Store[core.Contact]
	noteStore    core.Store[core.Note]
}

// Option defines a functional option for configuring keeper.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: nil, // or slog.Default() if we prefer
		clock:  time.Now,
	}
}

// WithLogger sets the logger for the facade and its stores.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source used by birthday queries.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithContactStore allows injecting a custom contact storage adapter
// (e.g. an in-memory mock). If provided, the default filesystem adapter
// is skipped.
func WithContactStore(store core.Store[core.Contact]) Option {
	return func(o *options) {
		o.contactStore = store
	}
}

// WithNoteStore allows injecting a custom note storage adapter.
func WithNoteStore(store core.Store[core.Note]) Option {
	return func(o *options) {
		o.noteStore = store
	}
}
