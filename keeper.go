package keeper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/keeper/pkg/adapters/fs"
	"github.com/aretw0/keeper/pkg/core"
)

// Default data file names inside the data directory.
const (
	ContactsFile = "contacts.json"
	NotesFile    = "notes.json"
)

// Assistant bundles the two record books backed by one data directory.
// Each book exclusively owns its in-memory collection for the lifetime of
// the assistant; the files are only re-read at Open.
type Assistant struct {
	Contacts *core.ContactBook
	Notes    *core.Notebook

	path   string
	logger *slog.Logger
}

// Open prepares the data directory and loads both collections.
//
// The directory is created here, once, rather than on every save. A data
// file that is absent loads as an empty collection; one that is present
// but malformed fails the whole call (core.ErrMalformed) — there is no
// automatic repair.
func Open(path string, opts ...Option) (*Assistant, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	contactStore := o.contactStore
	if contactStore == nil {
		contactStore = fs.NewCollection[core.Contact](filepath.Join(path, ContactsFile), o.logger)
	}
	noteStore := o.noteStore
	if noteStore == nil {
		noteStore = fs.NewCollection[core.Note](filepath.Join(path, NotesFile), o.logger)
	}

	ctx := context.Background()

	contacts, err := core.NewContactBook(ctx, contactStore, core.WithClock(o.clock))
	if err != nil {
		return nil, err
	}
	notes, err := core.NewNotebook(ctx, noteStore)
	if err != nil {
		return nil, err
	}

	return &Assistant{
		Contacts: contacts,
		Notes:    notes,
		path:     path,
		logger:   o.logger,
	}, nil
}

// Path returns the data directory the assistant was opened on.
func (a *Assistant) Path() string {
	return a.path
}

// Watch surfaces external changes to files under the data directory
// matching the doublestar pattern (e.g. "*.json"). The in-memory books do
// not reload on events; a concurrent writer still means last writer wins.
func (a *Assistant) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	return fs.Watch(ctx, a.path, pattern, a.logger)
}
