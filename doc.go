// Package keeper is the Composition Root for the keeper application.
//
// It connects the core business logic (contact and note books) with the
// infrastructure adapter (flat JSON files) so callers get a ready-to-use
// personal data store from a single Open call.
//
// Philosophy:
//
// Keeper is a single-user personal information manager: two ordered record
// collections (contacts and notes) persisted as human-editable JSON files.
// The core is deliberately free of any presentation concerns; the bundled
// CLI is just one front end calling the same operations any other caller
// would.
//
// Features:
//
//   - **Library first**: the books are plain types constructed explicitly,
//     no process-wide singletons.
//   - **Flat file persistence**: each mutation rewrites the full collection
//     atomically; a missing file is an empty collection.
//   - **Birthday queries**: upcoming-birthday windows and a full sorted
//     listing, with an injectable clock for tests.
//   - **Change feed**: an opt-in fsnotify watcher surfaces external edits
//     to the data files.
//   - **Extensible storage**: any core.Store implementation can be swapped
//     in via options (used by the in-memory test stores).
//
// Usage:
//
//	assistant, err := keeper.Open("./data",
//		keeper.WithLogger(logger),
//	)
//
//	// Add a contact
//	err = assistant.Contacts.Add(ctx, core.Contact{
//		Name:     "Jane Doe",
//		Phone:    "+380 50 123 4567",
//		Email:    "jane.doe@example.com",
//		Birthday: "1990-01-15",
//	})
package keeper
