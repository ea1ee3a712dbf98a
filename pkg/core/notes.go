package core

import (
	"context"
	"fmt"
	"strings"
)

// Notebook owns the in-memory note collection. Notes are addressed by
// their position in the collection, so deleting a note shifts the indices
// of every note after it.
type Notebook struct {
	store Store[Note]
	notes []Note
}

// NewNotebook loads the persisted collection and returns a ready notebook.
func NewNotebook(ctx context.Context, store Store[Note]) (*Notebook, error) {
	notes, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	// Older files may carry "tags": null; normalize on the way in.
	for i := range notes {
		notes[i].Tags = normalizeTags(notes[i].Tags)
	}
	return &Notebook{store: store, notes: notes}, nil
}

// Add appends a note and persists the collection. A nil tag list is
// stored as an empty one.
func (n *Notebook) Add(ctx context.Context, text string, tags []string) error {
	n.notes = append(n.notes, Note{Text: text, Tags: normalizeTags(tags)})
	return n.persist(ctx)
}

// All returns a copy of the collection in insertion order.
func (n *Notebook) All() []Note {
	out := make([]Note, len(n.notes))
	copy(out, n.notes)
	return out
}

// Len returns the number of notes.
func (n *Notebook) Len() int {
	return len(n.notes)
}

// SearchText returns notes whose text contains the query,
// case-insensitively. Tags are not consulted.
func (n *Notebook) SearchText(query string) []Note {
	q := strings.ToLower(query)
	var matches []Note
	for _, note := range n.notes {
		if strings.Contains(strings.ToLower(note.Text), q) {
			matches = append(matches, note)
		}
	}
	return matches
}

// SearchTag returns notes carrying a tag equal to tag, compared
// case-insensitively. This is an exact match, not a substring one.
func (n *Notebook) SearchTag(tag string) []Note {
	var matches []Note
	for _, note := range n.notes {
		for _, t := range note.Tags {
			if strings.EqualFold(t, tag) {
				matches = append(matches, note)
				break
			}
		}
	}
	return matches
}

// Search returns notes whose text or any tag contains the query,
// case-insensitively. Note the asymmetry with SearchTag: here tags match
// by substring.
func (n *Notebook) Search(query string) []Note {
	q := strings.ToLower(query)
	var matches []Note
	for _, note := range n.notes {
		if strings.Contains(strings.ToLower(note.Text), q) {
			matches = append(matches, note)
			continue
		}
		for _, t := range note.Tags {
			if strings.Contains(strings.ToLower(t), q) {
				matches = append(matches, note)
				break
			}
		}
	}
	return matches
}

// Edit replaces the text of the note at index and persists the
// collection. The tag list is replaced only when tags is non-empty;
// passing nil or an empty slice keeps the existing tags.
func (n *Notebook) Edit(ctx context.Context, index int, text string, tags []string) error {
	if index < 0 || index >= len(n.notes) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	n.notes[index].Text = text
	if len(tags) > 0 {
		n.notes[index].Tags = tags
	}
	return n.persist(ctx)
}

// Delete removes the note at index and persists the collection.
func (n *Notebook) Delete(ctx context.Context, index int) error {
	if index < 0 || index >= len(n.notes) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	n.notes = append(n.notes[:index], n.notes[index+1:]...)
	return n.persist(ctx)
}

func (n *Notebook) persist(ctx context.Context) error {
	if err := n.store.Save(ctx, n.notes); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}
