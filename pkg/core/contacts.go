package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ContactBook owns the in-memory contact collection and mediates all
// reads, writes and persistence. Every mutation updates memory first and
// then rewrites the whole collection through the store before returning.
type ContactBook struct {
	store    Store[Contact]
	contacts []Contact
	now      func() time.Time
}

// ContactOption configures a ContactBook.
type ContactOption func(*ContactBook)

// WithClock overrides the time source used by birthday queries.
// Intended for tests; defaults to time.Now.
func WithClock(now func() time.Time) ContactOption {
	return func(b *ContactBook) {
		b.now = now
	}
}

// NewContactBook loads the persisted collection and returns a ready book.
func NewContactBook(ctx context.Context, store Store[Contact], opts ...ContactOption) (*ContactBook, error) {
	b := &ContactBook{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	contacts, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	b.contacts = contacts
	return b, nil
}

// Add validates and appends a new contact, then persists the collection.
// The email is checked before the phone, so when both are invalid the
// email error is the one surfaced.
func (b *ContactBook) Add(ctx context.Context, c Contact) error {
	if !ValidEmail(c.Email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, c.Email)
	}
	if !ValidPhone(c.Phone) {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, c.Phone)
	}

	b.contacts = append(b.contacts, c)
	return b.persist(ctx)
}

// All returns a copy of the collection in insertion order.
func (b *ContactBook) All() []Contact {
	out := make([]Contact, len(b.contacts))
	copy(out, b.contacts)
	return out
}

// Len returns the number of contacts.
func (b *ContactBook) Len() int {
	return len(b.contacts)
}

// Search returns contacts whose name, address, phone or email contains the
// query, compared case-insensitively.
func (b *ContactBook) Search(query string) []Contact {
	q := strings.ToLower(query)
	var matches []Contact
	for _, c := range b.contacts {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Address), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Edit merges patch into the first contact whose name matches name
// case-insensitively and persists the collection.
// Patched phone and email values are deliberately not re-validated; only
// Add enforces the formats.
func (b *ContactBook) Edit(ctx context.Context, name string, patch ContactPatch) error {
	for i := range b.contacts {
		if strings.EqualFold(b.contacts[i].Name, name) {
			patch.apply(&b.contacts[i])
			return b.persist(ctx)
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Delete removes every contact whose name matches name case-insensitively
// and persists the collection. Unlike Edit, all duplicates go at once.
func (b *ContactBook) Delete(ctx context.Context, name string) error {
	kept := b.contacts[:0]
	for _, c := range b.contacts {
		if !strings.EqualFold(c.Name, name) {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(b.contacts) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	b.contacts = kept
	return b.persist(ctx)
}

// UpcomingBirthdays returns the contacts whose next birthday falls within
// the coming days, in collection order. The birthday is anchored to
// midnight of the current year; if that moment has already passed it rolls
// to next year. Any unparseable birthday aborts the whole query.
func (b *ContactBook) UpcomingBirthdays(days int) ([]Contact, error) {
	now := b.now()
	var upcoming []Contact
	for _, c := range b.contacts {
		bd, err := c.BirthdayDate()
		if err != nil {
			return nil, err
		}

		next := time.Date(now.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, now.Location())
		if next.Before(now) {
			next = time.Date(now.Year()+1, bd.Month(), bd.Day(), 0, 0, 0, 0, now.Location())
		}

		delta := int(next.Sub(now) / (24 * time.Hour))
		if delta >= 0 && delta < days {
			upcoming = append(upcoming, c)
		}
	}
	return upcoming, nil
}

// BirthdaysSorted returns all contacts ordered by their parsed birthday,
// ascending. The stored birth year participates in the comparison, so two
// contacts sharing a month and day sort by year. The sort is stable.
func (b *ContactBook) BirthdaysSorted() ([]Contact, error) {
	type dated struct {
		contact Contact
		date    time.Time
	}

	entries := make([]dated, len(b.contacts))
	for i, c := range b.contacts {
		bd, err := c.BirthdayDate()
		if err != nil {
			return nil, err
		}
		entries[i] = dated{contact: c, date: bd}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].date.Before(entries[j].date)
	})

	out := make([]Contact, len(entries))
	for i, e := range entries {
		out[i] = e.contact
	}
	return out, nil
}

func (b *ContactBook) persist(ctx context.Context) error {
	if err := b.store.Save(ctx, b.contacts); err != nil {
		return fmt.Errorf("failed to save contacts: %w", err)
	}
	return nil
}
