package core_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/keeper/pkg/core"
)

// memStore implements core.Store in memory and records every Save so tests
// can assert on persistence behavior.
type memStore[T any] struct {
	items []T
	saves int
}

func (m *memStore[T]) Load(ctx context.Context) ([]T, error) {
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memStore[T]) Save(ctx context.Context, items []T) error {
	m.items = make([]T, len(items))
	copy(m.items, items)
	m.saves++
	return nil
}

func newContactBook(t *testing.T, seed []core.Contact, opts ...core.ContactOption) (*core.ContactBook, *memStore[core.Contact]) {
	t.Helper()
	store := &memStore[core.Contact]{items: seed}
	book, err := core.NewContactBook(context.Background(), store, opts...)
	require.NoError(t, err)
	return book, store
}

func janeDoe() core.Contact {
	return core.Contact{
		Name:     "Jane Doe",
		Address:  "12 Main St",
		Phone:    "+380 50 123 4567",
		Email:    "jane.doe@example.com",
		Birthday: "1990-01-15",
	}
}

func TestContactBook_AddThenSearch(t *testing.T) {
	book, store := newContactBook(t, nil)
	ctx := context.Background()

	require.NoError(t, book.Add(ctx, janeDoe()))
	assert.Equal(t, 1, store.saves, "add should persist immediately")

	results := book.Search("jane doe")
	require.Len(t, results, 1)
	assert.Equal(t, janeDoe(), results[0], "stored fields must match the submitted ones exactly")
}

func TestContactBook_AddInvalidEmail(t *testing.T) {
	book, store := newContactBook(t, nil)

	c := janeDoe()
	c.Email = "bad-email"
	err := book.Add(context.Background(), c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidEmail))
	assert.Equal(t, 0, book.Len(), "failed add must not append")
	assert.Equal(t, 0, store.saves, "failed add must not persist")
}

func TestContactBook_AddInvalidPhone(t *testing.T) {
	book, store := newContactBook(t, nil)

	c := janeDoe()
	c.Phone = "abc"
	err := book.Add(context.Background(), c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidPhone))
	assert.Equal(t, 0, book.Len())
	assert.Equal(t, 0, store.saves)
}

func TestContactBook_AddBothInvalid_EmailWins(t *testing.T) {
	book, _ := newContactBook(t, nil)

	c := janeDoe()
	c.Email = "bad-email"
	c.Phone = "abc"
	err := book.Add(context.Background(), c)

	// The email check runs first, so its error is the one surfaced.
	assert.True(t, errors.Is(err, core.ErrInvalidEmail))
}

func TestContactBook_SearchMatchesAnyField(t *testing.T) {
	other := core.Contact{
		Name:     "Bob Stone",
		Address:  "Bakerville",
		Phone:    "111222333",
		Email:    "bob@stone.org",
		Birthday: "1980-06-01",
	}
	book, _ := newContactBook(t, []core.Contact{janeDoe(), other})

	assert.Len(t, book.Search("MAIN st"), 1, "address match, case-insensitive")
	assert.Len(t, book.Search("123"), 1, "phone match")
	assert.Len(t, book.Search("stone"), 1, "name and email of the same contact")
	assert.Len(t, book.Search("o"), 2, "OR semantics across contacts")
	assert.Empty(t, book.Search("zzz"))
}

func TestContactBook_EditFirstMatchOnly(t *testing.T) {
	first := janeDoe()
	second := janeDoe()
	second.Address = "Second St"
	book, _ := newContactBook(t, []core.Contact{first, second})

	addr := "Moved Out"
	err := book.Edit(context.Background(), "JANE DOE", core.ContactPatch{Address: &addr})
	require.NoError(t, err)

	all := book.All()
	assert.Equal(t, "Moved Out", all[0].Address, "first match edited")
	assert.Equal(t, "Second St", all[1].Address, "second duplicate untouched")
	assert.Equal(t, first.Phone, all[0].Phone, "unspecified fields retained")
}

func TestContactBook_EditDoesNotRevalidate(t *testing.T) {
	book, _ := newContactBook(t, []core.Contact{janeDoe()})

	bad := "not-an-email"
	err := book.Edit(context.Background(), "jane doe", core.ContactPatch{Email: &bad})

	require.NoError(t, err, "edits bypass validation; only Add enforces formats")
	assert.Equal(t, "not-an-email", book.All()[0].Email)
}

func TestContactBook_EditNotFound(t *testing.T) {
	book, store := newContactBook(t, []core.Contact{janeDoe()})

	err := book.Edit(context.Background(), "nobody", core.ContactPatch{})
	assert.True(t, errors.Is(err, core.ErrNotFound))
	assert.Equal(t, 0, store.saves)
}

func TestContactBook_DeleteRemovesAllMatches(t *testing.T) {
	lower := janeDoe()
	upper := janeDoe()
	upper.Name = "JANE DOE"
	other := janeDoe()
	other.Name = "Someone Else"
	book, store := newContactBook(t, []core.Contact{lower, upper, other})

	require.NoError(t, book.Delete(context.Background(), "jane doe"))

	all := book.All()
	require.Len(t, all, 1, "both case-insensitive duplicates removed")
	assert.Equal(t, "Someone Else", all[0].Name)
	assert.Equal(t, 1, store.saves)
}

func TestContactBook_DeleteNotFound(t *testing.T) {
	book, store := newContactBook(t, []core.Contact{janeDoe()})

	err := book.Delete(context.Background(), "nobody")
	assert.True(t, errors.Is(err, core.ErrNotFound))
	assert.Equal(t, 1, book.Len())
	assert.Equal(t, 0, store.saves)
}

func fixedClock(value string) core.ContactOption {
	now, err := time.Parse(core.BirthdayLayout, value)
	if err != nil {
		panic(err)
	}
	return core.WithClock(func() time.Time { return now })
}

func TestContactBook_UpcomingBirthdays(t *testing.T) {
	soon := janeDoe() // birthday 1990-01-15, 14 days out from 2024-01-01
	later := janeDoe()
	later.Name = "February Child"
	later.Birthday = "1990-02-15" // 45 days out

	book, _ := newContactBook(t, []core.Contact{soon, later}, fixedClock("2024-01-01"))

	upcoming, err := book.UpcomingBirthdays(30)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Jane Doe", upcoming[0].Name)
}

func TestContactBook_UpcomingBirthdays_YearRollover(t *testing.T) {
	c := janeDoe()
	c.Birthday = "1990-01-02"

	book, _ := newContactBook(t, []core.Contact{c}, fixedClock("2023-12-20"))

	upcoming, err := book.UpcomingBirthdays(30)
	require.NoError(t, err)
	assert.Len(t, upcoming, 1, "birthday early next year is 13 days out")

	narrow, err := book.UpcomingBirthdays(10)
	require.NoError(t, err)
	assert.Empty(t, narrow)
}

func TestContactBook_UpcomingBirthdays_InvalidDateAborts(t *testing.T) {
	good := janeDoe()
	bad := janeDoe()
	bad.Name = "Broken"
	bad.Birthday = "15.01.1990"

	book, _ := newContactBook(t, []core.Contact{good, bad}, fixedClock("2024-01-01"))

	upcoming, err := book.UpcomingBirthdays(30)
	require.Error(t, err, "one bad birthday fails the whole query, not just the one contact")
	assert.True(t, errors.Is(err, core.ErrInvalidBirthday))
	assert.Nil(t, upcoming)
}

func TestContactBook_BirthdaysSorted_FullDate(t *testing.T) {
	younger := janeDoe()
	younger.Name = "Younger"
	younger.Birthday = "2000-03-01"
	older := janeDoe()
	older.Name = "Older"
	older.Birthday = "1995-01-10"
	december := janeDoe()
	december.Name = "December"
	december.Birthday = "1985-12-01"

	book, _ := newContactBook(t, []core.Contact{younger, older, december})

	sorted, err := book.BirthdaysSorted()
	require.NoError(t, err)
	require.Len(t, sorted, 3)

	// The stored birth year participates, so 1985-12-01 sorts before
	// 1995-01-10 even though December is a later month.
	assert.Equal(t, "December", sorted[0].Name)
	assert.Equal(t, "Older", sorted[1].Name)
	assert.Equal(t, "Younger", sorted[2].Name)
}

func TestContactBook_BirthdaysSorted_InvalidDateAborts(t *testing.T) {
	good := janeDoe()
	bad := janeDoe()
	bad.Name = "Broken"
	bad.Birthday = "not-a-date"

	book, _ := newContactBook(t, []core.Contact{good, bad})

	sorted, err := book.BirthdaysSorted()
	require.Error(t, err, "one bad birthday fails the whole listing")
	assert.True(t, errors.Is(err, core.ErrInvalidBirthday))
	assert.Nil(t, sorted)
}

func TestContactBook_BirthdaysSorted_Stable(t *testing.T) {
	first := janeDoe()
	first.Name = "First In"
	second := janeDoe()
	second.Name = "Second In"

	book, _ := newContactBook(t, []core.Contact{first, second})

	sorted, err := book.BirthdaysSorted()
	require.NoError(t, err)
	assert.Equal(t, "First In", sorted[0].Name, "equal dates keep insertion order")
	assert.Equal(t, "Second In", sorted[1].Name)
}
