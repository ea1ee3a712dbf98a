// Contact is the central entity of the address book side of the domain.
package core

import (
	"fmt"
	"time"
)

// BirthdayLayout is the wire format for birthday strings ("YYYY-MM-DD").
const BirthdayLayout = "2006-01-02"

// Contact represents a single address book entry.
// The Name field doubles as the lookup key: edits and deletes resolve
// contacts by case-insensitive name comparison, so duplicate names are
// ambiguous on purpose (first match wins on edit, all matches on delete).
type Contact struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Birthday string `json:"birthday"`
}

// BirthdayDate parses the stored birthday string.
func (c Contact) BirthdayDate() (time.Time, error) {
	t, err := time.Parse(BirthdayLayout, c.Birthday)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidBirthday, c.Birthday)
	}
	return t, nil
}

// ContactPatch carries partial updates for an existing contact.
// Nil fields are left untouched.
type ContactPatch struct {
	Name     *string
	Address  *string
	Phone    *string
	Email    *string
	Birthday *string
}

func (p ContactPatch) apply(c *Contact) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Birthday != nil {
		c.Birthday = *p.Birthday
	}
}
