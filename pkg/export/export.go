// Package export renders contacts and notes as Markdown files with YAML
// frontmatter, one record per file, for use in frontmatter-aware tooling.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/keeper/pkg/core"
)

type noteFrontmatter struct {
	Tags []string `yaml:"tags"`
}

type contactFrontmatter struct {
	Address  string `yaml:"address"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	Birthday string `yaml:"birthday"`
}

// Note serializes a note as Markdown: tags in frontmatter, text as body.
func Note(n core.Note) ([]byte, error) {
	return render(noteFrontmatter{Tags: n.Tags}, n.Text)
}

// Contact serializes a contact as Markdown: the name becomes the heading,
// the remaining fields go to frontmatter.
func Contact(c core.Contact) ([]byte, error) {
	fm := contactFrontmatter{
		Address:  c.Address,
		Phone:    c.Phone,
		Email:    c.Email,
		Birthday: c.Birthday,
	}
	return render(fm, fmt.Sprintf("# %s\n", c.Name))
}

// WriteNotes writes every note into dir as note-NNNN.md, numbered by
// collection position. Numbered note files from an earlier export are
// removed first so the directory mirrors the current collection.
func WriteNotes(dir string, notes []core.Note) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := removeNumbered(dir, "note"); err != nil {
		return err
	}
	for i, n := range notes {
		data, err := Note(n)
		if err != nil {
			return fmt.Errorf("failed to serialize note %d: %w", i, err)
		}
		name := filepath.Join(dir, fmt.Sprintf("note-%04d.md", i+1))
		if err := os.WriteFile(name, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

// WriteContacts writes every contact into dir as contact-NNNN.md, replacing
// numbered contact files from an earlier export. Files are numbered rather
// than named after the contact because names are not unique and may not be
// valid file names.
func WriteContacts(dir string, contacts []core.Contact) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := removeNumbered(dir, "contact"); err != nil {
		return err
	}
	for i, c := range contacts {
		data, err := Contact(c)
		if err != nil {
			return fmt.Errorf("failed to serialize contact %d: %w", i, err)
		}
		name := filepath.Join(dir, fmt.Sprintf("contact-%04d.md", i+1))
		if err := os.WriteFile(name, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

// removeNumbered deletes prefix-NNNN.md leftovers from a previous export so
// a shrinking collection does not leave stale records behind.
func removeNumbered(dir, prefix string) error {
	matches, err := filepath.Glob(filepath.Join(dir, prefix+"-[0-9][0-9][0-9][0-9].md"))
	if err != nil {
		return fmt.Errorf("failed to scan export directory: %w", err)
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return fmt.Errorf("failed to remove stale export %s: %w", m, err)
		}
	}
	return nil
}

// render emits a frontmatter block followed by the body.
func render(frontmatter any, body string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(frontmatter); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	buf.WriteString("---\n")

	buf.WriteString(body)
	return buf.Bytes(), nil
}
