package core

import (
	"github.com/aretw0/introspection"
)

// ContactBookState exposes internal state for observability.
type ContactBookState struct {
	Contacts  int    `json:"contacts"`
	StoreType string `json:"store_type"`
}

// NotebookState exposes internal state for observability.
type NotebookState struct {
	Notes     int    `json:"notes"`
	StoreType string `json:"store_type"`
}

// State implements introspection.Introspectable.
func (b *ContactBook) State() any {
	return ContactBookState{
		Contacts:  len(b.contacts),
		StoreType: storeType(b.store),
	}
}

// ComponentType implements introspection.Component.
func (b *ContactBook) ComponentType() string {
	return "contact-book"
}

// State implements introspection.Introspectable.
func (n *Notebook) State() any {
	return NotebookState{
		Notes:     len(n.notes),
		StoreType: storeType(n.store),
	}
}

// ComponentType implements introspection.Component.
func (n *Notebook) ComponentType() string {
	return "notebook"
}

func storeType(store any) string {
	if comp, ok := store.(introspection.Component); ok {
		return comp.ComponentType()
	}
	return "store"
}

var _ introspection.Introspectable = (*ContactBook)(nil)
var _ introspection.Component = (*ContactBook)(nil)
var _ introspection.Introspectable = (*Notebook)(nil)
var _ introspection.Component = (*Notebook)(nil)
