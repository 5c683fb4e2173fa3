// Package store provides contact storage interfaces and implementations.
package store

import (
	"context"
	"errors"

	"github.com/vyrodovalexey/contactbook/internal/model"
)

// Store errors.
var (
	ErrNotFound     = errors.New("contact not found")
	ErrInvalidID    = errors.New("invalid contact ID")
	ErrNilContact   = errors.New("contact cannot be nil")
	ErrInvalidField = errors.New("invalid search field")
)

// Store defines the interface for contact storage operations.
// Implementations keep contacts in insertion order.
type Store interface {
	// List returns all contacts in storage order.
	List(ctx context.Context) ([]model.Contact, error)

	// Get retrieves a contact by its ID. IDs below 1 yield ErrInvalidID.
	Get(ctx context.Context, id int) (model.Contact, error)

	// Add appends a contact, assigning it the next ID, and returns the stored copy.
	Add(ctx context.Context, contact *model.Contact) (model.Contact, error)

	// Edit replaces the name, surname and phone of an existing contact.
	Edit(ctx context.Context, id int, contact *model.Contact) (model.Contact, error)

	// Delete removes a contact by its ID.
	Delete(ctx context.Context, id int) error

	// Search returns the contacts whose field matches term.
	Search(ctx context.Context, field model.SearchField, term string) ([]model.Contact, error)

	// Len returns the number of stored contacts.
	Len(ctx context.Context) (int, error)
}
