package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/vyrodovalexey/contactbook/internal/model"
)

// MemoryStore implements Store interface with an in-memory ordered slice.
type MemoryStore struct {
	mu       sync.RWMutex
	contacts []model.Contact
}

// NewMemoryStore creates a new MemoryStore holding the given contacts in order.
func NewMemoryStore(seed ...model.Contact) *MemoryStore {
	contacts := make([]model.Contact, len(seed))
	copy(contacts, seed)

	return &MemoryStore{
		contacts: contacts,
	}
}

// List returns all contacts in storage order.
func (s *MemoryStore) List(ctx context.Context) ([]model.Contact, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("list contacts: %w", ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.contacts), nil
}

// Get retrieves a contact by its ID.
func (s *MemoryStore) Get(ctx context.Context, id int) (model.Contact, error) {
	select {
	case <-ctx.Done():
		return model.Contact{}, fmt.Errorf("get contact: %w", ctx.Err())
	default:
	}

	if id <= 0 {
		return model.Contact{}, ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	index := s.indexOf(id)
	if index < 0 {
		return model.Contact{}, ErrNotFound
	}

	return s.contacts[index], nil
}

// Add validates and appends a contact and returns the stored copy. The new ID
// is one more than the largest ID present, or 1 if the store is empty.
func (s *MemoryStore) Add(ctx context.Context, contact *model.Contact) (model.Contact, error) {
	select {
	case <-ctx.Done():
		return model.Contact{}, fmt.Errorf("add contact: %w", ctx.Err())
	default:
	}

	if contact == nil {
		return model.Contact{}, fmt.Errorf("add contact: %w", ErrNilContact)
	}

	if err := contact.Validate(); err != nil {
		return model.Contact{}, fmt.Errorf("add contact: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newContact := model.Contact{
		ID:      s.nextID(),
		Name:    contact.Name,
		Surname: contact.Surname,
		Phone:   contact.Phone,
	}

	s.contacts = append(s.contacts, newContact)

	return newContact, nil
}

// Edit validates and replaces the name, surname and phone of an existing
// contact in place. The ID and the position of the contact are preserved.
// IDs below 1 yield ErrInvalidID.
func (s *MemoryStore) Edit(ctx context.Context, id int, contact *model.Contact) (model.Contact, error) {
	select {
	case <-ctx.Done():
		return model.Contact{}, fmt.Errorf("edit contact: %w", ctx.Err())
	default:
	}

	if id <= 0 {
		return model.Contact{}, ErrInvalidID
	}

	if contact == nil {
		return model.Contact{}, fmt.Errorf("edit contact: %w", ErrNilContact)
	}

	if err := contact.Validate(); err != nil {
		return model.Contact{}, fmt.Errorf("edit contact: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return model.Contact{}, ErrNotFound
	}

	existing := &s.contacts[index]
	existing.Name = contact.Name
	existing.Surname = contact.Surname
	existing.Phone = contact.Phone

	return *existing, nil
}

// Delete removes the first contact with the given ID.
func (s *MemoryStore) Delete(ctx context.Context, id int) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("delete contact: %w", ctx.Err())
	default:
	}

	if id <= 0 {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return ErrNotFound
	}

	s.contacts = slices.Delete(s.contacts, index, index+1)

	return nil
}

// Search returns, in storage order, every contact whose field matches term.
func (s *MemoryStore) Search(ctx context.Context, field model.SearchField, term string) ([]model.Contact, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("search contacts: %w", ctx.Err())
	default:
	}

	if !field.Valid() {
		return nil, fmt.Errorf("search contacts: %w: %s", ErrInvalidField, field)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]model.Contact, 0)
	for _, contact := range s.contacts {
		if field.Matches(contact, term) {
			results = append(results, contact)
		}
	}

	return results, nil
}

// Len returns the number of stored contacts.
func (s *MemoryStore) Len(ctx context.Context) (int, error) {
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("count contacts: %w", ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.contacts), nil
}

// indexOf returns the position of the first contact with id, or -1.
// Callers must hold s.mu.
func (s *MemoryStore) indexOf(id int) int {
	return slices.IndexFunc(s.contacts, func(c model.Contact) bool {
		return c.ID == id
	})
}

// nextID returns max ID + 1. Callers must hold s.mu.
func (s *MemoryStore) nextID() int {
	maxID := 0
	for _, c := range s.contacts {
		maxID = max(maxID, c.ID)
	}
	return maxID + 1
}
