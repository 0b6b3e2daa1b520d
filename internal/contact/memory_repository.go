package contact

import (
	"context"
	"strings"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	contacts []Contact
	nextID   int64
}

// NewMemoryRepository builds an in-memory contact store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Append(_ context.Context, contact Contact) (Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	contact.ID = r.nextID
	r.contacts = append(r.contacts, contact)
	return contact, nil
}

func (r *memoryRepository) List(_ context.Context) ([]Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Contact, len(r.contacts))
	copy(out, r.contacts)
	return out, nil
}

func (r *memoryRepository) Search(ctx context.Context, term string) ([]Contact, error) {
	if term == "" {
		return r.List(ctx)
	}
	needle := strings.ToLower(term)

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Contact{}
	for _, c := range r.contacts {
		if matches(c, needle) {
			out = append(out, c)
		}
	}
	return out, nil
}

func matches(c Contact, needle string) bool {
	for _, field := range []string{c.FirstName, c.LastName, c.Email, c.Location} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
