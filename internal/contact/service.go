package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/estate-desk/contact_intake/internal/metrics"
)

// Service validates submissions and reads the contact store.
type Service struct {
	repo    Repository
	metrics *metrics.Metrics
}

// NewService creates a contact service. m may be nil.
func NewService(repo Repository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, metrics: m}
}

// Submit validates the input and appends the resulting contact. Validation
// failures are returned as ValidationError and leave the store untouched.
func (s *Service) Submit(ctx context.Context, in Input) (Contact, error) {
	contact, err := Validate(in)
	if err != nil {
		var verr ValidationError
		if errors.As(err, &verr) {
			s.metrics.Rejected(verr.Code)
		}
		return Contact{}, err
	}

	stored, err := s.repo.Append(ctx, contact)
	if err != nil {
		return Contact{}, fmt.Errorf("append contact: %w", err)
	}
	s.metrics.Stored()
	return stored, nil
}

// List returns all contacts in insertion order.
func (s *Service) List(ctx context.Context) ([]Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Search filters contacts by term; an empty term is the same as List.
func (s *Service) Search(ctx context.Context, term string) ([]Contact, error) {
	if term == "" {
		return s.List(ctx)
	}
	s.metrics.Searched()
	contacts, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	return contacts, nil
}
