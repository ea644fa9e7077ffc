// Package service contains the business logic for the Fletes service.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/embarques/fletes/internal/domain"
	"github.com/embarques/fletes/internal/repo"
)

// FreightService implements create, read, update and delete of freights.
// Every write goes through the FreightFactory so the supplier cost policy is
// applied before the single storage call.
type FreightService struct {
	repo    repo.FreightRepo
	factory *FreightFactory
}

// NewFreightService constructs a FreightService backed by the provided repos.
func NewFreightService(freights repo.FreightRepo, suppliers SupplierLookup) *FreightService {
	return &FreightService{repo: freights, factory: NewFreightFactory(suppliers)}
}

// Create builds a freight from input and persists it.
// Returns domain.ErrValidation for a nil or invalid input; nothing is written.
func (s *FreightService) Create(ctx context.Context, input *domain.FreightInput) (domain.Freight, error) {
	f, err := s.factory.Build(ctx, input)
	if err != nil {
		return domain.Freight{}, fmt.Errorf("service.FreightService.Create: %w", err)
	}
	result, err := s.repo.Create(ctx, f)
	if err != nil {
		return domain.Freight{}, fmt.Errorf("service.FreightService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single freight joined with its supplier and destination.
func (s *FreightService) GetByID(ctx context.Context, id int64) (domain.FreightView, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.FreightView{}, fmt.Errorf("service.FreightService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of freights, newest first, and the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *FreightService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.FreightView, int64, error) {
	views, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.FreightService.ListPaged: %w", err)
	}
	if views == nil {
		views = []domain.FreightView{}
	}
	return views, total, nil
}

// Update replaces the mutable fields of freight id with input.
// Returns domain.ErrValidation for a nil or invalid input and
// domain.ErrNotFound when the freight does not exist.
func (s *FreightService) Update(ctx context.Context, id int64, input *domain.FreightInput) (domain.Freight, error) {
	if input == nil {
		return domain.Freight{}, fmt.Errorf("service.FreightService.Update: %w: freight data is required", domain.ErrValidation)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Freight{}, fmt.Errorf("service.FreightService.Update: %w", err)
	}

	f, err := s.factory.ApplyUpdate(ctx, existing.Freight, input)
	if err != nil {
		return domain.Freight{}, fmt.Errorf("service.FreightService.Update: %w", err)
	}

	result, err := s.repo.Update(ctx, f)
	if err != nil {
		return domain.Freight{}, fmt.Errorf("service.FreightService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a freight by id.
func (s *FreightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.FreightService.Delete: %w", err)
	}
	return nil
}
