package service

import (
	"context"
	"fmt"

	"github.com/embarques/fletes/internal/domain"
	"github.com/embarques/fletes/internal/repo"
)

// CatalogService exposes the supplier and destination reference lists used
// to fill freight forms.
type CatalogService struct {
	suppliers    repo.SupplierRepo
	destinations repo.DestinationRepo
}

// NewCatalogService constructs a CatalogService backed by the provided repos.
func NewCatalogService(suppliers repo.SupplierRepo, destinations repo.DestinationRepo) *CatalogService {
	return &CatalogService{suppliers: suppliers, destinations: destinations}
}

// Suppliers returns all suppliers ordered by name.
func (s *CatalogService) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	out, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.Suppliers: %w", err)
	}
	if out == nil {
		out = []domain.Supplier{}
	}
	return out, nil
}

// Destinations returns all destinations ordered by name.
func (s *CatalogService) Destinations(ctx context.Context) ([]domain.Destination, error) {
	out, err := s.destinations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.Destinations: %w", err)
	}
	if out == nil {
		out = []domain.Destination{}
	}
	return out, nil
}
