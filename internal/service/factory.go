package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/embarques/fletes/internal/domain"
)

// SupplierLookup resolves a supplier by id. repo.SupplierRepo satisfies it.
type SupplierLookup interface {
	GetByID(ctx context.Context, id int64) (domain.Supplier, error)
}

// FreightFactory turns caller input into freight records, applying the
// supplier cost policy before anything is written.
type FreightFactory struct {
	suppliers SupplierLookup
}

// NewFreightFactory constructs a FreightFactory that resolves supplier names
// through the given lookup.
func NewFreightFactory(suppliers SupplierLookup) *FreightFactory {
	return &FreightFactory{suppliers: suppliers}
}

// Build returns a new, unsaved freight for the given input.
// Returns domain.ErrValidation when input is nil.
func (f *FreightFactory) Build(ctx context.Context, input *domain.FreightInput) (domain.Freight, error) {
	return f.ApplyUpdate(ctx, domain.Freight{}, input)
}

// ApplyUpdate returns existing with every mutable field replaced from input.
// ID and CreatedAt are kept. Returns domain.ErrValidation when input is nil.
func (f *FreightFactory) ApplyUpdate(ctx context.Context, existing domain.Freight, input *domain.FreightInput) (domain.Freight, error) {
	if input == nil {
		return domain.Freight{}, fmt.Errorf("%w: freight data is required", domain.ErrValidation)
	}

	name, err := f.supplierName(ctx, input.SupplierID)
	if err != nil {
		return domain.Freight{}, err
	}

	out := existing
	out.SupplierID = input.SupplierID
	out.DestinationID = input.DestinationID
	out.HighwayExpenseCost = input.HighwayExpenseCost
	out.CostOfStay = input.CostOfStay
	out.RegistrationDate = input.RegistrationDate
	out.TripNumber = input.TripNumber

	if domain.IsNoCostSupplier(name) {
		out.HighwayExpenseCost = zero()
		out.CostOfStay = zero()
	}

	if err := validateCosts(out); err != nil {
		return domain.Freight{}, err
	}
	return out, nil
}

// supplierName returns the display name of the supplier, or "" when the id
// is unset or does not resolve.
func (f *FreightFactory) supplierName(ctx context.Context, id *int64) (string, error) {
	if id == nil {
		return "", nil
	}
	s, err := f.suppliers.GetByID(ctx, *id)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("resolve supplier %d: %w", *id, err)
	}
	return s.Name, nil
}

// validateCosts rejects negative monetary amounts on the record about to be
// written.
func validateCosts(f domain.Freight) error {
	if f.HighwayExpenseCost != nil && *f.HighwayExpenseCost < 0 {
		return fmt.Errorf("%w: highway_expense_cost must not be negative", domain.ErrValidation)
	}
	if f.CostOfStay != nil && *f.CostOfStay < 0 {
		return fmt.Errorf("%w: cost_of_stay must not be negative", domain.ErrValidation)
	}
	return nil
}

func zero() *int64 {
	var z int64
	return &z
}
