package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/embarques/fletes/internal/domain"
)

// SupplierRepo defines read access to supplier reference data.
// Suppliers are managed outside this service.
type SupplierRepo interface {
	// GetByID returns domain.ErrNotFound if no supplier has that id.
	GetByID(ctx context.Context, id int64) (domain.Supplier, error)

	// List returns all suppliers ordered by name.
	List(ctx context.Context) ([]domain.Supplier, error)
}

// DestinationRepo defines read access to destination reference data.
type DestinationRepo interface {
	// GetByID returns domain.ErrNotFound if no destination has that id.
	GetByID(ctx context.Context, id int64) (domain.Destination, error)

	// List returns all destinations ordered by name.
	List(ctx context.Context) ([]domain.Destination, error)
}

type pgSupplierRepo struct {
	db db
}

// NewSupplierRepo constructs a SupplierRepo backed by the provided db connection.
func NewSupplierRepo(db db) SupplierRepo {
	return &pgSupplierRepo{db: db}
}

func (r *pgSupplierRepo) GetByID(ctx context.Context, id int64) (domain.Supplier, error) {
	const q = `SELECT id, supplier_name FROM suppliers WHERE id = @id`

	var s domain.Supplier
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = domain.ErrNotFound
		}
		return domain.Supplier{}, fmt.Errorf("repo.SupplierRepo.GetByID: %w", err)
	}
	return s, nil
}

func (r *pgSupplierRepo) List(ctx context.Context) ([]domain.Supplier, error) {
	const q = `SELECT id, supplier_name FROM suppliers ORDER BY supplier_name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.SupplierRepo.List: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("repo.SupplierRepo.List: scan: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.SupplierRepo.List: rows: %w", err)
	}
	return suppliers, nil
}

type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db connection.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

func (r *pgDestinationRepo) GetByID(ctx context.Context, id int64) (domain.Destination, error) {
	const q = `SELECT id, destination_name, cost FROM destinations WHERE id = @id`

	d, err := scanDestination(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return d, nil
}

func (r *pgDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	const q = `SELECT id, destination_name, cost FROM destinations ORDER BY destination_name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: %w", err)
	}
	defer rows.Close()

	destinations := []domain.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DestinationRepo.List: scan: %w", err)
		}
		destinations = append(destinations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: rows: %w", err)
	}
	return destinations, nil
}

func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d    domain.Destination
		cost pgtype.Int8
	)
	if err := s.Scan(&d.ID, &d.Name, &cost); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}
	d.Cost = int8Ptr(cost)
	return d, nil
}
