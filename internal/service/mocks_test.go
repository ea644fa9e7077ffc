package service_test

import (
	"context"
	"time"

	"github.com/embarques/fletes/internal/domain"
	"github.com/embarques/fletes/internal/repo"
	"github.com/embarques/fletes/internal/service"
)

// mockFreightRepo is a hand-written test double for repo.FreightRepo.
// Each method is a function field; set only the ones the test needs.
type mockFreightRepo struct {
	create         func(ctx context.Context, f domain.Freight) (domain.Freight, error)
	getByID        func(ctx context.Context, id int64) (domain.FreightView, error)
	listPaged      func(ctx context.Context, p domain.PaginationParams) ([]domain.FreightView, int64, error)
	update         func(ctx context.Context, f domain.Freight) (domain.Freight, error)
	delete         func(ctx context.Context, id int64) error
	listByPeriod   func(ctx context.Context, q domain.FreightQuery) ([]domain.FreightView, error)
	distinctMonths func(ctx context.Context) ([]domain.YearMonth, error)
}

func (m *mockFreightRepo) Create(ctx context.Context, f domain.Freight) (domain.Freight, error) {
	return m.create(ctx, f)
}
func (m *mockFreightRepo) GetByID(ctx context.Context, id int64) (domain.FreightView, error) {
	return m.getByID(ctx, id)
}
func (m *mockFreightRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.FreightView, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockFreightRepo) Update(ctx context.Context, f domain.Freight) (domain.Freight, error) {
	return m.update(ctx, f)
}
func (m *mockFreightRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}
func (m *mockFreightRepo) ListByPeriod(ctx context.Context, q domain.FreightQuery) ([]domain.FreightView, error) {
	return m.listByPeriod(ctx, q)
}
func (m *mockFreightRepo) DistinctMonths(ctx context.Context) ([]domain.YearMonth, error) {
	return m.distinctMonths(ctx)
}

// mockSupplierRepo serves suppliers from a map; unknown ids are not found.
type mockSupplierRepo struct {
	byID map[int64]string
	err  error
}

func (m *mockSupplierRepo) GetByID(_ context.Context, id int64) (domain.Supplier, error) {
	if m.err != nil {
		return domain.Supplier{}, m.err
	}
	name, ok := m.byID[id]
	if !ok {
		return domain.Supplier{}, domain.ErrNotFound
	}
	return domain.Supplier{ID: id, Name: name}, nil
}

func (m *mockSupplierRepo) List(context.Context) ([]domain.Supplier, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Supplier, 0, len(m.byID))
	for id, name := range m.byID {
		out = append(out, domain.Supplier{ID: id, Name: name})
	}
	return out, nil
}

type mockDestinationRepo struct {
	list func(ctx context.Context) ([]domain.Destination, error)
}

func (m *mockDestinationRepo) GetByID(context.Context, int64) (domain.Destination, error) {
	return domain.Destination{}, domain.ErrNotFound
}
func (m *mockDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	return m.list(ctx)
}

// compile-time checks
var (
	_ repo.FreightRepo       = (*mockFreightRepo)(nil)
	_ repo.SupplierRepo      = (*mockSupplierRepo)(nil)
	_ repo.DestinationRepo   = (*mockDestinationRepo)(nil)
	_ service.SupplierLookup = (*mockSupplierRepo)(nil)
)

// ---- helpers ---------------------------------------------------------------

const (
	regularSupplier int64 = 1
	excusedSupplier int64 = 2
	mixedCaseExcuse int64 = 3
)

func suppliers() *mockSupplierRepo {
	return &mockSupplierRepo{byID: map[int64]string{
		regularSupplier: "Transportes del Norte",
		excusedSupplier: "UNIDAD MESA",
		mixedCaseExcuse: "Recoleccion por Cliente",
	}}
}

// echoRepo returns whatever it is asked to write.
func echoRepo() *mockFreightRepo {
	return &mockFreightRepo{
		create: func(_ context.Context, f domain.Freight) (domain.Freight, error) { return f, nil },
		update: func(_ context.Context, f domain.Freight) (domain.Freight, error) { return f, nil },
	}
}

func ptr[T any](v T) *T { return &v }

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
