package handler_test

import (
	"context"
	"time"

	"github.com/embarques/fletes/internal/domain"
	"github.com/embarques/fletes/internal/handler"
)

// mockFreightService is a function-field double for handler.FreightServicer.
type mockFreightService struct {
	create    func(ctx context.Context, input *domain.FreightInput) (domain.Freight, error)
	getByID   func(ctx context.Context, id int64) (domain.FreightView, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.FreightView, int64, error)
	update    func(ctx context.Context, id int64, input *domain.FreightInput) (domain.Freight, error)
	delete    func(ctx context.Context, id int64) error
}

func (m *mockFreightService) Create(ctx context.Context, input *domain.FreightInput) (domain.Freight, error) {
	return m.create(ctx, input)
}
func (m *mockFreightService) GetByID(ctx context.Context, id int64) (domain.FreightView, error) {
	return m.getByID(ctx, id)
}
func (m *mockFreightService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.FreightView, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockFreightService) Update(ctx context.Context, id int64, input *domain.FreightInput) (domain.Freight, error) {
	return m.update(ctx, id, input)
}
func (m *mockFreightService) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockReportService struct {
	monthly        func(ctx context.Context, year, month int) (domain.Report, error)
	rangeReport    func(ctx context.Context, start, end time.Time) (domain.Report, error)
	monthsWithData func(ctx context.Context) ([]domain.MonthWithData, error)
}

func (m *mockReportService) Monthly(ctx context.Context, year, month int) (domain.Report, error) {
	return m.monthly(ctx, year, month)
}
func (m *mockReportService) Range(ctx context.Context, start, end time.Time) (domain.Report, error) {
	return m.rangeReport(ctx, start, end)
}
func (m *mockReportService) MonthsWithData(ctx context.Context) ([]domain.MonthWithData, error) {
	return m.monthsWithData(ctx)
}

type mockCatalogService struct {
	suppliers    func(ctx context.Context) ([]domain.Supplier, error)
	destinations func(ctx context.Context) ([]domain.Destination, error)
}

func (m *mockCatalogService) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	return m.suppliers(ctx)
}
func (m *mockCatalogService) Destinations(ctx context.Context) ([]domain.Destination, error) {
	return m.destinations(ctx)
}

// compile-time checks
var (
	_ handler.FreightServicer = (*mockFreightService)(nil)
	_ handler.ReportServicer  = (*mockReportService)(nil)
	_ handler.CatalogServicer = (*mockCatalogService)(nil)
)

func ptr[T any](v T) *T { return &v }
