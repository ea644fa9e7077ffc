// Package handler implements the HTTP handlers for the Fletes API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, freight.go, report.go, catalog.go) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/embarques/fletes/internal/domain"
)

// FreightServicer defines the freight operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type FreightServicer interface {
	Create(ctx context.Context, input *domain.FreightInput) (domain.Freight, error)
	GetByID(ctx context.Context, id int64) (domain.FreightView, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.FreightView, int64, error)
	Update(ctx context.Context, id int64, input *domain.FreightInput) (domain.Freight, error)
	Delete(ctx context.Context, id int64) error
}

// ReportServicer defines the report operations the handlers depend on.
type ReportServicer interface {
	Monthly(ctx context.Context, year, month int) (domain.Report, error)
	Range(ctx context.Context, start, end time.Time) (domain.Report, error)
	MonthsWithData(ctx context.Context) ([]domain.MonthWithData, error)
}

// CatalogServicer defines the reference-data listings the handlers depend on.
type CatalogServicer interface {
	Suppliers(ctx context.Context) ([]domain.Supplier, error)
	Destinations(ctx context.Context) ([]domain.Destination, error)
}

// Server holds the dependencies of every API endpoint.
type Server struct {
	freights FreightServicer
	reports  ReportServicer
	catalog  CatalogServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(freights FreightServicer, reports ReportServicer, catalog CatalogServicer) *Server {
	return &Server{freights: freights, reports: reports, catalog: catalog}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Handler returns the API routes. main.go mounts it at "/" behind the
// shared middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/fletes", func(r chi.Router) {
		r.Post("/", s.CreateFreight)
		r.Get("/", s.ListFreights)
		r.Get("/{id}", s.GetFreight)
		r.Put("/{id}", s.UpdateFreight)
		r.Delete("/{id}", s.DeleteFreight)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/monthly", s.GetMonthlyReport)
		r.Get("/range", s.GetRangeReport)
		r.Get("/months", s.ListMonthsWithData)
	})

	r.Get("/suppliers", s.ListSuppliers)
	r.Get("/destinations", s.ListDestinations)

	return r
}
