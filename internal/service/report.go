package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/embarques/fletes/internal/domain"
	"github.com/embarques/fletes/internal/repo"
)

// ReportService plans period queries and builds cost reports from their results.
type ReportService struct {
	freights repo.FreightRepo
}

// NewReportService constructs a ReportService backed by the provided FreightRepo.
func NewReportService(freights repo.FreightRepo) *ReportService {
	return &ReportService{freights: freights}
}

// Monthly builds the report for a calendar month. The report has no totals row.
// Returns domain.ErrValidation for an out-of-range year or month and
// domain.ErrNoData when the month holds no freights.
func (s *ReportService) Monthly(ctx context.Context, year, month int) (domain.Report, error) {
	q, err := domain.MonthlyQuery(year, month)
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Monthly: %w", err)
	}
	report, err := s.build(ctx, q, domain.MonthlyReportSpec(year, month))
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Monthly: %w", err)
	}
	return report, nil
}

// Range builds the report for the inclusive date range [start, end], ending
// with a totals row. Time of day is ignored.
// Returns domain.ErrValidation when start is after end and domain.ErrNoData
// when the range holds no freights.
func (s *ReportService) Range(ctx context.Context, start, end time.Time) (domain.Report, error) {
	q, err := domain.RangeQuery(start, end)
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Range: %w", err)
	}
	report, err := s.build(ctx, q, domain.RangeReportSpec(start, end))
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Range: %w", err)
	}
	return report, nil
}

// MonthsWithData lists the months holding dated freights, newest first.
// An empty result is valid and returned as an empty, non-nil slice.
func (s *ReportService) MonthsWithData(ctx context.Context) ([]domain.MonthWithData, error) {
	months, err := s.freights.DistinctMonths(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.MonthsWithData: %w", err)
	}
	out := make([]domain.MonthWithData, 0, len(months))
	for _, ym := range months {
		out = append(out, ym.Describe())
	}
	return out, nil
}

func (s *ReportService) build(ctx context.Context, q domain.FreightQuery, spec domain.ReportSpec) (domain.Report, error) {
	views, err := s.freights.ListByPeriod(ctx, q)
	if err != nil {
		return domain.Report{}, err
	}
	if len(views) == 0 {
		return domain.Report{}, domain.ErrNoData
	}
	// Rows follow q.Order whatever order storage returned them in.
	slices.SortStableFunc(views, q.Order.Compare)
	return BuildReport(spec, views), nil
}
