package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/embarques/fletes/internal/domain"
)

func TestMonthlyReportSpec(t *testing.T) {
	spec := domain.MonthlyReportSpec(2024, 3)

	assert.Equal(t, domain.ReportMonthly, spec.Kind)
	assert.Equal(t, "REPORTE DE FLETES - MARZO 2024", spec.Title)
	assert.Equal(t, "Reporte mensual", spec.SheetName)
	assert.Equal(t, "Reporte_Fletes_marzo_2024", spec.FileBase)
	assert.False(t, spec.IncludeTotals)
}

func TestRangeReportSpec(t *testing.T) {
	spec := domain.RangeReportSpec(date(2024, time.March, 1), date(2024, time.March, 31))

	assert.Equal(t, domain.ReportRange, spec.Kind)
	assert.Equal(t, "REPORTE DE FLETES - DEL 01/03/2024 AL 31/03/2024", spec.Title)
	assert.Equal(t, "Reporte por período", spec.SheetName)
	assert.Equal(t, "Reporte_Fletes_20240301_20240331", spec.FileBase)
	assert.True(t, spec.IncludeTotals)
}

func TestPaginationParams(t *testing.T) {
	page, limit := 3, 500
	p := domain.NewPaginationParams(&page, &limit)

	assert.Equal(t, domain.PaginationParams{Page: 3, Limit: 100}, p)
	assert.Equal(t, 200, p.Offset())
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, domain.NewPaginationParams(nil, nil))
	assert.Equal(t, 5, p.TotalPages(401))
	assert.Equal(t, 4, p.TotalPages(400))
	assert.Zero(t, p.TotalPages(0))
}
