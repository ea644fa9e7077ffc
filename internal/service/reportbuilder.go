package service

import (
	"github.com/google/uuid"

	"github.com/embarques/fletes/internal/domain"
)

// BuildReport turns ordered freight views into a report. Rows keep the order
// of views. Absent names and dates render as domain.NotAvailable and absent
// amounts count as zero. A totals row is attached only when
// spec.IncludeTotals is set.
//
// BuildReport performs no I/O; the returned Report shares no memory with views.
func BuildReport(spec domain.ReportSpec, views []domain.FreightView) domain.Report {
	report := domain.Report{
		ID:        uuid.New(),
		Kind:      spec.Kind,
		Title:     spec.Title,
		SheetName: spec.SheetName,
		FileBase:  spec.FileBase,
		Rows:      make([]domain.ReportRow, 0, len(views)),
	}

	var totals domain.ReportTotals
	for _, v := range views {
		row := buildRow(v)
		report.Rows = append(report.Rows, row)

		totals.DestinationCost += row.DestinationCost
		totals.HighwayCost += row.HighwayCost
		totals.StayCost += row.StayCost
		totals.Total += row.Total
	}

	if spec.IncludeTotals {
		report.Totals = &totals
	}
	return report
}

func buildRow(v domain.FreightView) domain.ReportRow {
	row := domain.ReportRow{
		FreightID:       v.ID,
		SupplierName:    orNotAvailable(v.SupplierName),
		Week:            domain.NotAvailable,
		DestinationName: orNotAvailable(v.DestinationName),
		TripNumber:      domain.Int64Value(v.TripNumber),
		DestinationCost: domain.Int64Value(v.DestinationCost),
		HighwayCost:     domain.Int64Value(v.HighwayExpenseCost),
		StayCost:        domain.Int64Value(v.CostOfStay),
		Date:            domain.NotAvailable,
	}
	row.Total = row.DestinationCost + row.HighwayCost + row.StayCost

	if v.RegistrationDate != nil {
		row.Week = domain.WeekLabel(*v.RegistrationDate)
		row.Date = v.RegistrationDate.Format(domain.DateLayout)
	}
	return row
}

func orNotAvailable(s *string) string {
	if s == nil {
		return domain.NotAvailable
	}
	return *s
}
