package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotAvailable is the placeholder written for names and dates that are absent.
const NotAvailable = "N/A"

// ReportKind distinguishes the two report variants.
type ReportKind string

const (
	ReportMonthly ReportKind = "monthly"
	ReportRange   ReportKind = "range"
)

// ReportSpec describes the report to build: its presentation strings and
// whether a totals row is appended.
type ReportSpec struct {
	Kind          ReportKind
	Title         string
	SheetName     string
	FileBase      string // file name without extension
	IncludeTotals bool
}

// MonthlyReportSpec describes the report of a calendar month.
// Monthly reports carry no totals row.
func MonthlyReportSpec(year, month int) ReportSpec {
	return ReportSpec{
		Kind:      ReportMonthly,
		Title:     fmt.Sprintf("REPORTE DE FLETES - %s %d", upperMonthName(month), year),
		SheetName: "Reporte mensual",
		FileBase:  fmt.Sprintf("Reporte_Fletes_%s_%d", MonthName(month), year),
	}
}

// RangeReportSpec describes the report of an inclusive date range.
// Range reports end with a totals row.
func RangeReportSpec(start, end time.Time) ReportSpec {
	return ReportSpec{
		Kind: ReportRange,
		Title: fmt.Sprintf("REPORTE DE FLETES - DEL %s AL %s",
			start.Format(DateLayout), end.Format(DateLayout)),
		SheetName:     "Reporte por período",
		FileBase:      fmt.Sprintf("Reporte_Fletes_%s_%s", start.Format("20060102"), end.Format("20060102")),
		IncludeTotals: true,
	}
}

// ReportRow is one rendered freight line. All values are derived.
type ReportRow struct {
	FreightID       int64  `json:"freight_id"`
	SupplierName    string `json:"supplier"`
	Week            string `json:"week"`
	DestinationName string `json:"destination"`
	TripNumber      int64  `json:"trip_number"`
	DestinationCost int64  `json:"destination_cost"`
	HighwayCost     int64  `json:"highway_cost"`
	StayCost        int64  `json:"stay_cost"`
	Total           int64  `json:"total"`
	Date            string `json:"date"`
}

// ReportTotals holds the column sums of a report.
type ReportTotals struct {
	DestinationCost int64 `json:"destination_cost"`
	HighwayCost     int64 `json:"highway_cost"`
	StayCost        int64 `json:"stay_cost"`
	Total           int64 `json:"total"`
}

// Report is the structured result handed to a renderer. It is built once
// per request and never mutated afterwards.
type Report struct {
	ID        uuid.UUID     `json:"id"`
	Kind      ReportKind    `json:"kind"`
	Title     string        `json:"title"`
	SheetName string        `json:"sheet_name"`
	FileBase  string        `json:"file_base"`
	Rows      []ReportRow   `json:"rows"`
	Totals    *ReportTotals `json:"totals,omitempty"`
}
