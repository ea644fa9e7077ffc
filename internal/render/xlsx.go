// Package render turns report models into downloadable documents.
// It is the only package that knows about spreadsheet and CSV layouts.
package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/embarques/fletes/internal/domain"
)

// Sheet layout, 1-based rows.
const (
	titleRow      = 1
	headerRow     = 3
	firstDataRow  = 4
	lastColumn    = "I"
	currencyFmt   = "$ #,##0"
	totalsLabel   = "TOTALES:"
	headerFill    = "D3D3D3" // light gray
	totalsFill    = "ADD8E6" // light blue
	xlsxExtension = ".xlsx"
)

// Headers are the column titles shared by every rendering.
var Headers = []string{
	"Proveedor", "Semana", "Destino", "Número de viaje", "Costo proveedor",
	"Gastos autopista", "Gasto estadía", "Costo total", "Fecha",
}

var columnWidths = map[string]float64{
	"A": 30, "B": 18, "C": 30, "D": 16, "E": 16, "F": 17, "G": 15, "H": 15, "I": 12,
}

// moneyColumns are the columns holding amounts; totals sum exactly these.
var moneyColumns = []string{"E", "F", "G", "H"}

// XLSX writes r as a single-sheet workbook: the title in A1, headers on
// row 3, one row per freight from row 4, and, when r has totals, a
// "TOTALES:" row with SUM formulas over the money columns.
func XLSX(w io.Writer, r domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	sw := &sheetWriter{f: f, sheet: r.SheetName}
	if err := f.SetSheetName("Sheet1", r.SheetName); err != nil {
		return fmt.Errorf("render.XLSX: sheet name: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("render.XLSX: styles: %w", err)
	}

	sw.set("A1", r.Title)
	sw.style("A1", "A1", styles.title)
	sw.merge("A1", fmt.Sprintf("%s%d", lastColumn, titleRow))

	for i, h := range Headers {
		sw.set(cell(i+1, headerRow), h)
	}
	sw.style(cell(1, headerRow), cell(len(Headers), headerRow), styles.header)

	row := firstDataRow
	for _, rr := range r.Rows {
		for i, v := range rowValues(rr) {
			sw.set(cell(i+1, row), v)
		}
		row++
	}
	if row > firstDataRow {
		sw.style(fmt.Sprintf("E%d", firstDataRow), fmt.Sprintf("H%d", row-1), styles.money)
	}

	if r.Totals != nil {
		sw.set(fmt.Sprintf("D%d", row), totalsLabel)
		sw.style(fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), styles.bold)
		for _, col := range moneyColumns {
			sw.formula(fmt.Sprintf("%s%d", col, row),
				fmt.Sprintf("SUM(%s%d:%s%d)", col, firstDataRow, col, row-1))
		}
		sw.style(fmt.Sprintf("E%d", row), fmt.Sprintf("H%d", row), styles.totals)
	}

	for col, width := range columnWidths {
		sw.width(col, width)
	}

	if sw.err != nil {
		return fmt.Errorf("render.XLSX: %w", sw.err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("render.XLSX: write: %w", err)
	}
	return nil
}

// rowValues returns the cell values of a report row in column order.
func rowValues(r domain.ReportRow) []any {
	return []any{
		r.SupplierName, r.Week, r.DestinationName, r.TripNumber,
		r.DestinationCost, r.HighwayCost, r.StayCost, r.Total, r.Date,
	}
}

type styleSet struct {
	title, header, bold, money, totals int
}

func newStyles(f *excelize.File) (styleSet, error) {
	var (
		s   styleSet
		err error
	)
	numFmt := currencyFmt
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}},
		{&s.header, &excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		}},
		{&s.bold, &excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&s.money, &excelize.Style{CustomNumFmt: &numFmt}},
		{&s.totals, &excelize.Style{
			Font:         &excelize.Font{Bold: true},
			Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{totalsFill}},
			CustomNumFmt: &numFmt,
		}},
	}
	for _, d := range defs {
		if *d.dst, err = f.NewStyle(d.style); err != nil {
			return styleSet{}, err
		}
	}
	return s, nil
}

// sheetWriter wraps the excelize calls for one sheet and keeps the first
// error, so the layout code reads top to bottom.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (sw *sheetWriter) set(c string, v any) {
	if sw.err == nil {
		sw.err = sw.f.SetCellValue(sw.sheet, c, v)
	}
}

func (sw *sheetWriter) formula(c, formula string) {
	if sw.err == nil {
		sw.err = sw.f.SetCellFormula(sw.sheet, c, formula)
	}
}

func (sw *sheetWriter) style(from, to string, id int) {
	if sw.err == nil {
		sw.err = sw.f.SetCellStyle(sw.sheet, from, to, id)
	}
}

func (sw *sheetWriter) merge(from, to string) {
	if sw.err == nil {
		sw.err = sw.f.MergeCell(sw.sheet, from, to)
	}
}

func (sw *sheetWriter) width(col string, w float64) {
	if sw.err == nil {
		sw.err = sw.f.SetColWidth(sw.sheet, col, col, w)
	}
}

// cell returns the A1 name of a 1-based column and row. The layout never
// exceeds column I, so the conversion cannot fail.
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
