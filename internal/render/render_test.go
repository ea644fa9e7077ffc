package render_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/embarques/fletes/internal/domain"
	"github.com/embarques/fletes/internal/render"
)

func rangeReport() domain.Report {
	return domain.Report{
		ID:        uuid.New(),
		Kind:      domain.ReportRange,
		Title:     "REPORTE DE FLETES - DEL 01/03/2024 AL 31/03/2024",
		SheetName: "Reporte por período",
		FileBase:  "Reporte_Fletes_20240301_20240331",
		Rows: []domain.ReportRow{
			{FreightID: 1, SupplierName: "Norte", Week: "01 Mar.-07 Mar", DestinationName: "Monterrey",
				TripNumber: 1, DestinationCost: 500, HighwayCost: 50, StayCost: 20, Total: 570, Date: "04/03/2024"},
			{FreightID: 2, SupplierName: domain.NotAvailable, Week: "29 Mar.-31 Mar", DestinationName: "Saltillo",
				TripNumber: 2, DestinationCost: 300, HighwayCost: 0, StayCost: 10, Total: 310, Date: "29/03/2024"},
		},
		Totals: &domain.ReportTotals{DestinationCost: 800, HighwayCost: 50, StayCost: 30, Total: 880},
	}
}

func monthlyReport() domain.Report {
	r := rangeReport()
	r.Kind = domain.ReportMonthly
	r.Title = "REPORTE DE FLETES - MARZO 2024"
	r.SheetName = "Reporte mensual"
	r.FileBase = "Reporte_Fletes_marzo_2024"
	r.Totals = nil
	return r
}

func openXLSX(t *testing.T, r domain.Report) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, render.XLSX(&buf, r))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func rawValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func TestXLSX_Layout(t *testing.T) {
	r := rangeReport()
	f := openXLSX(t, r)
	sheet := r.SheetName

	assert.Equal(t, []string{sheet}, f.GetSheetList())
	assert.Equal(t, r.Title, rawValue(t, f, sheet, "A1"))

	for i, h := range render.Headers {
		c, err := excelize.CoordinatesToCellName(i+1, 3)
		require.NoError(t, err)
		assert.Equal(t, h, rawValue(t, f, sheet, c))
	}

	assert.Equal(t, "Norte", rawValue(t, f, sheet, "A4"))
	assert.Equal(t, "01 Mar.-07 Mar", rawValue(t, f, sheet, "B4"))
	assert.Equal(t, "500", rawValue(t, f, sheet, "E4"))
	assert.Equal(t, "570", rawValue(t, f, sheet, "H4"))
	assert.Equal(t, "04/03/2024", rawValue(t, f, sheet, "I4"))
	assert.Equal(t, domain.NotAvailable, rawValue(t, f, sheet, "A5"))

	merged, err := f.GetMergeCells(sheet)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "A1", merged[0].GetStartAxis())
	assert.Equal(t, "I1", merged[0].GetEndAxis())
}

func TestXLSX_TotalsRow(t *testing.T) {
	r := rangeReport()
	f := openXLSX(t, r)
	sheet := r.SheetName

	assert.Equal(t, "TOTALES:", rawValue(t, f, sheet, "D6"))
	for col, want := range map[string]string{
		"E": "SUM(E4:E5)", "F": "SUM(F4:F5)", "G": "SUM(G4:G5)", "H": "SUM(H4:H5)",
	} {
		got, err := f.GetCellFormula(sheet, col+"6")
		require.NoError(t, err)
		assert.Equal(t, want, got, col)
	}
}

func TestXLSX_MonthlyHasNoTotals(t *testing.T) {
	r := monthlyReport()
	f := openXLSX(t, r)

	rows, err := f.GetRows(r.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 5, "title, blank, header and two data rows")
	assert.Empty(t, rawValue(t, f, r.SheetName, "D6"))
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.CSV(&buf, rangeReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, render.Headers, records[0])
	assert.Equal(t, []string{"Norte", "01 Mar.-07 Mar", "Monterrey", "1", "500", "50", "20", "570", "04/03/2024"}, records[1])
	assert.Equal(t, []string{"", "", "", "TOTALES:", "800", "50", "30", "880", ""}, records[3])
}

func TestCSV_NoTotals(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.CSV(&buf, monthlyReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]render.Format{
		"": render.FormatXLSX, "xlsx": render.FormatXLSX, " CSV ": render.FormatCSV, "json": render.FormatJSON,
	} {
		got, err := render.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := render.ParseFormat("pdf")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestFormat_FileNameAndContentType(t *testing.T) {
	r := monthlyReport()

	assert.Equal(t, "Reporte_Fletes_marzo_2024.xlsx", render.FormatXLSX.FileName(r))
	assert.Equal(t, "Reporte_Fletes_marzo_2024.csv", render.FormatCSV.FileName(r))
	assert.Equal(t, "Reporte_Fletes_marzo_2024.json", render.FormatJSON.FileName(r))
	assert.Contains(t, render.FormatXLSX.ContentType(), "spreadsheetml")
	assert.Contains(t, render.FormatCSV.ContentType(), "text/csv")
	assert.Equal(t, "application/json", render.FormatJSON.ContentType())
}

func TestFormat_WriteJSON(t *testing.T) {
	r := rangeReport()
	var buf bytes.Buffer
	require.NoError(t, render.FormatJSON.Write(&buf, r))

	var got domain.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, r, got)
}
