package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/embarques/fletes/internal/domain"
)

// CSV writes r as comma-separated values: one header line, one line per
// freight and, when r has totals, a "TOTALES:" line carrying the sums.
// The title is not written; it travels in the file name instead.
func CSV(w io.Writer, r domain.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("render.CSV: header: %w", err)
	}
	for _, row := range r.Rows {
		if err := cw.Write(csvRecord(row)); err != nil {
			return fmt.Errorf("render.CSV: row %d: %w", row.FreightID, err)
		}
	}
	if r.Totals != nil {
		t := r.Totals
		if err := cw.Write([]string{
			"", "", "", totalsLabel,
			itoa(t.DestinationCost), itoa(t.HighwayCost), itoa(t.StayCost), itoa(t.Total),
			"",
		}); err != nil {
			return fmt.Errorf("render.CSV: totals: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("render.CSV: flush: %w", err)
	}
	return nil
}

func csvRecord(r domain.ReportRow) []string {
	return []string{
		r.SupplierName,
		r.Week,
		r.DestinationName,
		itoa(r.TripNumber),
		itoa(r.DestinationCost),
		itoa(r.HighwayCost),
		itoa(r.StayCost),
		itoa(r.Total),
		r.Date,
	}
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
