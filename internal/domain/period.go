package domain

import (
	"cmp"
	"fmt"
	"strings"
	"time"
)

// Bounds accepted by MonthlyQuery.
const (
	MinReportYear = 2000
	MaxReportYear = 2100
)

// IDOrder is the tie-break direction applied to freights sharing the same
// registration date.
type IDOrder int

const (
	IDAscending IDOrder = iota
	IDDescending
)

// Order is the ordering contract of a period query: registration date
// ascending, then id in the given direction for equal dates.
// Compare is the single definition of that ordering; the Postgres repo
// renders the same contract through SQL.
type Order struct {
	TieBreak IDOrder
}

// Compare orders two freights by registration date ascending, then by id in
// the direction of o.TieBreak. Freights without a registration date sort last.
func (o Order) Compare(a, b FreightView) int {
	if c := compareDates(a.RegistrationDate, b.RegistrationDate); c != 0 {
		return c
	}
	if o.TieBreak == IDDescending {
		return cmp.Compare(b.ID, a.ID)
	}
	return cmp.Compare(a.ID, b.ID)
}

// SQL returns the ORDER BY expression for o against the fletes table alias f.
func (o Order) SQL() string {
	dir := "ASC"
	if o.TieBreak == IDDescending {
		dir = "DESC"
	}
	return "f.registration_date ASC, f.id " + dir
}

func compareDates(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return a.Compare(*b)
}

// FreightQuery selects the freights whose registration date lies in the
// half-open window [From, To), in the given Order.
type FreightQuery struct {
	From  time.Time
	To    time.Time
	Order Order
}

// Contains reports whether t falls inside the query window.
func (q FreightQuery) Contains(t time.Time) bool {
	return !t.Before(q.From) && t.Before(q.To)
}

// MonthlyQuery plans the query for a calendar month. The year must lie in
// [MinReportYear, MaxReportYear] and the month in [1, 12].
// Equal dates are broken by id descending.
func MonthlyQuery(year, month int) (FreightQuery, error) {
	if month < 1 || month > 12 || year < MinReportYear || year > MaxReportYear {
		return FreightQuery{}, fmt.Errorf("%w: invalid month or year: %d/%d", ErrValidation, month, year)
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return FreightQuery{
		From:  from,
		To:    from.AddDate(0, 1, 0),
		Order: Order{TieBreak: IDDescending},
	}, nil
}

// RangeQuery plans the query for an inclusive date range. Only the date
// portion of start and end is used. Equal dates are broken by id ascending.
func RangeQuery(start, end time.Time) (FreightQuery, error) {
	from := DateOf(start)
	last := DateOf(end)
	if from.After(last) {
		return FreightQuery{}, fmt.Errorf("%w: start date %s is after end date %s",
			ErrValidation, from.Format(DateLayout), last.Format(DateLayout))
	}
	return FreightQuery{
		From:  from,
		To:    last.AddDate(0, 0, 1),
		Order: Order{TieBreak: IDAscending},
	}, nil
}

// DateOf truncates t to midnight UTC of its calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateLayout is the day-first layout used in report titles and rows.
const DateLayout = "02/01/2006"

// YearMonth is a calendar month that holds at least one freight.
type YearMonth struct {
	Year  int
	Month int
}

// MonthWithData is a YearMonth decorated for display in period pickers.
type MonthWithData struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	Label     string `json:"label"`
}

// Describe decorates ym with its Spanish month name and a "marzo 2024" label.
func (ym YearMonth) Describe() MonthWithData {
	name := MonthName(ym.Month)
	return MonthWithData{
		Year:      ym.Year,
		Month:     ym.Month,
		MonthName: name,
		Label:     fmt.Sprintf("%s %d", name, ym.Year),
	}
}

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MonthName returns the lower-case Spanish name of month (1-12), or "" when
// month is out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// upperMonthName is MonthName in upper case, as used in report titles.
func upperMonthName(month int) string {
	return strings.ToUpper(MonthName(month))
}
