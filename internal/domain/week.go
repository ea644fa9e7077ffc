package domain

import "time"

// WeekRange returns the first and last day of the week bucket that date falls
// into. Buckets are counted from day 1 of the month in 7-day steps, so they
// depend only on the day of month, never on the weekday. The last bucket is
// cut short at the end of the month; a bucket never spans two months.
//
// Both results are midnight in date's location.
func WeekRange(date time.Time) (start, end time.Time) {
	y, m, d := date.Date()
	loc := date.Location()

	weekIndex := (d - 1) / 7
	start = time.Date(y, m, 1+weekIndex*7, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 0, 6)

	if end.Month() != m {
		end = time.Date(y, m, DaysInMonth(y, m), 0, 0, 0, 0, loc)
	}
	return start, end
}

// WeekLabel renders the week bucket of date as "DD Mon.-DD Mon",
// e.g. "08 Mar.-14 Mar".
func WeekLabel(date time.Time) string {
	start, end := WeekRange(date)
	return start.Format("02 Jan") + ".-" + end.Format("02 Jan")
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
