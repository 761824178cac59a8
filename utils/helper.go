package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for every date column in the output ledgers.
const DateLayout = "2006-01-02"

// TimestampLayout is used for history records, which carry a time-of-day
// component so same-day transitions keep a defined order.
const TimestampLayout = "2006-01-02 15:04:05"

var oneThousand = decimal.NewFromInt(1000)

// FloorToThousand floors an amount to the nearest 1,000 currency units.
func FloorToThousand(d decimal.Decimal) decimal.Decimal {
	return d.Div(oneThousand).Floor().Mul(oneThousand)
}

// ClampDate caps d at limit. Computed event dates may run past the reference
// date; the simulation recovers by clamping, never by failing.
func ClampDate(d, limit time.Time) time.Time {
	if d.After(limit) {
		return limit
	}
	return d
}

// MaxDate returns the later of a and b.
func MaxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// AtMidnight truncates t to 00:00:00 in UTC.
func AtMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddYearsDays models "n years" as n*365 days plus a day offset, matching the
// ledger convention that ages are counted in days, not calendar years.
func AddYearsDays(t time.Time, years float64, extraDays int) time.Time {
	return t.AddDate(0, 0, int(years*365)+extraDays)
}

// FormatDate renders a date column value; zero time renders as empty, which is
// how non-confirmed records appear in the ledgers.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatDatePtr renders an optional date column value.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}
