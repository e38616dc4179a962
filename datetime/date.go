package datetime

import (
	"fmt"
	"time"
)

// Date is a proleptic-Gregorian calendar date: year, month, and day.
type Date struct {
	Year  int // at least 1
	Month int // 1 through 12
	Day   int // 1 through MaxDaysInMonth(Month, Year)
}

// NewDate validates a year, month, day triple, leap-year aware.
func NewDate(year, month, day int) (Date, error) {
	if _, err := NewYearMonth(year, month); err != nil {
		return Date{}, err
	}
	max, _ := MaxDaysInMonth(month, year)
	if day < 1 || day > max {
		return Date{}, outOfRange(FormatDate, 0, fmt.Sprintf("day %d out of range for %04d-%02d", day, year, month))
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// Format implements Value.
func (Date) Format() Format { return FormatDate }

func (Date) datetimeValue() {}

// String returns the canonical date literal, YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// In returns the midnight instant of the date in loc. The fields are
// already validated, so the conversion cannot fail or normalize.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// ParseDate parses a date string in the format YYYY-MM-DD.
//
// https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#parse-a-date-string
func ParseDate(s string) (Date, error) {
	return parseComplete(s, FormatDate, parseDateComponent)
}

func parseDateComponent(s string, pos *int, f Format) (Date, error) {
	ym, err := parseMonthComponent(s, pos, f)
	if err != nil {
		return Date{}, err
	}

	if !expect(s, pos, tokenHyphen) {
		return Date{}, structural(f, *pos, "expected '-' after month")
	}

	dayStart := *pos
	day, err := collectDay(s, pos, ym.Month, f)
	if err != nil {
		return Date{}, err
	}

	// collectDay allows February 29 unconditionally; re-check against the
	// actual year.
	if max, _ := MaxDaysInMonth(ym.Month, ym.Year); day > max {
		return Date{}, outOfRange(f, dayStart, fmt.Sprintf("%04d-%02d has only %d days", ym.Year, ym.Month, max))
	}
	return Date{Year: ym.Year, Month: ym.Month, Day: day}, nil
}
