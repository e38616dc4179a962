package datetime

import "fmt"

// YearMonth is a proleptic-Gregorian year and month, with no day, time, or
// time-zone information.
type YearMonth struct {
	Year  int // at least 1
	Month int // 1 through 12
}

// NewYearMonth validates a year and month pair.
func NewYearMonth(year, month int) (YearMonth, error) {
	if year < 1 {
		return YearMonth{}, outOfRange(FormatMonth, 0, "year must be 1 or greater")
	}
	if !isValidMonth(month) {
		return YearMonth{}, outOfRange(FormatMonth, 0, fmt.Sprintf("month %d out of range", month))
	}
	return YearMonth{Year: year, Month: month}, nil
}

// Format implements Value.
func (YearMonth) Format() Format { return FormatMonth }

func (YearMonth) datetimeValue() {}

// String returns the canonical month literal, YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// ParseMonth parses a month string in the format YYYY-MM.
//
// https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#parse-a-month-string
func ParseMonth(s string) (YearMonth, error) {
	return parseComplete(s, FormatMonth, parseMonthComponent)
}

func parseMonthComponent(s string, pos *int, f Format) (YearMonth, error) {
	year, err := collectYear(s, pos, f)
	if err != nil {
		return YearMonth{}, err
	}

	if !expect(s, pos, tokenHyphen) {
		return YearMonth{}, structural(f, *pos, "expected '-' after year")
	}

	month, err := collectMonth(s, pos, f)
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonth{Year: year, Month: month}, nil
}
