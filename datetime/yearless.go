package datetime

import (
	"fmt"

	"github.com/opal-lang/webstd/infra"
)

// YearlessDate is a Gregorian month and day without an associated year.
// February 29 is valid, since it occurs in some years.
type YearlessDate struct {
	Month int // 1 through 12
	Day   int // 1 through the month's maximum in any year
}

// NewYearlessDate validates a month and day pair. The day is checked
// against the most permissive year: February allows 29, April, June,
// September, and November allow 30, all other months allow 31.
func NewYearlessDate(month, day int) (YearlessDate, error) {
	if !isValidMonth(month) {
		return YearlessDate{}, outOfRange(FormatYearlessDate, 0, fmt.Sprintf("month %d out of range", month))
	}
	max, _ := MaxDaysInMonth(month, leapReferenceYear)
	if day < 1 || day > max {
		return YearlessDate{}, outOfRange(FormatYearlessDate, 0, fmt.Sprintf("day %d out of range for month %02d", day, month))
	}
	return YearlessDate{Month: month, Day: day}, nil
}

// Format implements Value.
func (YearlessDate) Format() Format { return FormatYearlessDate }

func (YearlessDate) datetimeValue() {}

// String returns the canonical yearless date literal, MM-DD.
func (yd YearlessDate) String() string {
	return fmt.Sprintf("%02d-%02d", yd.Month, yd.Day)
}

// ParseYearlessDate parses a yearless date string in the format MM-DD,
// optionally prefixed by exactly two hyphens (the XML gMonthDay spelling).
//
// https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#parse-a-yearless-date-string
func ParseYearlessDate(s string) (YearlessDate, error) {
	return parseComplete(s, FormatYearlessDate, parseYearlessDateComponent)
}

func parseYearlessDateComponent(s string, pos *int, f Format) (YearlessDate, error) {
	start := *pos
	hyphens := infra.CollectCodepoints(s, pos, func(r rune) bool { return r == tokenHyphen })
	if len(hyphens) != 0 && len(hyphens) != 2 {
		return YearlessDate{}, structural(f, start, "expected zero or two leading hyphens")
	}

	month, err := collectMonth(s, pos, f)
	if err != nil {
		return YearlessDate{}, err
	}

	if !expect(s, pos, tokenHyphen) {
		return YearlessDate{}, structural(f, *pos, "expected '-' after month")
	}

	day, err := collectDay(s, pos, month, f)
	if err != nil {
		return YearlessDate{}, err
	}
	return YearlessDate{Month: month, Day: day}, nil
}
