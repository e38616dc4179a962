package datetime

import (
	"fmt"
	"strconv"

	"github.com/opal-lang/webstd/infra"
)

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// collectASCIIDigits scans the run of ASCII digits at *pos and advances
// *pos past it.
func collectASCIIDigits(s string, pos *int) string {
	return infra.CollectCodepoints(s, pos, isASCIIDigit)
}

// expect consumes the literal byte c at *pos. It reports false without
// advancing when the input is exhausted or a different byte is present.
func expect(s string, pos *int, c byte) bool {
	if *pos >= len(s) || s[*pos] != c {
		return false
	}
	*pos++
	return true
}

// collectYear scans a year field: four or more digits, value at least 1.
func collectYear(s string, pos *int, f Format) (int, error) {
	start := *pos
	digits := collectASCIIDigits(s, pos)
	if len(digits) < 4 {
		return 0, structural(f, start, "expected at least four year digits")
	}

	year, err := strconv.Atoi(digits)
	if err != nil || year < 1 {
		return 0, outOfRange(f, start, "year must be 1 or greater")
	}
	return year, nil
}

// collectMonth scans a month field: exactly two digits, 01 through 12.
func collectMonth(s string, pos *int, f Format) (int, error) {
	start := *pos
	digits := collectASCIIDigits(s, pos)
	if len(digits) != 2 {
		return 0, structural(f, start, "expected a two-digit month")
	}

	month, _ := strconv.Atoi(digits)
	if !isValidMonth(month) {
		return 0, outOfRange(f, start, fmt.Sprintf("month %d out of range", month))
	}
	return month, nil
}

// collectDay scans a day field: exactly two digits, valid for the month in
// at least one year. February 29 passes here; callers that know the year
// apply the leap-year rule on top.
func collectDay(s string, pos *int, month int, f Format) (int, error) {
	start := *pos
	digits := collectASCIIDigits(s, pos)
	if len(digits) != 2 {
		return 0, structural(f, start, "expected a two-digit day")
	}

	day, _ := strconv.Atoi(digits)
	max, _ := MaxDaysInMonth(month, leapReferenceYear)
	if day < 1 || day > max {
		return 0, outOfRange(f, start, fmt.Sprintf("day %d out of range for month %02d", day, month))
	}
	return day, nil
}

// leapReferenceYear is any leap year; collectDay validates against it so
// that February 29 is accepted wherever the real year is unknown or
// checked separately.
const leapReferenceYear = 4
