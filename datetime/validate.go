package datetime

import "time"

func isValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

func isValidHour(hour int) bool {
	return hour >= 0 && hour <= 23
}

func isValidMinuteOrSecond(v int) bool {
	return v >= 0 && v < 60
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar: divisible by 400, or by 4 but not by 100.
func IsLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// MaxDaysInMonth returns the number of days in the given month of the given
// year, leap-year aware. It reports false for month numbers outside 1..12.
func MaxDaysInMonth(month, year int) (int, bool) {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31, true
	case 4, 6, 9, 11:
		return 30, true
	case 2:
		if IsLeapYear(year) {
			return 29, true
		}
		return 28, true
	default:
		return 0, false
	}
}

// WeeksInYear returns the number of weeks in year's week-numbering calendar:
// 53 if January 1 falls on a Thursday, or on a Wednesday in a leap year,
// and 52 otherwise.
//
// https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#weeks
func WeeksInYear(year int) int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	switch jan1.Weekday() {
	case time.Thursday:
		return 53
	case time.Wednesday:
		if IsLeapYear(year) {
			return 53
		}
	}
	return 52
}
