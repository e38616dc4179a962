package datetime

import (
	"fmt"
	"strconv"
)

// YearWeek is a week date: a year and a week number in that year's
// week-numbering calendar.
type YearWeek struct {
	Year int // at least 1
	Week int // 1 through WeeksInYear(Year)
}

// NewYearWeek validates a year and week pair against the 52-or-53-week
// rule for the year.
func NewYearWeek(year, week int) (YearWeek, error) {
	if year < 1 {
		return YearWeek{}, outOfRange(FormatWeek, 0, "year must be 1 or greater")
	}
	if week < 1 || week > WeeksInYear(year) {
		return YearWeek{}, outOfRange(FormatWeek, 0, fmt.Sprintf("week %d out of range for year %04d", week, year))
	}
	return YearWeek{Year: year, Week: week}, nil
}

// Format implements Value.
func (YearWeek) Format() Format { return FormatWeek }

func (YearWeek) datetimeValue() {}

// String returns the canonical week literal, YYYY-Www.
func (yw YearWeek) String() string {
	return fmt.Sprintf("%04d-W%02d", yw.Year, yw.Week)
}

// ParseWeek parses a week string in the format YYYY-Www.
//
// https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#parse-a-week-string
func ParseWeek(s string) (YearWeek, error) {
	return parseComplete(s, FormatWeek, parseWeekComponent)
}

func parseWeekComponent(s string, pos *int, f Format) (YearWeek, error) {
	year, err := collectYear(s, pos, f)
	if err != nil {
		return YearWeek{}, err
	}

	if !expect(s, pos, tokenHyphen) {
		return YearWeek{}, structural(f, *pos, "expected '-' after year")
	}
	if !expect(s, pos, tokenWeek) {
		return YearWeek{}, structural(f, *pos, "expected 'W' before week number")
	}

	weekStart := *pos
	weekDigits := collectASCIIDigits(s, pos)
	if len(weekDigits) != 2 {
		return YearWeek{}, structural(f, weekStart, "expected a two-digit week number")
	}

	week, _ := strconv.Atoi(weekDigits)
	if max := WeeksInYear(year); week < 1 || week > max {
		return YearWeek{}, outOfRange(f, weekStart, fmt.Sprintf("year %04d has %d weeks", year, max))
	}
	return YearWeek{Year: year, Week: week}, nil
}
