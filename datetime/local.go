package datetime

import (
	"fmt"
	"time"
)

// LocalDateTime is a date and a time of day with no time-zone attached.
type LocalDateTime struct {
	Date Date
	Time TimeOfDay
}

// Format implements Value.
func (LocalDateTime) Format() Format { return FormatLocalDateTime }

func (LocalDateTime) datetimeValue() {}

// String returns the canonical local date and time literal, with the "T"
// separator.
func (dt LocalDateTime) String() string {
	return fmt.Sprintf("%s%c%s", dt.Date, tokenT, dt.Time)
}

// In returns the wall-clock instant in loc. The fields are already
// validated, so the conversion cannot fail or normalize.
func (dt LocalDateTime) In(loc *time.Location) time.Time {
	return time.Date(dt.Date.Year, time.Month(dt.Date.Month), dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, dt.Time.Nanosecond, loc)
}

// ParseLocalDateTime parses a local date and time string: a date and a
// time separated by a single "T" or space.
//
// https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#parse-a-local-date-and-time-string
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	return parseComplete(s, FormatLocalDateTime, parseLocalDateTimeComponent)
}

func parseLocalDateTimeComponent(s string, pos *int, f Format) (LocalDateTime, error) {
	date, err := parseDateComponent(s, pos, f)
	if err != nil {
		return LocalDateTime{}, err
	}

	if *pos >= len(s) || (s[*pos] != tokenT && s[*pos] != tokenSpace) {
		return LocalDateTime{}, structural(f, *pos, "expected 'T' or space between date and time")
	}
	*pos++

	t, err := parseTimeComponent(s, pos, f)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{Date: date, Time: t}, nil
}
