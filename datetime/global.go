package datetime

import (
	"fmt"
	"time"
)

// GlobalDateTime is a date and a time of day at a specific UTC offset: an
// exact moment in time.
type GlobalDateTime struct {
	LocalDateTime
	Offset TimeZoneOffset
}

// Format implements Value.
func (GlobalDateTime) Format() Format { return FormatGlobalDateTime }

func (GlobalDateTime) datetimeValue() {}

// String returns the canonical global date and time literal: the local
// part followed by the offset, "Z" when the offset was spelled that way.
func (dt GlobalDateTime) String() string {
	return fmt.Sprintf("%s%s", dt.LocalDateTime, dt.Offset)
}

// UTC returns the moment as a time.Time in UTC. The fields are already
// validated, so the conversion cannot fail.
func (dt GlobalDateTime) UTC() time.Time {
	local := dt.In(time.UTC)
	return local.Add(-time.Duration(dt.Offset.Minutes()) * time.Minute)
}

// ParseGlobalDateTime parses a global date and time string: a local date
// and time followed by a time-zone offset. A missing offset means UTC.
//
// https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#parse-a-global-date-and-time-string
func ParseGlobalDateTime(s string) (GlobalDateTime, error) {
	return parseComplete(s, FormatGlobalDateTime, parseGlobalDateTimeComponent)
}

func parseGlobalDateTimeComponent(s string, pos *int, f Format) (GlobalDateTime, error) {
	local, err := parseLocalDateTimeComponent(s, pos, f)
	if err != nil {
		return GlobalDateTime{}, err
	}

	offset, err := parseTimeZoneOffsetComponent(s, pos, f)
	if err != nil {
		return GlobalDateTime{}, err
	}
	return GlobalDateTime{LocalDateTime: local, Offset: offset}, nil
}
