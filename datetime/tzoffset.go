package datetime

import (
	"fmt"
	"strconv"
	"time"
)

// TimeZoneOffset is a signed offset from UTC in hours and minutes. Hour and
// Minute carry the same sign, so -07:30 is {Hour: -7, Minute: -30}. Zulu
// records that the offset was spelled "Z"; a Zulu offset is numerically
// +00:00 but consumers re-serializing the value can preserve the spelling.
type TimeZoneOffset struct {
	Hour   int // -23 through 23
	Minute int // -59 through 59, same sign as Hour
	Zulu   bool
}

// NewTimeZoneOffset validates a signed hour and minute pair. The two
// components must not carry opposite signs, and the negative-zero offset
// does not exist (use the zero value or UTC for +00:00).
func NewTimeZoneOffset(hour, minute int) (TimeZoneOffset, error) {
	if hour < -23 || hour > 23 {
		return TimeZoneOffset{}, outOfRange(FormatTimeZoneOffset, 0, fmt.Sprintf("offset hour %d out of range", hour))
	}
	if minute < -59 || minute > 59 {
		return TimeZoneOffset{}, outOfRange(FormatTimeZoneOffset, 0, fmt.Sprintf("offset minute %d out of range", minute))
	}
	if (hour < 0 && minute > 0) || (hour > 0 && minute < 0) {
		return TimeZoneOffset{}, outOfRange(FormatTimeZoneOffset, 0, "offset hour and minute have opposite signs")
	}
	return TimeZoneOffset{Hour: hour, Minute: minute}, nil
}

// UTC is the +00:00 offset spelled "Z".
var UTC = TimeZoneOffset{Zulu: true}

// Minutes returns the whole offset as signed minutes east of UTC.
func (o TimeZoneOffset) Minutes() int {
	return o.Hour*60 + o.Minute
}

// Location returns a fixed time.Location for the offset.
func (o TimeZoneOffset) Location() *time.Location {
	if o.Hour == 0 && o.Minute == 0 {
		return time.UTC
	}
	return time.FixedZone(o.String(), o.Minutes()*60)
}

// String returns the canonical offset literal: "Z" for a Zulu offset,
// otherwise ±HH:MM.
func (o TimeZoneOffset) String() string {
	if o.Zulu {
		return "Z"
	}
	sign := byte(tokenPlus)
	hour, minute := o.Hour, o.Minute
	if hour < 0 || minute < 0 {
		sign = tokenMinus
		hour, minute = -hour, -minute
	}
	return fmt.Sprintf("%c%02d:%02d", sign, hour, minute)
}

// ParseTimeZoneOffset parses a time-zone offset string: "Z", ±HH:MM, or the
// colonless ±HHMM. The negative-zero offset -00:00 is rejected. The empty
// string parses as +00:00.
//
// https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#parse-a-time-zone-offset-string
func ParseTimeZoneOffset(s string) (TimeZoneOffset, error) {
	return parseComplete(s, FormatTimeZoneOffset, parseTimeZoneOffsetComponent)
}

// parseTimeZoneOffsetComponent scans an offset at *pos. A missing offset
// (end of input, or a byte that cannot start an offset) yields +00:00
// without advancing; composite grammars rely on their own trailing-input
// check to reject the latter case.
func parseTimeZoneOffsetComponent(s string, pos *int, f Format) (TimeZoneOffset, error) {
	if *pos >= len(s) {
		return TimeZoneOffset{}, nil
	}

	switch s[*pos] {
	case tokenZ:
		*pos++
		return TimeZoneOffset{Zulu: true}, nil

	case tokenPlus, tokenMinus:
		negative := s[*pos] == tokenMinus
		signStart := *pos
		*pos++

		digitStart := *pos
		digits := collectASCIIDigits(s, pos)

		var hour, minute int
		switch len(digits) {
		case 2:
			hour, _ = strconv.Atoi(digits)
			if !expect(s, pos, tokenColon) {
				return TimeZoneOffset{}, structural(f, *pos, "expected ':' in time-zone offset")
			}
			minuteStart := *pos
			minuteDigits := collectASCIIDigits(s, pos)
			if len(minuteDigits) != 2 {
				return TimeZoneOffset{}, structural(f, minuteStart, "expected a two-digit offset minute")
			}
			minute, _ = strconv.Atoi(minuteDigits)
		case 4:
			hour, _ = strconv.Atoi(digits[:2])
			minute, _ = strconv.Atoi(digits[2:])
		default:
			return TimeZoneOffset{}, structural(f, digitStart, "expected HH:MM or HHMM after offset sign")
		}

		if !isValidHour(hour) {
			return TimeZoneOffset{}, outOfRange(f, digitStart, fmt.Sprintf("offset hour %d out of range", hour))
		}
		if !isValidMinuteOrSecond(minute) {
			return TimeZoneOffset{}, outOfRange(f, digitStart, fmt.Sprintf("offset minute %d out of range", minute))
		}
		if negative && hour == 0 && minute == 0 {
			return TimeZoneOffset{}, outOfRange(f, signStart, "the -00:00 offset does not exist")
		}
		if negative {
			hour, minute = -hour, -minute
		}
		return TimeZoneOffset{Hour: hour, Minute: minute}, nil

	default:
		return TimeZoneOffset{}, nil
	}
}
