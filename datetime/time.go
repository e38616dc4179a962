package datetime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opal-lang/webstd/infra"
)

// TimeOfDay is a time on a wall clock: hour, minute, second, and a
// fractional second held as nanoseconds. Leap seconds do not exist in this
// grammar, so the second never reaches 60.
type TimeOfDay struct {
	Hour       int // 0 through 23
	Minute     int // 0 through 59
	Second     int // 0 through 59
	Nanosecond int // 0 through 999999999
}

// NewTimeOfDay validates an hour, minute, second, nanosecond tuple.
func NewTimeOfDay(hour, minute, second, nanosecond int) (TimeOfDay, error) {
	if !isValidHour(hour) {
		return TimeOfDay{}, outOfRange(FormatTime, 0, fmt.Sprintf("hour %d out of range", hour))
	}
	if !isValidMinuteOrSecond(minute) {
		return TimeOfDay{}, outOfRange(FormatTime, 0, fmt.Sprintf("minute %d out of range", minute))
	}
	if !isValidMinuteOrSecond(second) {
		return TimeOfDay{}, outOfRange(FormatTime, 0, fmt.Sprintf("second %d out of range", second))
	}
	if nanosecond < 0 || nanosecond > 999999999 {
		return TimeOfDay{}, outOfRange(FormatTime, 0, fmt.Sprintf("nanosecond %d out of range", nanosecond))
	}
	return TimeOfDay{Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond}, nil
}

// Format implements Value.
func (TimeOfDay) Format() Format { return FormatTime }

func (TimeOfDay) datetimeValue() {}

// String returns the canonical time literal: HH:MM, HH:MM:SS, or
// HH:MM:SS.sss with trailing fraction zeros trimmed.
func (t TimeOfDay) String() string {
	if t.Nanosecond != 0 {
		frac := strings.TrimRight(fmt.Sprintf("%09d", t.Nanosecond), "0")
		return fmt.Sprintf("%02d:%02d:%02d.%s", t.Hour, t.Minute, t.Second, frac)
	}
	if t.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTime parses a time string in the format HH:MM, HH:MM:SS, or
// HH:MM:SS.sss with one or more fraction digits.
//
// https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#parse-a-time-string
func ParseTime(s string) (TimeOfDay, error) {
	return parseComplete(s, FormatTime, parseTimeComponent)
}

func parseTimeComponent(s string, pos *int, f Format) (TimeOfDay, error) {
	hourStart := *pos
	hourDigits := collectASCIIDigits(s, pos)
	if len(hourDigits) != 2 {
		return TimeOfDay{}, structural(f, hourStart, "expected a two-digit hour")
	}
	hour, _ := strconv.Atoi(hourDigits)
	if !isValidHour(hour) {
		return TimeOfDay{}, outOfRange(f, hourStart, fmt.Sprintf("hour %d out of range", hour))
	}

	if !expect(s, pos, tokenColon) {
		return TimeOfDay{}, structural(f, *pos, "expected ':' after hour")
	}

	minuteStart := *pos
	minuteDigits := collectASCIIDigits(s, pos)
	if len(minuteDigits) != 2 {
		return TimeOfDay{}, structural(f, minuteStart, "expected a two-digit minute")
	}
	minute, _ := strconv.Atoi(minuteDigits)
	if !isValidMinuteOrSecond(minute) {
		return TimeOfDay{}, outOfRange(f, minuteStart, fmt.Sprintf("minute %d out of range", minute))
	}

	second, nanosecond := 0, 0
	if *pos < len(s) && s[*pos] == tokenColon {
		*pos++
		if *pos >= len(s) {
			return TimeOfDay{}, structural(f, *pos, "expected seconds after ':'")
		}

		secondStart := *pos
		run := infra.CollectCodepoints(s, pos, func(r rune) bool {
			return isASCIIDigit(r) || r == tokenDot
		})

		// The run is SS or SS.f+: never exactly three long, the dot only
		// in third position, at most one dot.
		switch {
		case len(run) < 2 || len(run) == 3,
			run[0] == tokenDot || run[1] == tokenDot,
			len(run) > 3 && run[2] != tokenDot,
			strings.Count(run, ".") > 1:
			return TimeOfDay{}, structural(f, secondStart, "malformed seconds")
		}

		second, _ = strconv.Atoi(run[:2])
		if !isValidMinuteOrSecond(second) {
			return TimeOfDay{}, outOfRange(f, secondStart, fmt.Sprintf("second %d out of range", second))
		}
		if len(run) > 3 {
			nanosecond = fractionToNanoseconds(run[3:])
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond}, nil
}

// fractionToNanoseconds converts a run of fraction digits to nanoseconds,
// truncating digits beyond nanosecond precision.
func fractionToNanoseconds(digits string) int {
	if len(digits) > 9 {
		digits = digits[:9]
	}
	ns, _ := strconv.Atoi(digits)
	for i := len(digits); i < 9; i++ {
		ns *= 10
	}
	return ns
}
