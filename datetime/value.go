package datetime

import "fmt"

// Format identifies one of the recognized microsyntax grammars.
type Format int

const (
	FormatUnknown Format = iota
	FormatYear
	FormatMonth
	FormatDate
	FormatYearlessDate
	FormatTime
	FormatLocalDateTime
	FormatGlobalDateTime
	FormatWeek
	FormatTimeZoneOffset
)

func (f Format) String() string {
	switch f {
	case FormatYear:
		return "year"
	case FormatMonth:
		return "month"
	case FormatDate:
		return "date"
	case FormatYearlessDate:
		return "yearless date"
	case FormatTime:
		return "time"
	case FormatLocalDateTime:
		return "local date and time"
	case FormatGlobalDateTime:
		return "global date and time"
	case FormatWeek:
		return "week"
	case FormatTimeZoneOffset:
		return "time-zone offset"
	default:
		return "unknown"
	}
}

// Value is the result of the auto-detecting Parse entry point. Exactly one
// of the format-specific value types is behind the interface: Year,
// YearMonth, Date, YearlessDate, TimeOfDay, LocalDateTime, GlobalDateTime,
// or YearWeek. String returns the canonical literal for the variant.
type Value interface {
	fmt.Stringer

	// Format reports which grammar variant produced the value.
	Format() Format

	datetimeValue()
}
