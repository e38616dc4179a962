package datetime

import "fmt"

// Year is a standalone proleptic-Gregorian year number, at least 1.
type Year int

// NewYear validates a year number.
func NewYear(year int) (Year, error) {
	if year < 1 {
		return 0, outOfRange(FormatYear, 0, "year must be 1 or greater")
	}
	return Year(year), nil
}

// Format implements Value.
func (Year) Format() Format { return FormatYear }

func (Year) datetimeValue() {}

// String returns the canonical year literal, zero-padded to four digits.
func (y Year) String() string {
	return fmt.Sprintf("%04d", int(y))
}

// ParseYear parses a year string: four or more ASCII digits with a value of
// at least 1.
func ParseYear(s string) (Year, error) {
	return parseComplete(s, FormatYear, parseYearComponent)
}

func parseYearComponent(s string, pos *int, f Format) (Year, error) {
	year, err := collectYear(s, pos, f)
	if err != nil {
		return 0, err
	}
	return Year(year), nil
}
