package datetime

import (
	"errors"

	"github.com/opal-lang/webstd/infra"
)

// parseComplete strips surrounding ASCII whitespace, runs a component
// scanner from position zero, and requires it to consume the whole
// remaining input.
func parseComplete[T any](s string, f Format, parse func(string, *int, Format) (T, error)) (T, error) {
	var zero T

	s = infra.TrimCollapseASCIIWhitespace(s)
	pos := 0
	v, err := parse(s, &pos, f)
	if err != nil {
		return zero, err
	}
	if pos < len(s) {
		return zero, structural(f, pos, "unexpected trailing characters")
	}
	return v, nil
}

// detectOrder lists the recognizers Parse attempts. The grammars are
// prefix-distinguishable in this order, so the first structural match is
// the only possible one.
var detectOrder = []func(string) (Value, error){
	attempt(ParseYear),
	attempt(ParseMonth),
	attempt(ParseDate),
	attempt(ParseYearlessDate),
	attempt(ParseTime),
	attempt(ParseLocalDateTime),
	attempt(ParseGlobalDateTime),
	attempt(ParseWeek),
}

func attempt[T Value](parse func(string) (T, error)) func(string) (Value, error) {
	return func(s string) (Value, error) {
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Parse detects which date or time format s is written in and parses it.
// Recognizers run in a fixed order, each over the whole input with its own
// scan position, and the first success wins. When nothing parses, the
// error is the first recognizer's range violation if one structurally
// matched far enough to find a field out of range (a prefix of one format
// can range-fail while a later format matches, so detection never stops
// early on a range error), and ErrUnsupported otherwise.
func Parse(s string) (Value, error) {
	var rangeErr error
	for _, parse := range detectOrder {
		v, err := parse(s)
		if err == nil {
			return v, nil
		}
		var pe *ParseError
		if rangeErr == nil && errors.As(err, &pe) && pe.Kind == ErrOutOfRange {
			rangeErr = err
		}
	}
	if rangeErr != nil {
		return nil, rangeErr
	}
	return nil, &ParseError{Kind: ErrUnsupported, Msg: "no date or time format matched"}
}
