package datetime

import "fmt"

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// ErrStructural means the input does not match the literal/width
	// grammar at some position: wrong separator, wrong digit count, or
	// trailing characters.
	ErrStructural ErrorKind = iota

	// ErrOutOfRange means a field was structurally well formed but its
	// value is not legal: month 13, February 30, minute 60, a -00:00
	// offset, week 53 in a 52-week year.
	ErrOutOfRange

	// ErrUnsupported is returned only by Parse, when none of the
	// recognizers structurally matched the input.
	ErrUnsupported
)

func (k ErrorKind) String() string {
	switch k {
	case ErrStructural:
		return "malformed input"
	case ErrOutOfRange:
		return "value out of range"
	case ErrUnsupported:
		return "unsupported format"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is the failure result of every parsing entry point. It carries
// the failing format, the byte offset into the whitespace-trimmed input
// where scanning gave up, and a human-readable message. It never
// accompanies a partial value.
type ParseError struct {
	Kind   ErrorKind
	Format Format
	Pos    int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Kind == ErrUnsupported {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("invalid %s string: %s at offset %d: %s", e.Format, e.Kind, e.Pos, e.Msg)
}

func structural(f Format, pos int, msg string) *ParseError {
	return &ParseError{Kind: ErrStructural, Format: f, Pos: pos, Msg: msg}
}

func outOfRange(f Format, pos int, msg string) *ParseError {
	return &ParseError{Kind: ErrOutOfRange, Format: f, Pos: pos, Msg: msg}
}
