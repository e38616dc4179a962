package datetime

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wantKind asserts that err is a *ParseError of the given kind.
func wantKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, kind, pe.Kind, "error kind for %v", err)
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseDate("2011-13-01")

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrOutOfRange, pe.Kind)
	assert.Equal(t, FormatDate, pe.Format)
	assert.Equal(t, 5, pe.Pos)
	assert.Contains(t, pe.Error(), "invalid date string")
	assert.Contains(t, pe.Error(), "value out of range")
}

func TestParseErrorThroughWrapping(t *testing.T) {
	_, err := ParseTime("not a time")
	wrapped := fmt.Errorf("reading attribute: %w", err)

	var pe *ParseError
	require.ErrorAs(t, wrapped, &pe)
	assert.Equal(t, ErrStructural, pe.Kind)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "malformed input", ErrStructural.String())
	assert.Equal(t, "value out of range", ErrOutOfRange.String())
	assert.Equal(t, "unsupported format", ErrUnsupported.String())
}
