package datetime

import (
	"testing"
	"time"
)

func TestParseLocalDateTime(t *testing.T) {
	tests := []struct {
		input string
		want  LocalDateTime
	}{
		{"2004-12-31T12:31", LocalDateTime{Date{2004, 12, 31}, TimeOfDay{12, 31, 0, 0}}},
		{"2004-12-31T12:31:59", LocalDateTime{Date{2004, 12, 31}, TimeOfDay{12, 31, 59, 0}}},
		{"2011-11-18T14:54:39.929", LocalDateTime{Date{2011, 11, 18}, TimeOfDay{14, 54, 39, 929000000}}},
		{"2011-11-18 14:54", LocalDateTime{Date{2011, 11, 18}, TimeOfDay{14, 54, 0, 0}}},
		{"2011-11-18 14:54:39", LocalDateTime{Date{2011, 11, 18}, TimeOfDay{14, 54, 39, 0}}},
		{"2011-11-18 14:54:39.929", LocalDateTime{Date{2011, 11, 18}, TimeOfDay{14, 54, 39, 929000000}}},
		// Interior whitespace collapses to the single permitted separator.
		{"2011-11-18\t14:54", LocalDateTime{Date{2011, 11, 18}, TimeOfDay{14, 54, 0, 0}}},
	}

	for _, tt := range tests {
		got, err := ParseLocalDateTime(tt.input)
		if err != nil {
			t.Errorf("ParseLocalDateTime(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLocalDateTime(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParseLocalDateTimeErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"2011-11-18W14-54-39", ErrStructural},
		{"2011/11/18T14:54:39", ErrStructural},
		{"2011-11-18T14/54/39", ErrStructural},
		{"2011-11-18", ErrStructural},
		{"2011-11-18T", ErrStructural},
		{"2011-11-18T14:54Z", ErrStructural},
		{"2011-02-29T14:54", ErrOutOfRange},
		{"2011-11-18T24:54", ErrOutOfRange},
	}

	for _, tt := range tests {
		_, err := ParseLocalDateTime(tt.input)
		wantKind(t, err, tt.kind)
	}
}

func TestLocalDateTimeIn(t *testing.T) {
	dt := LocalDateTime{Date{2011, 11, 18}, TimeOfDay{14, 54, 39, 929000000}}
	got := dt.In(time.UTC)
	want := time.Date(2011, time.November, 18, 14, 54, 39, 929000000, time.UTC)
	if !got.Equal(want) {
		t.Errorf("In(UTC) = %v, want %v", got, want)
	}
}

func TestLocalDateTimeString(t *testing.T) {
	dt := LocalDateTime{Date{2011, 11, 18}, TimeOfDay{14, 54, 0, 0}}
	if got := dt.String(); got != "2011-11-18T14:54" {
		t.Errorf("String() = %q, want %q", got, "2011-11-18T14:54")
	}
}
