package datetime

import "testing"

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  TimeOfDay
	}{
		{"12:31", TimeOfDay{12, 31, 0, 0}},
		{"00:00", TimeOfDay{0, 0, 0, 0}},
		{"23:59:59", TimeOfDay{23, 59, 59, 0}},
		{"12:31:59", TimeOfDay{12, 31, 59, 0}},
		{"14:54:39.929", TimeOfDay{14, 54, 39, 929000000}},
		{"14:54:39.9", TimeOfDay{14, 54, 39, 900000000}},
		{"00:00:00.000000001", TimeOfDay{0, 0, 0, 1}},
		{"12:00:00.1234567891", TimeOfDay{12, 0, 0, 123456789}}, // truncated past nanoseconds
		{" 14:54 ", TimeOfDay{14, 54, 0, 0}},
	}

	for _, tt := range tests {
		got, err := ParseTime(tt.input)
		if err != nil {
			t.Errorf("ParseTime(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTime(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParseTimeErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"", ErrStructural},
		{"123:31:59", ErrStructural},
		{"12-31-59", ErrStructural},
		{"12:311:59", ErrStructural},
		{"12:31:591", ErrStructural},
		{"12:31:59...29", ErrStructural},
		{"12:31:59.9.9", ErrStructural},
		{"12:31:", ErrStructural},
		{"12:31:5", ErrStructural},
		{"12:31:5.", ErrStructural},
		{"12:31:.5", ErrStructural},
		{"12:31:59.", ErrStructural},
		{"1:31", ErrStructural},
		{"24:31:59", ErrOutOfRange},
		{"12:79:59", ErrOutOfRange},
		{"12:31:79", ErrOutOfRange},
		{"12:31:60", ErrOutOfRange}, // no leap seconds in this grammar
	}

	for _, tt := range tests {
		_, err := ParseTime(tt.input)
		wantKind(t, err, tt.kind)
	}
}

func TestTimeOfDayString(t *testing.T) {
	tests := []struct {
		t    TimeOfDay
		want string
	}{
		{TimeOfDay{14, 54, 0, 0}, "14:54"},
		{TimeOfDay{14, 54, 39, 0}, "14:54:39"},
		{TimeOfDay{14, 54, 39, 929000000}, "14:54:39.929"},
		{TimeOfDay{14, 54, 39, 900000000}, "14:54:39.9"},
		{TimeOfDay{0, 0, 0, 1}, "00:00:00.000000001"},
		{TimeOfDay{0, 0, 30, 0}, "00:00:30"},
	}

	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestNewTimeOfDay(t *testing.T) {
	if _, err := NewTimeOfDay(23, 59, 59, 999999999); err != nil {
		t.Errorf("NewTimeOfDay(23, 59, 59, 999999999) returned error: %v", err)
	}
	if _, err := NewTimeOfDay(24, 0, 0, 0); err == nil {
		t.Error("NewTimeOfDay(24, 0, 0, 0) should fail")
	}
	if _, err := NewTimeOfDay(12, 60, 0, 0); err == nil {
		t.Error("NewTimeOfDay(12, 60, 0, 0) should fail")
	}
	if _, err := NewTimeOfDay(12, 0, 60, 0); err == nil {
		t.Error("NewTimeOfDay(12, 0, 60, 0) should fail")
	}
	if _, err := NewTimeOfDay(12, 0, 0, 1000000000); err == nil {
		t.Error("NewTimeOfDay(12, 0, 0, 1000000000) should fail")
	}
}
