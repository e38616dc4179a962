package infra

import "testing"

func TestIsSurrogate(t *testing.T) {
	tests := []struct {
		u    uint16
		want bool
	}{
		{0xD799, false},
		{0xD800, true},
		{0xD809, true},
		{0xDB99, true},
		{0xDC00, true},
		{0xDFFF, true},
		{0xE000, false},
		{0x0041, false},
	}

	for _, tt := range tests {
		if got := IsSurrogate(tt.u); got != tt.want {
			t.Errorf("IsSurrogate(%#04x) = %v, want %v", tt.u, got, tt.want)
		}
	}
}

func TestIsLeadingSurrogate(t *testing.T) {
	tests := []struct {
		u    uint16
		want bool
	}{
		{0xD799, false},
		{0xD800, true},
		{0xDBFF, true},
		{0xDC00, false},
	}

	for _, tt := range tests {
		if got := IsLeadingSurrogate(tt.u); got != tt.want {
			t.Errorf("IsLeadingSurrogate(%#04x) = %v, want %v", tt.u, got, tt.want)
		}
	}
}

func TestIsTrailingSurrogate(t *testing.T) {
	tests := []struct {
		u    uint16
		want bool
	}{
		{0xDB99, false},
		{0xDBFF, false},
		{0xDC00, true},
		{0xDFFF, true},
		{0xE000, false},
	}

	for _, tt := range tests {
		if got := IsTrailingSurrogate(tt.u); got != tt.want {
			t.Errorf("IsTrailingSurrogate(%#04x) = %v, want %v", tt.u, got, tt.want)
		}
	}
}
