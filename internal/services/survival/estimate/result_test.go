package estimate

import "testing"

func TestRoundTo2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{99.256, 99.26},
		{0.125, 0.12},
		{0.375, 0.38},
		{2.675, 2.67},
		{-50, -50},
	}
	for _, tt := range tests {
		if got := RoundTo2(tt.in); got != tt.want {
			t.Fatalf("RoundTo2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{100, "100.0"},
		{99.5, "99.5"},
		{99.25, "99.25"},
		{-3, "-3.0"},
		{0, "0.0"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1e16, "1e+16"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Fatalf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
