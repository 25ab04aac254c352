package core

import (
	"math"
	"testing"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"0", 0, true},
		{"10.5", 10.5, true},
		{" -3.25 ", -3.25, true},
		{"1e3", 1000, true},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"-Infinity", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFloat(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseFloat(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"70", 70, true},
		{"  1", 1, true},
		{"1.0", 1, true},
		{"1.5", 0, false},
		{"x", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseInt(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseInt(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{45, "45"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{1.0 / 3.0, "0.3333333333333333"},
	}

	for _, tt := range tests {
		if got := FormatFloat(tt.input); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatFloatRoundTrip(t *testing.T) {
	values := []float64{1.0 / 3.0, 123456.789, -0.000001, 1e-9, 98765432.125}
	for _, v := range values {
		got, ok := ParseFloat(FormatFloat(v))
		if !ok || got != v {
			t.Errorf("round trip of %v gave %v", v, got)
		}
	}
}
