package util

import (
	"testing"
	"time"
)

func TestRoundTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		decimals int
		expected float64
	}{
		{name: "one decimal place", value: 111194.9267, decimals: 1, expected: 111194.9},
		{name: "two decimal places", value: 60.1149, decimals: 2, expected: 60.11},
		{name: "rounds half up", value: 2.35, decimals: 1, expected: 2.4},
		{name: "six decimal places", value: 121.56543219, decimals: 6, expected: 121.565432},
		{name: "zero stays zero", value: 0, decimals: 2, expected: 0},
		{name: "negative value", value: -1.25, decimals: 1, expected: -1.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RoundTo(tt.value, tt.decimals); got != tt.expected {
				t.Fatalf("RoundTo(%v, %d) = %v, want %v", tt.value, tt.decimals, got, tt.expected)
			}
		})
	}
}

func TestFormatLatLon(t *testing.T) {
	t.Parallel()

	if got := FormatLatLon(25.03301234, 121.56546789); got != "25.0330, 121.5655" {
		t.Fatalf("FormatLatLon = %q", got)
	}

	if got := FormatLatLon(0, 0); got != "0.0000, 0.0000" {
		t.Fatalf("FormatLatLon zero = %q", got)
	}
}

func TestCollectionName(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 8, 29, 14, 23, 10, 0, time.UTC)
	if got := CollectionName("Measurement", at); got != "Measurement_20260829_142310" {
		t.Fatalf("CollectionName = %q", got)
	}
}
