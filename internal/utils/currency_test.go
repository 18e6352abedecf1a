package utils

import "testing"

func TestFormatINRGrouping(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{99999, "₹99,999"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{12345678, "₹1,23,45,678"},
		{84999, "₹84,999"},
	}

	for _, tc := range cases {
		if got := FormatINR(tc.amount); got != tc.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatINRRoundsPaise(t *testing.T) {
	if got := FormatINR(1499.50); got != "₹1,500" {
		t.Fatalf("expected rounding to ₹1,500, got %q", got)
	}
}

func TestFormatINRNegative(t *testing.T) {
	if got := FormatINR(-123456); got != "-₹1,23,456" {
		t.Fatalf("unexpected negative formatting: %q", got)
	}
}
