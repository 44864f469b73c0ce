package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{-3 * time.Second, "0:00"},
		{59 * time.Second, "0:59"},
		{61*time.Second + 900*time.Millisecond, "1:01"},
		{12 * time.Minute, "12:00"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	cases := []struct {
		v        float64
		decimals int
		want     string
	}{
		{0.019, 3, "0.019"},
		{1, 2, "1.00"},
		{0.0006, 4, "0.0006"},
		{0.5, -1, "0"},
	}
	for _, tc := range cases {
		if got := FormatFixed(tc.v, tc.decimals); got != tc.want {
			t.Errorf("FormatFixed(%v, %d) = %q, want %q", tc.v, tc.decimals, got, tc.want)
		}
	}
}
