package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFloorToThousand(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"1133999", "1133000"},
		{"1133000", "1133000"},
		{"999", "0"},
		{"546780.5", "546000"},
	}
	for _, tc := range cases {
		d := decimal.RequireFromString(tc.in)
		if got := FloorToThousand(d); got.String() != tc.expected {
			t.Fatalf("FloorToThousand(%s) expected %s, got %s", tc.in, tc.expected, got.String())
		}
	}
}

func TestClampDate(t *testing.T) {
	limit := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	after := limit.AddDate(0, 3, 0)
	before := limit.AddDate(-1, 0, 0)

	if got := ClampDate(after, limit); !got.Equal(limit) {
		t.Fatalf("expected date past the limit to clamp to %v, got %v", limit, got)
	}
	if got := ClampDate(before, limit); !got.Equal(before) {
		t.Fatalf("expected date before the limit to pass through, got %v", got)
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := DaysBetween(a, a.AddDate(0, 0, 45)); got != 45 {
		t.Fatalf("expected 45 days, got %d", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Fatalf("expected 0 days, got %d", got)
	}
}

func TestFormatDate_ZeroRendersEmpty(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "" {
		t.Fatalf("zero time should render empty, got %q", got)
	}
	if got := FormatDatePtr(nil); got != "" {
		t.Fatalf("nil date should render empty, got %q", got)
	}
	d := time.Date(2016, 3, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2016-03-05" {
		t.Fatalf("expected 2016-03-05, got %q", got)
	}
}
