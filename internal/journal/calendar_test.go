package journal

import (
	"testing"
	"time"
)

func TestNewMonthGrid(t *testing.T) {
	tests := []struct {
		year   int
		month  time.Month
		blanks int
		days   int
	}{
		{2026, time.January, 4, 31},  // Jan 1 2026 is a Thursday
		{2026, time.February, 0, 28}, // Feb 1 2026 is a Sunday
		{2024, time.February, 4, 29}, // leap year
		{2026, time.August, 6, 31},   // Aug 1 2026 is a Saturday
	}

	for _, tc := range tests {
		g := NewMonthGrid(tc.year, tc.month)
		if g.LeadingBlanks != tc.blanks {
			t.Errorf("%d-%s: blanks = %d, want %d", tc.year, tc.month, g.LeadingBlanks, tc.blanks)
		}
		if g.Days != tc.days {
			t.Errorf("%d-%s: days = %d, want %d", tc.year, tc.month, g.Days, tc.days)
		}
	}
}

func TestMonthGridDateKey(t *testing.T) {
	g := NewMonthGrid(2026, time.March)
	if key := g.DateKey(5); key != "2026-03-05" {
		t.Fatalf("DateKey(5) = %q", key)
	}
}

func TestMonthGridNavigationNormalizes(t *testing.T) {
	jan := NewMonthGrid(2026, time.January)

	prev := jan.Prev()
	if prev.Year != 2025 || prev.Month != time.December {
		t.Fatalf("Prev of 2026-01 = %d-%s", prev.Year, prev.Month)
	}

	dec := NewMonthGrid(2025, time.December)
	next := dec.Next()
	if next.Year != 2026 || next.Month != time.January {
		t.Fatalf("Next of 2025-12 = %d-%s", next.Year, next.Month)
	}
}
