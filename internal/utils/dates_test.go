package utils

import (
	"testing"
	"time"
)

func TestDateOf(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 23:30 local on March 8 is already March 9 in UTC.
	now := time.Date(2026, 3, 8, 23, 30, 0, 0, loc)
	if got := Today(now); got != "2026-03-08" {
		t.Errorf("Today() = %s, want 2026-03-08", got)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		n    int
		want string
	}{
		{name: "previous across month", date: "2026-03-01", n: -1, want: "2026-02-28"},
		{name: "next across year", date: "2025-12-31", n: 1, want: "2026-01-01"},
		{name: "leap day", date: "2028-02-28", n: 1, want: "2028-02-29"},
		{name: "malformed unchanged", date: "not-a-date", n: 1, want: "not-a-date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddDays(tt.date, tt.n); got != tt.want {
				t.Errorf("AddDays(%s, %d) = %s, want %s", tt.date, tt.n, got, tt.want)
			}
		})
	}
}

func TestWeekDates(t *testing.T) {
	// Wednesday 2026-01-14
	date := time.Date(2026, 1, 14, 15, 0, 0, 0, time.UTC)

	sunday := WeekDates(date, time.Sunday)
	if sunday[0] != "2026-01-11" || sunday[6] != "2026-01-17" {
		t.Errorf("sunday week = %v", sunday)
	}

	monday := WeekDates(date, time.Monday)
	if monday[0] != "2026-01-12" || monday[6] != "2026-01-18" {
		t.Errorf("monday week = %v", monday)
	}

	// Sunday itself with a Monday week start belongs to the previous week.
	sun := time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC)
	if got := WeekDates(sun, time.Monday)[0]; got != "2026-01-12" {
		t.Errorf("week start for sunday = %s, want 2026-01-12", got)
	}
}

func TestMonthAndYearDates(t *testing.T) {
	feb := MonthDates(time.Date(2028, 2, 10, 0, 0, 0, 0, time.UTC))
	if len(feb) != 29 {
		t.Errorf("len(MonthDates(Feb 2028)) = %d, want 29", len(feb))
	}
	if feb[0] != "2028-02-01" || feb[28] != "2028-02-29" {
		t.Errorf("unexpected february bounds: %s..%s", feb[0], feb[28])
	}
	if got := len(YearDates(2026)); got != 365 {
		t.Errorf("len(YearDates(2026)) = %d, want 365", got)
	}
	if got := len(YearDates(2028)); got != 366 {
		t.Errorf("len(YearDates(2028)) = %d, want 366", got)
	}
}
