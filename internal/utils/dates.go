package utils

import (
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

// ParseDate parses a YYYY-MM-DD date string to midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// FormatDate formats the calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// DateOf returns the calendar date of t, in t's own location, as midnight UTC.
// All date arithmetic in this package happens in UTC so DST never shifts a day.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar date of now as YYYY-MM-DD.
func Today(now time.Time) string {
	return FormatDate(DateOf(now))
}

// AddDays shifts a YYYY-MM-DD date by n days. Malformed input is returned unchanged.
func AddDays(dateStr string, n int) string {
	t, err := ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return FormatDate(t.AddDate(0, 0, n))
}

// PreviousDay returns the date before dateStr.
func PreviousDay(dateStr string) string {
	return AddDays(dateStr, -1)
}

// NextDay returns the date after dateStr.
func NextDay(dateStr string) string {
	return AddDays(dateStr, 1)
}

// DayOfWeek returns the weekday of a YYYY-MM-DD date.
func DayOfWeek(dateStr string) (time.Weekday, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// StartOfWeek returns the first day of the week containing date.
func StartOfWeek(date time.Time, weekStartsOn time.Weekday) time.Time {
	d := DateOf(date)
	offset := (int(d.Weekday()) - int(weekStartsOn) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekDates returns the seven dates of the week containing date.
func WeekDates(date time.Time, weekStartsOn time.Weekday) []string {
	start := StartOfWeek(date, weekStartsOn)
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = FormatDate(start.AddDate(0, 0, i))
	}
	return dates
}

// MonthDates returns every date of the calendar month containing date.
func MonthDates(date time.Time) []string {
	d := DateOf(date)
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	var dates []string
	for cur := start; cur.Month() == start.Month(); cur = cur.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(cur))
	}
	return dates
}

// YearDates returns every date of the given year.
func YearDates(year int) []string {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	var dates []string
	for cur := start; cur.Year() == year; cur = cur.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(cur))
	}
	return dates
}
