// Package schedule decides whether a calendar date is scheduled for a habit.
package schedule

import (
	"slices"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/utils"
)

// IsDateScheduled reports whether progress is expected for habit on date (YYYY-MM-DD).
//
// Weekly, monthly and interval schedules are judged by aggregate counts rather than
// per date, so every date is schedulable for them. A malformed date or an absent
// configuration field yields false.
func IsDateScheduled(date string, habit models.Habit) bool {
	switch s := habit.Schedule.(type) {
	case models.Daily:
		return true
	case models.SpecificDays:
		if len(s.Days) == 0 {
			return false
		}
		day, err := utils.DayOfWeek(date)
		if err != nil {
			return false
		}
		return slices.Contains(s.Days, day)
	case models.Weekly, models.Monthly:
		return true
	case models.Interval:
		// The interval is not anchored to a start date yet; only its presence is checked.
		return s.Days > 0
	case models.SpecificDates:
		return slices.Contains(s.Dates, date)
	default:
		return false
	}
}
