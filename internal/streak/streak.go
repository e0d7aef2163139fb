// Package streak computes streaks, completion totals and success rates from habit logs.
package streak

import (
	"math"
	"sort"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/schedule"
	"github.com/julianstephens/habitual/internal/utils"
)

// Summary bundles the streak figures shown for a habit.
type Summary struct {
	Current          int `json:"current_streak"`
	Best             int `json:"best_streak"`
	TotalCompletions int `json:"total_completions"`
	SuccessRate      int `json:"success_rate"`
}

// logsByDate indexes one habit's logs by date. A later entry for the same date wins,
// matching the upsert semantics of the store.
func logsByDate(habitID string, logs []models.HabitLog) map[string]models.HabitLog {
	byDate := make(map[string]models.HabitLog)
	for _, l := range logs {
		if l.HabitID == habitID {
			byDate[l.Date] = l
		}
	}
	return byDate
}

// Current returns the run of scheduled days with progress ending today.
//
// A scheduled today only counts once it is completed or partial; an unlogged,
// skipped or missed today is stepped over so the user can still log it. Earlier
// scheduled days end the streak when missed or unlogged; skipped days are
// transparent. The backward walk is capped at StreakLookbackDays.
func Current(habitID string, logs []models.HabitLog, habit models.Habit, today time.Time) int {
	byDate := logsByDate(habitID, logs)
	if len(byDate) == 0 {
		return 0
	}

	count := 0
	date := utils.Today(today)

	if schedule.IsDateScheduled(date, habit) {
		if l, ok := byDate[date]; ok && l.Status.Counts() {
			count++
		}
		date = utils.PreviousDay(date)
	}

	for i := 0; i < constants.StreakLookbackDays; i++ {
		if !schedule.IsDateScheduled(date, habit) {
			date = utils.PreviousDay(date)
			continue
		}

		l, ok := byDate[date]
		if !ok {
			break
		}
		switch l.Status {
		case models.StatusCompleted, models.StatusPartial:
			count++
		case models.StatusSkipped:
		default:
			return count
		}
		date = utils.PreviousDay(date)
	}

	return count
}

// Best returns the longest run in the habit's log history. It scans logged days in
// date order only: missed resets the run, skipped leaves it unchanged, and gaps
// between logged days are not consulted against the schedule.
func Best(habitID string, logs []models.HabitLog) int {
	byDate := logsByDate(habitID, logs)
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	best, run := 0, 0
	for _, d := range dates {
		switch byDate[d].Status {
		case models.StatusCompleted, models.StatusPartial:
			run++
			if run > best {
				best = run
			}
		case models.StatusMissed:
			run = 0
		}
	}
	return best
}

// TotalCompletions counts the habit's completed or partial logs.
func TotalCompletions(habitID string, logs []models.HabitLog) int {
	total := 0
	for _, l := range logsByDate(habitID, logs) {
		if l.Status.Counts() {
			total++
		}
	}
	return total
}

// SuccessRate returns the rounded percentage of the habit's logs that count as progress.
func SuccessRate(habitID string, logs []models.HabitLog) int {
	byDate := logsByDate(habitID, logs)
	if len(byDate) == 0 {
		return 0
	}
	done := 0
	for _, l := range byDate {
		if l.Status.Counts() {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(byDate)) * 100))
}

// Summarize computes every streak figure for habit.
func Summarize(habit models.Habit, logs []models.HabitLog, today time.Time) Summary {
	return Summary{
		Current:          Current(habit.ID, logs, habit, today),
		Best:             Best(habit.ID, logs),
		TotalCompletions: TotalCompletions(habit.ID, logs),
		SuccessRate:      SuccessRate(habit.ID, logs),
	}
}

// ForHabit looks the habit up by ID and summarizes it. An unknown ID yields a zero Summary.
func ForHabit(habitID string, habits []models.Habit, logs []models.HabitLog, today time.Time) Summary {
	for _, h := range habits {
		if h.ID == habitID {
			return Summarize(h, logs, today)
		}
	}
	return Summary{}
}
