// Package achievement evaluates which milestone achievements a habit has newly unlocked.
package achievement

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/clock"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/streak"
	"github.com/julianstephens/habitual/internal/utils"
)

var (
	// StreakMilestones are the current-streak lengths that unlock a streak achievement.
	StreakMilestones = []int{3, 7, 14, 21, 30, 60, 90, 180, 365}
	// CompletionMilestones are the completion totals that unlock a total achievement.
	CompletionMilestones = []int{10, 50, 100, 500, 1000}
)

// Evaluator checks a habit against the milestone tables.
type Evaluator struct {
	Clock        clock.Clock
	WeekStartsOn time.Weekday
	NewID        func() string
}

// NewEvaluator returns an evaluator that assigns random UUIDs to new achievements.
func NewEvaluator(clk clock.Clock, weekStartsOn time.Weekday) *Evaluator {
	return &Evaluator{
		Clock:        clk,
		WeekStartsOn: weekStartsOn,
		NewID:        uuid.NewString,
	}
}

// Check returns the achievements habit has earned that are not in existing.
// All checks run independently and their results are returned together.
// Streak, total and first-completion achievements unlock once per milestone;
// perfect week and perfect month re-arm once their recency window has passed.
// The inputs are not modified.
func (e *Evaluator) Check(habitID string, logs []models.HabitLog, habit models.Habit, existing []models.Achievement) []models.Achievement {
	now := e.Clock.Now()
	var unlocked []models.Achievement

	mine := make([]models.Achievement, 0, len(existing))
	for _, a := range existing {
		if a.HabitID == habitID {
			mine = append(mine, a)
		}
	}

	emit := func(t models.AchievementType, milestone int) {
		unlocked = append(unlocked, models.Achievement{
			ID:         e.NewID(),
			HabitID:    habitID,
			Type:       t,
			Milestone:  milestone,
			UnlockedAt: now,
			Celebrated: false,
		})
	}

	total := streak.TotalCompletions(habitID, logs)
	current := streak.Current(habitID, logs, habit, now)

	if !hasType(mine, models.AchievementFirstCompletion) && total >= 1 {
		emit(models.AchievementFirstCompletion, 1)
	}

	for _, m := range StreakMilestones {
		if current >= m && !hasMilestone(mine, models.AchievementStreak, m) {
			emit(models.AchievementStreak, m)
		}
	}

	for _, m := range CompletionMilestones {
		if total >= m && !hasMilestone(mine, models.AchievementTotal, m) {
			emit(models.AchievementTotal, m)
		}
	}

	byDate := completionDates(habitID, logs)

	week := utils.WeekDates(now, e.WeekStartsOn)
	if isPerfect(week, habit, byDate) && !hasRecent(mine, models.AchievementPerfectWeek, now, constants.PerfectWeekWindowDays) {
		emit(models.AchievementPerfectWeek, 1)
	}

	month := utils.MonthDates(now)
	if isPerfect(month, habit, byDate) && !hasRecent(mine, models.AchievementPerfectMonth, now, constants.PerfectMonthWindowDays) {
		emit(models.AchievementPerfectMonth, 1)
	}

	return unlocked
}

// isPerfect reports whether every date of the period has progress. Only daily
// schedules are checked per date; other schedule types pass without inspection.
func isPerfect(dates []string, habit models.Habit, done map[string]bool) bool {
	for _, d := range dates {
		if _, daily := habit.Schedule.(models.Daily); daily && !done[d] {
			return false
		}
	}
	return true
}

func completionDates(habitID string, logs []models.HabitLog) map[string]bool {
	latest := make(map[string]models.LogStatus)
	for _, l := range logs {
		if l.HabitID == habitID {
			latest[l.Date] = l.Status
		}
	}
	done := make(map[string]bool, len(latest))
	for d, s := range latest {
		done[d] = s.Counts()
	}
	return done
}

func hasType(achievements []models.Achievement, t models.AchievementType) bool {
	for _, a := range achievements {
		if a.Type == t {
			return true
		}
	}
	return false
}

func hasMilestone(achievements []models.Achievement, t models.AchievementType, milestone int) bool {
	for _, a := range achievements {
		if a.Type == t && a.Milestone == milestone {
			return true
		}
	}
	return false
}

// hasRecent reports whether an achievement of type t unlocked strictly within the last days days.
func hasRecent(achievements []models.Achievement, t models.AchievementType, now time.Time, days int) bool {
	cutoff := now.AddDate(0, 0, -days)
	for _, a := range achievements {
		if a.Type == t && a.UnlockedAt.After(cutoff) {
			return true
		}
	}
	return false
}
