package achievement

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitual/internal/clock"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/utils"
)

func newTestEvaluator(now time.Time) *Evaluator {
	e := NewEvaluator(clock.Fixed(now), time.Sunday)
	n := 0
	e.NewID = func() string {
		n++
		return fmt.Sprintf("a%d", n)
	}
	return e
}

func daily() models.Habit {
	return models.Habit{ID: "h1", Name: "Read", Type: models.HabitGood, Goal: models.Goal{Value: 1, Unit: models.UnitCount}, Schedule: models.Daily{}}
}

// completedRun logs completed days from start for n days.
func completedRun(start string, n int) []models.HabitLog {
	logs := make([]models.HabitLog, n)
	for i := range logs {
		logs[i] = models.HabitLog{HabitID: "h1", Date: utils.AddDays(start, i), Value: 1, Status: models.StatusCompleted}
	}
	return logs
}

func ofType(as []models.Achievement, t models.AchievementType) []int {
	var ms []int
	for _, a := range as {
		if a.Type == t {
			ms = append(ms, a.Milestone)
		}
	}
	return ms
}

func TestCheck_TenSpreadCompletionsUnlockTotal(t *testing.T) {
	// ten completions spread out so no streak milestone beyond the first is reached
	var logs []models.HabitLog
	for i := 0; i < 10; i++ {
		logs = append(logs, models.HabitLog{HabitID: "h1", Date: utils.AddDays("2025-06-01", i*3), Status: models.StatusCompleted})
	}
	now := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)
	e := newTestEvaluator(now)

	got := e.Check("h1", logs, daily(), nil)
	assert.Equal(t, []int{10}, ofType(got, models.AchievementTotal))
	assert.Equal(t, []int{1}, ofType(got, models.AchievementFirstCompletion))
	assert.Empty(t, ofType(got, models.AchievementStreak))

	again := e.Check("h1", logs, daily(), got)
	assert.Empty(t, again)
}

func TestCheck_StreakMilestones(t *testing.T) {
	now := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)
	// 8 completed days ending today
	logs := completedRun("2026-01-07", 8)
	e := newTestEvaluator(now)

	got := e.Check("h1", logs, daily(), nil)
	assert.Equal(t, []int{3, 7}, ofType(got, models.AchievementStreak))
	for _, a := range got {
		assert.Equal(t, "h1", a.HabitID)
		assert.Equal(t, now, a.UnlockedAt)
		assert.False(t, a.Celebrated)
		assert.NotEmpty(t, a.ID)
	}

	existing := []models.Achievement{{HabitID: "h1", Type: models.AchievementStreak, Milestone: 3}}
	got = e.Check("h1", logs, daily(), existing)
	assert.Equal(t, []int{7}, ofType(got, models.AchievementStreak))

	// achievements of another habit do not block this one
	other := []models.Achievement{{HabitID: "h2", Type: models.AchievementStreak, Milestone: 3}}
	got = e.Check("h1", logs, daily(), other)
	assert.Equal(t, []int{3, 7}, ofType(got, models.AchievementStreak))
}

func TestCheck_PerfectWeek(t *testing.T) {
	// Saturday 2026-01-17 closes the Sunday-started week of 11..17
	now := time.Date(2026, 1, 17, 20, 0, 0, 0, time.UTC)
	logs := completedRun("2026-01-11", 7)
	e := newTestEvaluator(now)

	got := e.Check("h1", logs, daily(), nil)
	assert.Equal(t, []int{1}, ofType(got, models.AchievementPerfectWeek))
	assert.Empty(t, ofType(got, models.AchievementPerfectMonth))

	// unlocked within the last 7 days blocks a repeat
	recent := []models.Achievement{{HabitID: "h1", Type: models.AchievementPerfectWeek, Milestone: 1, UnlockedAt: now.AddDate(0, 0, -3)}}
	assert.Empty(t, ofType(e.Check("h1", logs, daily(), recent), models.AchievementPerfectWeek))

	// exactly 7 days old has re-armed
	stale := []models.Achievement{{HabitID: "h1", Type: models.AchievementPerfectWeek, Milestone: 1, UnlockedAt: now.AddDate(0, 0, -7)}}
	assert.Equal(t, []int{1}, ofType(e.Check("h1", logs, daily(), stale), models.AchievementPerfectWeek))
}

func TestCheck_PerfectWeekRespectsWeekStart(t *testing.T) {
	// Saturday; with a Monday start the week runs 12..18 and Sunday 18 is still ahead
	now := time.Date(2026, 1, 17, 20, 0, 0, 0, time.UTC)
	logs := completedRun("2026-01-11", 7)
	e := newTestEvaluator(now)
	e.WeekStartsOn = time.Monday

	assert.Empty(t, ofType(e.Check("h1", logs, daily(), nil), models.AchievementPerfectWeek))
}

func TestCheck_PerfectMonth(t *testing.T) {
	now := time.Date(2026, 2, 28, 21, 0, 0, 0, time.UTC)
	logs := completedRun("2026-02-01", 28)
	e := newTestEvaluator(now)

	got := e.Check("h1", logs, daily(), nil)
	assert.Equal(t, []int{1}, ofType(got, models.AchievementPerfectMonth))
	assert.Equal(t, []int{3, 7, 14, 21}, ofType(got, models.AchievementStreak))
	assert.Equal(t, []int{10}, ofType(got, models.AchievementTotal))
}

func TestCheck_PerfectMonthRearms(t *testing.T) {
	now := time.Date(2026, 2, 28, 21, 0, 0, 0, time.UTC)
	logs := completedRun("2026-02-01", 28)
	e := newTestEvaluator(now)

	// unlocked 29 days ago still blocks a repeat
	recent := []models.Achievement{{HabitID: "h1", Type: models.AchievementPerfectMonth, Milestone: 1, UnlockedAt: now.AddDate(0, 0, -29)}}
	assert.Empty(t, ofType(e.Check("h1", logs, daily(), recent), models.AchievementPerfectMonth))

	// exactly 30 days old has re-armed
	stale := []models.Achievement{{HabitID: "h1", Type: models.AchievementPerfectMonth, Milestone: 1, UnlockedAt: now.AddDate(0, 0, -30)}}
	assert.Equal(t, []int{1}, ofType(e.Check("h1", logs, daily(), stale), models.AchievementPerfectMonth))

	// a perfect week inside that window does not block the month
	week := []models.Achievement{{HabitID: "h1", Type: models.AchievementPerfectWeek, Milestone: 1, UnlockedAt: now.AddDate(0, 0, -1)}}
	assert.Equal(t, []int{1}, ofType(e.Check("h1", logs, daily(), week), models.AchievementPerfectMonth))
}

func TestCheck_NonDailyPassesPerfectPeriodsVacuously(t *testing.T) {
	now := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)
	h := daily()
	h.Schedule = models.Weekly{Target: 3}

	got := newTestEvaluator(now).Check("h1", nil, h, nil)
	assert.Equal(t, []int{1}, ofType(got, models.AchievementPerfectWeek))
	assert.Equal(t, []int{1}, ofType(got, models.AchievementPerfectMonth))
	assert.Empty(t, ofType(got, models.AchievementFirstCompletion))
}

func TestCheck_Idempotent(t *testing.T) {
	now := time.Date(2026, 1, 31, 22, 0, 0, 0, time.UTC)
	habits := []models.Habit{daily()}
	datasets := [][]models.HabitLog{
		nil,
		completedRun("2026-01-01", 31),
		completedRun("2025-01-01", 396),
		append(completedRun("2025-10-01", 40), models.HabitLog{HabitID: "h1", Date: "2026-01-30", Status: models.StatusMissed}),
	}

	for i, logs := range datasets {
		t.Run(fmt.Sprintf("dataset %d", i), func(t *testing.T) {
			e := newTestEvaluator(now)
			first := e.Check("h1", logs, habits[0], nil)
			second := e.Check("h1", logs, habits[0], first)
			require.Empty(t, second)
		})
	}
}

func TestCheck_DoesNotMutateInputs(t *testing.T) {
	now := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)
	logs := completedRun("2026-01-01", 14)
	existing := []models.Achievement{{ID: "x", HabitID: "h1", Type: models.AchievementStreak, Milestone: 3}}
	logsCopy := append([]models.HabitLog(nil), logs...)
	existingCopy := append([]models.Achievement(nil), existing...)

	newTestEvaluator(now).Check("h1", logs, daily(), existing)
	assert.Equal(t, logsCopy, logs)
	assert.Equal(t, existingCopy, existing)
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		a     models.Achievement
		title string
		desc  string
		icon  string
	}{
		{models.Achievement{Type: models.AchievementFirstCompletion, Milestone: 1}, "First Step!", "Completed your first day!", "🎉"},
		{models.Achievement{Type: models.AchievementStreak, Milestone: 3}, "3-Day Streak!", "3 days in a row!", "✨"},
		{models.Achievement{Type: models.AchievementStreak, Milestone: 7}, "7-Day Streak!", "One week strong!", "🔥"},
		{models.Achievement{Type: models.AchievementStreak, Milestone: 21}, "21-Day Streak!", "Habit formed!", "🔥"},
		{models.Achievement{Type: models.AchievementStreak, Milestone: 60}, "60-Day Streak!", "60 days in a row!", "⭐"},
		{models.Achievement{Type: models.AchievementStreak, Milestone: 90}, "90-Day Streak!", "Quarter year achieved!", "💎"},
		{models.Achievement{Type: models.AchievementStreak, Milestone: 365}, "365-Day Streak!", "Full year completed!", "👑"},
		{models.Achievement{Type: models.AchievementTotal, Milestone: 10}, "10 Completions!", "Reached 10 total completions!", "🥉"},
		{models.Achievement{Type: models.AchievementTotal, Milestone: 100}, "100 Completions!", "Reached 100 total completions!", "🥈"},
		{models.Achievement{Type: models.AchievementTotal, Milestone: 1000}, "1000 Completions!", "Reached 1000 total completions!", "🏆"},
		{models.Achievement{Type: models.AchievementPerfectWeek, Milestone: 1}, "Perfect Week!", "Completed all scheduled days this week!", "📅"},
		{models.Achievement{Type: models.AchievementPerfectMonth, Milestone: 1}, "Perfect Month!", "Completed all scheduled days this month!", "📆"},
		{models.Achievement{Type: "mystery"}, "Achievement Unlocked!", "", "🎯"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.title, Title(tt.a))
			assert.Equal(t, tt.desc, Description(tt.a))
			assert.Equal(t, tt.icon, Icon(tt.a))
		})
	}
}
