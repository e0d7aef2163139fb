package streak

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/utils"
)

// Wednesday
var today = time.Date(2026, 1, 14, 9, 30, 0, 0, time.UTC)

func dailyHabit() models.Habit {
	return models.Habit{
		ID:       "h1",
		Name:     "Read",
		Type:     models.HabitGood,
		Goal:     models.Goal{Value: 1, Unit: models.UnitCount},
		Schedule: models.Daily{},
	}
}

func logOn(daysAgo int, status models.LogStatus) models.HabitLog {
	return models.HabitLog{
		ID:      utils.AddDays("2026-01-14", -daysAgo),
		HabitID: "h1",
		Date:    utils.AddDays("2026-01-14", -daysAgo),
		Value:   1,
		Status:  status,
	}
}

func run(from, to int, status models.LogStatus) []models.HabitLog {
	var logs []models.HabitLog
	for d := from; d <= to; d++ {
		logs = append(logs, logOn(d, status))
	}
	return logs
}

func TestCurrent_UnloggedTodayKeepsStreak(t *testing.T) {
	h := dailyHabit()

	// created today, completed today
	assert.Equal(t, 1, Current("h1", []models.HabitLog{logOn(0, models.StatusCompleted)}, h, today))

	// five completed days ending yesterday, nothing today
	assert.Equal(t, 5, Current("h1", run(1, 5, models.StatusCompleted), h, today))
}

func TestCurrent_MissedTodayFallsBackToYesterday(t *testing.T) {
	h := dailyHabit()
	logs := append(run(1, 5, models.StatusCompleted), logOn(0, models.StatusMissed))

	// today is scheduled but explicitly missed: not counted, walk resumes at yesterday
	assert.Equal(t, 5, Current("h1", logs, h, today))
}

func TestCurrent_SkipDoesNotBreakStreak(t *testing.T) {
	h := dailyHabit()
	without := append(run(1, 2, models.StatusCompleted), run(4, 6, models.StatusCompleted)...)
	without = append(without, logOn(3, models.StatusCompleted))
	withSkip := append(run(1, 2, models.StatusCompleted), run(4, 6, models.StatusCompleted)...)
	withSkip = append(withSkip, models.HabitLog{HabitID: "h1", Date: utils.AddDays("2026-01-14", -3), Value: 0, Status: models.StatusSkipped})

	// the skipped day itself is not counted but does not break the run
	assert.Equal(t, 6, Current("h1", without, h, today))
	assert.Equal(t, 5, Current("h1", withSkip, h, today))

	gapOnly := append(run(1, 2, models.StatusCompleted), run(4, 6, models.StatusCompleted)...)
	assert.Equal(t, 2, Current("h1", gapOnly, h, today))
	assert.GreaterOrEqual(t, Current("h1", withSkip, h, today), Current("h1", gapOnly, h, today))
}

func TestCurrent(t *testing.T) {
	h := dailyHabit()

	tests := []struct {
		name  string
		habit models.Habit
		logs  []models.HabitLog
		want  int
	}{
		{name: "no logs", habit: h, logs: nil, want: 0},
		{name: "only other habit logs", habit: h, logs: []models.HabitLog{{HabitID: "other", Date: "2026-01-13", Status: models.StatusCompleted}}, want: 0},
		{name: "partial counts", habit: h, logs: run(0, 2, models.StatusPartial), want: 3},
		{name: "missed yesterday breaks", habit: h, logs: append(run(2, 4, models.StatusCompleted), logOn(1, models.StatusMissed)), want: 0},
		{name: "gap breaks", habit: h, logs: append(run(1, 2, models.StatusCompleted), run(4, 9, models.StatusCompleted)...), want: 2},
		{name: "skipped today steps back", habit: h, logs: append(run(1, 3, models.StatusCompleted), logOn(0, models.StatusSkipped)), want: 3},
		{
			// Mon/Wed/Fri; today is Wednesday. Unscheduled Tue/Sun/Sat/Thu are stepped over.
			name:  "specific days skip unscheduled",
			habit: models.Habit{ID: "h1", Schedule: models.SpecificDays{Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday}}},
			logs: []models.HabitLog{
				logOn(0, models.StatusCompleted), // Wed 14
				logOn(2, models.StatusCompleted), // Mon 12
				logOn(5, models.StatusCompleted), // Fri 9
				logOn(7, models.StatusCompleted), // Wed 7
			},
			want: 4,
		},
		{
			// today (Wednesday) is not scheduled, so the walk starts on today itself and skips it
			name:  "unscheduled today",
			habit: models.Habit{ID: "h1", Schedule: models.SpecificDays{Days: []time.Weekday{time.Tuesday}}},
			logs:  []models.HabitLog{logOn(1, models.StatusCompleted), logOn(8, models.StatusCompleted)},
			want:  2,
		},
		{name: "lookup capped at one year", habit: h, logs: run(1, 400, models.StatusCompleted), want: 365},
		{name: "nil schedule never scheduled", habit: models.Habit{ID: "h1"}, logs: run(0, 3, models.StatusCompleted), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Current("h1", tt.logs, tt.habit, today))
		})
	}
}

func TestCurrent_DoesNotMutateLogs(t *testing.T) {
	logs := []models.HabitLog{logOn(2, models.StatusCompleted), logOn(1, models.StatusCompleted)}
	snapshot := append([]models.HabitLog(nil), logs...)
	Current("h1", logs, dailyHabit(), today)
	Best("h1", logs)
	assert.Equal(t, snapshot, logs)
}

func TestBest(t *testing.T) {
	logs := append(run(10, 14, models.StatusCompleted), logOn(9, models.StatusMissed))
	logs = append(logs, run(1, 3, models.StatusCompleted)...)
	logs = append(logs, logOn(5, models.StatusSkipped))
	assert.Equal(t, 5, Best("h1", logs))

	// schedule-blind: a gap between logged days does not reset the run
	gap := append(run(1, 2, models.StatusCompleted), run(5, 6, models.StatusCompleted)...)
	assert.Equal(t, 4, Best("h1", gap))

	assert.Equal(t, 0, Best("h1", nil))
}

func TestBest_MonotonicUnderAppend(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	statuses := []models.LogStatus{models.StatusCompleted, models.StatusPartial, models.StatusMissed, models.StatusSkipped}

	for trial := 0; trial < 50; trial++ {
		var logs []models.HabitLog
		day := 0
		for i := 0; i < 30; i++ {
			logs = append(logs, models.HabitLog{HabitID: "h1", Date: utils.AddDays("2025-01-01", day), Status: statuses[r.Intn(len(statuses))]})
			day++
		}
		prev := Best("h1", logs)
		for i := 0; i < 20; i++ {
			logs = append(logs, models.HabitLog{HabitID: "h1", Date: utils.AddDays("2025-01-01", day), Status: models.StatusCompleted})
			day++
			cur := Best("h1", logs)
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	}
}

func TestTotalCompletionsAndSuccessRate(t *testing.T) {
	logs := []models.HabitLog{
		logOn(1, models.StatusCompleted),
		logOn(2, models.StatusPartial),
		logOn(3, models.StatusMissed),
		{HabitID: "other", Date: "2026-01-10", Status: models.StatusCompleted},
	}
	assert.Equal(t, 2, TotalCompletions("h1", logs))
	assert.Equal(t, 67, SuccessRate("h1", logs))

	// scenario E
	assert.Equal(t, 0, SuccessRate("h1", nil))
	assert.Equal(t, 0, SuccessRate("missing", logs))
}

func TestTotalCompletions_TrustsStoredStatus(t *testing.T) {
	// value exceeds the goal but the stored status is missed
	logs := []models.HabitLog{{HabitID: "h1", Date: "2026-01-10", Value: 50, Status: models.StatusMissed}}
	assert.Equal(t, 0, TotalCompletions("h1", logs))
}

func TestForHabit(t *testing.T) {
	h := dailyHabit()
	logs := run(0, 3, models.StatusCompleted)

	s := ForHabit("h1", []models.Habit{h}, logs, today)
	assert.Equal(t, Summary{Current: 4, Best: 4, TotalCompletions: 4, SuccessRate: 100}, s)

	assert.Equal(t, Summary{}, ForHabit("nope", []models.Habit{h}, logs, today))
}
