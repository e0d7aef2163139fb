package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitual/internal/models"
)

// Wednesday
var today = time.Date(2026, 1, 14, 18, 0, 0, 0, time.UTC)

func water() models.Habit {
	return models.Habit{
		ID:       "h1",
		Name:     "Water",
		Type:     models.HabitGood,
		Goal:     models.Goal{Value: 2000, Unit: models.UnitML},
		Schedule: models.Daily{},
	}
}

func entry(date string, value float64, status models.LogStatus) models.HabitLog {
	return models.HabitLog{HabitID: "h1", Date: date, Value: value, Status: status}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name        string
		value, goal float64
		want        int
	}{
		{name: "half", value: 1000, goal: 2000, want: 50},
		{name: "rounds", value: 1, goal: 3, want: 33},
		{name: "caps at 100", value: 3000, goal: 2000, want: 100},
		{name: "zero goal with progress", value: 1, goal: 0, want: 100},
		{name: "zero goal without progress", value: 0, goal: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.value, tt.goal))
		})
	}
}

func TestWeeklyChart(t *testing.T) {
	logs := []models.HabitLog{
		entry("2026-01-12", 2000, models.StatusCompleted),
		entry("2026-01-13", 500, models.StatusPartial),
		entry("2026-01-14", 0, models.StatusSkipped),
		{HabitID: "h2", Date: "2026-01-12", Value: 1, Status: models.StatusCompleted},
	}

	got := WeeklyChart("h1", logs, water(), today, time.Monday)
	require.Len(t, got, 7)
	assert.Equal(t, ChartPoint{Date: "2026-01-12", Value: 2000, Percentage: 100, Status: "completed"}, got[0])
	assert.Equal(t, ChartPoint{Date: "2026-01-13", Value: 500, Percentage: 25, Status: "partial"}, got[1])
	assert.Equal(t, "skipped", got[2].Status)
	assert.Equal(t, ChartPoint{Date: "2026-01-18", Status: StatusNone}, got[6])

	sunday := WeeklyChart("h1", logs, water(), today, time.Sunday)
	assert.Equal(t, "2026-01-11", sunday[0].Date)
}

func TestMonthlyHeatmap(t *testing.T) {
	logs := []models.HabitLog{entry("2026-02-03", 1500, models.StatusPartial)}
	got := MonthlyHeatmap("h1", logs, water(), time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC))
	require.Len(t, got, 28)
	assert.Equal(t, "2026-02-01", got[0].Date)
	assert.Equal(t, 75, got[2].Percentage)
	assert.Equal(t, StatusNone, got[27].Status)
}

func TestTrend(t *testing.T) {
	logs := []models.HabitLog{
		entry("2026-01-14", 2000, models.StatusCompleted),
		entry("2025-12-15", 2000, models.StatusCompleted), // exactly 30 days back, outside
		entry("2025-12-16", 1000, models.StatusPartial),
		entry("2026-01-02", 0, models.StatusMissed),
		entry("2026-01-15", 2000, models.StatusCompleted), // future
	}

	got := Trend("h1", logs, water(), 30, today)
	assert.Equal(t, []TrendPoint{
		{Date: "2025-12-16", Percentage: 50},
		{Date: "2026-01-02", Percentage: 0},
		{Date: "2026-01-14", Percentage: 100},
	}, got)
}

func TestMovingAverage(t *testing.T) {
	short := []TrendPoint{{Date: "a", Percentage: 10}, {Date: "b", Percentage: 20}}
	assert.Equal(t, short, MovingAverage(short, 7))

	data := []TrendPoint{
		{Date: "1", Percentage: 100},
		{Date: "2", Percentage: 0},
		{Date: "3", Percentage: 50},
		{Date: "4", Percentage: 25},
	}
	assert.Equal(t, []TrendPoint{
		{Date: "1", Percentage: 100},
		{Date: "2", Percentage: 50},
		{Date: "3", Percentage: 50},
		{Date: "4", Percentage: 25},
	}, MovingAverage(data, 3))
}

func TestGlobal(t *testing.T) {
	archivedAt := today
	habits := []models.Habit{water(), {ID: "h2"}, {ID: "h3", ArchivedAt: &archivedAt}}
	logs := []models.HabitLog{
		entry("2026-01-12", 1, models.StatusCompleted),           // week, month, year
		entry("2026-01-10", 1, models.StatusPartial),             // month, year
		entry("2026-01-11", 1, models.StatusMissed),              // not counted
		{HabitID: "h2", Date: "2026-01-13", Status: models.StatusSkipped},
		{HabitID: "h3", Date: "2026-01-05", Status: models.StatusCompleted},
		{HabitID: "h2", Date: "2025-12-31", Status: models.StatusCompleted},
	}

	got := Global(logs, habits, today, time.Sunday)
	assert.Equal(t, GlobalStats{
		TotalHabits:      2,
		TotalCompletions: 4,
		WeekCompletions:  1,
		MonthCompletions: 3,
		YearCompletions:  3,
	}, got)

	// a Monday week start puts Sunday the 11th out of range but the 12th in
	assert.Equal(t, 1, Global(logs, habits, today, time.Monday).WeekCompletions)
}

func TestDay(t *testing.T) {
	archivedAt := today
	habits := []models.Habit{
		water(),
		{ID: "h2", Schedule: models.Daily{}},
		{ID: "h3", Schedule: models.SpecificDays{Days: []time.Weekday{time.Monday}}},
		{ID: "h4", Schedule: models.Daily{}, ArchivedAt: &archivedAt},
	}
	logs := []models.HabitLog{
		entry("2026-01-14", 2000, models.StatusCompleted),
		{HabitID: "h2", Date: "2026-01-14", Status: models.StatusMissed},
		{HabitID: "h4", Date: "2026-01-14", Status: models.StatusCompleted},
	}

	got := Day("2026-01-14", habits, logs)
	assert.Equal(t, DaySummary{Date: "2026-01-14", Scheduled: 2, Completed: 1, Percentage: 50}, got)

	assert.Equal(t, DaySummary{Date: "2026-01-14"}, Day("2026-01-14", nil, nil))
}

func TestYearlyHeatmap(t *testing.T) {
	// 2026-01-01 is a Thursday
	logs := []models.HabitLog{
		entry("2026-01-01", 2000, models.StatusCompleted),
		entry("2026-01-02", 1600, models.StatusPartial),
		entry("2026-01-03", 0, models.StatusSkipped),
	}

	weeks := YearlyHeatmap("h1", logs, water(), 2026, time.Sunday)
	require.NotEmpty(t, weeks)
	first := weeks[0]
	require.Len(t, first, 7)
	for i := 0; i < 4; i++ {
		assert.True(t, first[i].Padding)
		assert.Equal(t, LevelPadding, first[i].Level)
	}
	assert.Equal(t, "2025-12-28", first[0].Date)
	assert.Equal(t, "2026-01-01", first[4].Date)
	assert.Equal(t, LevelFull, first[4].Level)
	assert.Equal(t, LevelHigh, first[5].Level)
	assert.Equal(t, LevelSkipped, first[6].Level)

	total := 0
	padding := 0
	for _, w := range weeks {
		for _, c := range w {
			total++
			if c.Padding {
				padding++
			}
		}
	}
	assert.Equal(t, 4, padding)
	assert.Equal(t, 365+4, total)

	monday := YearlyHeatmap("h1", logs, water(), 2026, time.Monday)
	assert.Equal(t, "2025-12-29", monday[0][0].Date)
}

func TestLevelOf(t *testing.T) {
	assert.Equal(t, LevelEmpty, LevelOf(ChartPoint{Status: StatusNone}))
	assert.Equal(t, LevelEmpty, LevelOf(ChartPoint{Status: "missed", Percentage: 80}))
	assert.Equal(t, LevelLow, LevelOf(ChartPoint{Status: "partial", Percentage: 10}))
	assert.Equal(t, LevelQuarter, LevelOf(ChartPoint{Status: "partial", Percentage: 25}))
	assert.Equal(t, LevelHalf, LevelOf(ChartPoint{Status: "partial", Percentage: 60}))
}
