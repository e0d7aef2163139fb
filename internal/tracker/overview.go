package tracker

import (
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/schedule"
	"github.com/julianstephens/habitual/internal/stats"
	"github.com/julianstephens/habitual/internal/streak"
	"github.com/julianstephens/habitual/internal/utils"
)

// HabitStatus is one row of a day overview.
type HabitStatus struct {
	Habit     models.Habit
	Scheduled bool
	Log       *models.HabitLog
	Streak    streak.Summary
}

// Overview is the state of every active habit on one date.
type Overview struct {
	Date    string
	Habits  []HabitStatus
	Summary stats.DaySummary
}

// HabitStats bundles the per-habit charts shown by the stats views.
type HabitStats struct {
	Habit   models.Habit
	Summary streak.Summary
	Week    []stats.ChartPoint
	Month   []stats.ChartPoint
}

// Overview reports every active habit for date (today when empty). Streaks are
// computed as of the tracker's clock.
func (t *Tracker) Overview(date string) (Overview, error) {
	if date == "" {
		date = t.Today()
	}
	if _, err := utils.ParseDate(date); err != nil {
		return Overview{}, err
	}

	habits, err := t.store.GetAllHabits(false)
	if err != nil {
		return Overview{}, err
	}
	logs, err := t.store.GetAllLogs()
	if err != nil {
		return Overview{}, err
	}

	now := t.clock.Now()
	out := Overview{Date: date, Summary: stats.Day(date, habits, logs)}
	for _, h := range habits {
		row := HabitStatus{
			Habit:     h,
			Scheduled: schedule.IsDateScheduled(date, h),
			Streak:    streak.Summarize(h, logs, now),
		}
		for i := range logs {
			if logs[i].HabitID == h.ID && logs[i].Date == date {
				l := logs[i]
				row.Log = &l
			}
		}
		out.Habits = append(out.Habits, row)
	}
	return out, nil
}

// Summary returns the streak summary of a habit.
func (t *Tracker) Summary(ref string) (streak.Summary, error) {
	habit, logs, err := t.habitData(ref)
	if err != nil {
		return streak.Summary{}, err
	}
	return streak.Summarize(habit, logs, t.clock.Now()), nil
}

// Stats returns the summary, current-week chart and monthly heatmap of a habit.
// A zero month means the current month.
func (t *Tracker) Stats(ref string, month time.Time) (HabitStats, error) {
	habit, logs, err := t.habitData(ref)
	if err != nil {
		return HabitStats{}, err
	}
	settings, err := t.Settings()
	if err != nil {
		return HabitStats{}, err
	}
	now := t.clock.Now()
	if month.IsZero() {
		month = now
	}
	return HabitStats{
		Habit:   habit,
		Summary: streak.Summarize(habit, logs, now),
		Week:    stats.WeeklyChart(habit.ID, logs, habit, now, settings.WeekStartsOn),
		Month:   stats.MonthlyHeatmap(habit.ID, logs, habit, month),
	}, nil
}

// YearlyHeatmap returns the week-row grid of a habit for year.
func (t *Tracker) YearlyHeatmap(ref string, year int) (models.Habit, [][]stats.HeatCell, error) {
	habit, logs, err := t.habitData(ref)
	if err != nil {
		return models.Habit{}, nil, err
	}
	settings, err := t.Settings()
	if err != nil {
		return models.Habit{}, nil, err
	}
	return habit, stats.YearlyHeatmap(habit.ID, logs, habit, year, settings.WeekStartsOn), nil
}

// Trend returns the logged points of the last days days, smoothed with a
// trailing moving average when window is above 1.
func (t *Tracker) Trend(ref string, days, window int) (models.Habit, []stats.TrendPoint, error) {
	habit, logs, err := t.habitData(ref)
	if err != nil {
		return models.Habit{}, nil, err
	}
	points := stats.Trend(habit.ID, logs, habit, days, t.clock.Now())
	if window > 1 {
		points = stats.MovingAverage(points, window)
	}
	return habit, points, nil
}

// Global aggregates completion counts across all habits.
func (t *Tracker) Global() (stats.GlobalStats, error) {
	habits, err := t.store.GetAllHabits(true)
	if err != nil {
		return stats.GlobalStats{}, err
	}
	logs, err := t.store.GetAllLogs()
	if err != nil {
		return stats.GlobalStats{}, err
	}
	settings, err := t.Settings()
	if err != nil {
		return stats.GlobalStats{}, err
	}
	return stats.Global(logs, habits, t.clock.Now(), settings.WeekStartsOn), nil
}

func (t *Tracker) habitData(ref string) (models.Habit, []models.HabitLog, error) {
	habit, err := t.ResolveHabit(ref)
	if err != nil {
		return models.Habit{}, nil, err
	}
	logs, err := t.store.GetLogsForHabit(habit.ID)
	if err != nil {
		return models.Habit{}, nil, err
	}
	return habit, logs, nil
}
