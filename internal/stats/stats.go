// Package stats aggregates habit logs into chart, heatmap and summary data.
package stats

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/schedule"
	"github.com/julianstephens/habitual/internal/utils"
)

// StatusNone marks a date without a log.
const StatusNone = "none"

// ChartPoint is one date of a chart or heatmap.
type ChartPoint struct {
	Date       string  `json:"date"`
	Value      float64 `json:"value"`
	Percentage int     `json:"percentage"`
	Status     string  `json:"status"` // a models.LogStatus or StatusNone
}

// TrendPoint is one logged date of a trend line.
type TrendPoint struct {
	Date       string `json:"date"`
	Percentage int    `json:"percentage"`
}

// GlobalStats are totals across every habit.
type GlobalStats struct {
	TotalHabits      int `json:"total_habits"`
	TotalCompletions int `json:"total_completions"`
	WeekCompletions  int `json:"week_completions"`
	MonthCompletions int `json:"month_completions"`
	YearCompletions  int `json:"year_completions"`
}

// DaySummary is the progress of all active habits scheduled on one date.
type DaySummary struct {
	Date       string `json:"date"`
	Scheduled  int    `json:"scheduled"`
	Completed  int    `json:"completed"`
	Percentage int    `json:"percentage"`
}

// Percentage is the share of goal reached by value, rounded and capped at 100.
// A non-positive goal counts any progress as fully reached.
func Percentage(value, goal float64) int {
	if goal <= 0 {
		if value > 0 {
			return 100
		}
		return 0
	}
	p := int(math.Round(value / goal * 100))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

func habitLogs(habitID string, logs []models.HabitLog) map[string]models.HabitLog {
	byDate := make(map[string]models.HabitLog)
	for _, l := range logs {
		if l.HabitID == habitID {
			byDate[l.Date] = l
		}
	}
	return byDate
}

func points(dates []string, byDate map[string]models.HabitLog, habit models.Habit) []ChartPoint {
	out := make([]ChartPoint, len(dates))
	for i, d := range dates {
		l, ok := byDate[d]
		if !ok {
			out[i] = ChartPoint{Date: d, Status: StatusNone}
			continue
		}
		out[i] = ChartPoint{
			Date:       d,
			Value:      l.Value,
			Percentage: Percentage(l.Value, habit.Goal.Value),
			Status:     string(l.Status),
		}
	}
	return out
}

// WeeklyChart returns one point per date of the week containing today.
func WeeklyChart(habitID string, logs []models.HabitLog, habit models.Habit, today time.Time, weekStartsOn time.Weekday) []ChartPoint {
	return points(utils.WeekDates(today, weekStartsOn), habitLogs(habitID, logs), habit)
}

// MonthlyHeatmap returns one point per date of the calendar month containing month.
func MonthlyHeatmap(habitID string, logs []models.HabitLog, habit models.Habit, month time.Time) []ChartPoint {
	return points(utils.MonthDates(month), habitLogs(habitID, logs), habit)
}

// Trend returns the habit's logged dates within the last days days up to today, ascending.
func Trend(habitID string, logs []models.HabitLog, habit models.Habit, days int, today time.Time) []TrendPoint {
	end := utils.Today(today)
	start := utils.AddDays(end, -days)

	byDate := habitLogs(habitID, logs)
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		if d > start && d <= end {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)

	out := make([]TrendPoint, len(dates))
	for i, d := range dates {
		out[i] = TrendPoint{Date: d, Percentage: Percentage(byDate[d].Value, habit.Goal.Value)}
	}
	return out
}

// MovingAverage smooths a trend with a trailing window. Data shorter than the
// window is returned unchanged; the first points average over what is available.
func MovingAverage(data []TrendPoint, window int) []TrendPoint {
	if window <= 0 || len(data) < window {
		return data
	}
	out := make([]TrendPoint, len(data))
	sum := 0
	for i, p := range data {
		sum += p.Percentage
		if i >= window {
			sum -= data[i-window].Percentage
		}
		n := min(i+1, window)
		out[i] = TrendPoint{Date: p.Date, Percentage: int(math.Round(float64(sum) / float64(n)))}
	}
	return out
}

// Global counts active habits and completed or partial logs overall and within
// the week, month and year containing today.
func Global(logs []models.HabitLog, habits []models.Habit, today time.Time, weekStartsOn time.Weekday) GlobalStats {
	var g GlobalStats
	for _, h := range habits {
		if !h.IsArchived() {
			g.TotalHabits++
		}
	}

	week := utils.WeekDates(today, weekStartsOn)
	weekStart, weekEnd := week[0], week[len(week)-1]
	todayStr := utils.Today(today)
	month := todayStr[:7]
	year := strconv.Itoa(utils.DateOf(today).Year())

	for _, l := range logs {
		if !l.Status.Counts() {
			continue
		}
		g.TotalCompletions++
		if l.Date >= weekStart && l.Date <= weekEnd {
			g.WeekCompletions++
		}
		if len(l.Date) >= 7 && l.Date[:7] == month {
			g.MonthCompletions++
		}
		if len(l.Date) >= 4 && l.Date[:4] == year {
			g.YearCompletions++
		}
	}
	return g
}

// Day summarizes every active habit scheduled on date.
func Day(date string, habits []models.Habit, logs []models.HabitLog) DaySummary {
	done := make(map[string]bool)
	for _, l := range logs {
		if l.Date == date {
			done[l.HabitID] = l.Status.Counts()
		}
	}

	s := DaySummary{Date: date}
	for _, h := range habits {
		if h.IsArchived() || !schedule.IsDateScheduled(date, h) {
			continue
		}
		s.Scheduled++
		if done[h.ID] {
			s.Completed++
		}
	}
	if s.Scheduled > 0 {
		s.Percentage = int(math.Round(float64(s.Completed) / float64(s.Scheduled) * 100))
	}
	return s
}
