package stats

import (
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/utils"
)

// Level is the intensity bucket of a heatmap cell.
type Level int

const (
	LevelEmpty Level = iota
	LevelLow
	LevelQuarter
	LevelHalf
	LevelHigh
	LevelFull
	LevelSkipped
	LevelPadding
)

// HeatCell is one day of the yearly grid. Padding cells precede January 1st
// so the first column starts on the week start.
type HeatCell struct {
	ChartPoint
	Padding bool  `json:"padding"`
	Level   Level `json:"level"`
}

// LevelOf buckets a point by completion percentage.
func LevelOf(p ChartPoint) Level {
	switch {
	case p.Status == string(models.StatusSkipped):
		return LevelSkipped
	case p.Status == string(models.StatusMissed) || p.Percentage == 0:
		return LevelEmpty
	case p.Percentage >= 100:
		return LevelFull
	case p.Percentage >= 75:
		return LevelHigh
	case p.Percentage >= 50:
		return LevelHalf
	case p.Percentage >= 25:
		return LevelQuarter
	default:
		return LevelLow
	}
}

// YearlyHeatmap lays out a year as columns of seven days. Only the front is padded;
// the last column may be shorter than seven.
func YearlyHeatmap(habitID string, logs []models.HabitLog, habit models.Habit, year int, weekStartsOn time.Weekday) [][]HeatCell {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	padding := (int(jan1.Weekday()) - int(weekStartsOn) + 7) % 7

	var cells []HeatCell
	for i := padding; i > 0; i-- {
		cells = append(cells, HeatCell{
			ChartPoint: ChartPoint{Date: utils.FormatDate(jan1.AddDate(0, 0, -i)), Status: StatusNone},
			Padding:    true,
			Level:      LevelPadding,
		})
	}
	for _, p := range points(utils.YearDates(year), habitLogs(habitID, logs), habit) {
		cells = append(cells, HeatCell{ChartPoint: p, Level: LevelOf(p)})
	}

	var weeks [][]HeatCell
	for start := 0; start < len(cells); start += 7 {
		end := min(start+7, len(cells))
		weeks = append(weeks, cells[start:end])
	}
	return weeks
}
