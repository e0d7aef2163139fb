// Package detail renders the per-habit statistics pane of the dashboard.
package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitual/internal/achievement"
	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/cli/reports"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/stats"
	"github.com/julianstephens/habitual/internal/tracker"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	stats        tracker.HabitStats
	year         [][]stats.HeatCell
	achievements []models.Achievement
}

func New(hs tracker.HabitStats, year [][]stats.HeatCell, unlocked []models.Achievement) Model {
	return Model{stats: hs, year: year, achievements: unlocked}
}

func (m Model) HabitID() string {
	return m.stats.Habit.ID
}

func (m Model) View() string {
	h := m.stats.Habit
	s := m.stats.Summary

	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.TrimSpace(h.Icon+" "+h.Name)) + "\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%s · goal %s", cli.FormatSchedule(h.Schedule), cli.FormatGoal(h.Goal))) + "\n\n")

	b.WriteString(fmt.Sprintf("Current streak  %d\n", s.Current))
	b.WriteString(fmt.Sprintf("Best streak     %d\n", s.Best))
	b.WriteString(fmt.Sprintf("Completions     %d\n", s.TotalCompletions))
	b.WriteString(fmt.Sprintf("Success rate    %d%%\n\n", s.SuccessRate))

	b.WriteString(labelStyle.Render("This week") + "\n")
	for _, p := range m.stats.Week {
		b.WriteString(fmt.Sprintf("%s %s %3d%%\n", p.Date, reports.Bar(p.Percentage, 20), p.Percentage))
	}

	b.WriteString("\n" + labelStyle.Render("This month") + "\n")
	b.WriteString(reports.RenderMonth(m.stats.Month))

	if len(m.year) > 0 {
		b.WriteString("\n" + labelStyle.Render("This year") + "\n")
		b.WriteString(reports.RenderYear(m.year))
	}

	if len(m.achievements) > 0 {
		b.WriteString("\n" + labelStyle.Render("Achievements") + "\n")
		for _, a := range m.achievements {
			b.WriteString(fmt.Sprintf("%s %s\n", achievement.Icon(a), achievement.Title(a)))
		}
	}
	return b.String()
}
