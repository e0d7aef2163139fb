package habits

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/tracker"
)

var (
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	partialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308"))
	missedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA"))
)

// Item is one row of the dashboard: a habit and its state on the viewed date.
type Item struct {
	Row tracker.HabitStatus
}

func (i Item) Title() string {
	name := i.Row.Habit.Name
	if i.Row.Habit.Icon != "" {
		name = i.Row.Habit.Icon + " " + name
	}
	return Mark(i.Row) + " " + name
}

func (i Item) Description() string {
	goal := i.Row.Habit.Goal
	desc := "not scheduled"
	if i.Row.Scheduled || i.Row.Log != nil {
		var value float64
		if i.Row.Log != nil {
			value = i.Row.Log.Value
		}
		desc = fmt.Sprintf("%s/%s %s", formatValue(value), formatValue(goal.Value), goal.UnitLabel())
	}
	if i.Row.Streak.Current > 0 {
		desc += fmt.Sprintf("  🔥 %d", i.Row.Streak.Current)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Row.Habit.Name }

// Mark renders the status of a row as a short glyph.
func Mark(row tracker.HabitStatus) string {
	if row.Log == nil {
		if !row.Scheduled {
			return "·"
		}
		return "○"
	}
	switch row.Log.Status {
	case models.StatusCompleted:
		return doneStyle.Render("✓")
	case models.StatusPartial:
		return partialStyle.Render("◐")
	case models.StatusMissed:
		return missedStyle.Render("✗")
	case models.StatusSkipped:
		return skippedStyle.Render("–")
	}
	return "○"
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type Model struct {
	list list.Model
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return Model{list: l}
}

// SetRows replaces the rows and keeps the cursor on the same index when possible.
func (m *Model) SetRows(rows []tracker.HabitStatus) {
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = Item{Row: r}
	}
	index := m.list.Index()
	m.list.SetItems(items)
	if index >= len(items) {
		index = len(items) - 1
	}
	if index >= 0 {
		m.list.Select(index)
	}
}

// Selected returns the row under the cursor.
func (m Model) Selected() (tracker.HabitStatus, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return tracker.HabitStatus{}, false
	}
	return item.Row, true
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
