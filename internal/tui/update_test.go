package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitual/internal/clock"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
	"github.com/julianstephens/habitual/internal/tracker"
	"github.com/julianstephens/habitual/internal/tui/forms"
)

// Saturday
var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func setupModel(t *testing.T, names ...string) (Model, *tracker.Tracker) {
	t.Helper()
	t.Setenv(constants.EnvWeekStart, "")
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "habitual.db"))
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })

	tr := tracker.New(store, clock.Fixed(now))
	for _, name := range names {
		_, err := tr.CreateHabit(models.Habit{
			Name: name,
			Goal: models.Goal{Value: 1, Unit: models.UnitCount},
		})
		require.NoError(t, err)
	}

	m, err := NewModel(tr)
	require.NoError(t, err)
	return m, tr
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update must return a tui.Model")
	}
	return m
}

func statusOf(t *testing.T, tr *tracker.Tracker, name, date string) models.LogStatus {
	t.Helper()
	h, err := tr.ResolveHabit(name)
	require.NoError(t, err)
	log, ok, err := tr.LogFor(h.ID, date)
	require.NoError(t, err)
	if !ok {
		return ""
	}
	return log.Status
}

func TestCompleteShowsCelebration(t *testing.T) {
	m, tr := setupModel(t, "Read", "Walk")
	assert.Equal(t, StateDashboard, m.state)

	m = press(t, m, "x")
	assert.Equal(t, models.StatusCompleted, statusOf(t, tr, "Read", "2026-03-14"))
	require.Equal(t, StateCelebrate, m.state, "first completion unlocks an achievement")
	require.Len(t, m.queue, 1)
	assert.Equal(t, models.AchievementFirstCompletion, m.queue[0].Type)
	assert.Contains(t, m.View(), "Read")

	m = press(t, m, "z")
	assert.Equal(t, StateDashboard, m.state)
	pending, err := tr.Uncelebrated()
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Equal(t, 1, m.overview.Summary.Completed)
}

func TestCompleteTogglesOff(t *testing.T) {
	m, tr := setupModel(t, "Read")

	m = press(t, m, "x", "z", "x")
	assert.Equal(t, models.LogStatus(""), statusOf(t, tr, "Read", "2026-03-14"))
	assert.Equal(t, StateDashboard, m.state)
}

func TestSkipMissAndUnlog(t *testing.T) {
	m, tr := setupModel(t, "Read", "Walk")

	m = press(t, m, "s")
	assert.Equal(t, models.StatusSkipped, statusOf(t, tr, "Read", "2026-03-14"))
	assert.Equal(t, StateDashboard, m.state, "skipping unlocks nothing")

	m = press(t, m, "down", "m")
	assert.Equal(t, models.StatusMissed, statusOf(t, tr, "Walk", "2026-03-14"))

	m = press(t, m, "u")
	assert.Equal(t, models.LogStatus(""), statusOf(t, tr, "Walk", "2026-03-14"))
	assert.Contains(t, m.message, "Cleared Walk")
}

func TestDateNavigation(t *testing.T) {
	m, tr := setupModel(t, "Read")

	m = press(t, m, "right")
	assert.Equal(t, "2026-03-14", m.date, "cannot move past today")

	m = press(t, m, "left", "left")
	assert.Equal(t, "2026-03-12", m.date)

	m = press(t, m, "x")
	assert.Equal(t, models.StatusCompleted, statusOf(t, tr, "Read", "2026-03-12"))
	assert.Equal(t, models.LogStatus(""), statusOf(t, tr, "Read", "2026-03-14"))

	m = press(t, m, "z", "t")
	assert.Equal(t, "2026-03-14", m.date)
}

func TestDetailPane(t *testing.T) {
	m, tr := setupModel(t, "Read")
	for _, d := range []string{"2026-03-12", "2026-03-13", "2026-03-14"} {
		_, err := tr.Log(tracker.LogInput{Habit: "Read", Date: d})
		require.NoError(t, err)
	}
	_, err := tr.CelebrateAll()
	require.NoError(t, err)
	m.reload()

	m = press(t, m, "enter")
	require.Equal(t, StateDetail, m.state)
	view := m.View()
	assert.Contains(t, view, "Current streak  3")
	assert.Contains(t, view, "This year")

	m = press(t, m, "esc")
	assert.Equal(t, StateDashboard, m.state)
}

func TestDeleteConfirmation(t *testing.T) {
	m, tr := setupModel(t, "Read", "Walk")

	m = press(t, m, "d")
	require.Equal(t, StateConfirmDelete, m.state)
	assert.Contains(t, m.View(), "Delete Read permanently?")

	m = press(t, m, "n")
	assert.Equal(t, StateDashboard, m.state)
	habits, err := tr.Habits(false)
	require.NoError(t, err)
	assert.Len(t, habits, 2)

	m = press(t, m, "d", "y")
	habits, err = tr.Habits(false)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, "Walk", habits[0].Name)
	assert.Equal(t, 1, m.habits.Len())
}

func TestArchiveHidesHabit(t *testing.T) {
	m, tr := setupModel(t, "Read", "Walk")

	m = press(t, m, "A")
	assert.Equal(t, 1, m.habits.Len())
	all, err := tr.Habits(true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAddOpensForm(t *testing.T) {
	m, _ := setupModel(t)
	assert.Contains(t, m.View(), "No habits yet")

	m = press(t, m, "a")
	assert.Equal(t, StateForm, m.state)
	assert.Empty(t, m.editingID)

	m = press(t, m, "esc")
	assert.Equal(t, StateDashboard, m.state)
}

func TestSaveFormCreatesAndUpdates(t *testing.T) {
	m, tr := setupModel(t, "Read")

	m.startForm(formFor("Stretch", "10"), "")
	require.NoError(t, m.saveForm())
	created, err := tr.ResolveHabit("Stretch")
	require.NoError(t, err)
	assert.Equal(t, float64(10), created.Goal.Value)

	read, err := tr.ResolveHabit("Read")
	require.NoError(t, err)
	m.startForm(formFor("Read more", "2"), read.ID)
	require.NoError(t, m.saveForm())
	updated, err := tr.ResolveHabit(read.ID)
	require.NoError(t, err)
	assert.Equal(t, "Read more", updated.Name)
	assert.Equal(t, read.CreatedAt.Unix(), updated.CreatedAt.Unix())

	m.startForm(formFor("Walk", "0"), "")
	assert.Error(t, m.saveForm(), "goal must be positive")
	assert.Equal(t, StateForm, m.state)
}

func formFor(name, goal string) *forms.HabitFormModel {
	fm := forms.NewHabitFormModel()
	fm.Name = name
	fm.Goal = goal
	return fm
}
