// Package storagetest runs the same behavioural checks against every storage.Provider.
package storagetest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

var created = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

func habit(id, name string, order int) models.Habit {
	return models.Habit{
		ID:        id,
		Name:      name,
		Icon:      "📚",
		Color:     "#8B5CF6",
		Type:      models.HabitGood,
		Goal:      models.Goal{Value: 20, Unit: models.UnitMinutes},
		Schedule:  models.SpecificDays{Days: []time.Weekday{time.Monday, time.Friday}},
		SortOrder: order,
		CreatedAt: created.Add(time.Duration(order) * time.Minute),
	}
}

// Run exercises p, which must be freshly initialized and empty.
func Run(t *testing.T, newProvider func(t *testing.T) storage.Provider) {
	t.Run("settings", func(t *testing.T) {
		p := newProvider(t)
		s, err := p.GetSettings()
		require.NoError(t, err)
		assert.Equal(t, models.DefaultSettings(), s)

		s.WeekStartsOn = time.Monday
		s.Theme = "dark"
		s.ConfettiEnabled = false
		require.NoError(t, p.SaveSettings(s))

		got, err := p.GetSettings()
		require.NoError(t, err)
		assert.Equal(t, s, got)
	})

	t.Run("habit round trip", func(t *testing.T) {
		p := newProvider(t)
		h := habit("h1", "Read", 0)
		h.Description = "Read before bed"
		h.Goal = models.Goal{Value: 12.5, Unit: models.UnitCustom, CustomUnitName: "pages"}
		require.NoError(t, p.AddHabit(h))

		got, err := p.GetHabit("h1")
		require.NoError(t, err)
		assert.Equal(t, h.Name, got.Name)
		assert.Equal(t, h.Description, got.Description)
		assert.Equal(t, h.Goal, got.Goal)
		assert.Equal(t, h.Schedule, got.Schedule)
		assert.True(t, h.CreatedAt.Equal(got.CreatedAt))
		assert.Nil(t, got.ArchivedAt)

		byName, err := p.GetHabitByName("Read")
		require.NoError(t, err)
		assert.Equal(t, "h1", byName.ID)

		_, err = p.GetHabit("missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		_, err = p.GetHabitByName("missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		got.Name = "Read more"
		got.Schedule = models.Weekly{Target: 3}
		got.GroupID = "g1"
		require.NoError(t, p.UpdateHabit(got))
		updated, err := p.GetHabit("h1")
		require.NoError(t, err)
		assert.Equal(t, "Read more", updated.Name)
		assert.Equal(t, models.Weekly{Target: 3}, updated.Schedule)
		assert.Equal(t, "g1", updated.GroupID)

		assert.ErrorIs(t, p.UpdateHabit(habit("nope", "x", 0)), storage.ErrNotFound)
	})

	t.Run("archive and reorder", func(t *testing.T) {
		p := newProvider(t)
		require.NoError(t, p.AddHabit(habit("h1", "Read", 0)))
		require.NoError(t, p.AddHabit(habit("h2", "Run", 1)))
		require.NoError(t, p.AddHabit(habit("h3", "Stretch", 2)))

		at := created.Add(48 * time.Hour)
		require.NoError(t, p.ArchiveHabit("h2", at))
		assert.ErrorIs(t, p.ArchiveHabit("h2", at), storage.ErrAlreadyArchived)
		assert.ErrorIs(t, p.ArchiveHabit("missing", at), storage.ErrNotFound)

		active, err := p.GetAllHabits(false)
		require.NoError(t, err)
		assert.Equal(t, []string{"h1", "h3"}, ids(active))

		all, err := p.GetAllHabits(true)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		archived, err := p.GetHabit("h2")
		require.NoError(t, err)
		require.NotNil(t, archived.ArchivedAt)
		assert.True(t, at.Equal(*archived.ArchivedAt))

		require.NoError(t, p.UnarchiveHabit("h2"))
		assert.ErrorIs(t, p.UnarchiveHabit("h2"), storage.ErrNotArchived)

		require.NoError(t, p.ReorderHabits([]string{"h3", "h1", "h2"}))
		ordered, err := p.GetAllHabits(false)
		require.NoError(t, err)
		assert.Equal(t, []string{"h3", "h1", "h2"}, ids(ordered))
	})

	t.Run("log upsert keeps one log per habit and date", func(t *testing.T) {
		p := newProvider(t)
		require.NoError(t, p.AddHabit(habit("h1", "Read", 0)))

		done := created.Add(2 * time.Hour)
		first, err := p.UpsertLog(models.HabitLog{ID: "l1", HabitID: "h1", Date: "2026-01-05", Value: 20, Status: models.StatusCompleted, CompletedAt: &done})
		require.NoError(t, err)
		assert.Equal(t, "l1", first.ID)

		second, err := p.UpsertLog(models.HabitLog{ID: "l2", HabitID: "h1", Date: "2026-01-05", Value: 5, Status: models.StatusPartial, Note: "tired"})
		require.NoError(t, err)
		assert.Equal(t, "l1", second.ID)
		assert.Equal(t, models.StatusPartial, second.Status)
		assert.Equal(t, "tired", second.Note)
		assert.Nil(t, second.CompletedAt)

		_, err = p.UpsertLog(models.HabitLog{ID: "l3", HabitID: "h1", Date: "2026-01-02", Value: 20, Status: models.StatusCompleted})
		require.NoError(t, err)

		logs, err := p.GetLogsForHabit("h1")
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, "2026-01-02", logs[0].Date)
		assert.Equal(t, 5.0, logs[1].Value)

		byDate, err := p.GetLogsForDate("2026-01-05")
		require.NoError(t, err)
		assert.Len(t, byDate, 1)

		all, err := p.GetAllLogs()
		require.NoError(t, err)
		assert.Len(t, all, 2)

		_, err = p.UpsertLog(models.HabitLog{ID: "l4", HabitID: "missing", Date: "2026-01-05", Status: models.StatusCompleted})
		assert.ErrorIs(t, err, storage.ErrNotFound)

		require.NoError(t, p.DeleteLog("h1", "2026-01-05"))
		_, err = p.GetLog("h1", "2026-01-05")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.ErrorIs(t, p.DeleteLog("h1", "2026-01-05"), storage.ErrNotFound)
	})

	t.Run("achievements", func(t *testing.T) {
		p := newProvider(t)
		require.NoError(t, p.AddHabit(habit("h1", "Read", 0)))
		require.NoError(t, p.AddHabit(habit("h2", "Run", 1)))

		unlocked := created.Add(24 * time.Hour)
		require.NoError(t, p.AddAchievement(models.Achievement{ID: "a1", HabitID: "h1", Type: models.AchievementFirstCompletion, Milestone: 1, UnlockedAt: unlocked}))
		require.NoError(t, p.AddAchievement(models.Achievement{ID: "a2", HabitID: "h1", Type: models.AchievementStreak, Milestone: 3, UnlockedAt: unlocked.Add(time.Hour)}))
		require.NoError(t, p.AddAchievement(models.Achievement{ID: "a3", HabitID: "h2", Type: models.AchievementFirstCompletion, Milestone: 1, UnlockedAt: unlocked}))

		mine, err := p.GetAchievementsForHabit("h1")
		require.NoError(t, err)
		require.Len(t, mine, 2)
		assert.Equal(t, "a1", mine[0].ID)
		assert.False(t, mine[0].Celebrated)
		assert.True(t, unlocked.Equal(mine[0].UnlockedAt))

		require.NoError(t, p.MarkAchievementCelebrated("a2"))
		assert.ErrorIs(t, p.MarkAchievementCelebrated("zzz"), storage.ErrNotFound)

		all, err := p.GetAllAchievements()
		require.NoError(t, err)
		require.Len(t, all, 3)
		for _, a := range all {
			assert.Equal(t, a.ID == "a2", a.Celebrated, a.ID)
		}
	})

	t.Run("delete habit cascades", func(t *testing.T) {
		p := newProvider(t)
		require.NoError(t, p.AddHabit(habit("h1", "Read", 0)))
		require.NoError(t, p.AddHabit(habit("h2", "Run", 1)))
		_, err := p.UpsertLog(models.HabitLog{ID: "l1", HabitID: "h1", Date: "2026-01-05", Status: models.StatusCompleted})
		require.NoError(t, err)
		_, err = p.UpsertLog(models.HabitLog{ID: "l2", HabitID: "h2", Date: "2026-01-05", Status: models.StatusCompleted})
		require.NoError(t, err)
		require.NoError(t, p.AddAchievement(models.Achievement{ID: "a1", HabitID: "h1", Type: models.AchievementFirstCompletion, Milestone: 1, UnlockedAt: created}))

		require.NoError(t, p.DeleteHabit("h1"))
		assert.ErrorIs(t, p.DeleteHabit("h1"), storage.ErrNotFound)

		logs, err := p.GetAllLogs()
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, "h2", logs[0].HabitID)

		achievements, err := p.GetAllAchievements()
		require.NoError(t, err)
		assert.Empty(t, achievements)
	})

	t.Run("groups", func(t *testing.T) {
		p := newProvider(t)
		require.NoError(t, p.AddGroup(models.Group{ID: "g1", Name: "Health", SortOrder: 1}))
		require.NoError(t, p.AddGroup(models.Group{ID: "g2", Name: "Mind", SortOrder: 0}))
		h := habit("h1", "Read", 0)
		h.GroupID = "g1"
		require.NoError(t, p.AddHabit(h))

		groups, err := p.GetGroups()
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, "g2", groups[0].ID)

		require.NoError(t, p.UpdateGroup(models.Group{ID: "g1", Name: "Body", SortOrder: 1, Collapsed: true}))
		assert.ErrorIs(t, p.UpdateGroup(models.Group{ID: "zz"}), storage.ErrNotFound)

		require.NoError(t, p.DeleteGroup("g1"))
		assert.ErrorIs(t, p.DeleteGroup("g1"), storage.ErrNotFound)

		got, err := p.GetHabit("h1")
		require.NoError(t, err)
		assert.Empty(t, got.GroupID)
	})
}

func ids(habits []models.Habit) []string {
	out := make([]string, len(habits))
	for i, h := range habits {
		out[i] = h.ID
	}
	return out
}
