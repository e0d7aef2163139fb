package storage

import (
	"time"

	"github.com/julianstephens/habitual/internal/models"
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	// GetHabitByName prefers an active habit when an archived one shares the name.
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeArchived bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id string, at time.Time) error
	UnarchiveHabit(id string) error
	// DeleteHabit removes the habit permanently along with its logs and achievements.
	DeleteHabit(id string) error
	// ReorderHabits rewrites sort orders to the position of each id in ids.
	ReorderHabits(ids []string) error

	// Logs
	// UpsertLog stores the only log for (HabitID, Date). When a log already exists
	// for the pair it is replaced in place and keeps its ID. The stored log is returned.
	UpsertLog(models.HabitLog) (models.HabitLog, error)
	GetLog(habitID, date string) (models.HabitLog, error)
	GetLogsForHabit(habitID string) ([]models.HabitLog, error)
	GetLogsForDate(date string) ([]models.HabitLog, error)
	GetAllLogs() ([]models.HabitLog, error)
	DeleteLog(habitID, date string) error

	// Achievements
	AddAchievement(models.Achievement) error
	GetAchievementsForHabit(habitID string) ([]models.Achievement, error)
	GetAllAchievements() ([]models.Achievement, error)
	MarkAchievementCelebrated(id string) error

	// Groups
	AddGroup(models.Group) error
	GetGroups() ([]models.Group, error)
	UpdateGroup(models.Group) error
	// DeleteGroup removes the group; its habits become ungrouped.
	DeleteGroup(id string) error

	// Utils
	GetConfigPath() string
}

// SchemaVersioner is implemented by backends with versioned SQL schemas.
type SchemaVersioner interface {
	// SchemaVersion returns the applied and the latest embedded migration versions.
	SchemaVersion() (current, latest int, err error)
}
