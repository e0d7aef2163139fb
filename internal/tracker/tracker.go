// Package tracker is the service layer between the command surfaces and the
// engine: it loads habits and logs from storage, runs the pure schedule, streak,
// achievement and statistics calculations, and persists what they produce.
package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/clock"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/utils"
)

var (
	ErrFutureDate    = errors.New("cannot log a date in the future")
	ErrHabitArchived = errors.New("habit is archived")
	ErrDuplicateName = errors.New("a habit with that name already exists")
	ErrNegativeValue = errors.New("logged value must be a non-negative number")
)

type Tracker struct {
	store storage.Provider
	clock clock.Clock
	newID func() string
}

func New(store storage.Provider, clk clock.Clock) *Tracker {
	return &Tracker{store: store, clock: clk, newID: uuid.NewString}
}

// Store exposes the underlying provider for commands that manage it directly.
func (t *Tracker) Store() storage.Provider {
	return t.store
}

// Today returns the clock's current calendar date.
func (t *Tracker) Today() string {
	return utils.Today(t.clock.Now())
}

// Settings returns stored settings with environment overrides applied.
func (t *Tracker) Settings() (models.Settings, error) {
	settings, err := t.store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return config.ApplyEnvOverrides(settings)
}

func (t *Tracker) SaveSettings(settings models.Settings) error {
	if !models.ValidTheme(settings.Theme) {
		return fmt.Errorf("invalid theme: %s", settings.Theme)
	}
	if settings.WeekStartsOn != time.Sunday && settings.WeekStartsOn != time.Monday {
		return fmt.Errorf("week must start on Sunday or Monday, got %s", settings.WeekStartsOn)
	}
	return t.store.SaveSettings(settings)
}

// ResolveHabit finds a habit by ID or, failing that, by case-sensitive name.
func (t *Tracker) ResolveHabit(ref string) (models.Habit, error) {
	ref = strings.TrimSpace(ref)
	if habit, err := t.store.GetHabit(ref); err == nil {
		return habit, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return models.Habit{}, err
	}
	habit, err := t.store.GetHabitByName(ref)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Habit{}, fmt.Errorf("habit %q: %w", ref, storage.ErrNotFound)
		}
		return models.Habit{}, err
	}
	return habit, nil
}

// resolveDate defaults an empty date to today and rejects malformed or future dates.
func (t *Tracker) resolveDate(date string) (string, error) {
	today := t.Today()
	if date == "" {
		return today, nil
	}
	if _, err := utils.ParseDate(date); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	if date > today {
		return "", fmt.Errorf("%s: %w", date, ErrFutureDate)
	}
	return date, nil
}
