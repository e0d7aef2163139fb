package tracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

// CreateHabit validates and stores a new habit. ID, CreatedAt and SortOrder
// are assigned here; the habit is appended after the existing ones.
func (t *Tracker) CreateHabit(habit models.Habit) (models.Habit, error) {
	habit.Name = strings.TrimSpace(habit.Name)
	if habit.Type == "" {
		habit.Type = models.HabitGood
	}
	if habit.Schedule == nil {
		habit.Schedule = models.Daily{}
	}
	if err := habit.Validate(); err != nil {
		return models.Habit{}, err
	}
	if err := t.ensureUniqueName(habit.Name, ""); err != nil {
		return models.Habit{}, err
	}

	existing, err := t.store.GetAllHabits(true)
	if err != nil {
		return models.Habit{}, err
	}

	habit.ID = t.newID()
	habit.CreatedAt = t.clock.Now()
	habit.SortOrder = len(existing)
	habit.ArchivedAt = nil

	if err := t.store.AddHabit(habit); err != nil {
		return models.Habit{}, fmt.Errorf("failed to add habit: %w", err)
	}
	logger.Info("habit created", "id", habit.ID, "name", habit.Name)
	return habit, nil
}

// CreateFromTemplate creates a habit from the built-in catalogue. A non-empty
// name replaces the template's name.
func (t *Tracker) CreateFromTemplate(key, name string) (models.Habit, error) {
	tmpl, ok := models.FindTemplate(key)
	if !ok {
		return models.Habit{}, fmt.Errorf("unknown template: %s", key)
	}
	habit := models.Habit{
		Name:        tmpl.Name,
		Description: tmpl.Description,
		Icon:        tmpl.Icon,
		Color:       tmpl.Color,
		Type:        tmpl.Type,
		Goal:        tmpl.Goal,
		Schedule:    tmpl.Schedule,
	}
	if strings.TrimSpace(name) != "" {
		habit.Name = name
	}
	return t.CreateHabit(habit)
}

// UpdateHabit replaces the editable fields of an existing habit.
func (t *Tracker) UpdateHabit(habit models.Habit) error {
	current, err := t.store.GetHabit(habit.ID)
	if err != nil {
		return err
	}
	habit.Name = strings.TrimSpace(habit.Name)
	if err := habit.Validate(); err != nil {
		return err
	}
	if habit.Name != current.Name {
		if err := t.ensureUniqueName(habit.Name, habit.ID); err != nil {
			return err
		}
	}
	// Creation and archival are not editable through an update.
	habit.CreatedAt = current.CreatedAt
	habit.ArchivedAt = current.ArchivedAt

	if err := t.store.UpdateHabit(habit); err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	logger.Info("habit updated", "id", habit.ID)
	return nil
}

func (t *Tracker) ensureUniqueName(name, exceptID string) error {
	habits, err := t.store.GetAllHabits(false)
	if err != nil {
		return err
	}
	for _, h := range habits {
		if h.ID != exceptID && strings.EqualFold(h.Name, name) {
			return fmt.Errorf("%q: %w", name, ErrDuplicateName)
		}
	}
	return nil
}

// Habits lists habits in display order.
func (t *Tracker) Habits(includeArchived bool) ([]models.Habit, error) {
	return t.store.GetAllHabits(includeArchived)
}

func (t *Tracker) Archive(id string) error {
	if err := t.store.ArchiveHabit(id, t.clock.Now()); err != nil {
		return err
	}
	logger.Info("habit archived", "id", id)
	return nil
}

func (t *Tracker) Unarchive(id string) error {
	if err := t.store.UnarchiveHabit(id); err != nil {
		return err
	}
	logger.Info("habit unarchived", "id", id)
	return nil
}

// DeleteHabit permanently removes a habit with its logs and achievements.
func (t *Tracker) DeleteHabit(id string) error {
	if err := t.store.DeleteHabit(id); err != nil {
		return err
	}
	logger.Info("habit deleted", "id", id)
	return nil
}

// Reorder moves the habits named by refs to the front, in the given order.
// Habits not mentioned keep their relative order after them.
func (t *Tracker) Reorder(refs []string) error {
	all, err := t.store.GetAllHabits(true)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(refs))
	ids := make([]string, 0, len(all))
	for _, ref := range refs {
		habit, err := t.ResolveHabit(ref)
		if err != nil {
			return err
		}
		if seen[habit.ID] {
			return fmt.Errorf("habit %q listed twice", ref)
		}
		seen[habit.ID] = true
		ids = append(ids, habit.ID)
	}
	for _, h := range all {
		if !seen[h.ID] {
			ids = append(ids, h.ID)
		}
	}
	return t.store.ReorderHabits(ids)
}

// activeHabit resolves ref and refuses archived habits.
func (t *Tracker) activeHabit(ref string) (models.Habit, error) {
	habit, err := t.ResolveHabit(ref)
	if err != nil {
		return models.Habit{}, err
	}
	if habit.IsArchived() {
		return models.Habit{}, fmt.Errorf("%q: %w", habit.Name, ErrHabitArchived)
	}
	return habit, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
