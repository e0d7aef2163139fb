package sqlstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

const habitColumns = `id, name, description, icon, color, type, goal_value, goal_unit,
	custom_unit_name, schedule, group_id, sort_order, created_at, archived_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanHabit(row scanner) (models.Habit, error) {
	var h models.Habit
	var habitType, unit, schedule, createdAt string
	var groupID, archivedAt sql.NullString

	err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Icon, &h.Color, &habitType, &h.Goal.Value, &unit,
		&h.Goal.CustomUnitName, &schedule, &groupID, &h.SortOrder, &createdAt, &archivedAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Type = models.HabitType(habitType)
	h.Goal.Unit = models.GoalUnit(unit)
	h.GroupID = groupID.String

	if h.Schedule, err = models.UnmarshalSchedule(schedule); err != nil {
		return models.Habit{}, fmt.Errorf("habit %s: %w", h.ID, err)
	}
	if h.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return models.Habit{}, err
	}
	if h.ArchivedAt, err = parseTimePtr("archived_at", archivedAt); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *Store) AddHabit(habit models.Habit) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	schedule, err := models.MarshalSchedule(habit.Schedule)
	if err != nil {
		return err
	}

	_, err = s.exec(db, `
		INSERT INTO habits (`+habitColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.Name, habit.Description, habit.Icon, habit.Color, string(habit.Type),
		habit.Goal.Value, string(habit.Goal.Unit), habit.Goal.CustomUnitName, schedule,
		nullString(habit.GroupID), habit.SortOrder, formatTime(habit.CreatedAt), formatTimePtr(habit.ArchivedAt))
	if err != nil {
		return fmt.Errorf("failed to add habit: %w", err)
	}
	return nil
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	db, err := s.conn()
	if err != nil {
		return models.Habit{}, err
	}
	h, err := scanHabit(s.queryRow(db, "SELECT "+habitColumns+" FROM habits WHERE id = ?", id))
	if err != nil {
		return models.Habit{}, notFound(err, "habit "+id)
	}
	return h, nil
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	db, err := s.conn()
	if err != nil {
		return models.Habit{}, err
	}
	h, err := scanHabit(s.queryRow(db, `
		SELECT `+habitColumns+` FROM habits WHERE name = ?
		ORDER BY CASE WHEN archived_at IS NULL THEN 0 ELSE 1 END, created_at
		LIMIT 1`, name))
	if err != nil {
		return models.Habit{}, notFound(err, fmt.Sprintf("habit %q", name))
	}
	return h, nil
}

func (s *Store) GetAllHabits(includeArchived bool) ([]models.Habit, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + habitColumns + " FROM habits"
	if !includeArchived {
		query += " WHERE archived_at IS NULL"
	}
	query += " ORDER BY sort_order, created_at"

	rows, err := s.query(db, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	schedule, err := models.MarshalSchedule(habit.Schedule)
	if err != nil {
		return err
	}

	res, err := s.exec(db, `
		UPDATE habits SET name = ?, description = ?, icon = ?, color = ?, type = ?, goal_value = ?,
			goal_unit = ?, custom_unit_name = ?, schedule = ?, group_id = ?, sort_order = ?, archived_at = ?
		WHERE id = ?`,
		habit.Name, habit.Description, habit.Icon, habit.Color, string(habit.Type), habit.Goal.Value,
		string(habit.Goal.Unit), habit.Goal.CustomUnitName, schedule, nullString(habit.GroupID),
		habit.SortOrder, formatTimePtr(habit.ArchivedAt), habit.ID)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	return expectRow(res, "habit "+habit.ID)
}

func (s *Store) ArchiveHabit(id string, at time.Time) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	res, err := s.exec(db, "UPDATE habits SET archived_at = ? WHERE id = ? AND archived_at IS NULL", formatTime(at), id)
	if err != nil {
		return fmt.Errorf("failed to archive habit: %w", err)
	}
	if err := expectRow(res, "habit "+id); err != nil {
		if _, getErr := s.GetHabit(id); getErr == nil {
			return storage.ErrAlreadyArchived
		}
		return err
	}
	return nil
}

func (s *Store) UnarchiveHabit(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	res, err := s.exec(db, "UPDATE habits SET archived_at = NULL WHERE id = ? AND archived_at IS NOT NULL", id)
	if err != nil {
		return fmt.Errorf("failed to unarchive habit: %w", err)
	}
	if err := expectRow(res, "habit "+id); err != nil {
		if _, getErr := s.GetHabit(id); getErr == nil {
			return storage.ErrNotArchived
		}
		return err
	}
	return nil
}

// DeleteHabit removes the habit and everything recorded for it in one transaction.
func (s *Store) DeleteHabit(id string) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := s.exec(tx, "DELETE FROM habit_logs WHERE habit_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete habit logs: %w", err)
		}
		if _, err := s.exec(tx, "DELETE FROM achievements WHERE habit_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete habit achievements: %w", err)
		}
		res, err := s.exec(tx, "DELETE FROM habits WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to delete habit: %w", err)
		}
		return expectRow(res, "habit "+id)
	})
}

func (s *Store) ReorderHabits(ids []string) error {
	return s.withTx(func(tx *sql.Tx) error {
		for order, id := range ids {
			if _, err := s.exec(tx, "UPDATE habits SET sort_order = ? WHERE id = ?", order, id); err != nil {
				return fmt.Errorf("failed to reorder habit %s: %w", id, err)
			}
		}
		return nil
	})
}
