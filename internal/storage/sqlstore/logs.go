package sqlstore

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/habitual/internal/models"
)

const logColumns = "id, habit_id, date, value, status, note, completed_at"

func scanLog(row scanner) (models.HabitLog, error) {
	var l models.HabitLog
	var status string
	var completedAt sql.NullString

	if err := row.Scan(&l.ID, &l.HabitID, &l.Date, &l.Value, &status, &l.Note, &completedAt); err != nil {
		return models.HabitLog{}, err
	}
	l.Status = models.LogStatus(status)

	var err error
	if l.CompletedAt, err = parseTimePtr("completed_at", completedAt); err != nil {
		return models.HabitLog{}, err
	}
	return l, nil
}

func (s *Store) scanLogs(rows *sql.Rows) ([]models.HabitLog, error) {
	defer rows.Close()
	logs := []models.HabitLog{}
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// UpsertLog inserts the log or replaces the existing one for the same habit and
// date. The existing row keeps its id.
func (s *Store) UpsertLog(log models.HabitLog) (models.HabitLog, error) {
	db, err := s.conn()
	if err != nil {
		return models.HabitLog{}, err
	}
	if _, err := s.GetHabit(log.HabitID); err != nil {
		return models.HabitLog{}, err
	}

	_, err = s.exec(db, `
		INSERT INTO habit_logs (`+logColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, date) DO UPDATE SET
			value = excluded.value,
			status = excluded.status,
			note = excluded.note,
			completed_at = excluded.completed_at`,
		log.ID, log.HabitID, log.Date, log.Value, string(log.Status), log.Note, formatTimePtr(log.CompletedAt))
	if err != nil {
		return models.HabitLog{}, fmt.Errorf("failed to save habit log: %w", err)
	}

	return s.GetLog(log.HabitID, log.Date)
}

func (s *Store) GetLog(habitID, date string) (models.HabitLog, error) {
	db, err := s.conn()
	if err != nil {
		return models.HabitLog{}, err
	}
	l, err := scanLog(s.queryRow(db, "SELECT "+logColumns+" FROM habit_logs WHERE habit_id = ? AND date = ?", habitID, date))
	if err != nil {
		return models.HabitLog{}, notFound(err, fmt.Sprintf("log for %s on %s", habitID, date))
	}
	return l, nil
}

func (s *Store) GetLogsForHabit(habitID string) ([]models.HabitLog, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := s.query(db, "SELECT "+logColumns+" FROM habit_logs WHERE habit_id = ? ORDER BY date", habitID)
	if err != nil {
		return nil, err
	}
	return s.scanLogs(rows)
}

func (s *Store) GetLogsForDate(date string) ([]models.HabitLog, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := s.query(db, "SELECT "+logColumns+" FROM habit_logs WHERE date = ? ORDER BY habit_id", date)
	if err != nil {
		return nil, err
	}
	return s.scanLogs(rows)
}

func (s *Store) GetAllLogs() ([]models.HabitLog, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := s.query(db, "SELECT "+logColumns+" FROM habit_logs ORDER BY date, habit_id")
	if err != nil {
		return nil, err
	}
	return s.scanLogs(rows)
}

func (s *Store) DeleteLog(habitID, date string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	res, err := s.exec(db, "DELETE FROM habit_logs WHERE habit_id = ? AND date = ?", habitID, date)
	if err != nil {
		return fmt.Errorf("failed to delete habit log: %w", err)
	}
	return expectRow(res, fmt.Sprintf("log for %s on %s", habitID, date))
}
