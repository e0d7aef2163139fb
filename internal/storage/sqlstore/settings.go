package sqlstore

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/habitual/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	db, err := s.conn()
	if err != nil {
		return models.Settings{}, err
	}

	rows, err := s.query(db, "SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	return models.MapToSettings(data)
}

func (s *Store) SaveSettings(settings models.Settings) error {
	return s.withTx(func(tx *sql.Tx) error {
		for key, value := range models.SettingsToMap(settings) {
			if _, err := s.exec(tx, `
				INSERT INTO settings (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value); err != nil {
				return fmt.Errorf("failed to save setting %s: %w", key, err)
			}
		}
		return nil
	})
}

// HasSettings reports whether any setting has been stored yet.
func (s *Store) HasSettings() (bool, error) {
	db, err := s.conn()
	if err != nil {
		return false, err
	}
	var count int
	if err := s.queryRow(db, "SELECT COUNT(*) FROM settings").Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
