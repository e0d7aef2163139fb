package sqlstore

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/habitual/internal/models"
)

func (s *Store) AddGroup(g models.Group) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	_, err = s.exec(db, "INSERT INTO habit_groups (id, name, color, sort_order, collapsed) VALUES (?, ?, ?, ?, ?)",
		g.ID, g.Name, g.Color, g.SortOrder, g.Collapsed)
	if err != nil {
		return fmt.Errorf("failed to add group: %w", err)
	}
	return nil
}

func (s *Store) GetGroups() ([]models.Group, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := s.query(db, "SELECT id, name, color, sort_order, collapsed FROM habit_groups ORDER BY sort_order, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []models.Group{}
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Color, &g.SortOrder, &g.Collapsed); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (s *Store) UpdateGroup(g models.Group) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	res, err := s.exec(db, "UPDATE habit_groups SET name = ?, color = ?, sort_order = ?, collapsed = ? WHERE id = ?",
		g.Name, g.Color, g.SortOrder, g.Collapsed, g.ID)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	return expectRow(res, "group "+g.ID)
}

// DeleteGroup removes the group and ungroups its habits in one transaction.
func (s *Store) DeleteGroup(id string) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := s.exec(tx, "UPDATE habits SET group_id = NULL WHERE group_id = ?", id); err != nil {
			return fmt.Errorf("failed to ungroup habits: %w", err)
		}
		res, err := s.exec(tx, "DELETE FROM habit_groups WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to delete group: %w", err)
		}
		return expectRow(res, "group "+id)
	})
}
