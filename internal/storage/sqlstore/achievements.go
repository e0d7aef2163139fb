package sqlstore

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/models"
)

const achievementColumns = "id, habit_id, type, milestone, unlocked_at, celebrated"

func scanAchievement(row scanner) (models.Achievement, error) {
	var a models.Achievement
	var achievementType, unlockedAt string

	if err := row.Scan(&a.ID, &a.HabitID, &achievementType, &a.Milestone, &unlockedAt, &a.Celebrated); err != nil {
		return models.Achievement{}, err
	}
	a.Type = models.AchievementType(achievementType)

	var err error
	if a.UnlockedAt, err = parseTime("unlocked_at", unlockedAt); err != nil {
		return models.Achievement{}, err
	}
	return a, nil
}

func (s *Store) AddAchievement(a models.Achievement) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	_, err = s.exec(db, "INSERT INTO achievements ("+achievementColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		a.ID, a.HabitID, string(a.Type), a.Milestone, formatTime(a.UnlockedAt), a.Celebrated)
	if err != nil {
		return fmt.Errorf("failed to add achievement: %w", err)
	}
	return nil
}

func (s *Store) listAchievements(where string, args ...any) ([]models.Achievement, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := s.query(db, "SELECT "+achievementColumns+" FROM achievements "+where+" ORDER BY unlocked_at, id", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Achievement{}
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) GetAchievementsForHabit(habitID string) ([]models.Achievement, error) {
	return s.listAchievements("WHERE habit_id = ?", habitID)
}

func (s *Store) GetAllAchievements() ([]models.Achievement, error) {
	return s.listAchievements("")
}

func (s *Store) MarkAchievementCelebrated(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	res, err := s.exec(db, "UPDATE achievements SET celebrated = ? WHERE id = ?", true, id)
	if err != nil {
		return fmt.Errorf("failed to mark achievement celebrated: %w", err)
	}
	return expectRow(res, "achievement "+id)
}
