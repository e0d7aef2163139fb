package models

import "time"

type AchievementType string

const (
	AchievementStreak          AchievementType = "streak"
	AchievementTotal           AchievementType = "total"
	AchievementPerfectWeek     AchievementType = "perfect_week"
	AchievementPerfectMonth    AchievementType = "perfect_month"
	AchievementFirstCompletion AchievementType = "first_completion"
)

// Achievement is a milestone unlocked by a habit. Only Celebrated ever changes after creation.
type Achievement struct {
	ID         string          `json:"id"`
	HabitID    string          `json:"habit_id"`
	Type       AchievementType `json:"type"`
	Milestone  int             `json:"milestone"`
	UnlockedAt time.Time       `json:"unlocked_at"`
	Celebrated bool            `json:"celebrated"`
}
