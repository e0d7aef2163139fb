package models

import (
	"fmt"
	"strings"
	"time"
)

type LogStatus string

const (
	StatusCompleted LogStatus = "completed"
	StatusPartial   LogStatus = "partial"
	StatusMissed    LogStatus = "missed"
	StatusSkipped   LogStatus = "skipped"
)

// Counts reports whether the status counts as progress (completed or partial).
func (s LogStatus) Counts() bool {
	return s == StatusCompleted || s == StatusPartial
}

func (s LogStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusPartial, StatusMissed, StatusSkipped:
		return true
	}
	return false
}

// ParseLogStatus parses a user-supplied status name.
func ParseLogStatus(s string) (LogStatus, error) {
	status := LogStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("invalid status: %s (expected completed|partial|missed|skipped)", s)
	}
	return status, nil
}

// DeriveStatus maps a logged value against the goal: reaching the goal completes
// the day, any progress short of it is partial, nothing is missed.
func DeriveStatus(value, goal float64) LogStatus {
	switch {
	case value >= goal:
		return StatusCompleted
	case value > 0:
		return StatusPartial
	default:
		return StatusMissed
	}
}

// HabitLog is the single record of a habit for one calendar date
type HabitLog struct {
	ID          string     `json:"id"`
	HabitID     string     `json:"habit_id"`
	Date        string     `json:"date"` // YYYY-MM-DD format
	Value       float64    `json:"value"`
	Status      LogStatus  `json:"status"`
	Note        string     `json:"note,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
