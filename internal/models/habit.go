package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

type HabitType string

const (
	HabitGood HabitType = "good"
	HabitBad  HabitType = "bad"
)

type GoalUnit string

const (
	UnitCount    GoalUnit = "count"
	UnitMinutes  GoalUnit = "minutes"
	UnitHours    GoalUnit = "hours"
	UnitSteps    GoalUnit = "steps"
	UnitML       GoalUnit = "ml"
	UnitKM       GoalUnit = "km"
	UnitCalories GoalUnit = "calories"
	UnitCustom   GoalUnit = "custom"
)

// GoalUnits lists every supported unit in display order.
var GoalUnits = []GoalUnit{UnitCount, UnitMinutes, UnitHours, UnitSteps, UnitML, UnitKM, UnitCalories, UnitCustom}

// Valid reports whether u is one of the supported goal units.
func (u GoalUnit) Valid() bool {
	for _, known := range GoalUnits {
		if u == known {
			return true
		}
	}
	return false
}

// Goal is the daily numeric target of a habit
type Goal struct {
	Value          float64  `json:"value"`
	Unit           GoalUnit `json:"unit"`
	CustomUnitName string   `json:"custom_unit_name,omitempty"`
}

// UnitLabel returns the label shown next to progress values.
func (g Goal) UnitLabel() string {
	if g.Unit == UnitCustom && g.CustomUnitName != "" {
		return g.CustomUnitName
	}
	return string(g.Unit)
}

// Habit represents a recurring practice to track
type Habit struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon"`
	Color       string     `json:"color"`
	Type        HabitType  `json:"type"`
	Goal        Goal       `json:"goal"`
	Schedule    Schedule   `json:"-"`
	GroupID     string     `json:"group_id,omitempty"`
	SortOrder   int        `json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
}

// IsArchived reports whether the habit has been soft-deleted.
func (h Habit) IsArchived() bool {
	return h.ArchivedAt != nil
}

// Validate checks the fields a user can set.
func (h Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if h.Type != HabitGood && h.Type != HabitBad {
		return fmt.Errorf("invalid habit type: %s", h.Type)
	}
	if !h.Goal.Unit.Valid() {
		return fmt.Errorf("invalid goal unit: %s", h.Goal.Unit)
	}
	if h.Goal.Value <= 0 {
		return fmt.Errorf("goal value must be positive, got %g", h.Goal.Value)
	}
	if h.Goal.Unit == UnitCustom && strings.TrimSpace(h.Goal.CustomUnitName) == "" {
		return fmt.Errorf("custom goal unit requires a unit name")
	}
	switch s := h.Schedule.(type) {
	case nil:
		return fmt.Errorf("habit schedule is required")
	case SpecificDays:
		if len(s.Days) == 0 {
			return fmt.Errorf("specific_days schedule requires at least one weekday")
		}
	case Weekly:
		if s.Target < 1 || s.Target > 7 {
			return fmt.Errorf("weekly target must be between 1 and 7, got %d", s.Target)
		}
	case Monthly:
		if s.Target < 1 || s.Target > 31 {
			return fmt.Errorf("monthly target must be between 1 and 31, got %d", s.Target)
		}
	case Interval:
		if s.Days < 1 {
			return fmt.Errorf("interval must be at least 1 day, got %d", s.Days)
		}
	case SpecificDates:
		if len(s.Dates) == 0 {
			return fmt.Errorf("specific_dates schedule requires at least one date")
		}
		for _, d := range s.Dates {
			if _, err := time.Parse(constants.DateFormat, d); err != nil {
				return fmt.Errorf("invalid scheduled date %q: %w", d, err)
			}
		}
	}
	return nil
}

// Group is a named, ordered collection of habits
type Group struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	SortOrder int    `json:"sort_order"`
	Collapsed bool   `json:"collapsed"`
}
