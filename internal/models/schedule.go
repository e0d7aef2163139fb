package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type ScheduleType string

const (
	ScheduleDaily         ScheduleType = "daily"
	ScheduleSpecificDays  ScheduleType = "specific_days"
	ScheduleWeekly        ScheduleType = "weekly"
	ScheduleMonthly       ScheduleType = "monthly"
	ScheduleInterval      ScheduleType = "interval"
	ScheduleSpecificDates ScheduleType = "specific_dates"
)

// Schedule is the closed set of habit schedule variants. Only the types in
// this file implement it; consumers switch over the concrete types.
type Schedule interface {
	Type() ScheduleType
	isSchedule()
}

// Daily schedules every calendar date.
type Daily struct{}

// SpecificDays schedules the listed weekdays. A nil slice means the set was never configured.
type SpecificDays struct {
	Days []time.Weekday
}

// Weekly expects Target completions per week.
type Weekly struct {
	Target int
}

// Monthly expects Target completions per calendar month.
type Monthly struct {
	Target int
}

// Interval expects a completion every Days days.
type Interval struct {
	Days int
}

// SpecificDates schedules an explicit set of YYYY-MM-DD dates.
type SpecificDates struct {
	Dates []string
}

func (Daily) Type() ScheduleType         { return ScheduleDaily }
func (SpecificDays) Type() ScheduleType  { return ScheduleSpecificDays }
func (Weekly) Type() ScheduleType        { return ScheduleWeekly }
func (Monthly) Type() ScheduleType       { return ScheduleMonthly }
func (Interval) Type() ScheduleType      { return ScheduleInterval }
func (SpecificDates) Type() ScheduleType { return ScheduleSpecificDates }

func (Daily) isSchedule()         {}
func (SpecificDays) isSchedule()  {}
func (Weekly) isSchedule()        {}
func (Monthly) isSchedule()       {}
func (Interval) isSchedule()      {}
func (SpecificDates) isSchedule() {}

// ScheduleSpec is the flat wire form of a Schedule used by JSON and SQL storage.
type ScheduleSpec struct {
	Type          ScheduleType `json:"type"`
	Days          []int        `json:"days,omitempty"`
	WeeklyTarget  int          `json:"weekly_target,omitempty"`
	MonthlyTarget int          `json:"monthly_target,omitempty"`
	IntervalDays  int          `json:"interval_days,omitempty"`
	SpecificDates []string     `json:"specific_dates,omitempty"`
}

// SpecOf flattens a schedule. A nil schedule flattens to daily.
func SpecOf(s Schedule) ScheduleSpec {
	switch v := s.(type) {
	case Daily:
		return ScheduleSpec{Type: ScheduleDaily}
	case SpecificDays:
		spec := ScheduleSpec{Type: ScheduleSpecificDays}
		for _, d := range v.Days {
			spec.Days = append(spec.Days, int(d))
		}
		return spec
	case Weekly:
		return ScheduleSpec{Type: ScheduleWeekly, WeeklyTarget: v.Target}
	case Monthly:
		return ScheduleSpec{Type: ScheduleMonthly, MonthlyTarget: v.Target}
	case Interval:
		return ScheduleSpec{Type: ScheduleInterval, IntervalDays: v.Days}
	case SpecificDates:
		return ScheduleSpec{Type: ScheduleSpecificDates, SpecificDates: v.Dates}
	default:
		return ScheduleSpec{Type: ScheduleDaily}
	}
}

// Schedule converts the wire form back into its variant.
func (s ScheduleSpec) Schedule() (Schedule, error) {
	switch s.Type {
	case ScheduleDaily, "":
		return Daily{}, nil
	case ScheduleSpecificDays:
		var days []time.Weekday
		for _, d := range s.Days {
			if d < 0 || d > 6 {
				return nil, fmt.Errorf("invalid weekday index %d", d)
			}
			days = append(days, time.Weekday(d))
		}
		return SpecificDays{Days: days}, nil
	case ScheduleWeekly:
		return Weekly{Target: s.WeeklyTarget}, nil
	case ScheduleMonthly:
		return Monthly{Target: s.MonthlyTarget}, nil
	case ScheduleInterval:
		return Interval{Days: s.IntervalDays}, nil
	case ScheduleSpecificDates:
		return SpecificDates{Dates: s.SpecificDates}, nil
	default:
		return nil, fmt.Errorf("unknown schedule type: %s", s.Type)
	}
}

// MarshalSchedule encodes a schedule as JSON for single-column storage.
func MarshalSchedule(s Schedule) (string, error) {
	data, err := json.Marshal(SpecOf(s))
	if err != nil {
		return "", fmt.Errorf("failed to marshal schedule: %w", err)
	}
	return string(data), nil
}

// UnmarshalSchedule decodes a schedule stored by MarshalSchedule.
func UnmarshalSchedule(data string) (Schedule, error) {
	if data == "" {
		return Daily{}, nil
	}
	var spec ScheduleSpec
	if err := json.Unmarshal([]byte(data), &spec); err != nil {
		return nil, fmt.Errorf("failed to parse schedule: %w", err)
	}
	return spec.Schedule()
}

type habitJSON Habit

type habitWire struct {
	habitJSON
	Schedule ScheduleSpec `json:"schedule"`
}

func (h Habit) MarshalJSON() ([]byte, error) {
	return json.Marshal(habitWire{habitJSON: habitJSON(h), Schedule: SpecOf(h.Schedule)})
}

func (h *Habit) UnmarshalJSON(data []byte) error {
	var wire habitWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	sched, err := wire.Schedule.Schedule()
	if err != nil {
		return err
	}
	*h = Habit(wire.habitJSON)
	h.Schedule = sched
	return nil
}
