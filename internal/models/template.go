package models

import "time"

// HabitTemplate is a preset used to create a habit quickly.
type HabitTemplate struct {
	Key         string
	Name        string
	Description string
	Icon        string
	Color       string
	Type        HabitType
	Goal        Goal
	Schedule    Schedule
	Category    string
}

// Templates is the built-in catalogue of habit presets.
var Templates = []HabitTemplate{
	{Key: "water", Name: "Drink Water", Description: "Stay hydrated throughout the day", Icon: "💧", Color: "#3B82F6", Type: HabitGood, Goal: Goal{Value: 2000, Unit: UnitML}, Schedule: Daily{}, Category: "health"},
	{Key: "exercise", Name: "Exercise", Description: "Move your body every day", Icon: "🏃", Color: "#EF4444", Type: HabitGood, Goal: Goal{Value: 30, Unit: UnitMinutes}, Schedule: Daily{}, Category: "health"},
	{Key: "steps", Name: "Walk", Description: "Hit your daily step count", Icon: "🚶", Color: "#10B981", Type: HabitGood, Goal: Goal{Value: 10000, Unit: UnitSteps}, Schedule: Daily{}, Category: "health"},
	{Key: "read", Name: "Read", Description: "Read a few pages every day", Icon: "📚", Color: "#8B5CF6", Type: HabitGood, Goal: Goal{Value: 20, Unit: UnitMinutes}, Schedule: Daily{}, Category: "productivity"},
	{Key: "meditate", Name: "Meditate", Description: "Take time to be mindful", Icon: "🧘", Color: "#06B6D4", Type: HabitGood, Goal: Goal{Value: 10, Unit: UnitMinutes}, Schedule: Daily{}, Category: "wellness"},
	{Key: "sleep", Name: "Sleep Early", Description: "Get at least eight hours of sleep", Icon: "😴", Color: "#6366F1", Type: HabitGood, Goal: Goal{Value: 8, Unit: UnitHours}, Schedule: Daily{}, Category: "self-care"},
	{Key: "gym", Name: "Strength Training", Description: "Lift on weekdays", Icon: "🏋️", Color: "#F59E0B", Type: HabitGood, Goal: Goal{Value: 1, Unit: UnitCount}, Schedule: SpecificDays{Days: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}}, Category: "health"},
	{Key: "journal", Name: "Journal", Description: "Write down your thoughts", Icon: "📝", Color: "#EC4899", Type: HabitGood, Goal: Goal{Value: 1, Unit: UnitCount}, Schedule: Daily{}, Category: "self-care"},
	{Key: "no-sugar", Name: "No Sugar", Description: "Avoid added sugar", Icon: "🍬", Color: "#F97316", Type: HabitBad, Goal: Goal{Value: 1, Unit: UnitCount}, Schedule: Daily{}, Category: "health"},
	{Key: "no-social", Name: "Limit Social Media", Description: "Stay off social feeds", Icon: "📵", Color: "#64748B", Type: HabitBad, Goal: Goal{Value: 1, Unit: UnitCount}, Schedule: Daily{}, Category: "productivity"},
}

// FindTemplate returns the template with the given key.
func FindTemplate(key string) (HabitTemplate, bool) {
	for _, t := range Templates {
		if t.Key == key {
			return t, true
		}
	}
	return HabitTemplate{}, false
}
