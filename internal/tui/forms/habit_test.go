package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitual/internal/models"
)

func TestApplyNewHabit(t *testing.T) {
	fm := NewHabitFormModel()
	fm.Name = "  Stretch "
	fm.Goal = "15"
	fm.Unit = models.UnitMinutes
	fm.Schedule = models.ScheduleSpecificDays
	fm.Days = []time.Weekday{time.Monday, time.Thursday}

	h, err := fm.Apply(models.Habit{ID: "keep"})
	require.NoError(t, err)
	assert.Equal(t, "keep", h.ID)
	assert.Equal(t, "Stretch", h.Name)
	assert.Equal(t, models.Goal{Value: 15, Unit: models.UnitMinutes}, h.Goal)
	assert.Equal(t, models.SpecificDays{Days: []time.Weekday{time.Monday, time.Thursday}}, h.Schedule)
}

func TestApplyRejectsInvalid(t *testing.T) {
	fm := NewHabitFormModel()
	fm.Name = "Run"
	fm.Goal = "abc"
	_, err := fm.Apply(models.Habit{})
	assert.Error(t, err)

	fm.Goal = "1"
	fm.Schedule = models.ScheduleWeekly
	fm.Target = "9"
	_, err = fm.Apply(models.Habit{})
	assert.Error(t, err)

	fm.Schedule = models.ScheduleSpecificDates
	fm.Dates = "2026-01-01, tomorrow"
	_, err = fm.Apply(models.Habit{})
	assert.Error(t, err)
}

func TestFromHabitRoundTrip(t *testing.T) {
	h := models.Habit{
		Name:     "Swim",
		Icon:     "🏊",
		Type:     models.HabitGood,
		Goal:     models.Goal{Value: 1.5, Unit: models.UnitKM},
		Schedule: models.Interval{Days: 3},
	}
	fm := FromHabit(h)
	assert.Equal(t, "1.5", fm.Goal)
	assert.Equal(t, models.ScheduleInterval, fm.Schedule)
	assert.Equal(t, "3", fm.Every)

	got, err := fm.Apply(models.Habit{})
	require.NoError(t, err)
	assert.Equal(t, h, got)
}
