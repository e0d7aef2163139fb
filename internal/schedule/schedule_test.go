package schedule

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/utils"
)

func habitWith(s models.Schedule) models.Habit {
	return models.Habit{ID: "h1", Name: "test", Type: models.HabitGood, Schedule: s}
}

func randomDates(seed int64, n int) []string {
	r := rand.New(rand.NewSource(seed))
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	dates := make([]string, n)
	for i := range dates {
		dates[i] = utils.FormatDate(base.AddDate(0, 0, r.Intn(3650)))
	}
	return dates
}

func TestDailyAlwaysScheduled(t *testing.T) {
	h := habitWith(models.Daily{})
	for _, d := range randomDates(1, 500) {
		assert.True(t, IsDateScheduled(d, h), d)
	}
}

func TestSpecificDaysMonWedFri(t *testing.T) {
	h := habitWith(models.SpecificDays{Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday}})
	for _, d := range randomDates(2, 500) {
		day, err := utils.DayOfWeek(d)
		assert.NoError(t, err)
		want := day == time.Monday || day == time.Wednesday || day == time.Friday
		assert.Equal(t, want, IsDateScheduled(d, h), d)
	}
}

func TestIsDateScheduled(t *testing.T) {
	tests := []struct {
		name     string
		schedule models.Schedule
		date     string
		want     bool
	}{
		{name: "specific days without days", schedule: models.SpecificDays{}, date: "2026-01-12", want: false},
		{name: "specific days malformed date", schedule: models.SpecificDays{Days: []time.Weekday{time.Monday}}, date: "2026-1-12", want: false},
		{name: "weekly always", schedule: models.Weekly{Target: 3}, date: "2026-01-13", want: true},
		{name: "monthly always", schedule: models.Monthly{Target: 10}, date: "2026-01-13", want: true},
		{name: "interval always", schedule: models.Interval{Days: 3}, date: "2026-01-13", want: true},
		{name: "interval without days", schedule: models.Interval{}, date: "2026-01-13", want: false},
		{name: "specific dates member", schedule: models.SpecificDates{Dates: []string{"2026-01-13"}}, date: "2026-01-13", want: true},
		{name: "specific dates non-member", schedule: models.SpecificDates{Dates: []string{"2026-01-13"}}, date: "2026-01-14", want: false},
		{name: "specific dates absent", schedule: models.SpecificDates{}, date: "2026-01-13", want: false},
		{name: "nil schedule", schedule: nil, date: "2026-01-13", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateScheduled(tt.date, habitWith(tt.schedule)))
		})
	}
}
