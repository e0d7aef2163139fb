// Package forms holds the huh forms shared by the CLI and the TUI.
package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/utils"
)

// HabitFormModel is the editable state behind the habit form. Numeric fields
// are strings because huh inputs edit text.
type HabitFormModel struct {
	Name       string
	Icon       string
	Type       models.HabitType
	Goal       string
	Unit       models.GoalUnit
	CustomUnit string
	Schedule   models.ScheduleType
	Days       []time.Weekday
	Target     string
	Every      string
	Dates      string
}

// NewHabitFormModel returns defaults for a new daily count habit.
func NewHabitFormModel() *HabitFormModel {
	return &HabitFormModel{
		Type:     models.HabitGood,
		Goal:     "1",
		Unit:     models.UnitCount,
		Schedule: models.ScheduleDaily,
	}
}

// FromHabit fills the model from an existing habit for editing.
func FromHabit(h models.Habit) *HabitFormModel {
	fm := &HabitFormModel{
		Name:       h.Name,
		Icon:       h.Icon,
		Type:       h.Type,
		Goal:       strconv.FormatFloat(h.Goal.Value, 'f', -1, 64),
		Unit:       h.Goal.Unit,
		CustomUnit: h.Goal.CustomUnitName,
		Schedule:   models.ScheduleDaily,
	}
	spec := models.SpecOf(h.Schedule)
	fm.Schedule = spec.Type
	for _, d := range spec.Days {
		fm.Days = append(fm.Days, time.Weekday(d))
	}
	if spec.WeeklyTarget > 0 {
		fm.Target = strconv.Itoa(spec.WeeklyTarget)
	}
	if spec.MonthlyTarget > 0 {
		fm.Target = strconv.Itoa(spec.MonthlyTarget)
	}
	if spec.IntervalDays > 0 {
		fm.Every = strconv.Itoa(spec.IntervalDays)
	}
	fm.Dates = strings.Join(spec.SpecificDates, ",")
	return fm
}

func positiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func optionalPositiveInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if i <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

// NewHabitForm builds the add/edit habit form bound to fm.
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	unitOptions := make([]huh.Option[models.GoalUnit], 0, len(models.GoalUnits))
	for _, u := range models.GoalUnits {
		unitOptions = append(unitOptions, huh.NewOption(string(u), u))
	}
	dayOptions := make([]huh.Option[time.Weekday], 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		dayOptions = append(dayOptions, huh.NewOption(d.String(), d))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Icon").
				Description("An emoji shown next to the name").
				Value(&fm.Icon),
			huh.NewSelect[models.HabitType]().
				Title("Type").
				Options(
					huh.NewOption("Build a good habit", models.HabitGood),
					huh.NewOption("Break a bad habit", models.HabitBad),
				).
				Value(&fm.Type),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Daily goal").
				Value(&fm.Goal).
				Validate(positiveNumber),
			huh.NewSelect[models.GoalUnit]().
				Title("Unit").
				Options(unitOptions...).
				Value(&fm.Unit),
			huh.NewInput().
				Title("Custom unit name").
				Description("Only used with the custom unit").
				Value(&fm.CustomUnit),
		),
		huh.NewGroup(
			huh.NewSelect[models.ScheduleType]().
				Title("Schedule").
				Options(
					huh.NewOption("Every day", models.ScheduleDaily),
					huh.NewOption("Specific weekdays", models.ScheduleSpecificDays),
					huh.NewOption("N times per week", models.ScheduleWeekly),
					huh.NewOption("N times per month", models.ScheduleMonthly),
					huh.NewOption("Every N days", models.ScheduleInterval),
					huh.NewOption("Specific dates", models.ScheduleSpecificDates),
				).
				Value(&fm.Schedule),
			huh.NewMultiSelect[time.Weekday]().
				Title("Weekdays").
				Description("For specific weekdays").
				Options(dayOptions...).
				Value(&fm.Days),
			huh.NewInput().
				Title("Times per period").
				Description("For weekly or monthly schedules").
				Value(&fm.Target).
				Validate(optionalPositiveInt),
			huh.NewInput().
				Title("Interval (days)").
				Description("For every N days").
				Value(&fm.Every).
				Validate(optionalPositiveInt),
			huh.NewInput().
				Title("Dates").
				Description("Comma-separated YYYY-MM-DD, for specific dates").
				Value(&fm.Dates),
		),
	)
}

// ScheduleValue converts the schedule fields into a schedule.
func (fm *HabitFormModel) ScheduleValue() (models.Schedule, error) {
	atoi := func(s string) int {
		i, _ := strconv.Atoi(strings.TrimSpace(s))
		return i
	}
	switch fm.Schedule {
	case models.ScheduleSpecificDays:
		return models.SpecificDays{Days: append([]time.Weekday(nil), fm.Days...)}, nil
	case models.ScheduleWeekly:
		return models.Weekly{Target: atoi(fm.Target)}, nil
	case models.ScheduleMonthly:
		return models.Monthly{Target: atoi(fm.Target)}, nil
	case models.ScheduleInterval:
		return models.Interval{Days: atoi(fm.Every)}, nil
	case models.ScheduleSpecificDates:
		var dates []string
		for _, d := range strings.Split(fm.Dates, ",") {
			d = strings.TrimSpace(d)
			if d == "" {
				continue
			}
			if _, err := utils.ParseDate(d); err != nil {
				return nil, fmt.Errorf("invalid date %q", d)
			}
			dates = append(dates, d)
		}
		return models.SpecificDates{Dates: dates}, nil
	default:
		return models.Daily{}, nil
	}
}

// Apply copies the form values onto habit, leaving fields the form does not edit untouched.
func (fm *HabitFormModel) Apply(habit models.Habit) (models.Habit, error) {
	goal, err := strconv.ParseFloat(strings.TrimSpace(fm.Goal), 64)
	if err != nil {
		return habit, fmt.Errorf("invalid goal %q", fm.Goal)
	}
	sched, err := fm.ScheduleValue()
	if err != nil {
		return habit, err
	}
	habit.Name = strings.TrimSpace(fm.Name)
	habit.Icon = strings.TrimSpace(fm.Icon)
	habit.Type = fm.Type
	habit.Goal = models.Goal{Value: goal, Unit: fm.Unit}
	if fm.Unit == models.UnitCustom {
		habit.Goal.CustomUnitName = strings.TrimSpace(fm.CustomUnit)
	}
	habit.Schedule = sched
	return habit, habit.Validate()
}
