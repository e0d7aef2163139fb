package habits

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/tui/forms"
)

type HabitCmd struct {
	Add       HabitAddCmd       `cmd:"" help:"Add a new habit."`
	List      HabitListCmd      `cmd:"" help:"List habits."`
	Edit      HabitEditCmd      `cmd:"" help:"Edit an existing habit."`
	Archive   HabitArchiveCmd   `cmd:"" help:"Archive a habit."`
	Unarchive HabitUnarchiveCmd `cmd:"" help:"Restore an archived habit."`
	Delete    HabitDeleteCmd    `cmd:"" help:"Permanently delete a habit with its logs and achievements."`
	Reorder   HabitReorderCmd   `cmd:"" help:"Move habits to the top of the list in the given order."`
	Templates HabitTemplatesCmd `cmd:"" help:"List built-in habit templates."`
}

type HabitAddCmd struct {
	Name        string  `arg:"" optional:"" help:"Habit name."`
	Template    string  `short:"T" help:"Create from a built-in template (see 'habit templates')."`
	Interactive bool    `short:"i" help:"Fill in the habit with an interactive form."`
	Description string  `help:"Longer description."`
	Icon        string  `help:"Emoji shown next to the name."`
	Color       string  `help:"Hex color, e.g. #3B82F6." default:"#7D56F4"`
	Type        string  `help:"Habit type (good|bad)." enum:"good,bad" default:"good"`
	Goal        float64 `short:"g" help:"Daily goal value." default:"1"`
	Unit        string  `short:"u" help:"Goal unit (count|minutes|hours|steps|ml|km|calories|custom)." default:"count"`
	CustomUnit  string  `help:"Unit name when --unit=custom."`
	Group       string  `help:"Group name or ID."`

	cli.ScheduleFlags `embed:""`
}

func (c *HabitAddCmd) Validate() error {
	if c.Name == "" && c.Template == "" && !c.Interactive {
		return fmt.Errorf("a habit name is required unless --template or --interactive is given")
	}
	return nil
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	var (
		habit models.Habit
		err   error
	)
	switch {
	case c.Template != "":
		habit, err = ctx.Tracker.CreateFromTemplate(c.Template, c.Name)
	case c.Interactive:
		fm := forms.NewHabitFormModel()
		fm.Name = c.Name
		if err := forms.NewHabitForm(fm).Run(); err != nil {
			return err
		}
		if habit, err = fm.Apply(models.Habit{Color: c.Color}); err != nil {
			return err
		}
		habit, err = ctx.Tracker.CreateHabit(habit)
	default:
		habit, err = c.fromFlags()
		if err != nil {
			return err
		}
		habit, err = ctx.Tracker.CreateHabit(habit)
	}
	if err != nil {
		return err
	}

	if c.Group != "" {
		if err := ctx.Tracker.AssignGroup(habit.ID, c.Group); err != nil {
			return err
		}
	}

	ctx.Printf("Added habit: %s (%s, %s) ID: %s\n", habit.Name, cli.FormatGoal(habit.Goal), cli.FormatSchedule(habit.Schedule), habit.ID)
	return nil
}

func (c *HabitAddCmd) fromFlags() (models.Habit, error) {
	sched, err := c.ScheduleFlags.Build()
	if err != nil {
		return models.Habit{}, err
	}
	return models.Habit{
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		Type:        models.HabitType(c.Type),
		Goal: models.Goal{
			Value:          c.Goal,
			Unit:           models.GoalUnit(c.Unit),
			CustomUnitName: c.CustomUnit,
		},
		Schedule: sched,
	}, nil
}

type HabitListCmd struct {
	Archived bool `short:"a" help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Tracker.Habits(c.Archived)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		ctx.Println("No habits found.")
		return nil
	}

	groups, err := ctx.Tracker.Groups()
	if err != nil {
		return err
	}
	groupNames := make(map[string]string, len(groups))
	for _, g := range groups {
		groupNames[g.ID] = g.Name
	}

	for _, h := range habits {
		line := fmt.Sprintf("%s  %s", strings.TrimSpace(h.Icon+" "+h.Name), cli.Paint(cli.MutedStyle, fmt.Sprintf("%s, %s", cli.FormatGoal(h.Goal), cli.FormatSchedule(h.Schedule))))
		if h.Type == models.HabitBad {
			line += cli.Paint(cli.MutedStyle, " [break]")
		}
		if name, ok := groupNames[h.GroupID]; ok {
			line += cli.Paint(cli.MutedStyle, " #"+name)
		}
		if h.IsArchived() {
			line += cli.Paint(cli.SkippedStyle, " [ARCHIVED]")
		}
		ctx.Println(line)
	}
	return nil
}

type HabitEditCmd struct {
	Habit       string   `arg:"" help:"Habit name or ID."`
	Interactive bool     `short:"i" help:"Edit with an interactive form."`
	Name        string   `help:"New name."`
	Description *string  `help:"New description."`
	Icon        *string  `help:"New icon."`
	Color       *string  `help:"New color."`
	Goal        *float64 `short:"g" help:"New daily goal value."`
	Unit        string   `short:"u" help:"New goal unit."`
	CustomUnit  string   `help:"Unit name when --unit=custom."`
	Group       *string  `help:"Move to group (empty string ungroups)."`

	cli.ScheduleFlags `embed:""`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Tracker.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	if c.Interactive {
		fm := forms.FromHabit(habit)
		if err := forms.NewHabitForm(fm).Run(); err != nil {
			return err
		}
		if habit, err = fm.Apply(habit); err != nil {
			return err
		}
	} else {
		if c.Name != "" {
			habit.Name = c.Name
		}
		if c.Description != nil {
			habit.Description = *c.Description
		}
		if c.Icon != nil {
			habit.Icon = *c.Icon
		}
		if c.Color != nil {
			habit.Color = *c.Color
		}
		if c.Goal != nil {
			habit.Goal.Value = *c.Goal
		}
		if c.Unit != "" {
			habit.Goal.Unit = models.GoalUnit(c.Unit)
		}
		if c.CustomUnit != "" {
			habit.Goal.CustomUnitName = c.CustomUnit
		}
		if c.ScheduleFlags.Given() {
			sched, err := c.ScheduleFlags.Build()
			if err != nil {
				return err
			}
			habit.Schedule = sched
		}
	}

	if err := ctx.Tracker.UpdateHabit(habit); err != nil {
		return err
	}
	if c.Group != nil {
		if err := ctx.Tracker.AssignGroup(habit.ID, *c.Group); err != nil {
			return err
		}
	}

	ctx.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitArchiveCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
}

func (c *HabitArchiveCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Tracker.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.Archive(habit.ID); err != nil {
		return err
	}
	ctx.Printf("Archived habit: %s\n", habit.Name)
	return nil
}

type HabitUnarchiveCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
}

func (c *HabitUnarchiveCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Tracker.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.Unarchive(habit.ID); err != nil {
		return err
	}
	ctx.Printf("Restored habit: %s\n", habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Yes   bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Tracker.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}
	if !c.Yes {
		ok, err := cli.Confirm(fmt.Sprintf("Delete %q and all of its history?", habit.Name))
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Delete cancelled.")
			return nil
		}
	}
	if err := ctx.Tracker.DeleteHabit(habit.ID); err != nil {
		return err
	}
	ctx.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

type HabitReorderCmd struct {
	Habits []string `arg:"" help:"Habit names or IDs in the desired order."`
}

func (c *HabitReorderCmd) Run(ctx *cli.Context) error {
	if err := ctx.Tracker.Reorder(c.Habits); err != nil {
		return err
	}
	ctx.Println("Habits reordered.")
	return nil
}

type HabitTemplatesCmd struct {
	Category string `short:"c" help:"Only show one category (health|productivity|wellness|self-care)."`
}

func (c *HabitTemplatesCmd) Run(ctx *cli.Context) error {
	byCategory := map[string][]models.HabitTemplate{}
	for _, t := range models.Templates {
		if c.Category != "" && t.Category != c.Category {
			continue
		}
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}
	if len(byCategory) == 0 {
		ctx.Println("No templates found.")
		return nil
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		ctx.Println(cli.Paint(cli.TitleStyle, cat))
		for _, t := range byCategory[cat] {
			ctx.Printf("  %-10s %s %s  %s\n", t.Key, t.Icon, t.Name, cli.Paint(cli.MutedStyle, fmt.Sprintf("%s, %s", cli.FormatGoal(t.Goal), cli.FormatSchedule(t.Schedule))))
		}
	}
	ctx.Println("\nUse: habitual habit add --template <key> [name]")
	return nil
}
