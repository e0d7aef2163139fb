package logs

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitual/internal/achievement"
	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/tracker"
)

type LogCmd struct {
	Habit  string   `arg:"" help:"Habit name or ID."`
	Date   string   `short:"d" help:"Date in YYYY-MM-DD format (default: today)."`
	Value  *float64 `short:"v" help:"Amount done; the status is derived from the goal when --status is omitted."`
	Status string   `short:"s" help:"Explicit status (completed|partial|missed|skipped)."`
	Note   string   `short:"n" help:"Optional note for this day."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	in := tracker.LogInput{Habit: c.Habit, Date: c.Date, Value: c.Value, Note: c.Note}
	if c.Status != "" {
		status, err := models.ParseLogStatus(c.Status)
		if err != nil {
			return err
		}
		in.Status = status
	}

	res, err := ctx.Tracker.Log(in)
	if err != nil {
		return err
	}
	printResult(ctx, res)
	return nil
}

type SkipCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Date  string `short:"d" help:"Date in YYYY-MM-DD format (default: today)."`
	Note  string `short:"n" help:"Reason for skipping."`
}

func (c *SkipCmd) Run(ctx *cli.Context) error {
	res, err := ctx.Tracker.Skip(c.Habit, c.Date, c.Note)
	if err != nil {
		return err
	}
	printResult(ctx, res)
	return nil
}

type MissCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Date  string `short:"d" help:"Date in YYYY-MM-DD format (default: today)."`
	Note  string `short:"n" help:"Optional note."`
}

func (c *MissCmd) Run(ctx *cli.Context) error {
	res, err := ctx.Tracker.Miss(c.Habit, c.Date, c.Note)
	if err != nil {
		return err
	}
	printResult(ctx, res)
	return nil
}

type UnlogCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Date  string `short:"d" help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *UnlogCmd) Run(ctx *cli.Context) error {
	if err := ctx.Tracker.Unlog(c.Habit, c.Date); err != nil {
		return err
	}
	date := c.Date
	if date == "" {
		date = ctx.Tracker.Today()
	}
	ctx.Printf("Removed log for %q on %s\n", c.Habit, date)
	return nil
}

func printResult(ctx *cli.Context, res tracker.LogResult) {
	log := res.Log
	line := fmt.Sprintf("%s %s on %s", StatusMark(log.Status), res.Habit.Name, log.Date)
	if log.Status.Counts() || log.Value > 0 {
		line += fmt.Sprintf(" (%s/%s)", cli.FormatValue(log.Value), cli.FormatGoal(res.Habit.Goal))
	}
	ctx.Println(line)

	summary, err := ctx.Tracker.Summary(res.Habit.ID)
	if err == nil && summary.Current > 0 {
		ctx.Println(cli.Paint(cli.StreakStyle, fmt.Sprintf("🔥 %d day streak", summary.Current)))
	}

	for _, a := range res.Unlocked {
		ctx.Printf("%s %s  %s\n", achievement.Icon(a), cli.Paint(cli.TitleStyle, achievement.Title(a)), achievement.Description(a))
	}
}

// StatusMark is the one-glyph marker for a log status; an empty status means not logged.
func StatusMark(s models.LogStatus) string {
	switch s {
	case models.StatusCompleted:
		return cli.Paint(cli.DoneStyle, "[x]")
	case models.StatusPartial:
		return cli.Paint(cli.PartialStyle, "[~]")
	case models.StatusMissed:
		return cli.Paint(cli.MissedStyle, "[!]")
	case models.StatusSkipped:
		return cli.Paint(cli.SkippedStyle, "[-]")
	default:
		return "[ ]"
	}
}

type TodayCmd struct {
	Date string `arg:"" optional:"" help:"Date in YYYY-MM-DD format (default: today)."`
	All  bool   `short:"a" help:"Include habits not scheduled on the date."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	ov, err := ctx.Tracker.Overview(c.Date)
	if err != nil {
		return err
	}
	if len(ov.Habits) == 0 {
		ctx.Println("No habits found. Add one with 'habitual habit add'.")
		return nil
	}

	ctx.Println(cli.Paint(cli.TitleStyle, fmt.Sprintf("Habits for %s", ov.Date)))
	ctx.Println()
	for _, row := range ov.Habits {
		if !row.Scheduled && !c.All && row.Log == nil {
			continue
		}
		var status models.LogStatus
		detail := ""
		if row.Log != nil {
			status = row.Log.Status
			detail = fmt.Sprintf(" %s/%s", cli.FormatValue(row.Log.Value), cli.FormatGoal(row.Habit.Goal))
		}
		name := strings.TrimSpace(row.Habit.Icon + " " + row.Habit.Name)
		line := fmt.Sprintf("%s %s%s", StatusMark(status), name, cli.Paint(cli.MutedStyle, detail))
		if !row.Scheduled {
			line += cli.Paint(cli.MutedStyle, " (not scheduled)")
		}
		if row.Streak.Current > 0 {
			line += " " + cli.Paint(cli.StreakStyle, fmt.Sprintf("🔥%d", row.Streak.Current))
		}
		ctx.Println(line)
	}

	ctx.Printf("\nCompleted: %d/%d (%d%%)\n", ov.Summary.Completed, ov.Summary.Scheduled, ov.Summary.Percentage)
	return nil
}
