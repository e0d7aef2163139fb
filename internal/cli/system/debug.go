package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/models"
)

type DebugCmd struct {
	DBPath    DebugDBPathCmd    `cmd:"" help:"Show database path."`
	DumpHabit DebugDumpHabitCmd `cmd:"" help:"Dump a habit with its logs and achievements as JSON."`
	DumpDay   DebugDumpDayCmd   `cmd:"" help:"Dump every log of a date as JSON."`
}

func printJSON(ctx *cli.Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(jsonBytes))
	return nil
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx, map[string]string{
		"path":    ctx.Store.GetConfigPath(),
		"backend": string(ctx.Target.Backend),
		"source":  ctx.Target.Source,
	})
}

type DebugDumpHabitCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
}

func (cmd *DebugDumpHabitCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Tracker.ResolveHabit(cmd.Habit)
	if err != nil {
		return err
	}
	logs, err := ctx.Store.GetLogsForHabit(habit.ID)
	if err != nil {
		return fmt.Errorf("failed to get logs: %w", err)
	}
	achievements, err := ctx.Store.GetAchievementsForHabit(habit.ID)
	if err != nil {
		return fmt.Errorf("failed to get achievements: %w", err)
	}
	summary, err := ctx.Tracker.Summary(habit.ID)
	if err != nil {
		return err
	}
	return printJSON(ctx, struct {
		Habit        models.Habit         `json:"habit"`
		Summary      any                  `json:"summary"`
		Logs         []models.HabitLog    `json:"logs"`
		Achievements []models.Achievement `json:"achievements"`
	}{habit, summary, logs, achievements})
}

type DebugDumpDayCmd struct {
	Date string `arg:"" help:"Date to dump (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpDayCmd) Run(ctx *cli.Context) error {
	date := cmd.Date
	if date == "today" {
		date = ctx.Tracker.Today()
	}
	ov, err := ctx.Tracker.Overview(date)
	if err != nil {
		return err
	}
	logs, err := ctx.Store.GetLogsForDate(date)
	if err != nil {
		return fmt.Errorf("failed to get logs: %w", err)
	}
	return printJSON(ctx, struct {
		Summary any               `json:"summary"`
		Logs    []models.HabitLog `json:"logs"`
	}{ov.Summary, logs})
}
