package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/cli/achievements"
	"github.com/julianstephens/habitual/internal/cli/backups"
	"github.com/julianstephens/habitual/internal/cli/habits"
	"github.com/julianstephens/habitual/internal/cli/logs"
	"github.com/julianstephens/habitual/internal/cli/reports"
	"github.com/julianstephens/habitual/internal/cli/settings"
	"github.com/julianstephens/habitual/internal/cli/system"
	"github.com/julianstephens/habitual/internal/clock"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path (.db for SQLite, .json for a JSON document) or PostgreSQL connection string. PostgreSQL credentials must NOT be embedded; use HABITUAL_DB_CONNECTION, .pgpass or the OS keyring instead." type:"string" default:"${default_config}"`
	Debug   bool   `help:"Write debug output to the log file."`
	Today   string `hidden:"" help:"Pretend today is this date (YYYY-MM-DD)."`

	Init         system.InitCmd               `cmd:"" help:"Initialize habitual storage."`
	Tui          system.TuiCmd                `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	TodayCmd     logs.TodayCmd                `cmd:"" name:"today" help:"Show habits and their status for a day."`
	Log          logs.LogCmd                  `cmd:"" help:"Log progress for a habit."`
	Skip         logs.SkipCmd                 `cmd:"" help:"Mark a habit as skipped for a day."`
	Miss         logs.MissCmd                 `cmd:"" help:"Mark a habit as missed for a day."`
	Unlog        logs.UnlogCmd                `cmd:"" help:"Remove the log of a habit for a day."`
	Habit        habits.HabitCmd              `cmd:"" help:"Manage habits."`
	Group        habits.GroupCmd              `cmd:"" help:"Manage habit groups."`
	Stats        reports.StatsCmd             `cmd:"" help:"Show streaks and completion statistics."`
	Heatmap      reports.HeatmapCmd           `cmd:"" help:"Show the yearly heatmap of a habit."`
	Trend        reports.TrendCmd             `cmd:"" help:"Show the recent trend of a habit."`
	Achievements achievements.AchievementsCmd `cmd:"" help:"List and celebrate achievements."`
	Settings     settings.SettingsCmd         `cmd:"" help:"Manage application settings."`
	Backup       backups.BackupCmd            `cmd:"" help:"Manage database backups."`
	ConfigCmd    system.ConfigCmd             `cmd:"" name:"config" help:"Manage the PostgreSQL connection stored in the OS keyring."`
	Doctor       system.DoctorCmd             `cmd:"" help:"Run health checks and diagnostics."`
	DebugCmd     system.DebugCmd              `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

// selfLoading commands open the store themselves or do not need it.
var selfLoading = map[string]bool{
	"init":   true,
	"config": true,
	"doctor": true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with streaks, schedules and achievements"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	if err := config.LoadDotEnv(constants.EnvDotFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	target, err := config.Resolve(CLI.Config)
	errors.Fatal(err)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: target.Dir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	clk := clock.System()
	if CLI.Today != "" {
		clk, err = clock.AtDate(CLI.Today)
		if err != nil {
			errors.Fatalf("invalid --today %q: expected YYYY-MM-DD", CLI.Today)
		}
	}

	store := config.OpenStore(target)
	appCtx := cli.NewContext(store, clk, target)

	command := strings.Fields(ctx.Command())
	if len(command) > 0 && !selfLoading[command[0]] {
		errors.Fatal(store.Load())
	}

	logger.Debug("Running command", "command", ctx.Command(), "backend", target.Backend)
	err = ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close store", "error", closeErr)
	}
	errors.Fatal(err)
}
