package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/storage"
)

type DoctorCmd struct{}

type check struct {
	name    string
	run     func(*cli.Context) error
	warning bool
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	checks := []check{
		{name: "Database reachable", run: checkDBReachable},
		{name: "Schema version", run: checkSchemaVersion},
		{name: "Backups present", run: checkBackupsPresent, warning: true},
		{name: "Data validation", run: checkValidation},
		{name: "Clock/timezone", run: checkClockTimezone},
	}

	hasError := false
	dbReachable := true
	for _, c := range checks {
		if !dbReachable && c.name == "Data validation" {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warning:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if c.name == "Database reachable" {
				dbReachable = false
			}
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	versioner, ok := ctx.Store.(storage.SchemaVersioner)
	if !ok {
		// JSON documents carry no schema version
		return nil
	}
	current, latest, err := versioner.SchemaVersion()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := ctx.BackupManager()
	if mgr == nil {
		return nil
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'habitual backup create'")
	}
	return nil
}

// checkValidation looks for records the engine would silently ignore.
func checkValidation(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	known := make(map[string]bool, len(habits))
	for _, h := range habits {
		if known[h.ID] {
			return fmt.Errorf("duplicate habit ID found: %s", h.ID)
		}
		known[h.ID] = true
		if err := h.Validate(); err != nil {
			return fmt.Errorf("habit %q is invalid: %w", h.Name, err)
		}
	}

	logs, err := ctx.Store.GetAllLogs()
	if err != nil {
		return fmt.Errorf("failed to get logs: %w", err)
	}
	seen := make(map[string]bool, len(logs))
	for _, l := range logs {
		if !known[l.HabitID] {
			return fmt.Errorf("log %s references unknown habit %s", l.ID, l.HabitID)
		}
		key := l.HabitID + "|" + l.Date
		if seen[key] {
			return fmt.Errorf("more than one log for habit %s on %s", l.HabitID, l.Date)
		}
		seen[key] = true
		if !l.Status.Valid() {
			return fmt.Errorf("log %s has invalid status %q", l.ID, l.Status)
		}
	}

	achievements, err := ctx.Store.GetAllAchievements()
	if err != nil {
		return fmt.Errorf("failed to get achievements: %w", err)
	}
	for _, a := range achievements {
		if !known[a.HabitID] {
			return fmt.Errorf("achievement %s references unknown habit %s", a.ID, a.HabitID)
		}
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Clock.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset == 0 && now.Location() == time.UTC {
		ctx.Printf("   Note: timezone is UTC\n")
	}
	return nil
}
