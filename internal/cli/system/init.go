package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/storage/postgres"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized habitual storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Println("Migration completed successfully!")
	}
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if ctx.Target.Backend == config.BackendPostgres {
		return fmt.Errorf("--force is not supported for PostgreSQL; drop the schema manually")
	}
	dbPath := ctx.Store.GetConfigPath()
	if c.Source != "" {
		absDB, _ := filepath.Abs(dbPath)
		absSource, _ := filepath.Abs(c.Source)
		if absDB == absSource {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}
	if _, err := os.Stat(dbPath); err == nil {
		// Close first so the file is not held open while it is removed.
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		ctx.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

// migrateData copies every record from the source store into the destination.
func (c *InitCmd) migrateData(ctx *cli.Context) error {
	target := config.Classify(c.Source, "--source")
	if target.Backend == config.BackendPostgres {
		if err := postgres.ValidateConnString(c.Source); err != nil {
			return err
		}
	}
	source := config.OpenStore(target)
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer source.Close()

	return CopyStore(ctx, source, ctx.Store)
}

// CopyStore copies settings, groups, habits, logs and achievements from src to dst.
func CopyStore(ctx *cli.Context, src, dst storage.Provider) error {
	ctx.Println("  Migrating settings...")
	settings, err := src.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := dst.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	ctx.Println("  Migrating groups...")
	groups, err := src.GetGroups()
	if err != nil {
		return fmt.Errorf("failed to get groups from source: %w", err)
	}
	for _, g := range groups {
		if err := dst.AddGroup(g); err != nil {
			return fmt.Errorf("failed to add group %s: %w", g.ID, err)
		}
	}
	ctx.Printf("    Migrated %d groups\n", len(groups))

	ctx.Println("  Migrating habits...")
	habits, err := src.GetAllHabits(true)
	if err != nil {
		return fmt.Errorf("failed to get habits from source: %w", err)
	}
	for _, h := range habits {
		if err := dst.AddHabit(h); err != nil {
			return fmt.Errorf("failed to add habit %s: %w", h.ID, err)
		}
	}
	ctx.Printf("    Migrated %d habits\n", len(habits))

	ctx.Println("  Migrating logs...")
	logs, err := src.GetAllLogs()
	if err != nil {
		return fmt.Errorf("failed to get logs from source: %w", err)
	}
	for _, l := range logs {
		if _, err := dst.UpsertLog(l); err != nil {
			return fmt.Errorf("failed to add log %s: %w", l.ID, err)
		}
	}
	ctx.Printf("    Migrated %d logs\n", len(logs))

	ctx.Println("  Migrating achievements...")
	achievements, err := src.GetAllAchievements()
	if err != nil {
		return fmt.Errorf("failed to get achievements from source: %w", err)
	}
	for _, a := range achievements {
		if err := dst.AddAchievement(a); err != nil {
			return fmt.Errorf("failed to add achievement %s: %w", a.ID, err)
		}
	}
	ctx.Printf("    Migrated %d achievements\n", len(achievements))
	return nil
}
