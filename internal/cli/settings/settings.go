package settings

import (
	"fmt"
	"os"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Change settings."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Tracker.Settings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	ctx.Println("Current Settings:")
	ctx.Printf("  Week starts on:    %s", settings.WeekStartsOn)
	if os.Getenv(constants.EnvWeekStart) != "" {
		ctx.Printf(" (from %s)", constants.EnvWeekStart)
	}
	ctx.Println()
	ctx.Printf("  Theme:             %s\n", settings.Theme)
	ctx.Printf("  Confetti:          %v\n", settings.ConfettiEnabled)
	ctx.Printf("\nStorage: %s (%s)\n", ctx.Store.GetConfigPath(), ctx.Target.Backend)
	return nil
}

type SettingsSetCmd struct {
	WeekStart *string `help:"First day of the week (sunday|monday)."`
	Theme     *string `help:"Theme (light|dark|system)."`
	Confetti  *bool   `help:"Show confetti when celebrating achievements."`
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	// Edit stored values so an environment override is never persisted.
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	updated := false
	if c.WeekStart != nil {
		day, err := models.ParseWeekStart(*c.WeekStart)
		if err != nil {
			return err
		}
		settings.WeekStartsOn = day
		updated = true
	}
	if c.Theme != nil {
		settings.Theme = *c.Theme
		updated = true
	}
	if c.Confetti != nil {
		settings.ConfettiEnabled = *c.Confetti
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use 'settings show' to view settings or flags to update them.")
		return nil
	}
	if err := ctx.Tracker.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	ctx.Printf("  %s = %s\n", constants.SettingWeekStartsOn, settings.WeekStartsOn)
	ctx.Printf("  %s = %s\n", constants.SettingTheme, settings.Theme)
	ctx.Printf("  %s = %v\n", constants.SettingConfettiEnabled, settings.ConfettiEnabled)
	return nil
}
