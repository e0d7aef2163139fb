package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

// Settings represents user preferences
type Settings struct {
	WeekStartsOn    time.Weekday `json:"week_starts_on"`   // time.Sunday or time.Monday
	Theme           string       `json:"theme"`            // "light", "dark" or "system"
	ConfettiEnabled bool         `json:"confetti_enabled"` // whether unlocks are celebrated in the TUI
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{
		WeekStartsOn:    constants.DefaultWeekStartsOn,
		Theme:           constants.DefaultTheme,
		ConfettiEnabled: constants.DefaultConfettiEnabled,
	}
}

// ParseWeekStart accepts "sunday", "monday", "0" or "1".
func ParseWeekStart(value string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "sun", "sunday":
		return time.Sunday, nil
	case "1", "mon", "monday":
		return time.Monday, nil
	}
	return time.Sunday, fmt.Errorf("invalid week start %q (expected sunday or monday)", value)
}

// ValidTheme reports whether name is a supported theme.
func ValidTheme(name string) bool {
	switch name {
	case "light", "dark", "system":
		return true
	}
	return false
}

// MapToSettings converts a map of key-value pairs to a Settings struct.
// Missing keys keep their defaults.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := DefaultSettings()

	for key, value := range data {
		switch key {
		case constants.SettingWeekStartsOn:
			day, err := ParseWeekStart(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing week_starts_on: %w", err)
			}
			settings.WeekStartsOn = day
		case constants.SettingTheme:
			if !ValidTheme(value) {
				return Settings{}, fmt.Errorf("parsing theme: unknown theme %q", value)
			}
			settings.Theme = value
		case constants.SettingConfettiEnabled:
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing confetti_enabled: %w", err)
			}
			settings.ConfettiEnabled = enabled
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingWeekStartsOn:    strconv.Itoa(int(settings.WeekStartsOn)),
		constants.SettingTheme:           settings.Theme,
		constants.SettingConfettiEnabled: strconv.FormatBool(settings.ConfettiEnabled),
	}
}
