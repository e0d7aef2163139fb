package constants

import "time"

const (
	AppName            = "habitual"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitual/habitual.db"
	Version            = "v0.3.0"

	// DateFormat is the calendar-date format used for every log and schedule date (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Environment variables
	EnvDBConnection = "HABITUAL_DB_CONNECTION"
	EnvWeekStart    = "HABITUAL_WEEK_START"
	EnvDotFile      = ".env"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitual-"
	BackupFileSuffix = ".db"

	// Log file constants
	LogDirName  = "logs"
	LogFileName = "habitual.log"

	// Settings keys
	SettingWeekStartsOn    = "week_starts_on"
	SettingTheme           = "theme"
	SettingConfettiEnabled = "confetti_enabled"

	// Settings defaults
	DefaultWeekStartsOn    = time.Sunday
	DefaultTheme           = "system"
	DefaultConfettiEnabled = true

	// StreakLookbackDays caps the backward walk of the current-streak calculation.
	StreakLookbackDays = 365

	// Recency windows after which perfect-period achievements can be earned again
	PerfectWeekWindowDays  = 7
	PerfectMonthWindowDays = 30
)
