package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/backup"
	"github.com/julianstephens/habitual/internal/clock"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
	Clock   clock.Clock
	Target  config.Target
	// Stdout receives command output; nil means os.Stdout.
	Stdout io.Writer
}

// NewContext wires a tracker over store using clk for every "today".
func NewContext(store storage.Provider, clk clock.Clock, target config.Target) *Context {
	return &Context{
		Store:   store,
		Tracker: tracker.New(store, clk),
		Clock:   clk,
		Target:  target,
	}
}

func (c *Context) Out() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out(), format, args...)
}

func (c *Context) Print(args ...any) {
	fmt.Fprint(c.Out(), args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out(), args...)
}

// BackupManager returns a backup manager for file-backed stores, or nil for PostgreSQL.
func (c *Context) BackupManager() *backup.Manager {
	if c.Target.Backend == config.BackendPostgres {
		return nil
	}
	return backup.NewManagerWithClock(c.Store.GetConfigPath(), c.Clock)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := c.BackupManager()
	if mgr == nil {
		return
	}
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	seen := make(map[time.Weekday]bool)
	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		wd, ok := dayMap[part]
		if !ok {
			// Try parsing as number (0=Sunday, 6=Saturday)
			num, err := strconv.Atoi(part)
			if err != nil || num < 0 || num > 6 {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
			wd = time.Weekday(num)
		}
		if !seen[wd] {
			seen[wd] = true
			weekdays = append(weekdays, wd)
		}
	}

	sort.Slice(weekdays, func(i, j int) bool { return weekdays[i] < weekdays[j] })
	return weekdays, nil
}

// ScheduleFlags are the schedule options shared by habit add and habit edit.
type ScheduleFlags struct {
	Schedule string `short:"s" help:"Schedule type (daily|specific_days|weekly|monthly|interval|specific_dates)."`
	Days     string `short:"w" help:"Comma-separated weekdays for specific_days (e.g. mon,wed,fri)."`
	Target   int    `short:"t" help:"Times per period for weekly or monthly schedules."`
	Every    int    `short:"e" help:"Interval in days for interval schedules."`
	Dates    string `help:"Comma-separated YYYY-MM-DD dates for specific_dates."`
}

// Given reports whether a schedule type was passed.
func (f ScheduleFlags) Given() bool {
	return f.Schedule != ""
}

// Build turns the flags into a schedule. An empty type means daily.
func (f ScheduleFlags) Build() (models.Schedule, error) {
	switch models.ScheduleType(f.Schedule) {
	case "", models.ScheduleDaily:
		return models.Daily{}, nil
	case models.ScheduleSpecificDays:
		if f.Days == "" {
			return nil, fmt.Errorf("specific_days requires --days")
		}
		days, err := ParseWeekdays(f.Days)
		if err != nil {
			return nil, err
		}
		return models.SpecificDays{Days: days}, nil
	case models.ScheduleWeekly:
		return models.Weekly{Target: f.Target}, nil
	case models.ScheduleMonthly:
		return models.Monthly{Target: f.Target}, nil
	case models.ScheduleInterval:
		return models.Interval{Days: f.Every}, nil
	case models.ScheduleSpecificDates:
		var dates []string
		for _, d := range strings.Split(f.Dates, ",") {
			if d = strings.TrimSpace(d); d != "" {
				dates = append(dates, d)
			}
		}
		sort.Strings(dates)
		return models.SpecificDates{Dates: dates}, nil
	}
	return nil, fmt.Errorf("invalid schedule type: %s", f.Schedule)
}

// FormatSchedule formats a schedule into a human-readable string
func FormatSchedule(s models.Schedule) string {
	switch s := s.(type) {
	case models.Daily:
		return "daily"
	case models.SpecificDays:
		var days []string
		for _, wd := range s.Days {
			days = append(days, wd.String()[:3])
		}
		return "on " + strings.Join(days, ",")
	case models.Weekly:
		return fmt.Sprintf("%dx per week", s.Target)
	case models.Monthly:
		return fmt.Sprintf("%dx per month", s.Target)
	case models.Interval:
		return fmt.Sprintf("every %d days", s.Days)
	case models.SpecificDates:
		return fmt.Sprintf("on %d dates", len(s.Dates))
	default:
		return "unknown"
	}
}

// FormatValue prints a logged value without trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatGoal renders a goal as "30 minutes".
func FormatGoal(g models.Goal) string {
	return FormatValue(g.Value) + " " + g.UnitLabel()
}
