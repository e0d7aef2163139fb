package tracker

import (
	"fmt"
	"math"

	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
)

// LogInput describes one day of progress for a habit. Habit is an ID or name.
// Date defaults to today. With neither Value nor Status set the day is logged
// as completed at the goal value; with only Value the status is derived from
// the goal.
type LogInput struct {
	Habit  string
	Date   string
	Value  *float64
	Status models.LogStatus
	Note   string
}

// LogResult is the stored log and any achievements it unlocked.
type LogResult struct {
	Habit    models.Habit
	Log      models.HabitLog
	Unlocked []models.Achievement
}

// Log records progress for a habit and date, replacing any earlier log for the
// same pair. Completed and partial logs are followed by an achievement check
// whose unlocks are persisted.
func (t *Tracker) Log(in LogInput) (LogResult, error) {
	habit, err := t.activeHabit(in.Habit)
	if err != nil {
		return LogResult{}, err
	}
	date, err := t.resolveDate(in.Date)
	if err != nil {
		return LogResult{}, err
	}

	status := in.Status
	if status != "" && !status.Valid() {
		return LogResult{}, fmt.Errorf("invalid status: %s", status)
	}

	var value float64
	switch {
	case in.Value != nil:
		value = *in.Value
		if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return LogResult{}, ErrNegativeValue
		}
		if status == "" {
			status = models.DeriveStatus(value, habit.Goal.Value)
		}
	case status == "" || status == models.StatusCompleted:
		status = models.StatusCompleted
		value = habit.Goal.Value
	}

	log := models.HabitLog{
		ID:      t.newID(),
		HabitID: habit.ID,
		Date:    date,
		Value:   value,
		Status:  status,
		Note:    in.Note,
	}
	if status.Counts() {
		now := t.clock.Now()
		log.CompletedAt = &now
	}

	stored, err := t.store.UpsertLog(log)
	if err != nil {
		return LogResult{}, fmt.Errorf("failed to save log: %w", err)
	}
	logger.Info("habit logged", "habit", habit.Name, "date", date, "status", stored.Status, "value", stored.Value)

	result := LogResult{Habit: habit, Log: stored}
	if stored.Status.Counts() {
		unlocked, err := t.checkAchievements(habit)
		if err != nil {
			return result, err
		}
		result.Unlocked = unlocked
	}
	return result, nil
}

// Skip marks the date as intentionally skipped. Skipped days neither extend
// nor break a current streak.
func (t *Tracker) Skip(ref, date, note string) (LogResult, error) {
	return t.Log(LogInput{Habit: ref, Date: date, Status: models.StatusSkipped, Note: note})
}

// Miss records the date as missed.
func (t *Tracker) Miss(ref, date, note string) (LogResult, error) {
	return t.Log(LogInput{Habit: ref, Date: date, Status: models.StatusMissed, Note: note})
}

// Unlog removes the log for a habit and date. Achievements already unlocked are kept.
func (t *Tracker) Unlog(ref, date string) error {
	habit, err := t.ResolveHabit(ref)
	if err != nil {
		return err
	}
	if date == "" {
		date = t.Today()
	}
	if err := t.store.DeleteLog(habit.ID, date); err != nil {
		return err
	}
	logger.Info("habit log removed", "habit", habit.Name, "date", date)
	return nil
}

// LogFor returns the log for a habit and date, if one exists.
func (t *Tracker) LogFor(habitID, date string) (models.HabitLog, bool, error) {
	log, err := t.store.GetLog(habitID, date)
	if err != nil {
		if isNotFound(err) {
			return models.HabitLog{}, false, nil
		}
		return models.HabitLog{}, false, err
	}
	return log, true, nil
}

// Logs returns every log of a habit, oldest first.
func (t *Tracker) Logs(habitID string) ([]models.HabitLog, error) {
	return t.store.GetLogsForHabit(habitID)
}
