package tracker

import (
	"fmt"
	"sort"

	"github.com/julianstephens/habitual/internal/achievement"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
)

// CheckAchievements evaluates a habit and persists any newly unlocked achievements.
func (t *Tracker) CheckAchievements(ref string) ([]models.Achievement, error) {
	habit, err := t.ResolveHabit(ref)
	if err != nil {
		return nil, err
	}
	return t.checkAchievements(habit)
}

func (t *Tracker) checkAchievements(habit models.Habit) ([]models.Achievement, error) {
	settings, err := t.Settings()
	if err != nil {
		return nil, err
	}
	logs, err := t.store.GetLogsForHabit(habit.ID)
	if err != nil {
		return nil, err
	}
	existing, err := t.store.GetAchievementsForHabit(habit.ID)
	if err != nil {
		return nil, err
	}

	eval := achievement.NewEvaluator(t.clock, settings.WeekStartsOn)
	eval.NewID = t.newID
	unlocked := eval.Check(habit.ID, logs, habit, existing)

	for _, a := range unlocked {
		if err := t.store.AddAchievement(a); err != nil {
			return nil, fmt.Errorf("failed to save achievement: %w", err)
		}
		logger.Info("achievement unlocked", "habit", habit.Name, "type", a.Type, "milestone", a.Milestone)
	}
	return unlocked, nil
}

// Achievements lists unlocked achievements, newest first. An empty ref lists all habits.
func (t *Tracker) Achievements(ref string) ([]models.Achievement, error) {
	var (
		list []models.Achievement
		err  error
	)
	if ref == "" {
		list, err = t.store.GetAllAchievements()
	} else {
		var habit models.Habit
		if habit, err = t.ResolveHabit(ref); err != nil {
			return nil, err
		}
		list, err = t.store.GetAchievementsForHabit(habit.ID)
	}
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].UnlockedAt.After(list[j].UnlockedAt)
	})
	return list, nil
}

// Uncelebrated returns the celebration queue, oldest unlock first.
func (t *Tracker) Uncelebrated() ([]models.Achievement, error) {
	all, err := t.store.GetAllAchievements()
	if err != nil {
		return nil, err
	}
	var queue []models.Achievement
	for _, a := range all {
		if !a.Celebrated {
			queue = append(queue, a)
		}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].UnlockedAt.Before(queue[j].UnlockedAt)
	})
	return queue, nil
}

// Celebrate marks an achievement as celebrated, the only change an achievement accepts.
func (t *Tracker) Celebrate(id string) error {
	return t.store.MarkAchievementCelebrated(id)
}

// CelebrateAll drains the celebration queue and returns what was in it.
func (t *Tracker) CelebrateAll() ([]models.Achievement, error) {
	queue, err := t.Uncelebrated()
	if err != nil {
		return nil, err
	}
	for _, a := range queue {
		if err := t.Celebrate(a.ID); err != nil {
			return nil, err
		}
	}
	return queue, nil
}
