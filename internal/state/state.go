// Package state holds habits, logs, groups and achievements in memory and applies
// every mutation the application performs on them. It is the single writer the
// engine reads from; callers serialize access.
package state

import (
	"sort"
	"time"

	"github.com/julianstephens/habitual/internal/models"
)

// State is the complete data set of one user.
type State struct {
	Version      int                  `json:"version"`
	Settings     models.Settings      `json:"settings"`
	Habits       []models.Habit       `json:"habits"`
	Logs         []models.HabitLog    `json:"logs"`
	Groups       []models.Group       `json:"groups"`
	Achievements []models.Achievement `json:"achievements"`
}

// New returns an empty state with default settings.
func New() *State {
	return &State{
		Version:      1,
		Settings:     models.DefaultSettings(),
		Habits:       []models.Habit{},
		Logs:         []models.HabitLog{},
		Groups:       []models.Group{},
		Achievements: []models.Achievement{},
	}
}

// Normalize replaces nil collections, e.g. after decoding an older file.
func (s *State) Normalize() {
	if s.Habits == nil {
		s.Habits = []models.Habit{}
	}
	if s.Logs == nil {
		s.Logs = []models.HabitLog{}
	}
	if s.Groups == nil {
		s.Groups = []models.Group{}
	}
	if s.Achievements == nil {
		s.Achievements = []models.Achievement{}
	}
	if s.Version == 0 {
		s.Version = 1
	}
}

// Habits

func (s *State) habitIndex(id string) int {
	for i, h := range s.Habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

func (s *State) AddHabit(h models.Habit) {
	s.Habits = append(s.Habits, h)
}

func (s *State) Habit(id string) (models.Habit, bool) {
	if i := s.habitIndex(id); i >= 0 {
		return s.Habits[i], true
	}
	return models.Habit{}, false
}

// HabitByName returns the first habit with the exact name, preferring active habits.
func (s *State) HabitByName(name string) (models.Habit, bool) {
	var archived *models.Habit
	for i, h := range s.Habits {
		if h.Name != name {
			continue
		}
		if !h.IsArchived() {
			return h, true
		}
		if archived == nil {
			archived = &s.Habits[i]
		}
	}
	if archived != nil {
		return *archived, true
	}
	return models.Habit{}, false
}

// ListHabits returns habits ordered by sort order then creation time.
func (s *State) ListHabits(includeArchived bool) []models.Habit {
	out := make([]models.Habit, 0, len(s.Habits))
	for _, h := range s.Habits {
		if includeArchived || !h.IsArchived() {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *State) UpdateHabit(h models.Habit) bool {
	i := s.habitIndex(h.ID)
	if i < 0 {
		return false
	}
	s.Habits[i] = h
	return true
}

// SetArchived sets or clears the archive timestamp of a habit.
func (s *State) SetArchived(id string, at *time.Time) bool {
	i := s.habitIndex(id)
	if i < 0 {
		return false
	}
	s.Habits[i].ArchivedAt = at
	return true
}

// DeleteHabit removes a habit together with its logs and achievements.
func (s *State) DeleteHabit(id string) bool {
	i := s.habitIndex(id)
	if i < 0 {
		return false
	}
	s.Habits = append(s.Habits[:i], s.Habits[i+1:]...)

	logs := s.Logs[:0]
	for _, l := range s.Logs {
		if l.HabitID != id {
			logs = append(logs, l)
		}
	}
	s.Logs = logs

	achievements := s.Achievements[:0]
	for _, a := range s.Achievements {
		if a.HabitID != id {
			achievements = append(achievements, a)
		}
	}
	s.Achievements = achievements
	return true
}

// ReorderHabits assigns sort orders following ids. Unknown ids are ignored.
func (s *State) ReorderHabits(ids []string) {
	for order, id := range ids {
		if i := s.habitIndex(id); i >= 0 {
			s.Habits[i].SortOrder = order
		}
	}
}

// Logs

func (s *State) logIndex(habitID, date string) int {
	for i, l := range s.Logs {
		if l.HabitID == habitID && l.Date == date {
			return i
		}
	}
	return -1
}

// UpsertLog stores l as the only log of its habit and date. An existing log for
// the same pair is replaced and its ID kept.
func (s *State) UpsertLog(l models.HabitLog) models.HabitLog {
	if i := s.logIndex(l.HabitID, l.Date); i >= 0 {
		l.ID = s.Logs[i].ID
		s.Logs[i] = l
		return l
	}
	s.Logs = append(s.Logs, l)
	return l
}

func (s *State) Log(habitID, date string) (models.HabitLog, bool) {
	if i := s.logIndex(habitID, date); i >= 0 {
		return s.Logs[i], true
	}
	return models.HabitLog{}, false
}

// LogsForHabit returns the habit's logs in date order.
func (s *State) LogsForHabit(habitID string) []models.HabitLog {
	var out []models.HabitLog
	for _, l := range s.Logs {
		if l.HabitID == habitID {
			out = append(out, l)
		}
	}
	sortLogs(out)
	return out
}

func (s *State) LogsForDate(date string) []models.HabitLog {
	var out []models.HabitLog
	for _, l := range s.Logs {
		if l.Date == date {
			out = append(out, l)
		}
	}
	sortLogs(out)
	return out
}

func (s *State) AllLogs() []models.HabitLog {
	out := append([]models.HabitLog(nil), s.Logs...)
	sortLogs(out)
	return out
}

func (s *State) DeleteLog(habitID, date string) bool {
	i := s.logIndex(habitID, date)
	if i < 0 {
		return false
	}
	s.Logs = append(s.Logs[:i], s.Logs[i+1:]...)
	return true
}

func sortLogs(logs []models.HabitLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Date != logs[j].Date {
			return logs[i].Date < logs[j].Date
		}
		return logs[i].HabitID < logs[j].HabitID
	})
}

// Achievements

func (s *State) UnlockAchievement(a models.Achievement) {
	s.Achievements = append(s.Achievements, a)
}

// AchievementsForHabit returns the habit's achievements in unlock order.
func (s *State) AchievementsForHabit(habitID string) []models.Achievement {
	var out []models.Achievement
	for _, a := range s.Achievements {
		if a.HabitID == habitID {
			out = append(out, a)
		}
	}
	return out
}

func (s *State) AllAchievements() []models.Achievement {
	return append([]models.Achievement(nil), s.Achievements...)
}

func (s *State) MarkCelebrated(id string) bool {
	for i, a := range s.Achievements {
		if a.ID == id {
			s.Achievements[i].Celebrated = true
			return true
		}
	}
	return false
}

// Groups

func (s *State) AddGroup(g models.Group) {
	s.Groups = append(s.Groups, g)
}

// ListGroups returns groups by sort order.
func (s *State) ListGroups() []models.Group {
	out := append([]models.Group(nil), s.Groups...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

func (s *State) UpdateGroup(g models.Group) bool {
	for i := range s.Groups {
		if s.Groups[i].ID == g.ID {
			s.Groups[i] = g
			return true
		}
	}
	return false
}

// DeleteGroup removes a group and moves its habits out of it.
func (s *State) DeleteGroup(id string) bool {
	found := false
	groups := s.Groups[:0]
	for _, g := range s.Groups {
		if g.ID == id {
			found = true
			continue
		}
		groups = append(groups, g)
	}
	s.Groups = groups
	if !found {
		return false
	}
	for i := range s.Habits {
		if s.Habits[i].GroupID == id {
			s.Habits[i].GroupID = ""
		}
	}
	return true
}
