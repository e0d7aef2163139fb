package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/state"
)

// JSONStore keeps all data in a single JSON file, rewritten after every change.
type JSONStore struct {
	path  string
	state *state.State
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// An existing file is kept as is
	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.state = state.New()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	st := &state.State{}
	if err := json.Unmarshal(data, st); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	st.Normalize()
	s.state = st

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.state == nil {
		return ErrNotLoaded
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.state.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.Settings = settings
	return s.save()
}

func (s *JSONStore) AddHabit(habit models.Habit) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, exists := s.state.Habit(habit.ID); exists {
		return fmt.Errorf("habit %s already exists", habit.ID)
	}
	s.state.AddHabit(habit)
	return s.save()
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if err := s.loaded(); err != nil {
		return models.Habit{}, err
	}
	h, ok := s.state.Habit(id)
	if !ok {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}
	return h, nil
}

func (s *JSONStore) GetHabitByName(name string) (models.Habit, error) {
	if err := s.loaded(); err != nil {
		return models.Habit{}, err
	}
	h, ok := s.state.HabitByName(name)
	if !ok {
		return models.Habit{}, fmt.Errorf("habit %q: %w", name, ErrNotFound)
	}
	return h, nil
}

func (s *JSONStore) GetAllHabits(includeArchived bool) ([]models.Habit, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.state.ListHabits(includeArchived), nil
}

func (s *JSONStore) UpdateHabit(habit models.Habit) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if !s.state.UpdateHabit(habit) {
		return fmt.Errorf("habit %s: %w", habit.ID, ErrNotFound)
	}
	return s.save()
}

func (s *JSONStore) ArchiveHabit(id string, at time.Time) error {
	h, err := s.GetHabit(id)
	if err != nil {
		return err
	}
	if h.IsArchived() {
		return ErrAlreadyArchived
	}
	s.state.SetArchived(id, &at)
	return s.save()
}

func (s *JSONStore) UnarchiveHabit(id string) error {
	h, err := s.GetHabit(id)
	if err != nil {
		return err
	}
	if !h.IsArchived() {
		return ErrNotArchived
	}
	s.state.SetArchived(id, nil)
	return s.save()
}

func (s *JSONStore) DeleteHabit(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if !s.state.DeleteHabit(id) {
		return fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}
	return s.save()
}

func (s *JSONStore) ReorderHabits(ids []string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.ReorderHabits(ids)
	return s.save()
}

func (s *JSONStore) UpsertLog(log models.HabitLog) (models.HabitLog, error) {
	if err := s.loaded(); err != nil {
		return models.HabitLog{}, err
	}
	if _, ok := s.state.Habit(log.HabitID); !ok {
		return models.HabitLog{}, fmt.Errorf("habit %s: %w", log.HabitID, ErrNotFound)
	}
	stored := s.state.UpsertLog(log)
	return stored, s.save()
}

func (s *JSONStore) GetLog(habitID, date string) (models.HabitLog, error) {
	if err := s.loaded(); err != nil {
		return models.HabitLog{}, err
	}
	l, ok := s.state.Log(habitID, date)
	if !ok {
		return models.HabitLog{}, fmt.Errorf("log for %s on %s: %w", habitID, date, ErrNotFound)
	}
	return l, nil
}

func (s *JSONStore) GetLogsForHabit(habitID string) ([]models.HabitLog, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.state.LogsForHabit(habitID), nil
}

func (s *JSONStore) GetLogsForDate(date string) ([]models.HabitLog, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.state.LogsForDate(date), nil
}

func (s *JSONStore) GetAllLogs() ([]models.HabitLog, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.state.AllLogs(), nil
}

func (s *JSONStore) DeleteLog(habitID, date string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if !s.state.DeleteLog(habitID, date) {
		return fmt.Errorf("log for %s on %s: %w", habitID, date, ErrNotFound)
	}
	return s.save()
}

func (s *JSONStore) AddAchievement(a models.Achievement) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.UnlockAchievement(a)
	return s.save()
}

func (s *JSONStore) GetAchievementsForHabit(habitID string) ([]models.Achievement, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.state.AchievementsForHabit(habitID), nil
}

func (s *JSONStore) GetAllAchievements() ([]models.Achievement, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.state.AllAchievements(), nil
}

func (s *JSONStore) MarkAchievementCelebrated(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if !s.state.MarkCelebrated(id) {
		return fmt.Errorf("achievement %s: %w", id, ErrNotFound)
	}
	return s.save()
}

func (s *JSONStore) AddGroup(g models.Group) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.AddGroup(g)
	return s.save()
}

func (s *JSONStore) GetGroups() ([]models.Group, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.state.ListGroups(), nil
}

func (s *JSONStore) UpdateGroup(g models.Group) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if !s.state.UpdateGroup(g) {
		return fmt.Errorf("group %s: %w", g.ID, ErrNotFound)
	}
	return s.save()
}

func (s *JSONStore) DeleteGroup(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if !s.state.DeleteGroup(id) {
		return fmt.Errorf("group %s: %w", id, ErrNotFound)
	}
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
