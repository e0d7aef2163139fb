package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/tracker"
	"github.com/julianstephens/habitual/internal/tui/components/detail"
	"github.com/julianstephens/habitual/internal/tui/components/habits"
	"github.com/julianstephens/habitual/internal/tui/forms"
	"github.com/julianstephens/habitual/internal/utils"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateDetail
	StateForm
	StateConfirmDelete
	StateCelebrate
)

type Model struct {
	tracker  *tracker.Tracker
	state    SessionState
	keys     KeyMap
	help     help.Model
	habits   habits.Model
	detail   detail.Model
	overview tracker.Overview
	// date is the day being viewed and logged; never after today.
	date string

	form      *huh.Form
	habitForm *forms.HabitFormModel
	editingID string
	formError string

	habitToDeleteID string

	queue    []models.Achievement
	names    map[string]string
	confetti bool

	message  string
	quitting bool
	width    int
	height   int
}

// NewModel builds the dashboard for today. Achievements still waiting to be
// celebrated are shown first.
func NewModel(t *tracker.Tracker) (Model, error) {
	m := Model{
		tracker: t,
		state:   StateDashboard,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		habits:  habits.New(80, 20),
		date:    t.Today(),
	}
	if err := m.refresh(); err != nil {
		return m, err
	}
	if err := m.loadCelebrations(); err != nil {
		return m, err
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads the overview for the viewed date.
func (m *Model) refresh() error {
	ov, err := m.tracker.Overview(m.date)
	if err != nil {
		return err
	}
	m.overview = ov
	m.habits.SetRows(ov.Habits)
	return nil
}

// loadCelebrations switches to the celebration overlay when the queue is not empty.
func (m *Model) loadCelebrations() error {
	queue, err := m.tracker.Uncelebrated()
	if err != nil {
		return err
	}
	if len(queue) == 0 {
		return nil
	}
	settings, err := m.tracker.Settings()
	if err != nil {
		return err
	}
	all, err := m.tracker.Habits(true)
	if err != nil {
		return err
	}
	m.names = make(map[string]string, len(all))
	for _, h := range all {
		m.names[h.ID] = h.Name
	}
	m.queue = queue
	m.confetti = settings.ConfettiEnabled
	m.state = StateCelebrate
	return nil
}

func (m *Model) openDetail(habitID string) error {
	viewed, err := utils.ParseDate(m.date)
	if err != nil {
		return err
	}
	hs, err := m.tracker.Stats(habitID, viewed)
	if err != nil {
		return err
	}
	_, year, err := m.tracker.YearlyHeatmap(habitID, viewed.Year())
	if err != nil {
		return err
	}
	unlocked, err := m.tracker.Achievements(habitID)
	if err != nil {
		return err
	}
	m.detail = detail.New(hs, year, unlocked)
	m.state = StateDetail
	return nil
}
