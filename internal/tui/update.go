package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/tracker"
	"github.com/julianstephens/habitual/internal/tui/forms"
	"github.com/julianstephens/habitual/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// header, status line and help
		m.habits.SetSize(msg.Width-4, msg.Height-6)
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width - 4)
		}
		return m, nil
	}

	switch m.state {
	case StateForm:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case StateCelebrate:
		return m.updateCelebrate(msg)
	case StateDetail:
		return m.updateDetail(msg)
	}
	return m.updateDashboard(msg)
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.habits, cmd = m.habits.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.PrevDay):
		m.moveDate(utils.PreviousDay(m.date))
		return m, nil
	case key.Matches(keyMsg, m.keys.NextDay):
		if next := utils.NextDay(m.date); next <= m.tracker.Today() {
			m.moveDate(next)
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Today):
		m.moveDate(m.tracker.Today())
		return m, nil
	case key.Matches(keyMsg, m.keys.Add):
		m.startForm(forms.NewHabitFormModel(), "")
		return m, m.form.Init()
	}

	row, selected := m.habits.Selected()
	if selected {
		switch {
		case key.Matches(keyMsg, m.keys.Complete):
			m.log(row, models.StatusCompleted)
			return m, nil
		case key.Matches(keyMsg, m.keys.Skip):
			m.log(row, models.StatusSkipped)
			return m, nil
		case key.Matches(keyMsg, m.keys.Miss):
			m.log(row, models.StatusMissed)
			return m, nil
		case key.Matches(keyMsg, m.keys.Unlog):
			if err := m.tracker.Unlog(row.Habit.ID, m.date); err != nil {
				m.message = err.Error()
			} else {
				m.message = fmt.Sprintf("Cleared %s on %s", row.Habit.Name, m.date)
			}
			m.reload()
			return m, nil
		case key.Matches(keyMsg, m.keys.Detail):
			if err := m.openDetail(row.Habit.ID); err != nil {
				m.message = err.Error()
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Edit):
			m.startForm(forms.FromHabit(row.Habit), row.Habit.ID)
			return m, m.form.Init()
		case key.Matches(keyMsg, m.keys.Archive):
			if err := m.tracker.Archive(row.Habit.ID); err != nil {
				m.message = err.Error()
			} else {
				m.message = fmt.Sprintf("Archived %s", row.Habit.Name)
			}
			m.reload()
			return m, nil
		case key.Matches(keyMsg, m.keys.Delete):
			m.habitToDeleteID = row.Habit.ID
			m.state = StateConfirmDelete
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.habits, cmd = m.habits.Update(msg)
	return m, cmd
}

// log records status for the selected habit on the viewed date. Completing a
// day that already counts toggles it back to empty.
func (m *Model) log(row tracker.HabitStatus, status models.LogStatus) {
	if status == models.StatusCompleted && row.Log != nil && row.Log.Status == models.StatusCompleted {
		if err := m.tracker.Unlog(row.Habit.ID, m.date); err != nil {
			m.message = err.Error()
		}
		m.reload()
		return
	}

	res, err := m.tracker.Log(tracker.LogInput{Habit: row.Habit.ID, Date: m.date, Status: status})
	if err != nil {
		m.message = err.Error()
		return
	}
	m.message = fmt.Sprintf("%s %s on %s", res.Log.Status, row.Habit.Name, res.Log.Date)
	m.reload()
	if len(res.Unlocked) > 0 {
		if err := m.loadCelebrations(); err != nil {
			m.message = err.Error()
		}
	}
}

func (m *Model) reload() {
	if err := m.refresh(); err != nil {
		m.message = err.Error()
	}
}

func (m *Model) moveDate(date string) {
	previous := m.date
	m.date = date
	if err := m.refresh(); err != nil {
		m.date = previous
		m.message = err.Error()
		return
	}
	m.message = ""
}

func (m *Model) startForm(fm *forms.HabitFormModel, habitID string) {
	m.habitForm = fm
	m.editingID = habitID
	m.formError = ""
	m.form = forms.NewHabitForm(fm)
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width - 4)
	}
	m.state = StateForm
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateDashboard
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.saveForm(); err != nil {
			// Stay in the form so the user can correct the value
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		m.formError = ""
		m.state = StateDashboard
		m.reload()
	case huh.StateAborted:
		m.state = StateDashboard
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) saveForm() error {
	if m.editingID == "" {
		habit, err := m.habitForm.Apply(models.Habit{})
		if err != nil {
			return err
		}
		created, err := m.tracker.CreateHabit(habit)
		if err != nil {
			return err
		}
		m.message = fmt.Sprintf("Added %s", created.Name)
		return nil
	}

	existing, err := m.tracker.ResolveHabit(m.editingID)
	if err != nil {
		return err
	}
	habit, err := m.habitForm.Apply(existing)
	if err != nil {
		return err
	}
	if err := m.tracker.UpdateHabit(habit); err != nil {
		return err
	}
	m.message = fmt.Sprintf("Updated %s", habit.Name)
	return nil
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		if err := m.tracker.DeleteHabit(m.habitToDeleteID); err != nil {
			m.message = err.Error()
		} else {
			m.message = "Habit deleted"
		}
		m.habitToDeleteID = ""
		m.state = StateDashboard
		m.reload()
	case "n", "N", "esc":
		m.habitToDeleteID = ""
		m.state = StateDashboard
	}
	return m, nil
}

// updateCelebrate clears the whole queue on the first key press.
func (m Model) updateCelebrate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if _, err := m.tracker.CelebrateAll(); err != nil {
		m.message = err.Error()
	}
	m.queue = nil
	m.state = StateDashboard
	if keyMsg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Back), key.Matches(keyMsg, m.keys.Detail):
		m.state = StateDashboard
	}
	return m, nil
}
