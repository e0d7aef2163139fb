package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitual/internal/achievement"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDashboard:
		content = m.viewDashboard()
	case StateDetail:
		content = docStyle.Render(m.detail.View())
	case StateForm:
		content = m.viewForm()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	case StateCelebrate:
		content = m.viewCelebrate()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewHeader() string {
	title := headerStyle.Render("habitual")
	date := m.date
	if date == m.tracker.Today() {
		date += " (today)"
	}
	s := m.overview.Summary
	progress := mutedStyle.Render(fmt.Sprintf("%s  %d/%d done  %d%%", date, s.Completed, s.Scheduled, s.Percentage))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", progress)
}

func (m Model) viewDashboard() string {
	var b strings.Builder
	if m.habits.Len() == 0 {
		b.WriteString(mutedStyle.Render("No habits yet. Press 'a' to add one."))
	} else {
		b.WriteString(m.habits.View())
	}
	if m.message != "" {
		b.WriteString("\n" + warningStyle.Render(m.message))
	}
	return docStyle.Render(b.String())
}

func (m Model) viewForm() string {
	view := m.form.View()
	if m.formError != "" {
		view += "\n" + dangerStyle.Render(m.formError)
	}
	return docStyle.Render(view)
}

func (m Model) viewConfirmDelete() string {
	name := m.habitToDeleteID
	for _, row := range m.overview.Habits {
		if row.Habit.ID == m.habitToDeleteID {
			name = row.Habit.Name
		}
	}
	return docStyle.Render(
		dangerStyle.Render(fmt.Sprintf("Delete %s permanently?", name)) + "\n" +
			"All of its logs and achievements are removed.\n\n" +
			mutedStyle.Render("y to confirm, n to cancel"),
	)
}

func (m Model) viewCelebrate() string {
	var b strings.Builder
	if m.confetti {
		b.WriteString("🎉 🎊 🎉 🎊 🎉\n\n")
	}
	for _, a := range m.queue {
		b.WriteString(fmt.Sprintf("%s %s  %s\n", achievement.Icon(a), achievement.Title(a), mutedStyle.Render(m.names[a.HabitID])))
		b.WriteString("   " + achievement.Description(a) + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("press any key to continue"))
	return docStyle.Render(celebrationStyle.Render(b.String()))
}
