package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Interactive is true when stdout is a terminal; styling is dropped otherwise.
var Interactive = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	DoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	PartialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	MissedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	SkippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	StreakStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F97316"))
)

// Paint renders s with style when writing to a terminal.
func Paint(style lipgloss.Style, s string) string {
	if !Interactive {
		return s
	}
	return style.Render(s)
}

// Confirm asks a yes/no question. Without a terminal it refuses rather than guessing.
func Confirm(question string) (bool, error) {
	if !Interactive {
		return false, fmt.Errorf("confirmation required; rerun with --yes")
	}
	var ok bool
	err := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}
