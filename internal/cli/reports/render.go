package reports

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/stats"
)

var levelStyles = map[stats.Level]lipgloss.Style{
	stats.LevelEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")),
	stats.LevelLow:     lipgloss.NewStyle().Foreground(lipgloss.Color("#BBF7D0")),
	stats.LevelQuarter: lipgloss.NewStyle().Foreground(lipgloss.Color("#86EFAC")),
	stats.LevelHalf:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80")),
	stats.LevelHigh:    lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),
	stats.LevelFull:    lipgloss.NewStyle().Foreground(lipgloss.Color("#15803D")),
	stats.LevelSkipped: lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")),
}

// plain glyphs keep the heatmap readable without colour
var levelGlyphs = map[stats.Level]string{
	stats.LevelEmpty:   "·",
	stats.LevelLow:     "░",
	stats.LevelQuarter: "░",
	stats.LevelHalf:    "▒",
	stats.LevelHigh:    "▓",
	stats.LevelFull:    "█",
	stats.LevelSkipped: "-",
	stats.LevelPadding: " ",
}

func cell(level stats.Level) string {
	glyph := levelGlyphs[level]
	if style, ok := levelStyles[level]; ok {
		return cli.Paint(style, glyph)
	}
	return glyph
}

// RenderYear draws the yearly grid with one row per weekday and one column per week.
func RenderYear(grid [][]stats.HeatCell) string {
	var b strings.Builder
	for row := 0; row < 7; row++ {
		for _, week := range grid {
			if row < len(week) {
				b.WriteString(cell(week[row].Level))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderMonth draws a month as calendar rows of seven days starting at the first of the month.
func RenderMonth(points []stats.ChartPoint) string {
	var b strings.Builder
	for i, p := range points {
		day := p.Date[len(p.Date)-2:]
		level := stats.LevelOf(p)
		b.WriteString(day + cell(level) + " ")
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
	if len(points)%7 != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// Bar renders a percentage as a fixed-width bar.
func Bar(percentage, width int) string {
	filled := percentage * width / 100
	if filled > width {
		filled = width
	}
	return cli.Paint(cli.DoneStyle, strings.Repeat("█", filled)) + cli.Paint(cli.MutedStyle, strings.Repeat("░", width-filled))
}

func percent(p int) string {
	return fmt.Sprintf("%3d%%", p)
}
