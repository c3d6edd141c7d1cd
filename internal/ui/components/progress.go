package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/theme"
)

// LevelBar compares a current level with a required level on a 0..100
// scale.
type LevelBar struct {
	Label    string
	Current  float64
	Required float64
	Width    int
}

// NewLevelBar creates a new level bar.
func NewLevelBar(label string, current, required float64, width int) LevelBar {
	return LevelBar{
		Label:    label,
		Current:  current,
		Required: required,
		Width:    width,
	}
}

// View renders the label line and two bars: the student's level and the
// market requirement.
func (p LevelBar) View() string {
	barWidth := max(p.Width-14, 4)

	head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Label)
	if gap := p.Required - p.Current; gap > 0 {
		head += lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("  +%.0f", gap))
	}

	return head + "\n" +
		bar("You", p.Current, barWidth, theme.LevelCurrent) + "\n" +
		bar("Need", p.Required, barWidth, theme.LevelRequired)
}

func bar(label string, level float64, width int, fill lipgloss.Style) string {
	filled := min(max(int(float64(width)*level/100), 0), width)

	return theme.Subtitle.Render(fmt.Sprintf("%-5s", label)) +
		fill.Render(strings.Repeat(" ", filled)) +
		theme.LevelEmpty.Render(strings.Repeat(" ", width-filled)) +
		theme.Subtitle.Render(fmt.Sprintf(" %3.0f", level))
}
