package components

import (
	"charm.land/lipgloss/v2"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/theme"
)

// ContentWidth returns the inner width used by screen sections so cards
// line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-4, 20), 72)
}

// Card wraps content in a rounded-border box of the given content width.
func Card(content string, cw int) string {
	return theme.Card.Width(cw).Render(content)
}

// FocusCard is Card with the primary border color.
func FocusCard(content string, cw int) string {
	return theme.FocusedCard.Width(cw).Render(content)
}

// Section renders a bold heading above body.
func Section(heading, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left, theme.Title.Render(heading), body)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
