package components

import (
	"charm.land/lipgloss/v2"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/theme"
)

// Button is a styled button label.
type Button struct {
	Label  string
	Danger bool
}

// NewButton creates a new button.
func NewButton(label string, danger bool) Button {
	return Button{Label: label, Danger: danger}
}

// View renders the button.
func (b Button) View() string {
	style := theme.ButtonActive
	if b.Danger {
		style = theme.ButtonDanger
	}
	return style.Render(b.Label)
}

// Width returns the rendered width.
func (b Button) Width() int {
	return lipgloss.Width(b.View())
}
