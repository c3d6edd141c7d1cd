package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/theme"
)

// Field wraps bubbles/textinput with a label.
type Field struct {
	Label string
	Model textinput.Model
}

// NewField creates a blurred field.
func NewField(label, placeholder string, charLimit int) Field {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return Field{Label: label, Model: ti}
}

// Focus focuses the field and returns the cursor command.
func (f *Field) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes focus.
func (f *Field) Blur() {
	f.Model.Blur()
}

// Focused reports whether the field has focus.
func (f Field) Focused() bool {
	return f.Model.Focused()
}

// SetWidth sets the visible input width.
func (f *Field) SetWidth(w int) {
	f.Model.SetWidth(max(w, 1))
}

// Update handles messages.
func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the label above the input.
func (f Field) View() string {
	label := theme.Label.Render(f.Label)
	if f.Focused() {
		label = theme.Selected.Render(f.Label)
	}
	return label + "\n" + f.Model.View()
}

// Value returns the trimmed input value.
func (f Field) Value() string {
	return strings.TrimSpace(f.Model.Value())
}

// SetValue replaces the input value.
func (f *Field) SetValue(v string) {
	f.Model.SetValue(v)
}

// Reset clears the input.
func (f *Field) Reset() {
	f.Model.Reset()
}
