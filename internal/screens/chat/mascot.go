package chat

import (
	"charm.land/lipgloss/v2"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/theme"
)

// MascotVariant selects which Little Zhi art to display.
type MascotVariant int

const (
	MascotIdle     MascotVariant = iota
	MascotThinking               // reply in flight
	MascotNapping                // last reply failed
)

const mascotIdle = `╭─────╮
│ ◕ ◕ │
│  ‿  │
╰─────╯`

const mascotThinking = `╭─────╮
│ ◔ ◔ │ ?
│  ~  │
╰─────╯`

const mascotNapping = `╭─────╮
│ ─ ─ │ z
│  o  │
╰─────╯`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotThinking:
		art = mascotThinking
		fg = theme.AI
	case MascotNapping:
		art = mascotNapping
		fg = theme.TextDim
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
