package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, indigo on slate
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	AI        = lipgloss.Color("#A855F7") // Purple, AI generated content
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	FocusedCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(TextDim).
		Strikethrough(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Online = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Offline = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Chat bubbles
var (
	UserBubble = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Padding(0, 1)

	ModelBubble = lipgloss.NewStyle().
			Foreground(Text).
			Background(BgCard).
			Padding(0, 1)
)

// Components
var (
	LevelCurrent = lipgloss.NewStyle().
			Background(Secondary)

	LevelRequired = lipgloss.NewStyle().
			Background(Accent)

	LevelEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonDanger = lipgloss.NewStyle().
			Background(Error).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	BadgeAI = lipgloss.NewStyle().
		Foreground(AI).
		Bold(true)

	Tab = lipgloss.NewStyle().
		Foreground(TextDim).
		Padding(0, 1)

	TabActive = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Bold(true).
			Padding(0, 1)
)
