package study

import (
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/appstate"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/screen"
	timer "github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/study"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/components"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/layout"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/theme"
)

// StudyScreen is the cloud study room. The controller belongs to the app so
// the timer keeps running while other views are shown.
type StudyScreen struct {
	state      *appstate.Store
	controller *timer.Controller
}

var _ screen.Screen = (*StudyScreen)(nil)

// New creates a new StudyScreen.
func New(state *appstate.Store, controller *timer.Controller) *StudyScreen {
	return &StudyScreen{state: state, controller: controller}
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "space", "enter", "p":
		return s, s.controller.Toggle()
	case "c":
		s.state.ClearStudyFocus()
	}
	return s, nil
}

func (s *StudyScreen) View(width, height int) string {
	running := s.controller.Running()

	focus := theme.Subtitle.Render("Immersive Mode")
	if title, ok := s.state.StudyFocus(); ok {
		focus = theme.Label.Render("Focus: ") + theme.Body.Bold(true).Render(title)
	}

	status := theme.Offline.Render("Paused")
	button := components.NewButton("▶ Start", false)
	if running {
		status = theme.Online.Render("Focusing")
		button = components.NewButton("❚❚ Pause", true)
	}

	clock := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor(running)).
		Padding(1, 4).
		Render(timer.FormatElapsed(s.controller.Seconds()))

	body := strings.Join([]string{
		theme.Title.Render("Cloud Study Room"),
		focus,
		"",
		clock,
		status,
		"",
		button.View(),
		"",
		theme.Hint.Render("♪ White Noise · Rainy Cafe"),
	}, "\n")

	return components.Center(lipgloss.NewStyle().Align(lipgloss.Center).Render(body), width, height)
}

func borderColor(running bool) color.Color {
	if running {
		return theme.Success
	}
	return theme.Border
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Space", Description: "Start/Pause"}}
	if _, ok := s.state.StudyFocus(); ok {
		hints = append(hints, layout.KeyHint{Key: "c", Description: "Change focus"})
	}
	return hints
}
