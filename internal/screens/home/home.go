package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/appstate"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/router"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/screen"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/components"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/layout"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/theme"
)

// Profile is the student shown on the home screen.
type Profile struct {
	Name       string
	Major      string
	University string
	Location   string
}

// DefaultProfile is the demo student.
var DefaultProfile = Profile{
	Name:       "Alex Chen",
	Major:      "Computer Science • Junior Year",
	University: "Tsinghua University",
	Location:   "Beijing",
}

// HomeScreen shows the profile, study status and shortcuts to the other
// views.
type HomeScreen struct {
	state   *appstate.Store
	profile Profile
	menu    components.Menu
	now     func() time.Time
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(state *appstate.Store, profile Profile) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Plan my future", Action: func() tea.Cmd { return router.Switch(appstate.ViewFuture) }},
		{Label: "Talk to Little Zhi", Action: func() tea.Cmd { return router.Switch(appstate.ViewChat) }},
		{Label: "My goals", Action: func() tea.Cmd { return router.Switch(appstate.ViewGoals) }},
		{Label: "Cloud study room", Action: func() tea.Cmd { return router.Switch(appstate.ViewStudy) }},
		{Label: "Logout", Action: func() tea.Cmd { return tea.Quit }},
	}
	return &HomeScreen{
		state:   state,
		profile: profile,
		menu:    components.NewMenu(items),
		now:     time.Now,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		components.FocusCard(h.renderProfile(cw-4), cw),
		components.Card(h.renderStats(cw-4), cw),
		components.Card(h.renderDetails(), cw),
		h.menu.View(),
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(sections, "\n"))
}

func (h *HomeScreen) Title() string {
	return "My Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
	}
}

func (h *HomeScreen) renderProfile(w int) string {
	name := theme.Title.Render(h.profile.Name) + "\n" + theme.Subtitle.Render(h.profile.Major)
	status := StatusBadge(h.state.UserState().IsStudying)
	gap := max(w-lipgloss.Width(name)-lipgloss.Width(status), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, name, strings.Repeat(" ", gap), status)
}

func (h *HomeScreen) renderStats(w int) string {
	cell := lipgloss.NewStyle().Width(w / 3).Align(lipgloss.Center)
	stat := func(value, label string) string {
		return cell.Render(theme.Body.Bold(true).Render(value) + "\n" + theme.Subtitle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		stat(fmt.Sprintf("%d", h.state.CompletedGoalCount()), "Goals Done"),
		stat(FormatStudyTime(h.totalStudyMinutes()), "Total Study"),
		stat(fmt.Sprintf("%d", h.state.PendingGoalCount()), "Goals Pending"),
	)
}

func (h *HomeScreen) renderDetails() string {
	row := func(label, value string) string {
		return theme.Label.Render(fmt.Sprintf("%-14s", label)) + theme.Body.Render(value)
	}
	return row("My University", h.profile.University) + "\n" + row("Location", h.profile.Location)
}

// totalStudyMinutes includes the running session, if any.
func (h *HomeScreen) totalStudyMinutes() float64 {
	u := h.state.UserState()
	total := u.AccumulatedMinutes
	if u.IsStudying && u.StudyStartTime != nil {
		total += h.now().Sub(*u.StudyStartTime).Minutes()
	}
	return total
}

// StatusBadge renders the study status other views show.
func StatusBadge(studying bool) string {
	if studying {
		return theme.Online.Render("● Currently Studying")
	}
	return theme.Offline.Render("○ Offline")
}

// FormatStudyTime renders minutes as "1h 05m" or "12m".
func FormatStudyTime(minutes float64) string {
	m := max(int(minutes), 0)
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %02dm", m/60, m%60)
}
