package goals

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/appstate"
	domain "github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/goals"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/screen"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/components"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/layout"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/theme"
)

const emptyText = `No goals yet. Use "My Future" to find gaps!`

// GoalsScreen lists goals and adds manual ones.
type GoalsScreen struct {
	state  *appstate.Store
	logger *slog.Logger
	cursor int

	adding bool
	fields [2]components.Field
	field  int
	errMsg string
}

var _ screen.Screen = (*GoalsScreen)(nil)

// New creates a new GoalsScreen.
func New(state *appstate.Store, logger *slog.Logger) *GoalsScreen {
	if logger == nil {
		logger = slog.Default()
	}
	return &GoalsScreen{
		state:  state,
		logger: logger,
		fields: [2]components.Field{
			components.NewField("Title", "e.g. Finish the Go tour", 80),
			components.NewField("Description", "optional", 160),
		},
	}
}

func (g *GoalsScreen) Init() tea.Cmd {
	return nil
}

// CapturingInput is true while the add form is open.
func (g *GoalsScreen) CapturingInput() bool {
	return g.adding
}

func (g *GoalsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}
	if g.adding {
		return g, g.updateForm(kmsg)
	}

	list := g.state.Goals()
	switch kmsg.String() {
	case "up", "k":
		g.cursor = max(g.cursor-1, 0)
	case "down", "j":
		g.cursor = min(g.cursor+1, max(len(list)-1, 0))
	case "space", "enter", "x":
		if sel, ok := g.selected(list); ok {
			if err := g.state.ToggleGoalCompletion(sel.ID); err != nil {
				g.logger.Debug("toggle goal", "id", sel.ID, "error", err)
			}
		}
	case "s":
		if sel, ok := g.selected(list); ok && !sel.Completed {
			g.state.FocusAndStudy(sel.Title)
		}
	case "a", "n":
		return g, g.openForm()
	}
	return g, nil
}

func (g *GoalsScreen) selected(list []domain.Goal) (domain.Goal, bool) {
	if g.cursor < 0 || g.cursor >= len(list) {
		return domain.Goal{}, false
	}
	return list[g.cursor], true
}

func (g *GoalsScreen) openForm() tea.Cmd {
	g.adding = true
	g.errMsg = ""
	g.field = 0
	for i := range g.fields {
		g.fields[i].Reset()
		g.fields[i].Blur()
	}
	return g.fields[0].Focus()
}

func (g *GoalsScreen) closeForm() {
	g.adding = false
	for i := range g.fields {
		g.fields[i].Blur()
	}
}

func (g *GoalsScreen) focusField(i int) tea.Cmd {
	g.fields[g.field].Blur()
	g.field = i
	return g.fields[i].Focus()
}

func (g *GoalsScreen) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		g.closeForm()
		return nil
	case "up":
		return g.focusField(0)
	case "down":
		return g.focusField(1)
	case "enter":
		if g.field == 0 {
			return g.focusField(1)
		}
		return g.submit()
	}

	var cmd tea.Cmd
	g.fields[g.field], cmd = g.fields[g.field].Update(msg)
	return cmd
}

func (g *GoalsScreen) submit() tea.Cmd {
	title := g.fields[0].Value()
	if title == "" {
		g.errMsg = "Please give the goal a title."
		return g.focusField(0)
	}
	g.state.AddGoal(title, g.fields[1].Value(), domain.SourceManual)
	g.cursor = 0
	g.closeForm()
	return nil
}

func (g *GoalsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	list := g.state.Goals()

	var b strings.Builder
	b.WriteString(theme.Title.Render("My Goals"))
	b.WriteString("  ")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d pending", g.state.PendingGoalCount())))
	b.WriteString("\n\n")

	if g.adding {
		b.WriteString(g.renderForm(cw))
		b.WriteString("\n")
	}

	if len(list) == 0 {
		b.WriteString(theme.Hint.Render(emptyText))
	}
	for i, goal := range list {
		b.WriteString(g.renderGoal(goal, i == g.cursor && !g.adding, cw))
		b.WriteString("\n")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).MaxHeight(height).Render(b.String()))
}

func (g *GoalsScreen) renderGoal(goal domain.Goal, selected bool, cw int) string {
	box := "[ ]"
	title := theme.Body.Bold(true).Render(goal.Title)
	if goal.Completed {
		box = theme.Online.Render("[✓]")
		title = theme.Done.Render(goal.Title)
	}

	line := box + " " + title
	if goal.Source == domain.SourceAIRecommendation {
		line += "  " + theme.BadgeAI.Render("✦ AI Recommended")
	}
	if selected && !goal.Completed {
		line += "  " + theme.Hint.Render("s: Study")
	}
	if goal.Description != "" {
		line += "\n    " + theme.Subtitle.Render(goal.Description)
	}

	if selected {
		return components.FocusCard(line, cw)
	}
	return components.Card(line, cw)
}

func (g *GoalsScreen) renderForm(cw int) string {
	body := g.fields[0].View() + "\n" + g.fields[1].View()
	if g.errMsg != "" {
		body += "\n" + theme.ErrorText.Render(g.errMsg)
	}
	return components.FocusCard(components.Section("New Goal", body), cw)
}

func (g *GoalsScreen) Title() string {
	return "Goals"
}

func (g *GoalsScreen) KeyHints() []layout.KeyHint {
	if g.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next/Save"},
			{Key: "↑↓", Description: "Field"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Done"},
		{Key: "s", Description: "Study"},
		{Key: "a", Description: "Add"},
	}
}
