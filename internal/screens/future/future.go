package future

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/appstate"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/career"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/screen"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/components"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/layout"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/theme"
)

// Analyzer runs a career analysis. *career.Analyzer implements it.
type Analyzer interface {
	Analyze(ctx context.Context, in career.Input) (*career.Result, error)
}

type phase int

const (
	phaseInput phase = iota
	phaseLoading
	phaseResult
	phaseError
)

const (
	fieldCity = iota
	fieldSkills
	fieldRole
	fieldCount
)

// FutureScreen collects skills and a city, runs the analysis and offers the
// skill gaps as goals.
type FutureScreen struct {
	state    *appstate.Store
	analyzer Analyzer
	logger   *slog.Logger

	fields  [fieldCount]components.Field
	field   int
	phase   phase
	spinner spinner.Model

	// token identifies the current request. Bumping it orphans any reply
	// still in flight.
	token     uint64
	lastInput career.Input
	invalid   string
	failure   string

	result     *career.Result
	candidates []career.Candidate
	// accepted holds indexes into candidates.
	accepted map[int]bool
	// visible are the candidates still offered, in plan order; offered holds
	// their indexes into candidates.
	visible []career.Candidate
	offered []int
	plan    components.Menu
}

var _ screen.Screen = (*FutureScreen)(nil)

// New creates a new FutureScreen.
func New(state *appstate.Store, analyzer Analyzer, logger *slog.Logger) *FutureScreen {
	if logger == nil {
		logger = slog.Default()
	}
	return &FutureScreen{
		state:    state,
		analyzer: analyzer,
		logger:   logger,
		fields: [fieldCount]components.Field{
			components.NewField("Target City", "e.g. Shanghai, Beijing", 60),
			components.NewField("Your Skills & Interests", "I know Python basics, enjoy data analysis, but confused about web dev...", 400),
			components.NewField("Target Role (optional)", "e.g. Data Analyst", 80),
		},
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (f *FutureScreen) Init() tea.Cmd {
	return nil
}

// Activate focuses the form when it is showing.
func (f *FutureScreen) Activate() tea.Cmd {
	if f.phase != phaseInput {
		return nil
	}
	return f.fields[f.field].Focus()
}

// CapturingInput is true while the form is showing.
func (f *FutureScreen) CapturingInput() bool {
	return f.phase == phaseInput
}

func (f *FutureScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisMsg:
		return f, f.handleAnalysis(msg)

	case spinner.TickMsg:
		if f.phase != phaseLoading {
			return f, nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd

	case tea.KeyMsg:
		switch f.phase {
		case phaseInput:
			return f, f.updateForm(msg)
		case phaseLoading:
			if msg.String() == "esc" {
				return f, f.reset()
			}
		case phaseResult:
			return f, f.updateResult(msg)
		case phaseError:
			switch msg.String() {
			case "r", "enter":
				return f, f.start(f.lastInput)
			case "esc", "n":
				return f, f.reset()
			}
		}
	}
	return f, nil
}

func (f *FutureScreen) focusField(i int) tea.Cmd {
	f.fields[f.field].Blur()
	f.field = i
	return f.fields[i].Focus()
}

func (f *FutureScreen) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		return f.focusField(max(f.field-1, 0))
	case "down":
		return f.focusField(min(f.field+1, fieldCount-1))
	case "enter":
		if f.field < fieldRole {
			return f.focusField(f.field + 1)
		}
		return f.submit()
	}

	var cmd tea.Cmd
	f.fields[f.field], cmd = f.fields[f.field].Update(msg)
	return cmd
}

func (f *FutureScreen) submit() tea.Cmd {
	in := career.Input{
		City:       f.fields[fieldCity].Value(),
		Skills:     f.fields[fieldSkills].Value(),
		TargetRole: f.fields[fieldRole].Value(),
	}
	if err := in.Validate(); err != nil {
		switch {
		case errors.Is(err, career.ErrMissingCity):
			f.invalid = "Please enter a target city."
			return f.focusField(fieldCity)
		default:
			f.invalid = "Please describe your skills and interests."
			return f.focusField(fieldSkills)
		}
	}
	return f.start(in)
}

// start dispatches an analysis for in and drops any previous result.
func (f *FutureScreen) start(in career.Input) tea.Cmd {
	f.token++
	f.lastInput = in
	f.invalid = ""
	f.failure = ""
	f.clearResult()
	f.phase = phaseLoading
	f.fields[f.field].Blur()

	token := f.token
	analyzer := f.analyzer
	analyze := func() tea.Msg {
		res, err := analyzer.Analyze(context.Background(), in)
		return analysisMsg{Token: token, Result: res, Err: err}
	}
	return tea.Batch(analyze, f.spinner.Tick)
}

func (f *FutureScreen) handleAnalysis(msg analysisMsg) tea.Cmd {
	if msg.Token != f.token || f.phase != phaseLoading {
		f.logger.Debug("dropping stale career analysis", "token", msg.Token, "current", f.token)
		return nil
	}
	if msg.Err != nil {
		f.logger.Warn("career analysis failed", "error", msg.Err)
		f.failure = msg.Err.Error()
		var ae *career.AnalysisError
		if errors.As(msg.Err, &ae) {
			f.failure = ae.UserMessage()
		}
		f.phase = phaseError
		return nil
	}

	f.result = msg.Result
	f.candidates = career.Candidates(msg.Result)
	f.accepted = map[int]bool{}
	f.rebuildPlan()
	f.phase = phaseResult
	return nil
}

func (f *FutureScreen) updateResult(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "n":
		return f.reset()
	case "enter":
		if i := f.plan.Selected; i >= 0 && i < len(f.visible) {
			f.accept(i)
		}
		return nil
	}
	var cmd tea.Cmd
	f.plan, cmd = f.plan.Update(msg)
	return cmd
}

// accept adds the i-th visible candidate as a goal. The store switches to
// the goals view in the same step.
func (f *FutureScreen) accept(i int) {
	f.state.AcceptCandidate(f.visible[i])
	f.accepted[f.offered[i]] = true
	f.rebuildPlan()
}

func (f *FutureScreen) rebuildPlan() {
	f.visible = f.visible[:0]
	f.offered = f.offered[:0]
	items := make([]components.MenuItem, 0, len(f.candidates))
	for i, c := range f.candidates {
		if f.accepted[i] {
			continue
		}
		f.visible = append(f.visible, c)
		f.offered = append(f.offered, i)
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s  (+%.0f)", c.Title, c.Gap),
		})
	}
	f.plan.SetItems(items)
}

func (f *FutureScreen) clearResult() {
	f.result = nil
	f.candidates = nil
	f.accepted = nil
	f.visible = nil
	f.offered = nil
	f.plan = components.NewMenu(nil)
}

// reset returns to the form, orphaning any request in flight. The form
// keeps its values.
func (f *FutureScreen) reset() tea.Cmd {
	f.token++
	f.clearResult()
	f.failure = ""
	f.phase = phaseInput
	return f.fields[f.field].Focus()
}

func (f *FutureScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch f.phase {
	case phaseInput:
		body = f.renderForm(cw)
	case phaseLoading:
		body = f.spinner.View() + " " + theme.Body.Render("Analyzing...")
	case phaseError:
		body = components.Card(
			theme.ErrorText.Render("Analysis failed. Please try again.")+"\n"+
				theme.Subtitle.Width(cw-4).Render(f.failure)+"\n\n"+
				theme.Hint.Render("r: Retry   esc: Edit answers"),
			cw)
	case phaseResult:
		body = f.renderResult(cw)
	}

	header := theme.Title.Render("My Future") + "\n" +
		theme.Subtitle.Render("AI-powered Career Trajectory Planning")

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).MaxHeight(height).Render(header+"\n\n"+body))
}

func (f *FutureScreen) renderForm(cw int) string {
	parts := make([]string, 0, fieldCount+1)
	for i := range f.fields {
		f.fields[i].SetWidth(cw - 6)
		parts = append(parts, f.fields[i].View())
	}
	if f.invalid != "" {
		parts = append(parts, theme.ErrorText.Render(f.invalid))
	}
	return components.FocusCard(strings.Join(parts, "\n\n"), cw)
}

func (f *FutureScreen) renderResult(cw int) string {
	r := f.result
	inner := cw - 4

	path := theme.Label.Render("Recommended Path") + "\n" +
		theme.Title.Render(r.RecommendedRole) + "  " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(r.SalaryRange) + "\n" +
		theme.Body.Width(inner).Render(r.Summary)

	bars := make([]string, 0, len(r.GapAnalysis))
	for _, g := range r.GapAnalysis {
		bars = append(bars, components.NewLevelBar(g.Skill, g.CurrentLevel, g.RequiredLevel, inner).View())
	}
	gaps := theme.Subtitle.Render("No skill gaps reported.")
	if len(bars) > 0 {
		gaps = strings.Join(bars, "\n")
	}

	plan := f.plan.View()
	if len(f.plan.Items) == 0 {
		plan = theme.Hint.Render("Nothing left to add.")
	}

	return strings.Join([]string{
		components.FocusCard(path, cw),
		components.Card(components.Section("Skill Gap Analysis", gaps), cw),
		components.Card(components.Section("Improvement Plan", plan), cw),
	}, "\n")
}

func (f *FutureScreen) Title() string {
	return "Future"
}

func (f *FutureScreen) KeyHints() []layout.KeyHint {
	switch f.phase {
	case phaseInput:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Field"},
			{Key: "Enter", Description: "Next/Analyze"},
		}
	case phaseLoading:
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	case phaseError:
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Esc", Description: "Edit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Add goal"},
		{Key: "n", Description: "Start New Analysis"},
	}
}
