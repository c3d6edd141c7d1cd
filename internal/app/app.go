package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/appstate"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/career"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/chat"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/llm"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/router"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/screen"
	chatscreen "github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/screens/chat"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/screens/community"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/screens/future"
	goalsscreen "github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/screens/goals"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/screens/home"
	studyscreen "github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/screens/study"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/study"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/layout"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/ui/theme"
)

// Options configures the TUI.
type Options struct {
	// Provider backs the career analysis and chat. Required.
	Provider llm.Provider
	// State defaults to a store seeded with the demo goals.
	State  *appstate.Store
	Logger *slog.Logger
	// Timeout bounds each provider call. Zero keeps the gateway defaults.
	Timeout time.Duration
	// TickInterval overrides the study timer period.
	TickInterval time.Duration
}

// AppModel is the root Bubble Tea model. It owns the study controller so the
// timer keeps running whichever view is shown.
type AppModel struct {
	state  *appstate.Store
	router *router.Router
	study  *study.Controller
	logger *slog.Logger
	width  int
	height int
}

// NewAppModel wires the gateways, the controller and one screen per view.
func NewAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	state := opts.State
	if state == nil {
		state = appstate.New(appstate.WithSeedGoals(appstate.DemoGoals...))
	}

	analyzerCfg := career.DefaultConfig()
	chatCfg := chat.DefaultConfig()
	if opts.Timeout > 0 {
		analyzerCfg.Timeout = opts.Timeout
		chatCfg.Timeout = opts.Timeout
	}

	var studyOpts []study.Option
	if opts.TickInterval > 0 {
		studyOpts = append(studyOpts, study.WithInterval(opts.TickInterval))
	}
	controller := study.NewController(state, studyOpts...)

	screens := map[appstate.View]screen.Screen{
		appstate.ViewHome:      home.New(state, home.DefaultProfile),
		appstate.ViewFuture:    future.New(state, career.NewAnalyzer(opts.Provider, analyzerCfg), logger),
		appstate.ViewChat:      chatscreen.New(chat.NewTranscript(), chat.NewGateway(opts.Provider, chatCfg)),
		appstate.ViewGoals:     goalsscreen.New(state, logger),
		appstate.ViewStudy:     studyscreen.New(state, controller),
		appstate.ViewCommunity: community.New(community.DefaultPosts),
	}

	return AppModel{
		state:  state,
		router: router.New(state, screens),
		study:  controller,
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case study.TickMsg:
		return m, m.study.HandleTick(msg)

	case tea.KeyMsg:
		if cmd, ok := m.handleGlobalKey(msg); ok {
			return m, cmd
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// handleGlobalKey processes navigation keys. It reports false for keys the
// active screen should receive.
func (m AppModel) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit(), true
	case "tab":
		return router.Switch(m.offsetView(1)), true
	case "shift+tab":
		return router.Switch(m.offsetView(-1)), true
	}

	if m.router.CapturingInput() {
		return nil, false
	}

	switch key := msg.String(); key {
	case "q":
		return m.quit(), true
	case "1", "2", "3", "4", "5", "6":
		return router.Switch(appstate.Views[key[0]-'1']), true
	}
	return nil, false
}

func (m AppModel) quit() tea.Cmd {
	m.study.Dispose()
	m.logger.Info("quitting", "study_seconds", m.study.Seconds())
	return tea.Quit
}

func (m AppModel) offsetView(delta int) appstate.View {
	n := len(appstate.Views)
	i := (int(m.state.ActiveView()) + delta + n) % n
	return appstate.Views[i]
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.statusLine(), m.width)

	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, hp.KeyHints()...)
	}
	hints = append(hints,
		layout.KeyHint{Key: "Tab", Description: "Switch"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)

	footer := lipgloss.JoinVertical(lipgloss.Left,
		layout.RenderTabs(m.tabs(), int(m.state.ActiveView()), m.width),
		layout.RenderFooter(hints, m.width),
	)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) statusLine() string {
	if m.state.UserState().IsStudying {
		return theme.Online.Render("● " + study.FormatElapsed(m.study.Seconds()))
	}
	return theme.Offline.Render("○ Offline")
}

func (m AppModel) tabs() []layout.Tab {
	tabs := make([]layout.Tab, len(appstate.Views))
	for i, v := range appstate.Views {
		tabs[i] = layout.Tab{Label: v.Label()}
		if v == appstate.ViewGoals {
			tabs[i].Badge = m.state.PendingGoalCount()
		}
	}
	return tabs
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	m := NewAppModel(opts)
	defer m.study.Dispose()

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
