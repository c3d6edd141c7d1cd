package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/appstate"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/screen"
)

// SwitchViewMsg requests the router to show another view.
type SwitchViewMsg struct {
	View appstate.View
}

// Switch returns a command producing a SwitchViewMsg.
func Switch(v appstate.View) tea.Cmd {
	return func() tea.Msg { return SwitchViewMsg{View: v} }
}

// Router shows the screen for the store's active view. Every view has a
// single screen instance for the process lifetime.
type Router struct {
	state   *appstate.Store
	screens map[appstate.View]screen.Screen
	shown   appstate.View
}

// New creates a Router over the given screens. Views without a screen render
// empty.
func New(state *appstate.Store, screens map[appstate.View]screen.Screen) *Router {
	return &Router{
		state:   state,
		screens: screens,
		shown:   state.ActiveView(),
	}
}

// Init runs Init on every screen.
func (r *Router) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.screens)+1)
	for _, v := range appstate.Views {
		if s, ok := r.screens[v]; ok {
			cmds = append(cmds, s.Init())
		}
	}
	cmds = append(cmds, r.activate())
	return tea.Batch(cmds...)
}

// Active returns the screen for the active view.
func (r *Router) Active() screen.Screen {
	return r.screens[r.state.ActiveView()]
}

// Screen returns the screen registered for v.
func (r *Router) Screen(v appstate.View) screen.Screen {
	return r.screens[v]
}

// Update routes a message. Key input goes to the active screen only. Other
// messages reach every screen, so an async result arriving after the user
// switched away still finds the screen that asked for it.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case SwitchViewMsg:
		r.state.SetActiveView(msg.View)
	case tea.KeyMsg:
		if cmd := r.updateOne(r.state.ActiveView(), msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	default:
		for _, v := range appstate.Views {
			if cmd := r.updateOne(v, msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	// A screen may have changed the view through the store.
	if r.state.ActiveView() != r.shown {
		cmds = append(cmds, r.activate())
	}
	return tea.Batch(cmds...)
}

func (r *Router) updateOne(v appstate.View, msg tea.Msg) tea.Cmd {
	s, ok := r.screens[v]
	if !ok {
		return nil
	}
	updated, cmd := s.Update(msg)
	r.screens[v] = updated
	return cmd
}

func (r *Router) activate() tea.Cmd {
	r.shown = r.state.ActiveView()
	if a, ok := r.Active().(screen.Activator); ok {
		return a.Activate()
	}
	return nil
}

// CapturingInput reports whether the active screen owns printable keys.
func (r *Router) CapturingInput() bool {
	c, ok := r.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
