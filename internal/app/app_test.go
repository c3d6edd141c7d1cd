package app

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/appstate"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/llm"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/router"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/study"
)

func newTestApp() (AppModel, *appstate.Store) {
	state := appstate.New(appstate.WithSeedGoals(appstate.DemoGoals...))
	m := NewAppModel(Options{
		Provider:     llm.NewMockProvider(),
		State:        state,
		TickInterval: time.Millisecond,
	})
	return m, state
}

// send runs msg through Update and feeds any SwitchViewMsg back in, the way
// the program loop would.
func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(AppModel)
	if cmd != nil {
		if sw, ok := cmd().(router.SwitchViewMsg); ok {
			updated, cmd = m.Update(sw)
			m = updated.(AppModel)
		}
	}
	return m, cmd
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestTabCyclesViews(t *testing.T) {
	m, state := newTestApp()

	m, _ = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	if state.ActiveView() != appstate.ViewFuture {
		t.Errorf("expected future view, got %s", state.ActiveView())
	}
	m, _ = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	m, _ = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if state.ActiveView() != appstate.ViewCommunity {
		t.Errorf("expected wrap to community view, got %s", state.ActiveView())
	}
}

func TestNumberKeysJump(t *testing.T) {
	m, state := newTestApp()

	m, _ = send(t, m, key('4'))
	if state.ActiveView() != appstate.ViewGoals {
		t.Errorf("expected goals view, got %s", state.ActiveView())
	}
	send(t, m, key('3'))
	if state.ActiveView() != appstate.ViewChat {
		t.Errorf("expected chat view, got %s", state.ActiveView())
	}
}

func TestShortcutsDisabledWhileTyping(t *testing.T) {
	m, state := newTestApp()
	state.SetActiveView(appstate.ViewChat)

	m, cmd := send(t, m, key('q'))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("q must not quit while the chat field has focus")
		}
	}
	send(t, m, key('1'))
	if state.ActiveView() != appstate.ViewChat {
		t.Errorf("expected chat view kept, got %s", state.ActiveView())
	}
}

func TestQuitDisposesTimer(t *testing.T) {
	m, state := newTestApp()

	m.study.Start()
	if !state.UserState().IsStudying {
		t.Fatal("expected studying after start")
	}

	_, cmd := send(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
	if state.UserState().IsStudying || m.study.Running() {
		t.Error("expected timer stopped on quit")
	}
}

func TestTimerRunsWhileAnotherViewShown(t *testing.T) {
	m, state := newTestApp()

	// Goals: study the first pending goal, then start the timer.
	m, _ = send(t, m, key('4'))
	m, _ = send(t, m, key('s'))
	if state.ActiveView() != appstate.ViewStudy {
		t.Fatalf("expected study view, got %s", state.ActiveView())
	}
	m, cmd := send(t, m, tea.KeyPressMsg{Code: tea.KeySpace})
	if cmd == nil {
		t.Fatal("expected tick command")
	}

	m, _ = send(t, m, key('1'))
	if state.ActiveView() != appstate.ViewHome {
		t.Fatalf("expected home view, got %s", state.ActiveView())
	}

	for range 3 {
		tick, ok := cmd().(study.TickMsg)
		if !ok {
			t.Fatalf("expected TickMsg")
		}
		var updated tea.Model
		updated, cmd = m.Update(tick)
		m = updated.(AppModel)
		if !state.UserState().IsStudying {
			t.Error("expected studying at every tick")
		}
	}
	if m.study.Seconds() != 3 {
		t.Errorf("expected 3 seconds, got %d", m.study.Seconds())
	}
}

func TestViewRendersFrame(t *testing.T) {
	m, _ := newTestApp()
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	content := m.render()
	for _, want := range []string{"Campus", "My Home", "AI Chat", "Goals (1)", "Offline"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected frame to contain %q", want)
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	m, _ := newTestApp()
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})

	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected size warning")
	}
}
