// Package study implements the focus timer: an idle/running state machine
// counting elapsed seconds.
package study

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
)

// State is the controller's machine state. Pausing returns to StateIdle.
type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// StatusSink receives every running-state transition. The app state store
// implements it.
type StatusSink interface {
	ApplyStudyStatus(isStudying bool)
}

// TickMsg is one timer tick. Ticks from an earlier run carry a stale Epoch
// and are dropped.
type TickMsg struct {
	Epoch uint64
	At    time.Time
}

// Controller owns the timer. Seconds only grow while running and are never
// reset. It is driven from the Bubble Tea update loop and is not safe for
// concurrent use.
type Controller struct {
	sink     StatusSink
	interval time.Duration
	state    State
	seconds  int
	epoch    uint64
	disposed bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithInterval changes the tick period. Each tick still counts as one second.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = d }
}

// NewController returns an idle controller reporting to sink.
func NewController(sink StatusSink, opts ...Option) *Controller {
	c := &Controller{sink: sink, interval: time.Second}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start moves idle to running and returns the command scheduling the first
// tick. It is a no-op when already running or disposed.
func (c *Controller) Start() tea.Cmd {
	if c.disposed || c.state == StateRunning {
		return nil
	}
	c.state = StateRunning
	c.epoch++
	c.sink.ApplyStudyStatus(true)
	return c.tick()
}

// Stop moves running to idle. The pending tick is invalidated.
func (c *Controller) Stop() {
	if c.state != StateRunning {
		return
	}
	c.state = StateIdle
	c.epoch++
	c.sink.ApplyStudyStatus(false)
}

// Toggle starts an idle controller or stops a running one.
func (c *Controller) Toggle() tea.Cmd {
	if c.state == StateRunning {
		c.Stop()
		return nil
	}
	return c.Start()
}

// HandleTick counts a tick of the current run and schedules the next one.
// Ticks from a stopped run are ignored.
func (c *Controller) HandleTick(msg TickMsg) tea.Cmd {
	if c.state != StateRunning || msg.Epoch != c.epoch {
		return nil
	}
	c.seconds++
	return c.tick()
}

// Dispose stops the timer and makes every later call a no-op.
func (c *Controller) Dispose() {
	c.Stop()
	c.disposed = true
}

// State returns the machine state.
func (c *Controller) State() State { return c.state }

// Running reports whether the timer is running.
func (c *Controller) Running() bool { return c.state == StateRunning }

// Seconds returns the elapsed seconds across all runs.
func (c *Controller) Seconds() int { return c.seconds }

func (c *Controller) tick() tea.Cmd {
	epoch := c.epoch
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, At: t}
	})
}

// FormatElapsed renders seconds as HH:MM:SS. Hours are not wrapped.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
