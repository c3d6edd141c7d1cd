// Package appstate is the single source of truth every screen reads from
// and dispatches intents into.
package appstate

import (
	"fmt"
	"time"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/career"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/goals"
)

// UserState is the study status other views display.
type UserState struct {
	IsStudying         bool
	StudyStartTime     *time.Time
	AccumulatedMinutes float64
}

// SeedGoal is a goal present at startup.
type SeedGoal struct {
	Title       string
	Description string
	Completed   bool
}

// DemoGoals are the goals a fresh TUI session starts with.
var DemoGoals = []SeedGoal{
	{Title: "Learn React Hooks", Description: "Master useEffect"},
	{Title: "Calculus Review", Description: "Prepare for finals", Completed: true},
}

// Store holds goals, study status, the active view and the study focus.
// All mutation happens on the Bubble Tea update loop; Store is not safe for
// concurrent use.
type Store struct {
	goals     *goals.Store
	user      UserState
	active    View
	focus     string
	hasFocus  bool
	revision  uint64
	now       func() time.Time
	goalOpts  []goals.Option
	seedGoals []SeedGoal
}

// Option configures a Store.
type Option func(*Store)

// WithSeedGoals adds goals at construction. The first entry ends up at the
// head of the list.
func WithSeedGoals(seed ...SeedGoal) Option {
	return func(s *Store) { s.seedGoals = append(s.seedGoals, seed...) }
}

// WithGoalOptions passes options to the underlying goal store.
func WithGoalOptions(opts ...goals.Option) Option {
	return func(s *Store) { s.goalOpts = append(s.goalOpts, opts...) }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a Store showing ViewHome.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now, active: ViewHome}
	for _, opt := range opts {
		opt(s)
	}
	s.goals = goals.NewStore(s.goalOpts...)
	for i := len(s.seedGoals) - 1; i >= 0; i-- {
		sg := s.seedGoals[i]
		g := s.goals.Add(sg.Title, sg.Description, goals.SourceManual)
		if sg.Completed {
			s.goals.Toggle(g.ID)
		}
	}
	return s
}

// AddGoal puts a new incomplete goal at the head of the list. The active
// view is unchanged.
func (s *Store) AddGoal(title, description string, source goals.Source) goals.Goal {
	g := s.goals.Add(title, description, source)
	s.revision++
	return g
}

// AcceptCandidate adds the candidate as an AI-recommended goal and switches
// to ViewGoals in the same step.
func (s *Store) AcceptCandidate(c career.Candidate) goals.Goal {
	g := s.goals.Add(c.Title, career.GoalDescription, goals.SourceAIRecommendation)
	s.active = ViewGoals
	s.revision++
	return g
}

// ToggleGoalCompletion flips the goal's completion. An unknown id returns
// an error wrapping goals.ErrGoalNotFound and changes nothing.
func (s *Store) ToggleGoalCompletion(id string) error {
	if _, err := s.goals.Toggle(id); err != nil {
		return fmt.Errorf("toggle goal: %w", err)
	}
	s.revision++
	return nil
}

// SetActiveView switches views. Unknown values are ignored.
func (s *Store) SetActiveView(v View) {
	if !v.Valid() || v == s.active {
		return
	}
	s.active = v
	s.revision++
}

// SetStudyFocus labels the study session. It does not start the timer.
func (s *Store) SetStudyFocus(title string) {
	s.focus = title
	s.hasFocus = true
	s.revision++
}

// ClearStudyFocus removes the study label.
func (s *Store) ClearStudyFocus() {
	if !s.hasFocus {
		return
	}
	s.focus = ""
	s.hasFocus = false
	s.revision++
}

// FocusAndStudy sets the study focus and switches to ViewStudy in one step.
func (s *Store) FocusAndStudy(title string) {
	s.focus = title
	s.hasFocus = true
	s.active = ViewStudy
	s.revision++
}

// ApplyStudyStatus is the only writer of UserState.IsStudying; the study
// controller calls it on every transition. Stopping adds the elapsed wall
// time to AccumulatedMinutes.
func (s *Store) ApplyStudyStatus(isStudying bool) {
	if isStudying == s.user.IsStudying {
		return
	}
	now := s.now()
	if isStudying {
		s.user.StudyStartTime = &now
	} else {
		if s.user.StudyStartTime != nil {
			s.user.AccumulatedMinutes += now.Sub(*s.user.StudyStartTime).Minutes()
		}
		s.user.StudyStartTime = nil
	}
	s.user.IsStudying = isStudying
	s.revision++
}

// Goals returns all goals, newest first.
func (s *Store) Goals() []goals.Goal { return s.goals.List() }

// PendingGoalCount returns the number of incomplete goals.
func (s *Store) PendingGoalCount() int { return s.goals.Pending() }

// CompletedGoalCount returns the number of completed goals.
func (s *Store) CompletedGoalCount() int { return s.goals.Len() - s.goals.Pending() }

// UserState returns a copy of the study status.
func (s *Store) UserState() UserState {
	u := s.user
	if u.StudyStartTime != nil {
		t := *u.StudyStartTime
		u.StudyStartTime = &t
	}
	return u
}

// ActiveView returns the view being shown.
func (s *Store) ActiveView() View { return s.active }

// StudyFocus returns the study label, if any.
func (s *Store) StudyFocus() (string, bool) { return s.focus, s.hasFocus }

// Revision increases on every mutation.
func (s *Store) Revision() uint64 { return s.revision }
