// Package goals holds the user's tracked objectives.
package goals

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Source records how a goal was created.
type Source string

const (
	SourceManual           Source = "manual"
	SourceAIRecommendation Source = "ai-recommendation"
)

// Valid reports whether s is one of the known sources.
func (s Source) Valid() bool {
	switch s {
	case SourceManual, SourceAIRecommendation:
		return true
	}
	return false
}

// ErrGoalNotFound is returned when an operation names an unknown goal ID.
var ErrGoalNotFound = errors.New("goal not found")

// Goal is a tracked user objective. Only Completed changes after creation.
type Goal struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Source      Source
}

// Store keeps goals newest first. It is not safe for concurrent use.
type Store struct {
	goals []Goal
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID generator. Generated IDs must be unique.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// NewStore returns an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add creates an incomplete goal at the head of the list and returns it.
// An unknown source is recorded as SourceManual.
func (s *Store) Add(title, description string, source Source) Goal {
	if !source.Valid() {
		source = SourceManual
	}
	g := Goal{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Source:      source,
	}
	s.goals = append([]Goal{g}, s.goals...)
	return g
}

// Toggle flips Completed on the goal with the given id and returns the
// updated goal. Unknown ids leave the store untouched.
func (s *Store) Toggle(id string) (Goal, error) {
	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals[i].Completed = !s.goals[i].Completed
			return s.goals[i], nil
		}
	}
	return Goal{}, fmt.Errorf("toggle %q: %w", id, ErrGoalNotFound)
}

// Get returns the goal with the given id.
func (s *Store) Get(id string) (Goal, bool) {
	for _, g := range s.goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// List returns a copy of all goals, newest first.
func (s *Store) List() []Goal {
	out := make([]Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Len returns the number of goals.
func (s *Store) Len() int { return len(s.goals) }

// Pending returns the number of goals not yet completed.
func (s *Store) Pending() int {
	n := 0
	for _, g := range s.goals {
		if !g.Completed {
			n++
		}
	}
	return n
}
