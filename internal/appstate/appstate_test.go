package appstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/career"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/goals"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/llm"
	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/study"
)

func sequentialIDs() goals.Option {
	n := 0
	return goals.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("g%d", n)
	})
}

func titles(gs []goals.Goal) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.Title
	}
	return out
}

func TestNew_Defaults(t *testing.T) {
	s := New()
	assert.Equal(t, ViewHome, s.ActiveView())
	assert.Empty(t, s.Goals())
	assert.False(t, s.UserState().IsStudying)
	_, ok := s.StudyFocus()
	assert.False(t, ok)
	assert.Zero(t, s.Revision())
}

func TestNew_SeedGoals(t *testing.T) {
	s := New(WithSeedGoals(DemoGoals...))

	gs := s.Goals()
	require.Len(t, gs, 2)
	assert.Equal(t, []string{"Learn React Hooks", "Calculus Review"}, titles(gs))
	assert.False(t, gs[0].Completed)
	assert.True(t, gs[1].Completed)
	for _, g := range gs {
		assert.Equal(t, goals.SourceManual, g.Source)
	}
	assert.Equal(t, 1, s.PendingGoalCount())
	assert.Equal(t, 1, s.CompletedGoalCount())
}

func TestAddGoal_PrependsAndKeepsView(t *testing.T) {
	s := New(WithSeedGoals(DemoGoals...))
	s.SetActiveView(ViewStudy)
	before := titles(s.Goals())

	g := s.AddGoal("Read SICP", "Chapter 1", goals.SourceManual)

	gs := s.Goals()
	require.Len(t, gs, 3)
	assert.Equal(t, g, gs[0])
	assert.False(t, g.Completed)
	assert.Equal(t, before, titles(gs[1:]))
	assert.Equal(t, ViewStudy, s.ActiveView())
}

func TestGoalIDsUnique(t *testing.T) {
	s := New()
	seen := map[string]bool{}
	for i := range 50 {
		g := s.AddGoal(fmt.Sprintf("goal %d", i), "", goals.SourceManual)
		require.False(t, seen[g.ID], "duplicate id %q", g.ID)
		seen[g.ID] = true
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	s := New(WithGoalOptions(sequentialIDs()), WithSeedGoals(DemoGoals...))
	for _, g := range s.Goals() {
		require.NoError(t, s.ToggleGoalCompletion(g.ID))
		require.NoError(t, s.ToggleGoalCompletion(g.ID))
	}
	gs := s.Goals()
	assert.False(t, gs[0].Completed)
	assert.True(t, gs[1].Completed)
}

func TestToggleUnknownGoal(t *testing.T) {
	s := New(WithSeedGoals(DemoGoals...))
	before := s.Goals()
	rev := s.Revision()

	err := s.ToggleGoalCompletion("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, goals.ErrGoalNotFound))
	assert.Equal(t, before, s.Goals())
	assert.Equal(t, rev, s.Revision())
}

func TestAcceptCandidate(t *testing.T) {
	s := New(WithSeedGoals(DemoGoals...))
	c := career.Candidate{Skill: "Docker", Title: career.CandidateTitle("Docker")}

	g := s.AcceptCandidate(c)

	assert.Equal(t, "Master Docker", g.Title)
	assert.Equal(t, career.GoalDescription, g.Description)
	assert.Equal(t, goals.SourceAIRecommendation, g.Source)
	assert.False(t, g.Completed)
	assert.Equal(t, g, s.Goals()[0])
	assert.Equal(t, ViewGoals, s.ActiveView())
}

func TestSetActiveView(t *testing.T) {
	s := New()
	for _, v := range Views {
		s.SetActiveView(v)
		assert.Equal(t, v, s.ActiveView())
	}

	s.SetActiveView(ViewChat)
	rev := s.Revision()
	s.SetActiveView(View(42))
	s.SetActiveView(View(-1))
	assert.Equal(t, ViewChat, s.ActiveView())
	assert.Equal(t, rev, s.Revision())
}

func TestStudyFocus(t *testing.T) {
	s := New()
	s.SetStudyFocus("Calculus Review")
	focus, ok := s.StudyFocus()
	assert.True(t, ok)
	assert.Equal(t, "Calculus Review", focus)
	assert.Equal(t, ViewHome, s.ActiveView())
	assert.False(t, s.UserState().IsStudying)

	s.ClearStudyFocus()
	_, ok = s.StudyFocus()
	assert.False(t, ok)
}

func TestFocusAndStudy(t *testing.T) {
	s := New()
	s.FocusAndStudy("Learn React Hooks")

	focus, ok := s.StudyFocus()
	require.True(t, ok)
	assert.Equal(t, "Learn React Hooks", focus)
	assert.Equal(t, ViewStudy, s.ActiveView())
	assert.False(t, s.UserState().IsStudying)
}

func TestApplyStudyStatus_AccumulatesMinutes(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return now }))

	s.ApplyStudyStatus(true)
	u := s.UserState()
	require.True(t, u.IsStudying)
	require.NotNil(t, u.StudyStartTime)
	assert.Equal(t, now, *u.StudyStartTime)

	now = now.Add(90 * time.Second)
	s.ApplyStudyStatus(false)
	u = s.UserState()
	assert.False(t, u.IsStudying)
	assert.Nil(t, u.StudyStartTime)
	assert.InDelta(t, 1.5, u.AccumulatedMinutes, 1e-9)

	rev := s.Revision()
	s.ApplyStudyStatus(false)
	assert.Equal(t, rev, s.Revision())
}

func TestUserStateIsACopy(t *testing.T) {
	s := New()
	s.ApplyStudyStatus(true)
	u := s.UserState()
	*u.StudyStartTime = time.Time{}
	assert.False(t, s.UserState().StudyStartTime.IsZero())
}

func TestGoalsIsACopy(t *testing.T) {
	s := New(WithSeedGoals(DemoGoals...))
	gs := s.Goals()
	gs[0].Title = "changed"
	assert.Equal(t, "Learn React Hooks", s.Goals()[0].Title)
}

func TestRevisionIncrements(t *testing.T) {
	s := New()
	steps := []func(){
		func() { s.AddGoal("a", "", goals.SourceManual) },
		func() { s.SetActiveView(ViewGoals) },
		func() { s.SetStudyFocus("a") },
		func() { s.ClearStudyFocus() },
		func() { s.FocusAndStudy("a") },
		func() { s.ApplyStudyStatus(true) },
		func() { s.AcceptCandidate(career.Candidate{Title: "Master b"}) },
	}
	for i, step := range steps {
		rev := s.Revision()
		step()
		assert.Greater(t, s.Revision(), rev, "step %d", i)
	}
}

func TestStudyControllerDrivesUserState(t *testing.T) {
	s := New()
	c := study.NewController(s, study.WithInterval(time.Millisecond))

	cmd := c.Start()
	require.NotNil(t, cmd)
	for range 5 {
		tick, ok := cmd().(study.TickMsg)
		require.True(t, ok)
		cmd = c.HandleTick(tick)
		assert.True(t, s.UserState().IsStudying)
		assert.Equal(t, c.Running(), s.UserState().IsStudying)
	}
	c.Stop()

	assert.Equal(t, 5, c.Seconds())
	assert.False(t, s.UserState().IsStudying)
}

func TestMachineLearningScenario(t *testing.T) {
	payload := `{
		"recommendedRole": "Data Analyst",
		"salaryRange": "10k-15k",
		"gapAnalysis": [
			{"skill": "SQL", "currentLevel": 60, "requiredLevel": 80, "description": "Queries"},
			{"skill": "Machine Learning", "currentLevel": 30, "requiredLevel": 85, "description": "Models"}
		],
		"summary": "Good start. Learn ML."
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	a := career.NewAnalyzer(mock, career.DefaultConfig())

	res, err := a.Analyze(context.Background(), career.Input{Skills: "Python basics, data analysis", City: "Shanghai"})
	require.NoError(t, err)

	require.Len(t, res.GapAnalysis, 2)
	assert.Equal(t, career.SkillGap{Skill: "Machine Learning", CurrentLevel: 30, RequiredLevel: 85, Description: "Models"}, res.GapAnalysis[1])

	var ml *career.Candidate
	for _, c := range career.Candidates(res) {
		if c.Skill == "Machine Learning" {
			ml = &c
		}
	}
	require.NotNil(t, ml)
	assert.Equal(t, 55.0, ml.Gap)

	s := New(WithSeedGoals(DemoGoals...))
	g := s.AcceptCandidate(*ml)
	assert.Equal(t, "Master Machine Learning", g.Title)
	assert.Equal(t, goals.SourceAIRecommendation, g.Source)
	assert.Equal(t, ViewGoals, s.ActiveView())
	assert.Equal(t, g, s.Goals()[0])
}

func TestViewLabels(t *testing.T) {
	want := []string{"Home", "Future", "AI Chat", "Goals", "Study", "Club"}
	for i, v := range Views {
		assert.True(t, v.Valid())
		assert.Equal(t, want[i], v.Label())
	}
	assert.False(t, View(len(Views)).Valid())
}
