// Package career turns a student's skills and city into a structured
// career-gap report and derives candidate goals from it.
package career

import (
	"errors"
	"strings"
)

// SkillGap compares the student's level in one skill with what the
// recommended role needs. Levels are in [0, 100].
type SkillGap struct {
	Skill         string  `json:"skill"`
	CurrentLevel  float64 `json:"currentLevel"`
	RequiredLevel float64 `json:"requiredLevel"`
	Description   string  `json:"description"`
}

// Gap returns RequiredLevel - CurrentLevel.
func (g SkillGap) Gap() float64 {
	return g.RequiredLevel - g.CurrentLevel
}

// Result is one career analysis. A new analysis replaces it wholesale.
type Result struct {
	RecommendedRole string     `json:"recommendedRole"`
	SalaryRange     string     `json:"salaryRange"`
	GapAnalysis     []SkillGap `json:"gapAnalysis"`
	Summary         string     `json:"summary"`
}

// Input is what the student types into the analysis form.
type Input struct {
	Skills     string
	City       string
	TargetRole string // optional
}

var (
	ErrMissingSkills = errors.New("skills are required")
	ErrMissingCity   = errors.New("city is required")
)

// Validate checks the analysis preconditions. Analyzer does not call it;
// callers do before dispatching.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Skills) == "" {
		return ErrMissingSkills
	}
	if strings.TrimSpace(in.City) == "" {
		return ErrMissingCity
	}
	return nil
}
