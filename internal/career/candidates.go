package career

// GoalDescription is attached to every goal accepted from an analysis.
const GoalDescription = "Added via Future Analysis"

// Candidate is a goal the student may accept from an analysis.
type Candidate struct {
	Skill string
	Title string
	// Gap is RequiredLevel - CurrentLevel, always positive.
	Gap float64
	// Detail is the gap's description from the analysis.
	Detail string
}

// CandidateTitle is the goal title offered for a skill.
func CandidateTitle(skill string) string {
	return "Master " + skill
}

// Candidates returns one candidate per gap whose required level exceeds the
// current level, in the order the analysis listed them.
func Candidates(r *Result) []Candidate {
	if r == nil {
		return nil
	}
	var out []Candidate
	for _, g := range r.GapAnalysis {
		if g.RequiredLevel <= g.CurrentLevel {
			continue
		}
		out = append(out, Candidate{
			Skill:  g.Skill,
			Title:  CandidateTitle(g.Skill),
			Gap:    g.Gap(),
			Detail: g.Description,
		})
	}
	return out
}
