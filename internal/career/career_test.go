package career

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/llm"
)

const shanghaiAnalysis = `{
	"recommendedRole": "Junior Data Analyst",
	"salaryRange": "8k-12k",
	"gapAnalysis": [
		{"skill": "SQL", "currentLevel": 40, "requiredLevel": 85, "description": "Joins and window functions"},
		{"skill": "Python", "currentLevel": 70, "requiredLevel": 70, "description": "Already job ready"},
		{"skill": "Machine Learning", "currentLevel": 30, "requiredLevel": 85, "description": "Regression and classification"},
		{"skill": "Excel", "currentLevel": 90, "requiredLevel": 80, "description": "Strong"},
		{"skill": "Statistics", "currentLevel": 50.5, "requiredLevel": 80, "description": "Hypothesis testing"}
	],
	"summary": "You have a solid base. Focus on ML to stand out."
}`

func newTestAnalyzer(responses ...llm.MockResponse) (*Analyzer, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return NewAnalyzer(mock, DefaultConfig()), mock
}

func TestAnalyze_Success(t *testing.T) {
	a, mock := newTestAnalyzer(llm.MockResponse{Content: json.RawMessage(shanghaiAnalysis)})

	res, err := a.Analyze(context.Background(), Input{Skills: "Python basics, data analysis", City: "Shanghai"})
	require.NoError(t, err)

	assert.Equal(t, "Junior Data Analyst", res.RecommendedRole)
	assert.Equal(t, "8k-12k", res.SalaryRange)
	require.Len(t, res.GapAnalysis, 5)

	skills := make([]string, len(res.GapAnalysis))
	for i, g := range res.GapAnalysis {
		skills[i] = g.Skill
	}
	assert.Equal(t, []string{"SQL", "Python", "Machine Learning", "Excel", "Statistics"}, skills)
	assert.Equal(t, SkillGap{Skill: "Machine Learning", CurrentLevel: 30, RequiredLevel: 85, Description: "Regression and classification"}, res.GapAnalysis[2])

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Same(t, AnalysisSchema, req.Schema)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "Shanghai")
	assert.Contains(t, req.Messages[0].Content, "Python basics, data analysis")
	assert.NotContains(t, req.Messages[0].Content, "Interested in")
}

func TestAnalyze_TargetRoleInPrompt(t *testing.T) {
	a, mock := newTestAnalyzer(llm.MockResponse{Content: json.RawMessage(shanghaiAnalysis)})

	_, err := a.Analyze(context.Background(), Input{Skills: "Go", City: "Hangzhou", TargetRole: "Backend Engineer"})
	require.NoError(t, err)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, `Interested in: "Backend Engineer"`)
}

func TestAnalyze_VariableGapCount(t *testing.T) {
	tests := []struct {
		name string
		gaps string
		want int
	}{
		{"zero", `[]`, 0},
		{"one", `[{"skill":"Go","currentLevel":0,"requiredLevel":100,"description":""}]`, 1},
		{"seven", strings.Repeat(`{"skill":"x","currentLevel":1,"requiredLevel":2,"description":""},`, 6) +
			`{"skill":"x","currentLevel":1,"requiredLevel":2,"description":""}`, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gaps := tt.gaps
			if !strings.HasPrefix(gaps, "[") {
				gaps = "[" + gaps + "]"
			}
			body := `{"recommendedRole":"r","salaryRange":"s","summary":"ok","gapAnalysis":` + gaps + `}`
			a, _ := newTestAnalyzer(llm.MockResponse{Content: json.RawMessage(body)})

			res, err := a.Analyze(context.Background(), Input{Skills: "s", City: "c"})
			require.NoError(t, err)
			assert.NotNil(t, res.GapAnalysis)
			assert.Len(t, res.GapAnalysis, tt.want)
		})
	}
}

func TestAnalyze_Failures(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
		kind ErrorKind
	}{
		{"network", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")}}, KindNetwork},
		{"rate limit", llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}}, KindNetwork},
		{"malformed", llm.MockResponse{Content: json.RawMessage(`{"recommendedRole": "Dev",`)}, KindParse},
		{"not json", llm.MockResponse{Content: json.RawMessage(`Sure! Here is your analysis`)}, KindParse},
		{"truncated", llm.MockResponse{Err: &llm.ErrMaxTokensExceeded{}}, KindParse},
		{"missing field", llm.MockResponse{Content: json.RawMessage(`{"recommendedRole":"r","salaryRange":"s","gapAnalysis":[]}`)}, KindSchema},
		{"level out of range", llm.MockResponse{Content: json.RawMessage(
			`{"recommendedRole":"r","salaryRange":"s","summary":"x","gapAnalysis":[{"skill":"Go","currentLevel":-5,"requiredLevel":80,"description":""}]}`)}, KindSchema},
		{"wrong type", llm.MockResponse{Content: json.RawMessage(
			`{"recommendedRole":"r","salaryRange":"s","summary":"x","gapAnalysis":[{"skill":"Go","currentLevel":"high","requiredLevel":80,"description":""}]}`)}, KindSchema},
		{"provider schema error", llm.MockResponse{Err: &llm.ErrInvalidResponse{Content: json.RawMessage(`{}`), Err: errors.New("missing properties")}}, KindSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, mock := newTestAnalyzer(tt.resp)

			res, err := a.Analyze(context.Background(), Input{Skills: "s", City: "c"})
			assert.Nil(t, res)

			var ae *AnalysisError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tt.kind, ae.Kind)
			assert.NotEmpty(t, ae.UserMessage())
			assert.Equal(t, 1, mock.CallCount(), "no automatic retry")
		})
	}
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestAnalyze_Timeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 10 * time.Millisecond
	a := NewAnalyzer(slowProvider{}, cfg)

	_, err := a.Analyze(context.Background(), Input{Skills: "s", City: "c"})
	var ae *AnalysisError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, KindNetwork, ae.Kind)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, ae.UserMessage(), "too long")
}

func TestAnalyze_PurposeLabel(t *testing.T) {
	var got string
	p := purposeProvider{fn: func(ctx context.Context) { got = llm.PurposeFrom(ctx) }}
	a := NewAnalyzer(p, DefaultConfig())

	_, _ = a.Analyze(context.Background(), Input{Skills: "s", City: "c"})
	assert.Equal(t, llm.PurposeCareerAnalysis, got)
}

type purposeProvider struct{ fn func(context.Context) }

func (p purposeProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.fn(ctx)
	return &llm.Response{Content: json.RawMessage(shanghaiAnalysis)}, nil
}

func (purposeProvider) ModelID() string { return "purpose" }

func TestCandidates(t *testing.T) {
	var res Result
	require.NoError(t, json.Unmarshal([]byte(shanghaiAnalysis), &res))

	cands := Candidates(&res)
	require.Len(t, cands, 3)

	assert.Equal(t, "SQL", cands[0].Skill)
	assert.Equal(t, "Machine Learning", cands[1].Skill)
	assert.Equal(t, "Statistics", cands[2].Skill)

	for _, c := range cands {
		assert.Equal(t, "Master "+c.Skill, c.Title)
		assert.Greater(t, c.Gap, 0.0)
	}
	assert.Equal(t, 55.0, cands[1].Gap)
	assert.Equal(t, "Regression and classification", cands[1].Detail)
}

func TestCandidatesEmpty(t *testing.T) {
	assert.Empty(t, Candidates(nil))
	assert.Empty(t, Candidates(&Result{}))
	assert.Empty(t, Candidates(&Result{GapAnalysis: []SkillGap{{Skill: "Go", CurrentLevel: 90, RequiredLevel: 80}}}))
}

func TestInputValidate(t *testing.T) {
	assert.NoError(t, Input{Skills: "Go", City: "Beijing"}.Validate())
	assert.ErrorIs(t, Input{Skills: "  ", City: "Beijing"}.Validate(), ErrMissingSkills)
	assert.ErrorIs(t, Input{Skills: "Go", City: "\t"}.Validate(), ErrMissingCity)
}

func TestSchemaAcceptsSampleResponse(t *testing.T) {
	assert.NoError(t, llm.Validate(AnalysisSchema, json.RawMessage(shanghaiAnalysis)))
}
