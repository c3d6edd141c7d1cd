package career

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/llm"
)

// Config controls the Analyzer.
type Config struct {
	MaxTokens   int
	Temperature float64
	// Timeout bounds one analysis call. Zero means no extra deadline.
	Timeout time.Duration
}

// DefaultConfig returns recommended settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.4,
		Timeout:     30 * time.Second,
	}
}

// Analyzer produces career analyses through an LLM provider. It issues
// exactly one provider call per Analyze and never touches app state.
type Analyzer struct {
	provider llm.Provider
	config   Config
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(provider llm.Provider, cfg Config) *Analyzer {
	return &Analyzer{provider: provider, config: cfg}
}

// Analyze requests a career analysis for in. Every failure is an
// *AnalysisError. The input is not validated here; see Input.Validate.
func (a *Analyzer) Analyze(ctx context.Context, in Input) (*Result, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeCareerAnalysis)
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in)},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, classify(err)
	}

	// Providers validate too, but the contract is ours to enforce.
	if err := llm.Validate(AnalysisSchema, resp.Content); err != nil {
		return nil, classify(err)
	}

	var result Result
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return nil, classify(err)
	}
	if result.GapAnalysis == nil {
		result.GapAnalysis = []SkillGap{}
	}
	return &result, nil
}
