package career

import "github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/llm"

// AnalysisSchema is the structured-output contract for career analysis.
var AnalysisSchema = &llm.Schema{
	Name:        "career-analysis",
	Description: "A career recommendation with salary estimate and per-skill gap analysis",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"recommendedRole": map[string]any{
				"type":        "string",
				"description": "The most suitable specific job title",
			},
			"salaryRange": map[string]any{
				"type":        "string",
				"description": "Predicted monthly salary range in RMB, e.g. 8k-12k",
			},
			"gapAnalysis": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"skill": map[string]any{
							"type": "string",
						},
						"currentLevel": map[string]any{
							"type":        "number",
							"minimum":     0,
							"maximum":     100,
							"description": "The student's estimated level, 30 if unknown",
						},
						"requiredLevel": map[string]any{
							"type":        "number",
							"minimum":     0,
							"maximum":     100,
							"description": "The level employers expect, usually 80-90",
						},
						"description": map[string]any{
							"type": "string",
						},
					},
					"required":             []any{"skill", "currentLevel", "requiredLevel", "description"},
					"additionalProperties": false,
				},
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "Two sentences of encouragement and analysis",
			},
		},
		"required":             []any{"recommendedRole", "salaryRange", "gapAnalysis", "summary"},
		"additionalProperties": false,
	},
}
