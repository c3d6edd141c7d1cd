package career

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a senior career counselor and data scientist advising college students in China.

Rules:
- Simulate a regression analysis of the local job market to predict the student's market value.
- Recommend the single most suitable, specific job title.
- Give the predicted monthly salary range in RMB, formatted like "8k-12k".
- List the 5 key technical skills the role requires. For each, estimate the student's current level from their description (0-100, use 30 when unknown) and the level required for employment (usually 80-90).
- Close with a brief two-sentence summary that is encouraging and honest.`

// buildUserMessage renders the analysis request.
func buildUserMessage(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "City: %s\n", strings.TrimSpace(in.City))
	fmt.Fprintf(&b, "Current skills/description: %q\n", strings.TrimSpace(in.Skills))
	if role := strings.TrimSpace(in.TargetRole); role != "" {
		fmt.Fprintf(&b, "Interested in: %q\n", role)
	}
	return b.String()
}
