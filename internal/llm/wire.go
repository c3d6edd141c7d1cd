package llm

// unsupportedWireKeywords are JSON Schema keywords that the OpenAI and
// Anthropic structured output modes reject. They are still enforced locally
// by Validate after the response arrives.
var unsupportedWireKeywords = []string{"minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum"}

// wireSchema returns a deep copy of def without the keywords the providers'
// strict schema modes refuse.
func wireSchema(def map[string]any) map[string]any {
	out, _ := stripKeywords(def).(map[string]any)
	return out
}

func stripKeywords(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if isUnsupportedKeyword(k) {
				continue
			}
			out[k] = stripKeywords(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = stripKeywords(val)
		}
		return out
	default:
		return v
	}
}

func isUnsupportedKeyword(k string) bool {
	for _, u := range unsupportedWireKeywords {
		if k == u {
			return true
		}
	}
	return false
}
