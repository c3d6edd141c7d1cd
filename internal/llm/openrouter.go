package llm

import "net/http"

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

	// Sent so usage shows up under the app on openrouter.ai.
	openRouterReferer = "https://github.com/Chennyyyy/University-Students-Study-and-Career-Platform"
	openRouterTitle   = "Campus"
)

// OpenRouterProvider talks to OpenRouter's OpenAI-compatible endpoint, so
// any routed model (the default is google/gemini-2.5-flash) can back the
// career analysis and the chat.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, missingKey("openrouter")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	headers := http.Header{}
	headers.Set("HTTP-Referer", openRouterReferer)
	headers.Set("X-Title", openRouterTitle)

	inner, err := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}, headers)
	if err != nil {
		return nil, err
	}
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
