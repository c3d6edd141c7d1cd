package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string `yaml:"provider"`

	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Retry      RetryConfig      `yaml:"retry"`

	// Timeout is the maximum duration for a single LLM request
	// (including retries). Default: 30s.
	Timeout time.Duration `yaml:"timeout"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`    // Default: "claude-haiku"
	BaseURL string `yaml:"base_url"` // Optional.
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`    // Default: "gpt-4o-mini"
	BaseURL string `yaml:"base_url"` // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`    // Default: "gemini-flash"
	BaseURL string `yaml:"base_url"` // Optional.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`    // Default: "google/gemini-2.5-flash"
	BaseURL string `yaml:"base_url"` // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
// MaxAttempts of 1 disables retrying.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.ApplyEnv(os.Getenv)
	return cfg
}

// ApplyEnv overlays CAMPUS_* variables read through getenv onto c.
// Unset or malformed values leave the existing field untouched.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	set(&c.Provider, "CAMPUS_LLM_PROVIDER")

	set(&c.Anthropic.APIKey, "CAMPUS_ANTHROPIC_API_KEY")
	set(&c.Anthropic.Model, "CAMPUS_ANTHROPIC_MODEL")
	set(&c.Anthropic.BaseURL, "CAMPUS_ANTHROPIC_BASE_URL")

	set(&c.OpenAI.APIKey, "CAMPUS_OPENAI_API_KEY")
	set(&c.OpenAI.Model, "CAMPUS_OPENAI_MODEL")
	set(&c.OpenAI.BaseURL, "CAMPUS_OPENAI_BASE_URL")

	set(&c.Gemini.APIKey, "CAMPUS_GEMINI_API_KEY")
	set(&c.Gemini.Model, "CAMPUS_GEMINI_MODEL")
	set(&c.Gemini.BaseURL, "CAMPUS_GEMINI_BASE_URL")

	set(&c.OpenRouter.APIKey, "CAMPUS_OPENROUTER_API_KEY")
	set(&c.OpenRouter.Model, "CAMPUS_OPENROUTER_MODEL")
	set(&c.OpenRouter.BaseURL, "CAMPUS_OPENROUTER_BASE_URL")

	if v := getenv("CAMPUS_LLM_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Retry.MaxAttempts = n
		}
	}
	if v := getenv("CAMPUS_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Timeout = d
		}
	}
}

// HasAPIKey reports whether the selected provider has a key configured.
func (c Config) HasAPIKey() bool {
	switch c.Provider {
	case "anthropic":
		return c.Anthropic.APIKey != ""
	case "openai":
		return c.OpenAI.APIKey != ""
	case "gemini":
		return c.Gemini.APIKey != ""
	case "openrouter":
		return c.OpenRouter.APIKey != ""
	case "mock":
		return true
	}
	return false
}

// DiscoverKeys fills in API keys from the providers' standard env vars
// (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY).
// If the selected provider still has no key, the first provider whose
// standard key is present is selected instead, in that priority order.
// Returns false if no usable key was found.
func (c *Config) DiscoverKeys(getenv func(string) string) bool {
	fill := func(dst *string, key string) {
		if *dst == "" {
			*dst = getenv(key)
		}
	}
	fill(&c.Gemini.APIKey, "GEMINI_API_KEY")
	fill(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	fill(&c.Anthropic.APIKey, "ANTHROPIC_API_KEY")
	fill(&c.OpenRouter.APIKey, "OPENROUTER_API_KEY")

	if c.HasAPIKey() {
		return true
	}

	for _, p := range []string{"gemini", "openai", "anthropic", "openrouter"} {
		probe := *c
		probe.Provider = p
		if probe.HasAPIKey() {
			c.Provider = p
			return true
		}
	}
	return false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return missingKey("anthropic")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return missingKey("openai")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return missingKey("gemini")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return missingKey("openrouter")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max_attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}
