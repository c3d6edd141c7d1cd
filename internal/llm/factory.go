package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/store"
)

// NewProvider validates cfg and builds the selected provider behind the
// retry and logging decorators: caller → retry → logging → base. The mock
// provider is logged too, so `campus llm list` shows scripted sessions.
// eventRepo and logger may be nil.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *slog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if logger != nil {
		logger.Debug("llm provider built",
			"provider", cfg.Provider,
			"model", base.ModelID(),
			"max_attempts", cfg.Retry.MaxAttempts,
		)
	}
	return WithRetry(WithLogging(base, eventRepo, logger), cfg.Retry), nil
}
