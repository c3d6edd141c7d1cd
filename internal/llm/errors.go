package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingAPIKey reports that the selected provider has no key. EnvVar
// names the CAMPUS_* variable that would supply it.
type ErrMissingAPIKey struct {
	Provider string
	EnvVar   string
}

func (e *ErrMissingAPIKey) Error() string {
	return fmt.Sprintf("%s is required for the %s provider", e.EnvVar, e.Provider)
}

func missingKey(provider string) *ErrMissingAPIKey {
	return &ErrMissingAPIKey{
		Provider: provider,
		EnvVar:   "CAMPUS_" + strings.ToUpper(provider) + "_API_KEY",
	}
}

// ErrRateLimit is a 429 from the provider. RetryAfter is zero when the
// provider sent no hint.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse is a reply that failed the request's schema, such as a
// career analysis missing gapAnalysis. Content keeps the raw reply for the
// event log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers 5xx replies, unreachable hosts and the
// offline provider.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded means the reply was cut at Request.MaxTokens.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// Retryable reports whether sending the same request again may succeed.
// Cancellation, deadlines, truncation and missing keys are final; anything
// else, including unclassified network errors, is treated as transient.
// Invalid responses count as retryable here; RetryProvider limits them to
// one extra attempt.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}
	var missing *ErrMissingAPIKey
	if errors.As(err, &missing) {
		return false
	}
	return true
}
