package llm

import "context"

// OfflineProvider stands in when no provider could be configured. Every call
// fails with ErrProviderUnavailable wrapping the configuration error.
type OfflineProvider struct {
	Reason error
}

// NewOfflineProvider returns a provider that always reports reason.
func NewOfflineProvider(reason error) *OfflineProvider {
	return &OfflineProvider{Reason: reason}
}

func (p *OfflineProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	return nil, &ErrProviderUnavailable{Err: p.Reason}
}

func (p *OfflineProvider) ModelID() string { return "offline" }
