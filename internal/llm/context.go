package llm

import (
	"context"
	"slices"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purpose labels used by the gateways. They end up in the event log and
// can be used with `campus llm list --purpose`.
const (
	PurposeCareerAnalysis = "career-analysis"
	PurposeChat           = "chat"

	// PurposeUnknown is recorded for calls made without WithPurpose.
	PurposeUnknown = "unknown"
)

// Purposes lists the labels the event log can contain.
var Purposes = []string{PurposeCareerAnalysis, PurposeChat, PurposeUnknown}

// KnownPurpose reports whether p is one of Purposes.
func KnownPurpose(p string) bool {
	return slices.Contains(Purposes, p)
}

// WithPurpose labels the calls made with ctx in the event log.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or PurposeUnknown.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok && v != "" {
		return v
	}
	return PurposeUnknown
}
