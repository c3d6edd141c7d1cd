package career

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/llm"
)

// ErrorKind classifies why an analysis failed.
type ErrorKind int

const (
	// KindNetwork covers transport failures, provider outages, rate limits
	// and timeouts.
	KindNetwork ErrorKind = iota
	// KindParse means the response was not readable JSON.
	KindParse
	// KindSchema means the JSON did not match the analysis contract.
	KindSchema
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindParse:
		return "parse"
	case KindSchema:
		return "schema"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// AnalysisError is returned by Analyzer.Analyze for every failure.
type AnalysisError struct {
	Kind ErrorKind
	Err  error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("career analysis failed (%s): %v", e.Kind, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// UserMessage is the retry prompt shown to the student.
func (e *AnalysisError) UserMessage() string {
	switch e.Kind {
	case KindParse:
		return "The advisor's answer could not be read. Please try again."
	case KindSchema:
		return "The advisor's answer was incomplete. Please try again."
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return "The advisor took too long to answer. Please try again."
	}
	return "Could not reach the advisor. Check your connection and try again."
}

// classify wraps err in an AnalysisError of the matching kind.
func classify(err error) *AnalysisError {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae
	}

	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return &AnalysisError{Kind: KindParse, Err: err}
	}
	var maxTok *llm.ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return &AnalysisError{Kind: KindParse, Err: err}
	}
	var inv *llm.ErrInvalidResponse
	if errors.As(err, &inv) {
		if len(inv.Content) == 0 {
			return &AnalysisError{Kind: KindParse, Err: err}
		}
		return &AnalysisError{Kind: KindSchema, Err: err}
	}
	var typ *json.UnmarshalTypeError
	if errors.As(err, &typ) {
		return &AnalysisError{Kind: KindSchema, Err: err}
	}
	return &AnalysisError{Kind: KindNetwork, Err: err}
}
