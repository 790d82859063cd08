// Package advisor builds analysis requests from a household snapshot, talks
// to the external analysis collaborator through the Analyzer port, and
// validates what comes back. The call is a thin wrapper: no retry, no
// streaming, no partial-result handling.
package advisor

import (
	"context"
	"errors"

	"coverplan/internal/core"
	"coverplan/internal/household"
)

// Analyzer is the outbound port to the analysis collaborator.
type Analyzer interface {
	// Analyze turns a household snapshot into a structured analysis.
	// Implementations must honor ctx cancellation and deadlines.
	Analyze(ctx context.Context, snap household.Snapshot) (core.AnalysisResult, error)
}

var (
	// ErrNoFamilyMembers rejects an analysis trigger on an empty member
	// collection; there is nothing to analyze. User-input error.
	ErrNoFamilyMembers = errors.New("no family members to analyze")

	// ErrAnalysisInFlight rejects a trigger while another request is
	// outstanding. Only one result slot exists.
	ErrAnalysisInFlight = errors.New("analysis already in flight")

	// ErrAdvisorFailed is the generic retryable failure surfaced for any
	// external-call or malformed-response problem. The previous result,
	// if any, is left untouched.
	ErrAdvisorFailed = errors.New("analysis failed, retry later")

	// ErrMalformedResult marks a response that is missing required fields
	// or cannot be decoded at all. Wrapped into ErrAdvisorFailed by the
	// runner; kept separate for logging.
	ErrMalformedResult = errors.New("malformed analysis result")
)
