package advisor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"coverplan/internal/core"
	"coverplan/internal/household"
	applog "coverplan/internal/log"
)

// State of the analysis request machine. Requesting is entered only from
// idle; both outcomes return to idle for the next user-initiated request.
type State string

const (
	StateIdle       State = "idle"
	StateRequesting State = "requesting"
)

// Runner serializes analysis requests: at most one in flight at a time, one
// result slot, replaced only on success. The external collaborator's latency
// is unbounded, so every request runs under a defensive timeout.
type Runner struct {
	analyzer Analyzer
	timeout  time.Duration
	log      *applog.Logger

	// flight is the single-flight guard; holding it is what StateRequesting
	// means.
	flight *semaphore.Weighted

	mu     sync.Mutex
	state  State
	result *core.AnalysisResult
}

func NewRunner(a Analyzer, timeout time.Duration, logger *applog.Logger) *Runner {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Runner{
		analyzer: a,
		timeout:  timeout,
		log:      logger.WithComponent(applog.ComponentAdvisor),
		flight:   semaphore.NewWeighted(1),
		state:    StateIdle,
	}
}

// Run triggers one analysis over the snapshot. It rejects an empty member
// collection before touching the collaborator, rejects overlap with an
// in-flight request, and on failure keeps the previous result untouched.
func (r *Runner) Run(ctx context.Context, snap household.Snapshot) (core.AnalysisResult, error) {
	if len(snap.Members) == 0 {
		return core.AnalysisResult{}, ErrNoFamilyMembers
	}
	if !r.flight.TryAcquire(1) {
		return core.AnalysisResult{}, ErrAnalysisInFlight
	}
	defer r.flight.Release(1)

	r.setState(StateRequesting)
	defer r.setState(StateIdle)

	cctx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := r.analyzer.Analyze(cctx, snap)
	if err != nil {
		r.log.ErrorContext(ctx, "Analysis request failed",
			applog.FieldError, err,
			applog.FieldDuration, time.Since(start).Milliseconds(),
			applog.FieldMemberCount, len(snap.Members),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return core.AnalysisResult{}, fmt.Errorf("%w: timed out", ErrAdvisorFailed)
		}
		return core.AnalysisResult{}, fmt.Errorf("%w: %v", ErrAdvisorFailed, err)
	}

	r.mu.Lock()
	r.result = &res
	r.mu.Unlock()

	r.log.InfoContext(ctx, "Analysis request succeeded",
		applog.FieldDuration, time.Since(start).Milliseconds(),
		applog.FieldMemberCount, len(snap.Members),
		applog.FieldPolicyCount, len(snap.Policies),
		applog.FieldGapCount, len(res.Summary.Gaps),
	)
	return res, nil
}

// Result returns the last successful analysis, if any.
func (r *Runner) Result() (core.AnalysisResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.result == nil {
		return core.AnalysisResult{}, false
	}
	return *r.result, true
}

// State reports whether a request is outstanding.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}
