package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"coverplan/internal/core"
	"coverplan/internal/household"
)

// fakeAnalyzer lets tests control when Analyze returns and what it yields.
type fakeAnalyzer struct {
	calls   int
	result  core.AnalysisResult
	err     error
	release chan struct{} // when non-nil, Analyze blocks until closed
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, _ household.Snapshot) (core.AnalysisResult, error) {
	f.calls++
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return core.AnalysisResult{}, ctx.Err()
		}
	}
	return f.result, f.err
}

func okResult(report string) core.AnalysisResult {
	return core.AnalysisResult{
		Summary:        core.AnalysisSummary{HealthScore: 70, Gaps: []string{}},
		ReportMarkdown: report,
	}
}

func TestRunRejectsEmptyFamilyWithoutCallingAnalyzer(t *testing.T) {
	fake := &fakeAnalyzer{result: okResult("x")}
	r := NewRunner(fake, time.Second, nil)

	_, err := r.Run(context.Background(), household.Snapshot{})
	if !errors.Is(err, ErrNoFamilyMembers) {
		t.Fatalf("got %v, want ErrNoFamilyMembers", err)
	}
	if fake.calls != 0 {
		t.Fatal("analyzer must not be invoked for an empty family")
	}
}

func TestRunStoresResultOnSuccess(t *testing.T) {
	fake := &fakeAnalyzer{result: okResult("first")}
	r := NewRunner(fake, time.Second, nil)

	if _, ok := r.Result(); ok {
		t.Fatal("no result expected before any run")
	}
	res, err := r.Run(context.Background(), sampleSnapshot())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.ReportMarkdown != "first" {
		t.Fatalf("unexpected result: %+v", res)
	}
	stored, ok := r.Result()
	if !ok || stored.ReportMarkdown != "first" {
		t.Fatalf("result slot not updated: %v %v", stored, ok)
	}
	if r.State() != StateIdle {
		t.Fatalf("state = %s after completion, want idle", r.State())
	}
}

func TestRunFailureKeepsPreviousResult(t *testing.T) {
	fake := &fakeAnalyzer{result: okResult("kept")}
	r := NewRunner(fake, time.Second, nil)
	if _, err := r.Run(context.Background(), sampleSnapshot()); err != nil {
		t.Fatalf("seed run: %v", err)
	}

	fake.err = errors.New("upstream exploded")
	_, err := r.Run(context.Background(), sampleSnapshot())
	if !errors.Is(err, ErrAdvisorFailed) {
		t.Fatalf("got %v, want ErrAdvisorFailed", err)
	}
	stored, ok := r.Result()
	if !ok || stored.ReportMarkdown != "kept" {
		t.Fatal("failed run must leave the previous result untouched")
	}
}

func TestRunSingleFlight(t *testing.T) {
	fake := &fakeAnalyzer{result: okResult("slow"), release: make(chan struct{})}
	r := NewRunner(fake, time.Minute, nil)

	done := make(chan error, 1)
	go func() {
		_, err := r.Run(context.Background(), sampleSnapshot())
		done <- err
	}()

	// Wait for the first request to be in flight.
	deadline := time.After(2 * time.Second)
	for r.State() != StateRequesting {
		select {
		case <-deadline:
			t.Fatal("first request never entered requesting state")
		case <-time.After(time.Millisecond):
		}
	}

	if _, err := r.Run(context.Background(), sampleSnapshot()); !errors.Is(err, ErrAnalysisInFlight) {
		t.Fatalf("second trigger: got %v, want ErrAnalysisInFlight", err)
	}

	close(fake.release)
	if err := <-done; err != nil {
		t.Fatalf("first run: %v", err)
	}
	if fake.calls != 1 {
		t.Fatalf("analyzer called %d times, want 1", fake.calls)
	}

	// Back to idle: a new request is allowed again.
	fake.release = nil
	if _, err := r.Run(context.Background(), sampleSnapshot()); err != nil {
		t.Fatalf("follow-up run: %v", err)
	}
}

func TestRunTimesOut(t *testing.T) {
	fake := &fakeAnalyzer{result: okResult("never"), release: make(chan struct{})}
	r := NewRunner(fake, 20*time.Millisecond, nil)

	_, err := r.Run(context.Background(), sampleSnapshot())
	if !errors.Is(err, ErrAdvisorFailed) {
		t.Fatalf("got %v, want ErrAdvisorFailed", err)
	}
	if _, ok := r.Result(); ok {
		t.Fatal("timeout must not produce a result")
	}
	if r.State() != StateIdle {
		t.Fatalf("state = %s, want idle", r.State())
	}
}
