// Package testrunner drives ad-hoc test runs of a parser configuration
// against the backend extraction engine. Nothing here is persisted: a runner
// holds at most the result of the latest run.
package testrunner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"parsectl/internal/editor"
	"parsectl/internal/logging"
	"parsectl/internal/models"
)

// TestAPI is the slice of the backend client the runner needs.
type TestAPI interface {
	TestConfig(ctx context.Context, req models.TestRequest) ([]byte, error)
}

// Notifier receives the user-facing outcome notifications of a run. The CLI
// prints them; tests capture them.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier routes notifications to a structured logger.
type LogNotifier struct {
	Log logging.Logger
}

// Success logs the message at info level.
func (n LogNotifier) Success(msg string) { n.Log.Info(msg) }

// Error logs the message at error level.
func (n LogNotifier) Error(msg string) { n.Log.Error(msg) }

// Runner executes test runs and keeps the latest normalized result.
type Runner struct {
	api      TestAPI
	notifier Notifier
	log      logging.Logger

	running bool
	result  *models.TestResult
}

// NewRunner creates a runner. A nil notifier falls back to logging.
func NewRunner(api TestAPI, notifier Notifier, log logging.Logger) *Runner {
	if log == nil {
		log = logging.NewLogrusAdapter("info", "text")
	}
	if notifier == nil {
		notifier = LogNotifier{Log: log}
	}
	return &Runner{
		api:      api,
		notifier: notifier,
		log:      log.WithField("component", "testrunner"),
	}
}

// Result returns the latest result, or nil when no run has completed since
// the last reset.
func (r *Runner) Result() *models.TestResult {
	return r.result
}

// Running reports whether a run is in flight. The caller uses this to keep
// the triggering action disabled, preventing duplicate submissions.
func (r *Runner) Running() bool {
	return r.running
}

// Reset discards the current result, returning the runner to idle.
func (r *Runner) Reset() {
	r.result = nil
}

// Run builds a test request from the editor state and the sample email body,
// sends it, and stores the normalized result.
//
// A blank body (whitespace-only counts as blank) is rejected before any
// request is issued: the user is notified and the previous result is kept.
// A transport failure is recoverable: it stores a synthetic failed result and
// the form state is untouched, so the operator can immediately retry.
func (r *Runner) Run(ctx context.Context, state *editor.State, sampleEmailHTML string) *models.TestResult {
	if strings.TrimSpace(sampleEmailHTML) == "" {
		r.notifier.Error("Please provide a sample email body before running a test")
		return r.result
	}
	if r.running {
		r.log.Warn("Test run already in flight, ignoring")
		return r.result
	}

	r.running = true
	r.result = nil
	defer func() { r.running = false }()

	req := state.TestRequest(sampleEmailHTML)
	r.log.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(req.Rules.Fields)},
		logging.Field{Key: logging.FieldStrategy, Value: string(state.Strategy)},
	).Debug("Running parser test")

	body, err := r.api.TestConfig(ctx, req)
	if err != nil {
		failed := models.FailedTestResult(err.Error())
		r.result = &failed
		r.notifier.Error(fmt.Sprintf("Parser test failed: %v", err))
		return r.result
	}

	normalized := NormalizeResult(body)
	r.result = &normalized

	if normalized.Success {
		r.notifier.Success("Parser test completed successfully")
	} else {
		r.notifier.Error("Parser test completed with errors")
	}
	return r.result
}

// CopyExtractedData serializes the extracted data of the latest result to w,
// independent of the run state machine. It reports whether anything was
// written.
func (r *Runner) CopyExtractedData(w io.Writer) (bool, error) {
	if r.result == nil || r.result.ExtractedData == nil {
		return false, nil
	}
	data, err := json.MarshalIndent(r.result.ExtractedData, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to serialize extracted data: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return false, fmt.Errorf("failed to write extracted data: %w", err)
	}
	return true, nil
}
