package testrunner

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parsectl/internal/editor"
	"parsectl/internal/logging"
	"parsectl/internal/models"
)

type fakeAPI struct {
	body  []byte
	err   error
	calls int
	last  models.TestRequest
}

func (f *fakeAPI) TestConfig(_ context.Context, req models.TestRequest) ([]byte, error) {
	f.calls++
	f.last = req
	return f.body, f.err
}

type captureNotifier struct {
	successes []string
	errors    []string
}

func (n *captureNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *captureNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func newTestRunner(api *fakeAPI) (*Runner, *captureNotifier) {
	notifier := &captureNotifier{}
	return NewRunner(api, notifier, &logging.MockLogger{}), notifier
}

func TestRun_Success(t *testing.T) {
	api := &fakeAPI{body: []byte(`{"success": true, "extractedData": {"amount": "12.50"}}`)}
	runner, notifier := newTestRunner(api)

	state := editor.New()
	state.AddSenderPattern("noreply@")
	result := runner.Run(context.Background(), state, "<html>body</html>")

	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, 1, api.calls)
	assert.Equal(t, "<html>body</html>", api.last.SampleEmailHTML)
	assert.Equal(t, []string{"noreply@"}, api.last.EmailSenderPatterns)
	assert.Len(t, notifier.successes, 1)
	assert.Empty(t, notifier.errors)
	assert.Same(t, result, runner.Result())
	assert.False(t, runner.Running())
}

func TestRun_BackendReportedFailure(t *testing.T) {
	api := &fakeAPI{body: []byte(`{"success": false, "errors": ["merchant not found"]}`)}
	runner, notifier := newTestRunner(api)

	result := runner.Run(context.Background(), editor.New(), "<html>body</html>")

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, []string{"merchant not found"}, result.Errors)
	assert.Empty(t, notifier.successes)
	assert.Len(t, notifier.errors, 1)
}

func TestRun_BlankBodyGuard(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{body: []byte(`{"success": true}`)}
			runner, notifier := newTestRunner(api)

			// Establish a prior result first.
			prior := runner.Run(context.Background(), editor.New(), "<html>body</html>")
			require.NotNil(t, prior)

			result := runner.Run(context.Background(), editor.New(), tt.body)

			// No request went out and the prior result is retained.
			assert.Equal(t, 1, api.calls)
			assert.Same(t, prior, result)
			assert.Same(t, prior, runner.Result())
			require.NotEmpty(t, notifier.errors)
			assert.Contains(t, notifier.errors[len(notifier.errors)-1], "sample email body")
		})
	}
}

func TestRun_TransportErrorSynthesizesFailedResult(t *testing.T) {
	api := &fakeAPI{err: errors.New("connection refused")}
	runner, notifier := newTestRunner(api)

	state := editor.New()
	state.AddField()
	before := state.Fields[0]

	result := runner.Run(context.Background(), state, "<html>body</html>")

	require.NotNil(t, result)
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "connection refused")
	assert.Equal(t, []string{}, result.ExtractedFields)
	assert.Nil(t, result.ExtractedData)
	assert.Len(t, notifier.errors, 1)

	// The editor state is untouched, so the operator can retry immediately.
	assert.Equal(t, before, state.Fields[0])
}

func TestReset_DiscardsResult(t *testing.T) {
	api := &fakeAPI{body: []byte(`{"success": true}`)}
	runner, _ := newTestRunner(api)

	runner.Run(context.Background(), editor.New(), "<html>body</html>")
	require.NotNil(t, runner.Result())

	runner.Reset()
	assert.Nil(t, runner.Result())
}

func TestCopyExtractedData(t *testing.T) {
	api := &fakeAPI{body: []byte(`{"success": true, "extractedData": {"amount": "12.50", "currency": "CHF"}}`)}
	runner, _ := newTestRunner(api)
	runner.Run(context.Background(), editor.New(), "<html>body</html>")

	var buf bytes.Buffer
	written, err := runner.CopyExtractedData(&buf)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Contains(t, buf.String(), `"amount": "12.50"`)
	assert.Contains(t, buf.String(), `"currency": "CHF"`)
}

func TestCopyExtractedData_NothingToCopy(t *testing.T) {
	api := &fakeAPI{body: []byte(`{"success": false}`)}
	runner, _ := newTestRunner(api)

	// No run yet.
	var buf bytes.Buffer
	written, err := runner.CopyExtractedData(&buf)
	require.NoError(t, err)
	assert.False(t, written)

	// A run without extracted data still has nothing to copy.
	runner.Run(context.Background(), editor.New(), "<html>body</html>")
	written, err = runner.CopyExtractedData(&buf)
	require.NoError(t, err)
	assert.False(t, written)
	assert.Zero(t, buf.Len())
}
