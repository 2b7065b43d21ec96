package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parsectl/internal/apierror"
	"parsectl/internal/logging"
	"parsectl/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, "test-token", 5*time.Second, &logging.MockLogger{})
}

func TestDo_SendsAuthAndContentHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotContentType string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"id": "b-1", "name": "Bank"}`))
	})

	_, err := client.CreateBank(context.Background(), models.Bank{Name: "Bank"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "application/json", gotContentType)
}

func TestListConfigs_BareAndEnvelopedResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bare array", `[{"id": "c-1", "bankId": "b-1"}]`},
		{"data envelope", `{"data": [{"id": "c-1", "bankId": "b-1"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/parser-configs", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			})

			configs, err := client.ListConfigs(context.Background())
			require.NoError(t, err)
			require.Len(t, configs, 1)
			assert.Equal(t, "c-1", configs[0].ID)
			assert.Equal(t, "b-1", configs[0].BankID)
		})
	}
}

func TestGetConfig_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "no such config"}`, http.StatusNotFound)
	})

	_, err := client.GetConfig(context.Background(), "missing")
	require.Error(t, err)

	var notFound *apierror.NotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing", notFound.ID)
}

func TestDo_ErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message key", `{"message": "bankId is required"}`, "bankId is required"},
		{"error key", `{"error": "duplicate version"}`, "duplicate version"},
		{"bare string body", "service unavailable", "service unavailable"},
		{"unusable body falls back to status text", `{"code": 17}`, "Bad Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.ListBanks(context.Background())
			require.Error(t, err)

			var reqErr *apierror.RequestError
			require.True(t, errors.As(err, &reqErr))
			assert.Equal(t, http.StatusBadRequest, reqErr.StatusCode)
			assert.Contains(t, reqErr.Error(), tt.want)
		})
	}
}

func TestDecode_MalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": "not an array"}`))
	})

	_, err := client.ListBanks(context.Background())
	require.Error(t, err)

	var decodeErr *apierror.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestTestConfig_ReturnsRawBody(t *testing.T) {
	raw := `{"data": {"success": true}}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/parser-configs/test", r.URL.Path)
		_, _ = w.Write([]byte(raw))
	})

	body, err := client.TestConfig(context.Background(), models.TestRequest{SampleEmailHTML: "<html/>"})
	require.NoError(t, err)
	// The raw body passes through untouched; normalization is the runner's job.
	assert.JSONEq(t, raw, string(body))
}

func TestTestConfig_BlankBodyRejectedLocally(t *testing.T) {
	var hits int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.TestConfig(context.Background(), models.TestRequest{SampleEmailHTML: "  \n\t"})
	require.Error(t, err)

	var valErr *apierror.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "sampleEmailHtml", valErr.Field)
	// The request never reached the server.
	assert.Zero(t, hits)
}

func TestCategoryChanges_QueryParameters(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.CategoryChanges(context.Background(), "2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, "from=2026-01-01&to=2026-01-31", gotQuery)

	_, err = client.CategoryChanges(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestListMerchantDuplicates_StatusFilter(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data": [{"id": "d-1", "status": "PENDING"}]}`))
	})

	duplicates, err := client.ListMerchantDuplicates(context.Background(), models.DuplicateStatusPending)
	require.NoError(t, err)
	assert.Equal(t, "status=PENDING", gotQuery)
	require.Len(t, duplicates, 1)
	assert.Equal(t, "d-1", duplicates[0].ID)
}

func TestUnwrapData(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"envelope", `{"data": {"id": 1}}`, `{"id": 1}`},
		{"bare object", `{"id": 1}`, `{"id": 1}`},
		{"bare array", `[1,2]`, `[1,2]`},
		{"envelope with array", `{"data": [1,2]}`, `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, string(UnwrapData([]byte(tt.body))))
		})
	}
}
