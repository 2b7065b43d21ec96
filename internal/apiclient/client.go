// Package apiclient is the hand-maintained client for the backend admin REST
// API. Every response read goes through the tolerant envelope unwrapping in
// envelope.go: the backend wraps some payloads in {data: ...} and returns
// others bare, and both shapes are accepted everywhere.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"parsectl/internal/apierror"
	"parsectl/internal/logging"

	"github.com/tidwall/gjson"
)

// Client talks to the backend admin API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        logging.Logger
}

// New creates a client for the API rooted at baseURL. The token, when not
// empty, is sent as a bearer token on every request.
func New(baseURL, token string, timeout time.Duration, log logging.Logger) *Client {
	if log == nil {
		log = logging.NewLogrusAdapter("info", "text")
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.WithField("component", "apiclient"),
	}
}

// do performs one API request and returns the raw response body. Bodies of
// failed requests are still read so their error message can be surfaced.
func (c *Client) do(ctx context.Context, method, path string, reqBody any) ([]byte, error) {
	endpoint := c.baseURL + path

	var bodyReader io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return nil, &apierror.RequestError{Endpoint: endpoint, Err: fmt.Errorf("failed to encode request body: %w", err)}
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, &apierror.RequestError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.WithFields(
		logging.Field{Key: logging.FieldEndpoint, Value: path},
		logging.Field{Key: logging.FieldOperation, Value: method},
	).Debug("Calling backend API")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apierror.RequestError{Endpoint: endpoint, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.WithError(err).Warn("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierror.RequestError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: err}
	}

	c.log.WithFields(
		logging.Field{Key: logging.FieldEndpoint, Value: path},
		logging.Field{Key: logging.FieldStatusCode, Value: resp.StatusCode},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()},
	).Debug("Backend API responded")

	if resp.StatusCode >= 400 {
		return nil, &apierror.RequestError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        errors.New(errorMessage(body, resp.StatusCode)),
		}
	}

	return body, nil
}

// errorMessage digs a human-readable message out of an error response body.
// The backend has used "message", "error", and bare strings over time.
func errorMessage(body []byte, statusCode int) string {
	res := gjson.ParseBytes(body)
	if res.IsObject() {
		if msg := res.Get("message"); msg.Exists() && msg.String() != "" {
			return msg.String()
		}
		if msg := res.Get("error"); msg.Exists() && msg.String() != "" {
			return msg.String()
		}
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" && len(trimmed) < 200 {
		return trimmed
	}
	return http.StatusText(statusCode)
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeInto(c.baseURL+path, body, target)
}

func (c *Client) postJSON(ctx context.Context, path string, reqBody, target any) error {
	body, err := c.do(ctx, http.MethodPost, path, reqBody)
	if err != nil {
		return err
	}
	if target == nil {
		return nil
	}
	return decodeInto(c.baseURL+path, body, target)
}

func (c *Client) putJSON(ctx context.Context, path string, reqBody, target any) error {
	body, err := c.do(ctx, http.MethodPut, path, reqBody)
	if err != nil {
		return err
	}
	if target == nil {
		return nil
	}
	return decodeInto(c.baseURL+path, body, target)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}
