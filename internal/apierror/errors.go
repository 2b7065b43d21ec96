package apierror

import "fmt"

// RequestError represents a failed call to the backend API
type RequestError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request to %s failed with status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// DecodeError represents a response body that could not be decoded
type DecodeError struct {
	Endpoint string
	Snippet  string // Optional: a snippet of the body for debugging
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("failed to decode response from %s: %v. Body snippet: '%s'",
			e.Endpoint, e.Err, e.Snippet)
	}
	return fmt.Sprintf("failed to decode response from %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError represents a local input-validation failure caught before
// any network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// NotFoundError represents a missing backend entity.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.ID)
}
