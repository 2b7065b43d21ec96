package apiclient

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"parsectl/internal/apierror"
)

// UnwrapData returns the payload of a response body that may or may not be
// wrapped in a {data: ...} envelope. The backend is inconsistent about this
// across resources; tolerating both shapes is a permanent part of the
// contract, not something to be fixed here.
func UnwrapData(body []byte) []byte {
	res := gjson.ParseBytes(body)
	if res.IsObject() {
		if data := res.Get("data"); data.Exists() {
			return []byte(data.Raw)
		}
	}
	return body
}

// decodeInto unwraps the envelope, if any, and decodes the payload into
// target.
func decodeInto(endpoint string, body []byte, target any) error {
	payload := UnwrapData(body)
	if err := json.Unmarshal(payload, target); err != nil {
		return &apierror.DecodeError{
			Endpoint: endpoint,
			Snippet:  snippet(payload),
			Err:      err,
		}
	}
	return nil
}

func snippet(body []byte) string {
	const max = 120
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max]) + "..."
}
