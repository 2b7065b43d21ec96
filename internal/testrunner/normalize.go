package testrunner

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"parsectl/internal/models"
)

// resultKeys are the fields that identify an object as a test result.
var resultKeys = []string{
	"success",
	"extractedData",
	"extractedFields",
	"missingFields",
	"errors",
	"warnings",
	"patternMatches",
}

// NormalizeResult maps a raw test-endpoint response body onto the fixed
// TestResult shape. The endpoint has returned at least three shapes over
// time: the bare result object, {data: result}, and the result fields spread
// at the top level of an envelope. Every field is defaulted rather than
// trusted, so a missing or malformed property can never take the workflow
// down.
func NormalizeResult(body []byte) models.TestResult {
	result := models.EmptyTestResult()

	root := gjson.ParseBytes(body)
	candidate := root
	if data := root.Get("data"); data.Exists() && data.IsObject() && hasResultKey(data) {
		candidate = data
	}
	if !candidate.IsObject() {
		return result
	}

	result.Success = candidate.Get("success").Bool()

	if extracted := candidate.Get("extractedData"); extracted.Exists() && extracted.IsObject() {
		var data map[string]any
		if err := json.Unmarshal([]byte(extracted.Raw), &data); err == nil {
			result.ExtractedData = data
		}
	}

	result.ExtractedFields = stringSlice(candidate.Get("extractedFields"))
	result.MissingFields = stringSlice(candidate.Get("missingFields"))
	result.Errors = stringSlice(candidate.Get("errors"))
	result.Warnings = stringSlice(candidate.Get("warnings"))

	matches := candidate.Get("patternMatches")
	result.PatternMatches = models.PatternMatches{
		SenderMatched:  matches.Get("senderMatched").Bool(),
		SubjectMatched: matches.Get("subjectMatched").Bool(),
	}

	return result
}

func hasResultKey(obj gjson.Result) bool {
	for _, key := range resultKeys {
		if obj.Get(key).Exists() {
			return true
		}
	}
	return false
}

func stringSlice(res gjson.Result) []string {
	out := []string{}
	if !res.IsArray() {
		return out
	}
	for _, item := range res.Array() {
		out = append(out, item.String())
	}
	return out
}
