package models

// PatternMatches reports whether the configured sender and subject patterns
// matched the sample email during a test run.
type PatternMatches struct {
	SenderMatched  bool `json:"senderMatched"`
	SubjectMatched bool `json:"subjectMatched"`
}

// TestResult is the fixed result shape every test-endpoint response is
// normalized into, whatever envelope the backend happened to use.
type TestResult struct {
	Success         bool           `json:"success"`
	ExtractedData   map[string]any `json:"extractedData"`
	ExtractedFields []string       `json:"extractedFields"`
	MissingFields   []string       `json:"missingFields"`
	Errors          []string       `json:"errors"`
	Warnings        []string       `json:"warnings"`
	PatternMatches  PatternMatches `json:"patternMatches"`
}

// EmptyTestResult returns a result with every field at its documented safe
// default: empty slices, false flags, and no extracted data.
func EmptyTestResult() TestResult {
	return TestResult{
		ExtractedData:   nil,
		ExtractedFields: []string{},
		MissingFields:   []string{},
		Errors:          []string{},
		Warnings:        []string{},
	}
}

// FailedTestResult returns the synthetic result used when the test call
// itself fails, with the transport error carried in Errors.
func FailedTestResult(message string) TestResult {
	r := EmptyTestResult()
	r.Success = false
	r.Errors = []string{message}
	return r
}
