// Package lint performs client-side sanity checks on a parser configuration
// draft before it is sent to the backend: pattern compilation per extractor
// engine, enum membership, and AI-settings ranges.
//
// Lint is advisory. The backend owns final validation, and extraction itself
// never happens here; patterns are compiled, not evaluated.
package lint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/oliveagle/jsonpath"
	"github.com/shopspring/decimal"
	"gopkg.in/xmlpath.v2"

	"parsectl/internal/editor"
	"parsectl/internal/models"
)

// Issue is one finding, locating the offending part of the draft.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// CheckState lints the whole draft and returns all findings.
func CheckState(s *editor.State) []Issue {
	var issues []Issue

	if s.BankID == "" {
		issues = append(issues, Issue{Path: "bankId", Message: "no bank selected"})
	}
	if !s.Strategy.IsValid() {
		issues = append(issues, Issue{Path: "strategy", Message: fmt.Sprintf("unknown strategy %q", s.Strategy)})
	}
	if !s.EmailKind.IsValid() {
		issues = append(issues, Issue{Path: "emailKind", Message: fmt.Sprintf("unknown email kind %q", s.EmailKind)})
	}

	for i, pattern := range s.SenderPatterns {
		if err := checkRegex(pattern, "", nil); err != nil {
			issues = append(issues, Issue{Path: fmt.Sprintf("senderPatterns[%d]", i), Message: err.Error()})
		}
	}
	for i, pattern := range s.SubjectPatterns {
		if err := checkRegex(pattern, "", nil); err != nil {
			issues = append(issues, Issue{Path: fmt.Sprintf("subjectPatterns[%d]", i), Message: err.Error()})
		}
	}

	for i, field := range s.Fields {
		issues = append(issues, checkField(i, field)...)
	}
	for i, v := range s.Validations {
		issues = append(issues, checkValidation(i, v)...)
	}

	if s.Strategy.UsesAI() {
		issues = append(issues, checkAIConfig(s.AIConfig)...)
	}

	return issues
}

func checkField(index int, field models.ParserField) []Issue {
	var issues []Issue
	path := fmt.Sprintf("fields[%d]", index)

	if field.FieldName == "" {
		issues = append(issues, Issue{Path: path, Message: "field name not chosen"})
	} else if !field.FieldName.IsValid() {
		issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("unknown field name %q", field.FieldName)})
	}
	if len(field.Extractors) == 0 && field.DefaultValue == "" {
		issues = append(issues, Issue{Path: path, Message: "no extractors and no default value"})
	}

	for i, e := range field.Extractors {
		if err := CheckExtractor(e); err != nil {
			issues = append(issues, Issue{
				Path:    fmt.Sprintf("%s.extractors[%d]", path, i),
				Message: err.Error(),
			})
		}
	}
	return issues
}

// CheckExtractor compiles the extractor's pattern with the engine its type
// selects.
func CheckExtractor(e models.Extractor) error {
	if !e.Type.IsValid() {
		return fmt.Errorf("unknown extractor type %q", e.Type)
	}
	if strings.TrimSpace(e.Pattern) == "" {
		return fmt.Errorf("empty pattern")
	}

	switch e.Type {
	case models.ExtractorRegex:
		return checkRegex(e.Pattern, e.Flags, e.CaptureGroup)
	case models.ExtractorXPath:
		if _, err := xmlpath.Compile(e.Pattern); err != nil {
			return fmt.Errorf("invalid XPath: %v", err)
		}
	case models.ExtractorCSSSelector:
		if _, err := cascadia.Compile(e.Pattern); err != nil {
			return fmt.Errorf("invalid CSS selector: %v", err)
		}
	case models.ExtractorJSONPath:
		if _, err := jsonpath.Compile(e.Pattern); err != nil {
			return fmt.Errorf("invalid JSONPath: %v", err)
		}
	}
	return nil
}

// checkRegex compiles pattern with the given flags and verifies the capture
// group exists. Flags use the inline syntax of RE2 ("i", "m", "s").
func checkRegex(pattern, flags string, captureGroup *int) error {
	if pattern == "" {
		return fmt.Errorf("empty pattern")
	}
	full := pattern
	if flags != "" {
		full = "(?" + flags + ")" + pattern
	}
	re, err := regexp.Compile(full)
	if err != nil {
		return fmt.Errorf("invalid regex: %v", err)
	}
	if captureGroup != nil {
		if *captureGroup < 0 {
			return fmt.Errorf("capture group must not be negative")
		}
		if *captureGroup > re.NumSubexp() {
			return fmt.Errorf("capture group %d exceeds group count %d", *captureGroup, re.NumSubexp())
		}
	}
	return nil
}

func checkValidation(index int, v models.Validation) []Issue {
	var issues []Issue
	path := fmt.Sprintf("validations[%d]", index)

	if !v.Field.IsValid() {
		issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("unknown field %q", v.Field)})
	}
	if !v.RuleType.IsValid() {
		issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("unknown rule type %q", v.RuleType)})
		return issues
	}

	switch v.RuleType {
	case models.RuleMin, models.RuleMax:
		if _, err := decimal.NewFromString(v.Value); err != nil {
			issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("%s needs a numeric value, got %q", v.RuleType, v.Value)})
		}
	case models.RulePattern:
		if err := checkRegex(v.Value, "", nil); err != nil {
			issues = append(issues, Issue{Path: path, Message: err.Error()})
		}
	case models.RuleEnum:
		if strings.TrimSpace(v.Value) == "" {
			issues = append(issues, Issue{Path: path, Message: "ENUM needs a comma-separated value list"})
		}
	case models.RuleRequired:
		// Value is carried but ignored; nothing to check.
	}
	return issues
}

func checkAIConfig(cfg models.AIConfig) []Issue {
	var issues []Issue
	if cfg.Model == "" {
		issues = append(issues, Issue{Path: "aiConfig.model", Message: "model must not be empty"})
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		issues = append(issues, Issue{Path: "aiConfig.temperature", Message: fmt.Sprintf("temperature must be between 0 and 2, got %v", cfg.Temperature)})
	}
	if cfg.MaxTokens < 1 {
		issues = append(issues, Issue{Path: "aiConfig.maxTokens", Message: "maxTokens must be positive"})
	}
	return issues
}
