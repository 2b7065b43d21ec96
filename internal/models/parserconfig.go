package models

// Extractor is one strategy for pulling a value out of a raw email body.
// Pattern interpretation depends on Type; Flags and CaptureGroup only apply
// to REGEX extractors. CaptureGroup nil means "whole match" and is distinct
// from an explicit group 0.
type Extractor struct {
	ID           string        `json:"id,omitempty" yaml:"id,omitempty"`
	Type         ExtractorType `json:"type" yaml:"type"`
	Pattern      string        `json:"pattern" yaml:"pattern"`
	Flags        string        `json:"flags,omitempty" yaml:"flags,omitempty"`
	CaptureGroup *int          `json:"captureGroup,omitempty" yaml:"captureGroup,omitempty"`
}

// ParserField is one output field backed by an ordered fallback chain of
// extractors: they are tried in order until one yields a non-empty result.
// The order is semantically meaningful and must survive every mutation and
// save/load round-trip.
type ParserField struct {
	ID           string      `json:"id" yaml:"id"`
	FieldName    FieldName   `json:"fieldName" yaml:"fieldName"`
	Required     bool        `json:"required" yaml:"required"`
	DefaultValue string      `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Transform    string      `json:"transform,omitempty" yaml:"transform,omitempty"`
	Extractors   []Extractor `json:"extractors" yaml:"extractors"`
}

// Validation is one post-extraction check applied to a field's resolved value.
// Value is carried but ignored when RuleType is REQUIRED.
type Validation struct {
	ID           string    `json:"id" yaml:"id"`
	Field        FieldName `json:"field" yaml:"field"`
	RuleType     RuleType  `json:"ruleType" yaml:"ruleType"`
	Value        string    `json:"value,omitempty" yaml:"value,omitempty"`
	ErrorMessage string    `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
}

// AIConfig holds the AI-strategy settings. All four properties are always
// populated when the struct is serialized.
type AIConfig struct {
	Model        string  `json:"model" yaml:"model"`
	SystemPrompt string  `json:"systemPrompt" yaml:"systemPrompt"`
	Temperature  float64 `json:"temperature" yaml:"temperature"`
	MaxTokens    int     `json:"maxTokens" yaml:"maxTokens"`
}

// DefaultAIConfig returns the documented AI defaults.
func DefaultAIConfig() AIConfig {
	return AIConfig{
		Model:        DefaultAIModel,
		SystemPrompt: DefaultAISystemPrompt,
		Temperature:  DefaultAITemperature,
		MaxTokens:    DefaultAIMaxTokens,
	}
}

// AIConfigDTO is the wire shape of a stored aiConfig. Properties are
// pointers because the backend has returned partial objects; absent
// properties fall back to the documented defaults on load.
type AIConfigDTO struct {
	Model        *string  `json:"model,omitempty"`
	SystemPrompt *string  `json:"systemPrompt,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	MaxTokens    *int     `json:"maxTokens,omitempty"`
}

// FieldDTO is the wire shape of a parser field inside rules.fields.
// Older configurations carry the field name under "name"; both spellings are
// accepted on load, only "fieldName" is written on save.
type FieldDTO struct {
	ID           string         `json:"id,omitempty"`
	FieldName    FieldName      `json:"fieldName,omitempty"`
	LegacyName   FieldName      `json:"name,omitempty"`
	Required     bool           `json:"required"`
	DefaultValue string         `json:"defaultValue,omitempty"`
	Transform    string         `json:"transform,omitempty"`
	Extractors   []ExtractorDTO `json:"extractors"`
}

// ExtractorDTO is the wire shape of an extractor.
type ExtractorDTO struct {
	ID           string        `json:"id,omitempty"`
	Type         ExtractorType `json:"type"`
	Pattern      string        `json:"pattern"`
	Flags        string        `json:"flags,omitempty"`
	CaptureGroup *int          `json:"captureGroup,omitempty"`
}

// ValidationDTO is the wire shape of a validation inside rules.validations.
// The rule type has historically been sent as "ruleType" or "rule"; both are
// accepted on load, only "ruleType" is written on save.
type ValidationDTO struct {
	ID           string    `json:"id,omitempty"`
	Field        FieldName `json:"field"`
	RuleType     RuleType  `json:"ruleType,omitempty"`
	LegacyRule   RuleType  `json:"rule,omitempty"`
	Value        string    `json:"value,omitempty"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
}

// RulesDTO groups the extraction and validation rules of a configuration.
type RulesDTO struct {
	Fields      []FieldDTO      `json:"fields"`
	Validations []ValidationDTO `json:"validations"`
}

// ConfigPayload is the create/update request body for a parser configuration.
type ConfigPayload struct {
	BankID              string    `json:"bankId"`
	Version             string    `json:"version"`
	Strategy            Strategy  `json:"strategy"`
	EmailKind           EmailKind `json:"emailKind"`
	EmailSenderPatterns []string  `json:"emailSenderPatterns"`
	SubjectPatterns     []string  `json:"subjectPatterns"`
	Rules               RulesDTO  `json:"rules"`
	AIConfig            *AIConfig `json:"aiConfig,omitempty"`
	IsActive            bool      `json:"isActive"`
}

// ParserConfig is the stored configuration entity as returned by the backend.
// Timestamps are kept as opaque strings; their format has varied and nothing
// here computes with them.
type ParserConfig struct {
	ID                  string       `json:"id"`
	BankID              string       `json:"bankId"`
	Version             string       `json:"version"`
	Strategy            Strategy     `json:"strategy"`
	EmailKind           EmailKind    `json:"emailKind"`
	EmailSenderPatterns []string     `json:"emailSenderPatterns"`
	SubjectPatterns     []string     `json:"subjectPatterns"`
	Rules               RulesDTO     `json:"rules"`
	AIConfig            *AIConfigDTO `json:"aiConfig,omitempty"`
	IsActive            bool         `json:"isActive"`
	SampleEmailHTML     string       `json:"sampleEmailHtml,omitempty"`
	CreatedAt           string       `json:"createdAt,omitempty"`
	UpdatedAt           string       `json:"updatedAt,omitempty"`
}

// TestRequest is the body sent to the parser test endpoint. The current rules
// are sent inline so an unsaved draft can be tested.
type TestRequest struct {
	Rules               RulesDTO `json:"rules"`
	SampleEmailHTML     string   `json:"sampleEmailHtml"`
	EmailSenderPatterns []string `json:"emailSenderPatterns"`
	SubjectPatterns     []string `json:"subjectPatterns"`
}
