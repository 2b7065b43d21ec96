package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parsectl/internal/editor"
	"parsectl/internal/models"
)

func TestCheckExtractor_Regex(t *testing.T) {
	one := 1
	three := 3
	negative := -1

	tests := []struct {
		name    string
		e       models.Extractor
		wantErr bool
	}{
		{"valid", models.Extractor{Type: models.ExtractorRegex, Pattern: `CHF\s+([\d.]+)`}, false},
		{"valid with flags", models.Extractor{Type: models.ExtractorRegex, Pattern: `total`, Flags: "i"}, false},
		{"invalid regex", models.Extractor{Type: models.ExtractorRegex, Pattern: `([`}, true},
		{"invalid flags", models.Extractor{Type: models.ExtractorRegex, Pattern: `x`, Flags: "z"}, true},
		{"capture group in range", models.Extractor{Type: models.ExtractorRegex, Pattern: `(\d+)`, CaptureGroup: &one}, false},
		{"capture group out of range", models.Extractor{Type: models.ExtractorRegex, Pattern: `(\d+)`, CaptureGroup: &three}, true},
		{"negative capture group", models.Extractor{Type: models.ExtractorRegex, Pattern: `(\d+)`, CaptureGroup: &negative}, true},
		{"empty pattern", models.Extractor{Type: models.ExtractorRegex, Pattern: "  "}, true},
		{"unknown type", models.Extractor{Type: "CSV", Pattern: "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckExtractor(tt.e)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckExtractor_OtherEngines(t *testing.T) {
	tests := []struct {
		name    string
		e       models.Extractor
		wantErr bool
	}{
		{"valid xpath", models.Extractor{Type: models.ExtractorXPath, Pattern: `//td[2]/text()`}, false},
		{"invalid xpath", models.Extractor{Type: models.ExtractorXPath, Pattern: `//td[`}, true},
		{"valid css selector", models.Extractor{Type: models.ExtractorCSSSelector, Pattern: `table.amount td:nth-child(2)`}, false},
		{"invalid css selector", models.Extractor{Type: models.ExtractorCSSSelector, Pattern: `td[`}, true},
		{"valid jsonpath", models.Extractor{Type: models.ExtractorJSONPath, Pattern: `$.transaction.amount`}, false},
		{"invalid jsonpath", models.Extractor{Type: models.ExtractorJSONPath, Pattern: `transaction.amount`}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckExtractor(tt.e)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckState_CleanDraft(t *testing.T) {
	s := editor.New()
	s.BankID = "bank-1"
	s.AddSenderPattern(`noreply@bank\.example`)
	s.AddField()
	field := s.Fields[0]
	field.FieldName = models.FieldAmount
	s.UpdateField(0, field)
	s.AddExtractor(0)
	e := s.Fields[0].Extractors[0]
	e.Pattern = `CHF\s+([\d.]+)`
	s.UpdateExtractor(0, 0, e)

	assert.Empty(t, CheckState(s))
}

func TestCheckState_CollectsIssuesWithPaths(t *testing.T) {
	s := editor.New()
	s.AddSenderPattern(`([`)
	s.AddField()
	s.AddExtractor(0)

	issues := CheckState(s)
	require.NotEmpty(t, issues)

	paths := make(map[string]bool)
	for _, issue := range issues {
		paths[issue.Path] = true
	}
	assert.True(t, paths["bankId"])
	assert.True(t, paths["senderPatterns[0]"])
	assert.True(t, paths["fields[0]"])
	assert.True(t, paths["fields[0].extractors[0]"])
}

func TestCheckState_Validations(t *testing.T) {
	tests := []struct {
		name      string
		rule      models.RuleType
		value     string
		wantIssue bool
	}{
		{"MIN numeric", models.RuleMin, "0.01", false},
		{"MIN non-numeric", models.RuleMin, "abc", true},
		{"MAX numeric", models.RuleMax, "10000", false},
		{"PATTERN valid", models.RulePattern, `^\d+$`, false},
		{"PATTERN invalid", models.RulePattern, `([`, true},
		{"ENUM populated", models.RuleEnum, "DBIT,CRDT", false},
		{"ENUM blank", models.RuleEnum, "  ", true},
		{"REQUIRED ignores value", models.RuleRequired, "leftover", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := editor.New()
			s.BankID = "bank-1"
			s.AddValidation()
			v := s.Validations[0]
			v.Field = models.FieldAmount
			v.RuleType = tt.rule
			v.Value = tt.value
			s.UpdateValidation(0, v)

			issues := CheckState(s)
			if tt.wantIssue {
				assert.NotEmpty(t, issues)
			} else {
				assert.Empty(t, issues)
			}
		})
	}
}

func TestCheckState_AIConfigOnlyForAIStrategies(t *testing.T) {
	s := editor.New()
	s.BankID = "bank-1"
	s.AIConfig.Temperature = 9

	// RULE_BASED never checks the AI settings.
	assert.Empty(t, CheckState(s))

	s.Strategy = models.StrategyAI
	issues := CheckState(s)
	require.NotEmpty(t, issues)
	assert.Equal(t, "aiConfig.temperature", issues[0].Path)

	s.AIConfig = models.DefaultAIConfig()
	s.AIConfig.MaxTokens = 0
	issues = CheckState(s)
	require.NotEmpty(t, issues)
	assert.Equal(t, "aiConfig.maxTokens", issues[0].Path)
}
