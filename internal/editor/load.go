package editor

import (
	"github.com/google/uuid"

	"parsectl/internal/models"
)

// LoadFromConfig builds an edit-mode state from a fetched configuration.
// The mapping reconstructs the same shape the save path produces:
//
//   - rules.fields accept "fieldName" or the legacy "name" spelling
//   - fields and validations without an id get a fresh session-local one;
//     backend ids are preserved where present
//   - rules.validations accept "ruleType" or the legacy "rule" spelling,
//     defaulting to REQUIRED when both are absent
//   - aiConfig falls back per property to the documented defaults
//
// The stored sample email HTML is exposed through SampleEmailHTML, separate
// from the saved form model.
func LoadFromConfig(cfg models.ParserConfig) *State {
	s := New()
	s.editingID = cfg.ID
	s.BankID = cfg.BankID
	s.Version = cfg.Version
	if cfg.Strategy != "" {
		s.Strategy = cfg.Strategy
	}
	if cfg.EmailKind != "" {
		s.EmailKind = cfg.EmailKind
	}
	s.IsActive = cfg.IsActive
	s.SenderPatterns = copyPatterns(cfg.EmailSenderPatterns)
	s.SubjectPatterns = copyPatterns(cfg.SubjectPatterns)
	s.Fields = mapFields(cfg.Rules.Fields)
	s.Validations = mapValidations(cfg.Rules.Validations)
	s.AIConfig = mapAIConfig(cfg.AIConfig)
	s.sampleEmailHTML = cfg.SampleEmailHTML
	return s
}

func copyPatterns(patterns []string) []string {
	out := make([]string, len(patterns))
	copy(out, patterns)
	return out
}

func mapFields(dtos []models.FieldDTO) []models.ParserField {
	fields := make([]models.ParserField, 0, len(dtos))
	for _, dto := range dtos {
		name := dto.FieldName
		if name == "" {
			name = dto.LegacyName
		}
		id := dto.ID
		if id == "" {
			id = uuid.NewString()
		}
		fields = append(fields, models.ParserField{
			ID:           id,
			FieldName:    name,
			Required:     dto.Required,
			DefaultValue: dto.DefaultValue,
			Transform:    dto.Transform,
			Extractors:   mapExtractors(dto.Extractors),
		})
	}
	return fields
}

func mapExtractors(dtos []models.ExtractorDTO) []models.Extractor {
	extractors := make([]models.Extractor, 0, len(dtos))
	for _, dto := range dtos {
		id := dto.ID
		if id == "" {
			id = uuid.NewString()
		}
		extractors = append(extractors, models.Extractor{
			ID:           id,
			Type:         dto.Type,
			Pattern:      dto.Pattern,
			Flags:        dto.Flags,
			CaptureGroup: dto.CaptureGroup,
		})
	}
	return extractors
}

func mapValidations(dtos []models.ValidationDTO) []models.Validation {
	validations := make([]models.Validation, 0, len(dtos))
	for _, dto := range dtos {
		rule := dto.RuleType
		if rule == "" {
			rule = dto.LegacyRule
		}
		if rule == "" {
			rule = models.RuleRequired
		}
		id := dto.ID
		if id == "" {
			id = uuid.NewString()
		}
		validations = append(validations, models.Validation{
			ID:           id,
			Field:        dto.Field,
			RuleType:     rule,
			Value:        dto.Value,
			ErrorMessage: dto.ErrorMessage,
		})
	}
	return validations
}

func mapAIConfig(dto *models.AIConfigDTO) models.AIConfig {
	cfg := models.DefaultAIConfig()
	if dto == nil {
		return cfg
	}
	if dto.Model != nil {
		cfg.Model = *dto.Model
	}
	if dto.SystemPrompt != nil {
		cfg.SystemPrompt = *dto.SystemPrompt
	}
	if dto.Temperature != nil {
		cfg.Temperature = *dto.Temperature
	}
	if dto.MaxTokens != nil {
		cfg.MaxTokens = *dto.MaxTokens
	}
	return cfg
}
