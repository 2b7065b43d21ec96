package editor

import (
	"encoding/json"

	"parsectl/internal/models"
)

// Rules maps the current field and validation lists to their wire shape.
// Only the canonical spellings ("fieldName", "ruleType") are written.
func (s *State) Rules() models.RulesDTO {
	fields := make([]models.FieldDTO, 0, len(s.Fields))
	for _, f := range s.Fields {
		fields = append(fields, models.FieldDTO{
			ID:           f.ID,
			FieldName:    f.FieldName,
			Required:     f.Required,
			DefaultValue: f.DefaultValue,
			Transform:    f.Transform,
			Extractors:   extractorDTOs(f.Extractors),
		})
	}

	validations := make([]models.ValidationDTO, 0, len(s.Validations))
	for _, v := range s.Validations {
		validations = append(validations, models.ValidationDTO{
			ID:           v.ID,
			Field:        v.Field,
			RuleType:     v.RuleType,
			Value:        v.Value,
			ErrorMessage: v.ErrorMessage,
		})
	}

	return models.RulesDTO{Fields: fields, Validations: validations}
}

func extractorDTOs(extractors []models.Extractor) []models.ExtractorDTO {
	dtos := make([]models.ExtractorDTO, 0, len(extractors))
	for _, e := range extractors {
		dtos = append(dtos, models.ExtractorDTO{
			ID:           e.ID,
			Type:         e.Type,
			Pattern:      e.Pattern,
			Flags:        e.Flags,
			CaptureGroup: e.CaptureGroup,
		})
	}
	return dtos
}

// Payload builds the create/update request body. The aiConfig key is present
// only for AI and HYBRID strategies, and then always fully populated.
func (s *State) Payload() models.ConfigPayload {
	payload := models.ConfigPayload{
		BankID:              s.BankID,
		Version:             s.Version,
		Strategy:            s.Strategy,
		EmailKind:           s.EmailKind,
		EmailSenderPatterns: copyPatterns(s.SenderPatterns),
		SubjectPatterns:     copyPatterns(s.SubjectPatterns),
		Rules:               s.Rules(),
		IsActive:            s.IsActive,
	}
	if s.Strategy.UsesAI() {
		ai := s.AIConfig
		payload.AIConfig = &ai
	}
	return payload
}

// TestRequest builds the body for the backend test endpoint from the current
// rules and the given sample email body.
func (s *State) TestRequest(sampleEmailHTML string) models.TestRequest {
	return models.TestRequest{
		Rules:               s.Rules(),
		SampleEmailHTML:     sampleEmailHTML,
		EmailSenderPatterns: copyPatterns(s.SenderPatterns),
		SubjectPatterns:     copyPatterns(s.SubjectPatterns),
	}
}

// preview is the payload augmented with the resolved bank name for display.
type preview struct {
	BankID   string `json:"bankId"`
	BankName string `json:"bankName,omitempty"`
	models.ConfigPayload
}

// Preview derives the backend-shaped JSON document shown next to the editor.
// It is a pure function of the state and the supplied bank list: the bankId
// is resolved to a display name when the list contains it, and nothing in the
// state is mutated.
func (s *State) Preview(banks []models.Bank) ([]byte, error) {
	p := preview{
		BankID:        s.BankID,
		ConfigPayload: s.Payload(),
	}
	for _, bank := range banks {
		if bank.ID == s.BankID {
			p.BankName = bank.Name
			break
		}
	}
	return json.MarshalIndent(p, "", "  ")
}
