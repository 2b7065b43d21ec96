// Package editor holds the single source of truth for a parser configuration
// being edited: the form state, its mutators, the bidirectional mapping to
// the backend rule schema, and the derived JSON preview.
//
// Child operations (per-field extractor edits, per-row validation edits)
// never own state; they go through the index-based mutators here. Mutators
// follow splice semantics and cannot fail: an out-of-range index is a no-op.
package editor

import (
	"github.com/google/uuid"

	"parsectl/internal/models"
)

// State is the aggregate being edited. Create it with New (create mode) or
// LoadFromConfig (edit mode). The sample email HTML for the test workflow is
// carried alongside but is not part of the saved model.
type State struct {
	BankID          string
	Version         string
	Strategy        models.Strategy
	EmailKind       models.EmailKind
	IsActive        bool
	SenderPatterns  []string
	SubjectPatterns []string
	Fields          []models.ParserField
	Validations     []models.Validation
	AIConfig        models.AIConfig

	// editingID is the backend id when the state was loaded for edit.
	editingID string

	// sampleEmailHTML pre-populates the test workflow; view-only state.
	sampleEmailHTML string
}

// New returns a fresh state with the documented defaults.
func New() *State {
	return &State{
		Strategy:        models.StrategyRuleBased,
		EmailKind:       models.EmailTransactionNotification,
		IsActive:        true,
		SenderPatterns:  []string{},
		SubjectPatterns: []string{},
		Fields:          []models.ParserField{},
		Validations:     []models.Validation{},
		AIConfig:        models.DefaultAIConfig(),
	}
}

// IsEditing reports whether the state was loaded from an existing
// configuration.
func (s *State) IsEditing() bool {
	return s.editingID != ""
}

// EditingID returns the backend id of the configuration being edited, or ""
// in create mode.
func (s *State) EditingID() string {
	return s.editingID
}

// SampleEmailHTML returns the sample email body associated with the session.
func (s *State) SampleEmailHTML() string {
	return s.sampleEmailHTML
}

// SetSampleEmailHTML replaces the session's sample email body.
func (s *State) SetSampleEmailHTML(html string) {
	s.sampleEmailHTML = html
}

// NewField returns a field with a fresh id and an empty extractor chain.
func NewField() models.ParserField {
	return models.ParserField{
		ID:         uuid.NewString(),
		Extractors: []models.Extractor{},
	}
}

// NewExtractor returns an extractor with a fresh id and the REGEX default.
func NewExtractor() models.Extractor {
	return models.Extractor{
		ID:   uuid.NewString(),
		Type: models.ExtractorRegex,
	}
}

// NewValidation returns a validation with a fresh id and the REQUIRED default.
func NewValidation() models.Validation {
	return models.Validation{
		ID:       uuid.NewString(),
		RuleType: models.RuleRequired,
	}
}

// AddField appends a new empty field and returns it.
func (s *State) AddField() models.ParserField {
	field := NewField()
	s.Fields = append(s.Fields, field)
	return field
}

// UpdateField replaces the field at index. Length and all other elements are
// unchanged.
func (s *State) UpdateField(index int, field models.ParserField) {
	if index < 0 || index >= len(s.Fields) {
		return
	}
	updated := make([]models.ParserField, len(s.Fields))
	copy(updated, s.Fields)
	updated[index] = field
	s.Fields = updated
}

// RemoveField removes the field at index; subsequent indices shift down.
func (s *State) RemoveField(index int) {
	if index < 0 || index >= len(s.Fields) {
		return
	}
	s.Fields = append(s.Fields[:index:index], s.Fields[index+1:]...)
}

// AddExtractor appends a new default extractor to the field at fieldIndex.
func (s *State) AddExtractor(fieldIndex int) {
	if fieldIndex < 0 || fieldIndex >= len(s.Fields) {
		return
	}
	field := s.Fields[fieldIndex]
	field.Extractors = append(field.Extractors, NewExtractor())
	s.UpdateField(fieldIndex, field)
}

// UpdateExtractor replaces the extractor at index within the field at
// fieldIndex, preserving the position of every other extractor: order is the
// fallback-evaluation order.
func (s *State) UpdateExtractor(fieldIndex, index int, extractor models.Extractor) {
	if fieldIndex < 0 || fieldIndex >= len(s.Fields) {
		return
	}
	field := s.Fields[fieldIndex]
	if index < 0 || index >= len(field.Extractors) {
		return
	}
	updated := make([]models.Extractor, len(field.Extractors))
	copy(updated, field.Extractors)
	updated[index] = extractor
	field.Extractors = updated
	s.UpdateField(fieldIndex, field)
}

// RemoveExtractor removes the extractor at index within the field at
// fieldIndex; subsequent indices shift down.
func (s *State) RemoveExtractor(fieldIndex, index int) {
	if fieldIndex < 0 || fieldIndex >= len(s.Fields) {
		return
	}
	field := s.Fields[fieldIndex]
	if index < 0 || index >= len(field.Extractors) {
		return
	}
	field.Extractors = append(field.Extractors[:index:index], field.Extractors[index+1:]...)
	s.UpdateField(fieldIndex, field)
}

// AddValidation appends a new REQUIRED validation and returns it.
func (s *State) AddValidation() models.Validation {
	v := NewValidation()
	s.Validations = append(s.Validations, v)
	return v
}

// UpdateValidation replaces the validation at index.
func (s *State) UpdateValidation(index int, v models.Validation) {
	if index < 0 || index >= len(s.Validations) {
		return
	}
	updated := make([]models.Validation, len(s.Validations))
	copy(updated, s.Validations)
	updated[index] = v
	s.Validations = updated
}

// RemoveValidation removes the validation at index; subsequent indices shift
// down.
func (s *State) RemoveValidation(index int) {
	if index < 0 || index >= len(s.Validations) {
		return
	}
	s.Validations = append(s.Validations[:index:index], s.Validations[index+1:]...)
}

// AddSenderPattern appends a sender pattern. Empty strings are rejected;
// duplicates are not suppressed.
func (s *State) AddSenderPattern(pattern string) {
	if pattern == "" {
		return
	}
	s.SenderPatterns = append(s.SenderPatterns, pattern)
}

// RemoveSenderPattern removes the pattern at index.
func (s *State) RemoveSenderPattern(index int) {
	if index < 0 || index >= len(s.SenderPatterns) {
		return
	}
	s.SenderPatterns = append(s.SenderPatterns[:index:index], s.SenderPatterns[index+1:]...)
}

// AddSubjectPattern appends a subject pattern. Empty strings are rejected;
// duplicates are not suppressed.
func (s *State) AddSubjectPattern(pattern string) {
	if pattern == "" {
		return
	}
	s.SubjectPatterns = append(s.SubjectPatterns, pattern)
}

// RemoveSubjectPattern removes the pattern at index.
func (s *State) RemoveSubjectPattern(index int) {
	if index < 0 || index >= len(s.SubjectPatterns) {
		return
	}
	s.SubjectPatterns = append(s.SubjectPatterns[:index:index], s.SubjectPatterns[index+1:]...)
}
