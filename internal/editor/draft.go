package editor

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"parsectl/internal/models"
)

// Draft is the YAML form of an editing session, written by `configs new` and
// `configs edit` and consumed by `configs preview`, `configs push` and
// `configs test`. Ids are stored so they stay stable across commands within
// the same session.
type Draft struct {
	ID              string               `yaml:"id,omitempty"`
	BankID          string               `yaml:"bankId"`
	Version         string               `yaml:"version"`
	Strategy        models.Strategy      `yaml:"strategy"`
	EmailKind       models.EmailKind     `yaml:"emailKind"`
	IsActive        bool                 `yaml:"isActive"`
	SenderPatterns  []string             `yaml:"senderPatterns"`
	SubjectPatterns []string             `yaml:"subjectPatterns"`
	Fields          []models.ParserField `yaml:"fields"`
	Validations     []models.Validation  `yaml:"validations"`
	AIConfig        models.AIConfig      `yaml:"aiConfig"`

	// SampleEmailHTML rides along with the session for the test workflow but
	// is never part of the saved configuration payload.
	SampleEmailHTML string `yaml:"sampleEmailHtml,omitempty"`
}

// ToDraft converts the state to its YAML session form.
func (s *State) ToDraft() Draft {
	return Draft{
		ID:              s.editingID,
		BankID:          s.BankID,
		Version:         s.Version,
		Strategy:        s.Strategy,
		EmailKind:       s.EmailKind,
		IsActive:        s.IsActive,
		SenderPatterns:  copyPatterns(s.SenderPatterns),
		SubjectPatterns: copyPatterns(s.SubjectPatterns),
		Fields:          s.Fields,
		Validations:     s.Validations,
		AIConfig:        s.AIConfig,
		SampleEmailHTML: s.sampleEmailHTML,
	}
}

// FromDraft rebuilds a state from a parsed draft. Entries missing an id get
// a fresh one, so hand-written drafts behave like editor-created ones.
func FromDraft(d Draft) *State {
	s := New()
	s.editingID = d.ID
	s.BankID = d.BankID
	s.Version = d.Version
	if d.Strategy != "" {
		s.Strategy = d.Strategy
	}
	if d.EmailKind != "" {
		s.EmailKind = d.EmailKind
	}
	s.IsActive = d.IsActive
	if d.SenderPatterns != nil {
		s.SenderPatterns = copyPatterns(d.SenderPatterns)
	}
	if d.SubjectPatterns != nil {
		s.SubjectPatterns = copyPatterns(d.SubjectPatterns)
	}
	for _, f := range d.Fields {
		if f.ID == "" {
			f.ID = NewField().ID
		}
		for i, e := range f.Extractors {
			if e.ID == "" {
				e.ID = NewExtractor().ID
				f.Extractors[i] = e
			}
		}
		s.Fields = append(s.Fields, f)
	}
	for _, v := range d.Validations {
		if v.ID == "" {
			v.ID = NewValidation().ID
		}
		if v.RuleType == "" {
			v.RuleType = models.RuleRequired
		}
		s.Validations = append(s.Validations, v)
	}
	if d.AIConfig != (models.AIConfig{}) {
		s.AIConfig = d.AIConfig
	}
	s.sampleEmailHTML = d.SampleEmailHTML
	return s
}

// SaveDraft writes the session to path as YAML.
func (s *State) SaveDraft(path string) error {
	data, err := yaml.Marshal(s.ToDraft())
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create draft directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, models.PermissionDraftFile); err != nil {
		return fmt.Errorf("failed to write draft %s: %w", path, err)
	}
	return nil
}

// LoadDraft reads a session draft from path.
func LoadDraft(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft %s: %w", path, err)
	}
	var d Draft
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse draft %s: %w", path, err)
	}
	return FromDraft(d), nil
}

// ResolveDraftPath resolves a draft name against the configured drafts
// directory. Absolute paths and paths to existing files are kept as is.
func ResolveDraftPath(draftsDir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	if draftsDir == "" {
		return name
	}
	return filepath.Join(draftsDir, name)
}
