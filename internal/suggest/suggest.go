// Package suggest generates extractor pattern suggestions for a parser
// configuration field using the Google Gemini API. Suggestions are advisory;
// the operator reviews and edits them before they enter a draft.
package suggest

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"parsectl/internal/logging"
	"parsectl/internal/models"
)

// Request describes the field a suggestion is wanted for and the sample
// email it should be derived from.
type Request struct {
	FieldName       models.FieldName
	ExtractorType   models.ExtractorType
	SampleEmailHTML string
	AIConfig        models.AIConfig
}

// Suggestion is one proposed pattern with the model's reasoning.
type Suggestion struct {
	Pattern   string
	Rationale string
}

// Suggester produces extractor pattern suggestions. The interface keeps the
// CLI command testable without a live API key.
type Suggester interface {
	SuggestPatterns(ctx context.Context, req Request) ([]Suggestion, error)
}

// GeminiSuggester implements Suggester against the Gemini API.
type GeminiSuggester struct {
	client *genai.Client
	log    logging.Logger
}

// NewGeminiSuggester creates a suggester. The API key must not be empty.
func NewGeminiSuggester(ctx context.Context, apiKey string, log logging.Logger) (*GeminiSuggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	if log == nil {
		log = logging.NewLogrusAdapter("info", "text")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiSuggester{client: client, log: log.WithField("component", "suggest")}, nil
}

// Close releases the underlying API client.
func (s *GeminiSuggester) Close() error {
	return s.client.Close()
}

// SuggestPatterns asks the model for up to three candidate patterns for the
// requested field. The model and sampling settings come from the draft's AI
// configuration so suggestions reflect what the parser will actually run with.
func (s *GeminiSuggester) SuggestPatterns(ctx context.Context, req Request) ([]Suggestion, error) {
	if !req.ExtractorType.IsValid() {
		return nil, fmt.Errorf("unknown extractor type %q", req.ExtractorType)
	}
	if strings.TrimSpace(req.SampleEmailHTML) == "" {
		return nil, fmt.Errorf("sample email body is empty")
	}

	cfg := req.AIConfig
	if cfg.Model == "" {
		cfg = models.DefaultAIConfig()
	}

	model := s.client.GenerativeModel(cfg.Model)
	temperature := float32(cfg.Temperature)
	maxTokens := int32(cfg.MaxTokens)
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:     &temperature,
		MaxOutputTokens: &maxTokens,
	}

	prompt := buildPrompt(req, cfg)

	s.log.WithFields(
		logging.Field{Key: logging.FieldModel, Value: cfg.Model},
		logging.Field{Key: logging.FieldField, Value: string(req.FieldName)},
		logging.Field{Key: "extractorType", Value: string(req.ExtractorType)},
	).Debug("Requesting pattern suggestions")

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from Gemini API")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		fmt.Fprintf(&text, "%v", part)
	}

	suggestions := ParseSuggestions(text.String())
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("response contained no usable patterns")
	}
	return suggestions, nil
}

// buildPrompt folds the configured system prompt into the user prompt. The
// genai release in use has no separate system instruction channel.
func buildPrompt(req Request, cfg models.AIConfig) string {
	var b strings.Builder
	if cfg.SystemPrompt != "" {
		b.WriteString(cfg.SystemPrompt)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, `Propose up to 3 %s patterns that extract the %q value from the email below.

Respond with one suggestion per block, in exactly this format:
PATTERN: <the pattern>
WHY: <one short sentence>

Email body:
%s`, req.ExtractorType, req.FieldName, req.SampleEmailHTML)
	return b.String()
}

var fencedPattern = regexp.MustCompile("^`+|`+$")

// ParseSuggestions harvests PATTERN/WHY blocks from the model's free-form
// response. Stray backticks and code fences around patterns are stripped.
// Lines that fit neither prefix are ignored.
func ParseSuggestions(response string) []Suggestion {
	var suggestions []Suggestion
	var current *Suggestion

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "PATTERN:"):
			if current != nil && current.Pattern != "" {
				suggestions = append(suggestions, *current)
			}
			pattern := strings.TrimSpace(strings.TrimPrefix(line, "PATTERN:"))
			pattern = fencedPattern.ReplaceAllString(pattern, "")
			current = &Suggestion{Pattern: pattern}
		case strings.HasPrefix(line, "WHY:") && current != nil:
			current.Rationale = strings.TrimSpace(strings.TrimPrefix(line, "WHY:"))
		}
	}
	if current != nil && current.Pattern != "" {
		suggestions = append(suggestions, *current)
	}
	return suggestions
}
