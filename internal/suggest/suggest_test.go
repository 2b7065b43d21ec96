package suggest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parsectl/internal/models"
)

func TestParseSuggestions(t *testing.T) {
	response := `Here are some options.

PATTERN: CHF\s+([\d.]+)
WHY: The amount always follows the currency code.

PATTERN: ` + "`Total:\\s*([\\d.]+)`" + `
WHY: Backup for older templates.

PATTERN: ([\d']+\.\d{2})
`

	suggestions := ParseSuggestions(response)
	require.Len(t, suggestions, 3)

	assert.Equal(t, `CHF\s+([\d.]+)`, suggestions[0].Pattern)
	assert.Equal(t, "The amount always follows the currency code.", suggestions[0].Rationale)

	// Backticks around the pattern are stripped.
	assert.Equal(t, `Total:\s*([\d.]+)`, suggestions[1].Pattern)
	assert.Equal(t, "Backup for older templates.", suggestions[1].Rationale)

	assert.Equal(t, `([\d']+\.\d{2})`, suggestions[2].Pattern)
	assert.Empty(t, suggestions[2].Rationale)
}

func TestParseSuggestions_NoUsableBlocks(t *testing.T) {
	assert.Empty(t, ParseSuggestions("I cannot help with that."))
	assert.Empty(t, ParseSuggestions("PATTERN:\nWHY: empty pattern line"))
}

func TestBuildPrompt_FoldsSystemPrompt(t *testing.T) {
	req := Request{
		FieldName:       models.FieldAmount,
		ExtractorType:   models.ExtractorRegex,
		SampleEmailHTML: "<html>CHF 12.50</html>",
	}
	cfg := models.DefaultAIConfig()

	prompt := buildPrompt(req, cfg)

	assert.True(t, len(prompt) > len(cfg.SystemPrompt))
	assert.Contains(t, prompt, cfg.SystemPrompt)
	assert.Contains(t, prompt, `"amount"`)
	assert.Contains(t, prompt, "REGEX")
	assert.Contains(t, prompt, "<html>CHF 12.50</html>")
	assert.Contains(t, prompt, "PATTERN:")
}

func TestNewGeminiSuggester_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiSuggester(context.Background(), "", nil)
	assert.Error(t, err)
}
