// Package suggest contains the AI pattern suggestion command
package suggest

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"parsectl/cmd/root"
	"parsectl/internal/editor"
	"parsectl/internal/lint"
	"parsectl/internal/logging"
	"parsectl/internal/models"
	aisuggest "parsectl/internal/suggest"
)

var (
	sampleFile    string
	extractorType string
)

// Cmd represents the suggest command
var Cmd = &cobra.Command{
	Use:   "suggest <field-name>",
	Short: "Ask Gemini for extractor pattern suggestions",
	Long: `Send the draft session's sample email to Gemini and print candidate
extraction patterns for the given field. The draft's AI settings (model,
system prompt, temperature, max tokens) drive the request. Suggestions are
advisory: review them, then add the ones you trust to the draft as ordinary
extractors. Requires ai.enabled and GEMINI_API_KEY.`,
	Args: cobra.ExactArgs(1),
	Run:  suggestFunc,
}

func init() {
	Cmd.Flags().StringVar(&sampleFile, "sample", "", "File with a sample email HTML body (overrides the session one)")
	Cmd.Flags().StringVar(&extractorType, "type", string(models.ExtractorRegex), "Extractor type to suggest (REGEX, XPATH, CSS_SELECTOR, JSON_PATH)")
}

func suggestFunc(cmd *cobra.Command, args []string) {
	suggester := root.Ctr.GetSuggester()
	if suggester == nil {
		root.Log.Fatal("AI suggestions are disabled; set ai.enabled and GEMINI_API_KEY")
	}

	fieldName := models.FieldName(args[0])
	if !fieldName.IsValid() {
		root.Log.Fatalf("Unknown field name %q", args[0])
	}
	exType := models.ExtractorType(extractorType)
	if !exType.IsValid() {
		root.Log.Fatalf("Unknown extractor type %q", extractorType)
	}

	state, err := loadSession()
	if err != nil {
		root.Log.Fatalf("Error loading draft: %v", err)
	}

	suggestions, err := suggester.SuggestPatterns(cmd.Context(), aisuggest.Request{
		FieldName:       fieldName,
		ExtractorType:   exType,
		SampleEmailHTML: state.SampleEmailHTML(),
		AIConfig:        state.AIConfig,
	})
	if err != nil {
		root.Log.Fatalf("Error fetching suggestions: %v", err)
	}

	for i, suggestion := range suggestions {
		fmt.Printf("%d. %s\n", i+1, suggestion.Pattern)
		if suggestion.Rationale != "" {
			fmt.Printf("   %s\n", suggestion.Rationale)
		}
		if err := lint.CheckExtractor(models.Extractor{Type: exType, Pattern: suggestion.Pattern}); err != nil {
			fmt.Printf("   lint: %v\n", err)
		}
	}

	root.Log.Info("Suggestions fetched",
		logging.Field{Key: logging.FieldField, Value: string(fieldName)},
		logging.Field{Key: logging.FieldCount, Value: len(suggestions)})
}

func loadSession() (*editor.State, error) {
	state, err := editor.LoadDraft(root.DraftPath())
	if err != nil {
		return nil, err
	}
	if sampleFile != "" {
		data, err := os.ReadFile(sampleFile)
		if err != nil {
			return nil, err
		}
		state.SetSampleEmailHTML(string(data))
	}
	return state, nil
}
