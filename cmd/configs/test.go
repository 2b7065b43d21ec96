package configs

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"parsectl/cmd/root"
	"parsectl/internal/amountutils"
	"parsectl/internal/editor"
	"parsectl/internal/emailview"
	"parsectl/internal/models"
	"parsectl/internal/testrunner"
)

var (
	copyExtracted bool
	showEmail     bool
	selector      string
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the draft against the backend test endpoint",
	Long: `Send the draft's rules together with the session's sample email body to the
backend test endpoint and render the normalized result. The sample email comes
from the draft session ('configs edit' stores the backend one) or from
--sample. A blank sample body is rejected before any request is made.`,
	Run: testFunc,
}

func init() {
	testCmd.Flags().StringVar(&sampleFile, "sample", "", "File with a sample email HTML body (overrides the session one)")
	testCmd.Flags().BoolVar(&copyExtracted, "copy", false, "Write the extracted data JSON to --output (or stdout)")
	testCmd.Flags().BoolVar(&showEmail, "show-email", false, "Print a plain-text rendering of the sample email first")
	testCmd.Flags().StringVar(&selector, "selector", "", "Preview what a CSS_SELECTOR extractor with this pattern would match")
}

func testFunc(cmd *cobra.Command, args []string) {
	state, err := editor.LoadDraft(root.DraftPath())
	if err != nil {
		root.Log.Fatalf("Error loading draft: %v", err)
	}
	if err := applySampleFile(state); err != nil {
		root.Log.Fatalf("Error reading sample email: %v", err)
	}

	if showEmail {
		printEmailView(state.SampleEmailHTML())
	}
	if selector != "" {
		preview, err := selectorPreview(state.SampleEmailHTML(), selector)
		if err != nil {
			root.Log.Fatalf("Error previewing selector: %v", err)
		}
		fmt.Print(preview)
	}

	runner := testrunner.NewRunner(root.Ctr.GetAPIClient(), nil, root.Log)
	result := runner.Run(cmd.Context(), state, state.SampleEmailHTML())
	if result == nil {
		// Blank sample body; the runner already notified the user.
		return
	}

	printResult(result)

	if copyExtracted {
		if err := copyExtractedData(runner); err != nil {
			root.Log.Fatalf("Error copying extracted data: %v", err)
		}
	}
}

func printEmailView(sampleEmailHTML string) {
	summary, err := emailview.Summarize(sampleEmailHTML)
	if err != nil {
		root.Log.WithError(err).Warn("Could not summarize sample email")
		return
	}
	if summary.Title != "" {
		fmt.Printf("Sample email: %s\n", summary.Title)
	}
	fmt.Printf("Text %d bytes, %d link(s), %d table(s), %d image(s)\n",
		summary.TextBytes, summary.Links, summary.Tables, summary.Images)

	text, err := emailview.PlainText(sampleEmailHTML)
	if err == nil && text != "" {
		fmt.Println("---")
		fmt.Println(text)
		fmt.Println("---")
	}
}

// selectorPreview renders the nodes a CSS_SELECTOR extractor with the given
// pattern would match in the sample email, before any round trip.
func selectorPreview(sampleEmailHTML, cssSelector string) (string, error) {
	matches, err := emailview.MatchCSS(sampleEmailHTML, cssSelector)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Selector %q matched %d node(s)\n", cssSelector, len(matches))
	for i, match := range matches {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, match)
	}
	return b.String(), nil
}

func printResult(result *models.TestResult) {
	if result.Success {
		fmt.Println("Result: SUCCESS")
	} else {
		fmt.Println("Result: FAILED")
	}
	fmt.Printf("Sender pattern matched: %t\n", result.PatternMatches.SenderMatched)
	fmt.Printf("Subject pattern matched: %t\n", result.PatternMatches.SubjectMatched)

	if len(result.ExtractedData) > 0 {
		currency, _ := result.ExtractedData["currency"].(string)
		fmt.Println("Extracted data:")
		keys := make([]string, 0, len(result.ExtractedData))
		for key := range result.ExtractedData {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			value := result.ExtractedData[key]
			if key == "amount" {
				fmt.Printf("  %s: %s\n", key, amountutils.RenderValue(value, currency))
				continue
			}
			fmt.Printf("  %s: %v\n", key, value)
		}
	}
	if len(result.ExtractedFields) > 0 {
		fmt.Printf("Extracted fields: %v\n", result.ExtractedFields)
	}
	if len(result.MissingFields) > 0 {
		fmt.Printf("Missing fields: %v\n", result.MissingFields)
	}
	for _, msg := range result.Errors {
		fmt.Printf("Error: %s\n", msg)
	}
	for _, msg := range result.Warnings {
		fmt.Printf("Warning: %s\n", msg)
	}
}

func copyExtractedData(runner *testrunner.Runner) error {
	out := os.Stdout
	if root.SharedFlags.Output != "" {
		file, err := os.Create(root.SharedFlags.Output)
		if err != nil {
			return err
		}
		defer func() {
			if err := file.Close(); err != nil {
				root.Log.WithError(err).Warn("Failed to close output file")
			}
		}()
		out = file
	}
	written, err := runner.CopyExtractedData(out)
	if err != nil {
		return err
	}
	if !written {
		root.Log.Warn("No extracted data to copy")
	}
	return nil
}
