package configs

import (
	"fmt"

	"github.com/spf13/cobra"

	"parsectl/cmd/root"
	"parsectl/internal/editor"
	"parsectl/internal/lint"
	"parsectl/internal/logging"
	"parsectl/internal/models"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the backend-shaped JSON for the current draft",
	Long: `Render the draft session as the exact JSON document the backend will
receive on push, with the bank id resolved to a display name where possible.
The draft itself is not modified and nothing is sent.`,
	Run: previewFunc,
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Save the current draft to the backend",
	Long: `Create or update the parser configuration from the draft session file. A
draft that was started with 'configs edit' updates the existing configuration;
one started with 'configs new' creates a new one. Pattern lint findings are
reported as warnings but never block the push. On failure the draft file is
left untouched so the session can be corrected and retried.`,
	Run: pushFunc,
}

func previewFunc(cmd *cobra.Command, args []string) {
	state, err := editor.LoadDraft(root.DraftPath())
	if err != nil {
		root.Log.Fatalf("Error loading draft: %v", err)
	}

	// Bank name resolution is best effort; preview still works offline.
	var banks []models.Bank
	if fetched, err := root.Ctr.GetAPIClient().ListBanks(cmd.Context()); err == nil {
		banks = fetched
	} else {
		root.Log.WithError(err).Debug("Could not fetch banks for preview")
	}

	data, err := state.Preview(banks)
	if err != nil {
		root.Log.Fatalf("Error rendering preview: %v", err)
	}
	fmt.Println(string(data))
}

func pushFunc(cmd *cobra.Command, args []string) {
	path := root.DraftPath()
	state, err := editor.LoadDraft(path)
	if err != nil {
		root.Log.Fatalf("Error loading draft: %v", err)
	}

	reportLint(state)

	payload := state.Payload()
	client := root.Ctr.GetAPIClient()

	var saved models.ParserConfig
	if state.IsEditing() {
		saved, err = client.UpdateConfig(cmd.Context(), state.EditingID(), payload)
	} else {
		saved, err = client.CreateConfig(cmd.Context(), payload)
	}
	if err != nil {
		root.Log.Fatalf("Error saving parser configuration: %v", err)
	}

	root.Log.Info("Parser configuration saved",
		logging.Field{Key: logging.FieldConfigID, Value: saved.ID},
		logging.Field{Key: logging.FieldBankID, Value: saved.BankID})
}

// reportLint surfaces pattern findings as warnings.
func reportLint(state *editor.State) {
	issues := lint.CheckState(state)
	for _, issue := range issues {
		root.Log.Warn("Lint: " + issue.String())
	}
	if len(issues) > 0 {
		root.Log.Warn("Lint findings are advisory; the backend performs final validation",
			logging.Field{Key: logging.FieldCount, Value: len(issues)})
	}
}
