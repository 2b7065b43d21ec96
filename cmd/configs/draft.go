package configs

import (
	"os"

	"github.com/spf13/cobra"

	"parsectl/cmd/root"
	"parsectl/internal/editor"
	"parsectl/internal/logging"
)

var (
	newBankID  string
	sampleFile string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new draft with the editor defaults",
	Long: `Write a fresh draft session file with the documented defaults: RULE_BASED
strategy, TRANSACTION_NOTIFICATION email kind, active, empty pattern and field
lists, and the default AI settings.`,
	Run: newFunc,
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Fetch a configuration into a draft session",
	Long: `Fetch an existing parser configuration and write it to the draft session
file. The stored sample email rides along so 'configs test' can use it
immediately. Legacy field spellings are upgraded on load.`,
	Args: cobra.ExactArgs(1),
	Run:  editFunc,
}

func init() {
	newCmd.Flags().StringVar(&newBankID, "bank", "", "Bank id the configuration belongs to")
	newCmd.Flags().StringVar(&sampleFile, "sample", "", "File with a sample email HTML body")
	editCmd.Flags().StringVar(&sampleFile, "sample", "", "File with a sample email HTML body (overrides the stored one)")
}

func newFunc(cmd *cobra.Command, args []string) {
	state := editor.New()
	state.BankID = newBankID

	if err := applySampleFile(state); err != nil {
		root.Log.Fatalf("Error reading sample email: %v", err)
	}

	path := root.DraftPath()
	if err := state.SaveDraft(path); err != nil {
		root.Log.Fatalf("Error writing draft: %v", err)
	}
	root.Log.Info("Draft created",
		logging.Field{Key: logging.FieldDraftFile, Value: path},
		logging.Field{Key: logging.FieldBankID, Value: newBankID})
}

func editFunc(cmd *cobra.Command, args []string) {
	cfg, err := root.Ctr.GetAPIClient().GetConfig(cmd.Context(), args[0])
	if err != nil {
		root.Log.Fatalf("Error fetching parser configuration: %v", err)
	}

	state := editor.LoadFromConfig(cfg)
	if err := applySampleFile(state); err != nil {
		root.Log.Fatalf("Error reading sample email: %v", err)
	}

	path := root.DraftPath()
	if err := state.SaveDraft(path); err != nil {
		root.Log.Fatalf("Error writing draft: %v", err)
	}
	root.Log.Info("Draft created from configuration",
		logging.Field{Key: logging.FieldConfigID, Value: cfg.ID},
		logging.Field{Key: logging.FieldDraftFile, Value: path})
}

// applySampleFile loads --sample into the session when the flag was given.
func applySampleFile(state *editor.State) error {
	if sampleFile == "" {
		return nil
	}
	data, err := os.ReadFile(sampleFile)
	if err != nil {
		return err
	}
	state.SetSampleEmailHTML(string(data))
	return nil
}
