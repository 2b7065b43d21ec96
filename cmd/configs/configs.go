// Package configs contains the parser-configuration commands: listing,
// drafting, previewing, pushing, testing and deleting configurations.
package configs

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"parsectl/cmd/root"
	"parsectl/internal/emailview"
	"parsectl/internal/logging"
)

// Cmd represents the configs command group
var Cmd = &cobra.Command{
	Use:   "configs",
	Short: "Manage parser configurations",
	Long: `Manage the parser configurations that extract transaction data from bank
notification emails. A configuration is edited as a local draft session file,
previewed as backend-shaped JSON, tested against a sample email and then
pushed back to the backend.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all parser configurations",
	Run:   listFunc,
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one parser configuration as JSON",
	Args:  cobra.ExactArgs(1),
	Run:   getFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a parser configuration",
	Args:  cobra.ExactArgs(1),
	Run:   deleteFunc,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(newCmd)
	Cmd.AddCommand(editCmd)
	Cmd.AddCommand(previewCmd)
	Cmd.AddCommand(pushCmd)
	Cmd.AddCommand(testCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	configs, err := root.Ctr.GetAPIClient().ListConfigs(cmd.Context())
	if err != nil {
		root.Log.Fatalf("Error listing parser configurations: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBANK\tVERSION\tSTRATEGY\tKIND\tACTIVE\tSAMPLE")
	for _, cfg := range configs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\t%s\n",
			cfg.ID, cfg.BankID, cfg.Version, cfg.Strategy, cfg.EmailKind, cfg.IsActive,
			emailview.Snippet(cfg.SampleEmailHTML, 40))
	}
	if err := w.Flush(); err != nil {
		root.Log.Fatalf("Error writing table: %v", err)
	}
	root.Log.Info("Listed parser configurations",
		logging.Field{Key: logging.FieldCount, Value: len(configs)})
}

func getFunc(cmd *cobra.Command, args []string) {
	cfg, err := root.Ctr.GetAPIClient().GetConfig(cmd.Context(), args[0])
	if err != nil {
		root.Log.Fatalf("Error fetching parser configuration: %v", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		root.Log.Fatalf("Error rendering parser configuration: %v", err)
	}
	fmt.Println(string(data))
}

func deleteFunc(cmd *cobra.Command, args []string) {
	if err := root.Ctr.GetAPIClient().DeleteConfig(cmd.Context(), args[0]); err != nil {
		root.Log.Fatalf("Error deleting parser configuration: %v", err)
	}
	root.Log.Info("Parser configuration deleted",
		logging.Field{Key: logging.FieldConfigID, Value: args[0]})
}
