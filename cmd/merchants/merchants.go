// Package merchants contains the merchant-duplicate review commands
package merchants

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"parsectl/cmd/root"
	"parsectl/internal/export"
	"parsectl/internal/logging"
	"parsectl/internal/models"
)

var listStatus string

// Cmd represents the merchants command group
var Cmd = &cobra.Command{
	Use:   "merchants",
	Short: "Review merchant duplicate pairs",
	Long: `Review the merchant names the backend suspects are duplicates of each
other, and merge or dismiss each pair.`,
}

var listCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "List duplicate pairs",
	Run:   listFunc,
}

var mergeCmd = &cobra.Command{
	Use:   "merge <id>",
	Short: "Merge a duplicate pair into its canonical merchant",
	Args:  cobra.ExactArgs(1),
	Run:   mergeFunc,
}

var dismissCmd = &cobra.Command{
	Use:   "dismiss <id>",
	Short: "Dismiss a duplicate pair as a false positive",
	Args:  cobra.ExactArgs(1),
	Run:   dismissFunc,
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", models.DuplicateStatusPending, "Filter by status (PENDING, MERGED, DISMISSED, empty for all)")
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(mergeCmd)
	Cmd.AddCommand(dismissCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	duplicates, err := root.Ctr.GetAPIClient().ListMerchantDuplicates(cmd.Context(), listStatus)
	if err != nil {
		root.Log.Fatalf("Error listing merchant duplicates: %v", err)
	}

	if root.SharedFlags.Output != "" {
		if err := export.WriteMerchantDuplicates(duplicates, root.SharedFlags.Output, exportOptions()); err != nil {
			root.Log.Fatalf("Error exporting merchant duplicates: %v", err)
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCANONICAL\tDUPLICATE\tOCCURRENCES\tSTATUS")
	for _, dup := range duplicates {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			dup.ID, dup.CanonicalName, dup.DuplicateName, dup.Occurrences, dup.Status)
	}
	if err := w.Flush(); err != nil {
		root.Log.Fatalf("Error writing table: %v", err)
	}
	root.Log.Info("Listed merchant duplicates", logging.Field{Key: logging.FieldCount, Value: len(duplicates)})
}

func mergeFunc(cmd *cobra.Command, args []string) {
	saved, err := root.Ctr.GetAPIClient().MergeDuplicate(cmd.Context(), args[0])
	if err != nil {
		root.Log.Fatalf("Error merging duplicate: %v", err)
	}
	root.Log.Info("Duplicate merged",
		logging.Field{Key: "duplicate_id", Value: saved.ID},
		logging.Field{Key: "canonical", Value: saved.CanonicalName})
}

func dismissFunc(cmd *cobra.Command, args []string) {
	saved, err := root.Ctr.GetAPIClient().DismissDuplicate(cmd.Context(), args[0])
	if err != nil {
		root.Log.Fatalf("Error dismissing duplicate: %v", err)
	}
	root.Log.Info("Duplicate dismissed", logging.Field{Key: "duplicate_id", Value: saved.ID})
}

func exportOptions() export.Options {
	opts := export.DefaultOptions()
	cfg := root.Ctr.GetConfig()
	if cfg.Export.Delimiter != "" {
		opts.Delimiter = []rune(cfg.Export.Delimiter)[0]
	}
	opts.IncludeHeaders = cfg.Export.IncludeHeaders
	return opts
}
