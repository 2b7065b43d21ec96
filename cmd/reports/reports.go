// Package reports contains the reporting commands
package reports

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"parsectl/cmd/root"
	"parsectl/internal/amountutils"
	"parsectl/internal/dateutils"
	"parsectl/internal/export"
	"parsectl/internal/logging"
)

var (
	fromDate string
	toDate   string
)

// Cmd represents the reports command group
var Cmd = &cobra.Command{
	Use:   "reports",
	Short: "Reporting queries",
}

var categoryChangesCmd = &cobra.Command{
	Use:   "category-changes",
	Short: "Show transactions whose category was changed by a user",
	Long: `Fetch the category-change report for a date range. Dates accept common
formats (2026-01-31, 31.01.2026, Jan 31, 2026) and are normalized to ISO
before the query. With --output the report is written as CSV instead of a
table.`,
	Run: categoryChangesFunc,
}

func init() {
	categoryChangesCmd.Flags().StringVar(&fromDate, "from", "", "Range start (inclusive)")
	categoryChangesCmd.Flags().StringVar(&toDate, "to", "", "Range end (inclusive)")
	Cmd.AddCommand(categoryChangesCmd)
}

func categoryChangesFunc(cmd *cobra.Command, args []string) {
	from, to, err := dateutils.NormalizeRange(fromDate, toDate)
	if err != nil {
		root.Log.Fatalf("Invalid date range: %v", err)
	}

	entries, err := root.Ctr.GetAPIClient().CategoryChanges(cmd.Context(), from, to)
	if err != nil {
		root.Log.Fatalf("Error fetching category changes: %v", err)
	}

	if root.SharedFlags.Output != "" {
		opts := export.DefaultOptions()
		cfg := root.Ctr.GetConfig()
		if cfg.Export.Delimiter != "" {
			opts.Delimiter = []rune(cfg.Export.Delimiter)[0]
		}
		opts.IncludeHeaders = cfg.Export.IncludeHeaders
		if err := export.WriteCategoryChanges(entries, root.SharedFlags.Output, opts); err != nil {
			root.Log.Fatalf("Error exporting category changes: %v", err)
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CHANGED AT\tMERCHANT\tAMOUNT\tOLD\tNEW\tBY")
	total := decimal.Zero
	for _, entry := range entries {
		rendered := entry.Amount
		if amount, err := amountutils.ParseAmount(entry.Amount); err == nil {
			total = total.Add(amount)
			rendered = amountutils.FormatAmount(amount, entry.Currency)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.ChangedAt, entry.Merchant, rendered,
			entry.OldCategory, entry.NewCategory, entry.ChangedBy)
	}
	if err := w.Flush(); err != nil {
		root.Log.Fatalf("Error writing table: %v", err)
	}
	fmt.Printf("%d change(s), total amount %s\n", len(entries), total.StringFixed(2))

	root.Log.Info("Category-change report fetched",
		logging.Field{Key: logging.FieldCount, Value: len(entries)},
		logging.Field{Key: "from", Value: from},
		logging.Field{Key: "to", Value: to})
}
