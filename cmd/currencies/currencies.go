// Package currencies contains the currency and synonym management commands
package currencies

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"parsectl/cmd/root"
	"parsectl/internal/logging"
	"parsectl/internal/models"
)

var (
	currencyName   string
	currencySymbol string
	decimalPlaces  int
)

// Cmd represents the currencies command group
var Cmd = &cobra.Command{
	Use:   "currencies",
	Short: "Manage currencies and their synonyms",
	Long: `Maintain the supported currencies and the synonym spellings under which
they appear in notification emails ("Fr.", "SFr.", "CHF", ...).`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all currencies",
	Run:   listFunc,
}

var createCmd = &cobra.Command{
	Use:   "create <code>",
	Short: "Add a currency",
	Args:  cobra.ExactArgs(1),
	Run:   createFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <code>",
	Short: "Remove a currency",
	Args:  cobra.ExactArgs(1),
	Run:   deleteFunc,
}

var synonymsCmd = &cobra.Command{
	Use:   "synonyms",
	Short: "Manage currency synonyms",
}

var synonymsListCmd = &cobra.Command{
	Use:   "list <currency-code>",
	Short: "List the synonyms of a currency",
	Args:  cobra.ExactArgs(1),
	Run:   synonymsListFunc,
}

var synonymsAddCmd = &cobra.Command{
	Use:   "add <currency-code> <synonym>",
	Short: "Attach a synonym spelling to a currency",
	Args:  cobra.ExactArgs(2),
	Run:   synonymsAddFunc,
}

var synonymsRemoveCmd = &cobra.Command{
	Use:   "remove <synonym-id>",
	Short: "Remove a synonym by id",
	Args:  cobra.ExactArgs(1),
	Run:   synonymsRemoveFunc,
}

func init() {
	createCmd.Flags().StringVar(&currencyName, "name", "", "Display name")
	createCmd.Flags().StringVar(&currencySymbol, "symbol", "", "Display symbol")
	createCmd.Flags().IntVar(&decimalPlaces, "decimals", 2, "Decimal places")

	synonymsCmd.AddCommand(synonymsListCmd)
	synonymsCmd.AddCommand(synonymsAddCmd)
	synonymsCmd.AddCommand(synonymsRemoveCmd)

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(synonymsCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	currencies, err := root.Ctr.GetAPIClient().ListCurrencies(cmd.Context())
	if err != nil {
		root.Log.Fatalf("Error listing currencies: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tSYMBOL\tDECIMALS")
	for _, currency := range currencies {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			currency.Code, currency.Name, currency.Symbol, currency.DecimalPlaces)
	}
	if err := w.Flush(); err != nil {
		root.Log.Fatalf("Error writing table: %v", err)
	}
	root.Log.Info("Listed currencies", logging.Field{Key: logging.FieldCount, Value: len(currencies)})
}

func createFunc(cmd *cobra.Command, args []string) {
	saved, err := root.Ctr.GetAPIClient().CreateCurrency(cmd.Context(), models.Currency{
		Code:          args[0],
		Name:          currencyName,
		Symbol:        currencySymbol,
		DecimalPlaces: decimalPlaces,
	})
	if err != nil {
		root.Log.Fatalf("Error creating currency: %v", err)
	}
	root.Log.Info("Currency created", logging.Field{Key: "code", Value: saved.Code})
}

func deleteFunc(cmd *cobra.Command, args []string) {
	if err := root.Ctr.GetAPIClient().DeleteCurrency(cmd.Context(), args[0]); err != nil {
		root.Log.Fatalf("Error deleting currency: %v", err)
	}
	root.Log.Info("Currency deleted", logging.Field{Key: "code", Value: args[0]})
}

func synonymsListFunc(cmd *cobra.Command, args []string) {
	synonyms, err := root.Ctr.GetAPIClient().ListSynonyms(cmd.Context(), args[0])
	if err != nil {
		root.Log.Fatalf("Error listing synonyms: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCURRENCY\tSYNONYM")
	for _, synonym := range synonyms {
		fmt.Fprintf(w, "%s\t%s\t%s\n", synonym.ID, synonym.CurrencyCode, synonym.Synonym)
	}
	if err := w.Flush(); err != nil {
		root.Log.Fatalf("Error writing table: %v", err)
	}
}

func synonymsAddFunc(cmd *cobra.Command, args []string) {
	saved, err := root.Ctr.GetAPIClient().AddSynonym(cmd.Context(), args[0], args[1])
	if err != nil {
		root.Log.Fatalf("Error adding synonym: %v", err)
	}
	root.Log.Info("Synonym added",
		logging.Field{Key: "code", Value: saved.CurrencyCode},
		logging.Field{Key: "synonym", Value: saved.Synonym})
}

func synonymsRemoveFunc(cmd *cobra.Command, args []string) {
	if err := root.Ctr.GetAPIClient().RemoveSynonym(cmd.Context(), args[0]); err != nil {
		root.Log.Fatalf("Error removing synonym: %v", err)
	}
	root.Log.Info("Synonym removed", logging.Field{Key: "synonym_id", Value: args[0]})
}
