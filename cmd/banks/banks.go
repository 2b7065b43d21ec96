// Package banks contains the bank management commands
package banks

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
	bankName    string
	bankCode    string
	bankCountry string
	bankActive  bool
)

// Cmd represents the banks command group
var Cmd = &cobra.Command{
	Use:   "banks",
	Short: "Manage banks",
	Long:  `List and maintain the banks whose notification emails are parsed.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all banks",
	Run:   listFunc,
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one bank",
	Args:  cobra.ExactArgs(1),
	Run:   getFunc,
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a bank",
	Run:   createFunc,
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a bank",
	Args:  cobra.ExactArgs(1),
	Run:   updateFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a bank",
	Args:  cobra.ExactArgs(1),
	Run:   deleteFunc,
}

func init() {
	for _, c := range []*cobra.Command{createCmd, updateCmd} {
		c.Flags().StringVar(&bankName, "name", "", "Display name")
		c.Flags().StringVar(&bankCode, "code", "", "Institution code")
		c.Flags().StringVar(&bankCountry, "country", "", "ISO country code")
		c.Flags().BoolVar(&bankActive, "active", true, "Whether the bank is active")
	}
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	banks, err := root.Ctr.GetAPIClient().ListBanks(cmd.Context())
	if err != nil {
		root.Log.Fatalf("Error listing banks: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCODE\tCOUNTRY\tACTIVE")
	for _, bank := range banks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
			bank.ID, bank.Name, bank.Code, bank.Country, bank.IsActive)
	}
	if err := w.Flush(); err != nil {
		root.Log.Fatalf("Error writing table: %v", err)
	}
	root.Log.Info("Listed banks", logging.Field{Key: logging.FieldCount, Value: len(banks)})
}

func getFunc(cmd *cobra.Command, args []string) {
	bank, err := root.Ctr.GetAPIClient().GetBank(cmd.Context(), args[0])
	if err != nil {
		root.Log.Fatalf("Error fetching bank: %v", err)
	}
	fmt.Printf("ID:      %s\n", bank.ID)
	fmt.Printf("Name:    %s\n", bank.Name)
	fmt.Printf("Code:    %s\n", bank.Code)
	fmt.Printf("Country: %s\n", bank.Country)
	fmt.Printf("Active:  %t\n", bank.IsActive)
}

func createFunc(cmd *cobra.Command, args []string) {
	if bankName == "" {
		root.Log.Fatal("--name is required")
	}
	saved, err := root.Ctr.GetAPIClient().CreateBank(cmd.Context(), models.Bank{
		Name:     bankName,
		Code:     bankCode,
		Country:  bankCountry,
		IsActive: bankActive,
	})
	if err != nil {
		root.Log.Fatalf("Error creating bank: %v", err)
	}
	root.Log.Info("Bank created", logging.Field{Key: logging.FieldBankID, Value: saved.ID})
}

func updateFunc(cmd *cobra.Command, args []string) {
	client := root.Ctr.GetAPIClient()

	bank, err := client.GetBank(cmd.Context(), args[0])
	if err != nil {
		root.Log.Fatalf("Error fetching bank: %v", err)
	}
	if cmd.Flags().Changed("name") {
		bank.Name = bankName
	}
	if cmd.Flags().Changed("code") {
		bank.Code = bankCode
	}
	if cmd.Flags().Changed("country") {
		bank.Country = bankCountry
	}
	if cmd.Flags().Changed("active") {
		bank.IsActive = bankActive
	}

	saved, err := client.UpdateBank(cmd.Context(), args[0], bank)
	if err != nil {
		root.Log.Fatalf("Error updating bank: %v", err)
	}
	root.Log.Info("Bank updated", logging.Field{Key: logging.FieldBankID, Value: saved.ID})
}

func deleteFunc(cmd *cobra.Command, args []string) {
	if err := root.Ctr.GetAPIClient().DeleteBank(cmd.Context(), args[0]); err != nil {
		root.Log.Fatalf("Error deleting bank: %v", err)
	}
	root.Log.Info("Bank deleted", logging.Field{Key: logging.FieldBankID, Value: args[0]})
}
