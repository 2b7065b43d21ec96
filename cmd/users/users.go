// Package users contains the user management commands
package users

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"parsectl/cmd/root"
	"parsectl/internal/logging"
)

// Cmd represents the users command group
var Cmd = &cobra.Command{
	Use:   "users",
	Short: "Manage administrative users",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Run:   listFunc,
}

var activateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Activate a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setActiveFunc(cmd, args[0], true)
	},
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Deactivate a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setActiveFunc(cmd, args[0], false)
	},
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(activateCmd)
	Cmd.AddCommand(deactivateCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	users, err := root.Ctr.GetAPIClient().ListUsers(cmd.Context())
	if err != nil {
		root.Log.Fatalf("Error listing users: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE\tACTIVE")
	for _, user := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
			user.ID, user.Email, user.Name, user.Role, user.IsActive)
	}
	if err := w.Flush(); err != nil {
		root.Log.Fatalf("Error writing table: %v", err)
	}
	root.Log.Info("Listed users", logging.Field{Key: logging.FieldCount, Value: len(users)})
}

func setActiveFunc(cmd *cobra.Command, id string, active bool) {
	saved, err := root.Ctr.GetAPIClient().SetUserActive(cmd.Context(), id, active)
	if err != nil {
		root.Log.Fatalf("Error updating user: %v", err)
	}
	root.Log.Info("User updated",
		logging.Field{Key: "user_id", Value: saved.ID},
		logging.Field{Key: "active", Value: saved.IsActive})
}
