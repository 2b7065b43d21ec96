// Package root contains the root command for the application
package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"parsectl/internal/config"
	"parsectl/internal/container"
	"parsectl/internal/editor"
	"parsectl/internal/logging"
)

// CommonFlags represents the flags that are shared by multiple commands
type CommonFlags struct {
	Draft  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Ctr holds the wired application dependencies after PersistentPreRunE
	Ctr *container.Container

	// SharedFlags are the flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "parsectl",
		Short: "Admin CLI for the email parser configurations of the financial tracker.",
		Long: `parsectl edits, previews and tests the parser configurations that turn bank
notification emails into transactions, and manages the surrounding admin data:
banks, currencies, users, merchant duplicates and category-change reports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to parsectl!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			if err := config.InitializeGlobalConfig(); err != nil {
				return err
			}
			cfg := config.GetGlobalConfig()

			ctr, err := container.NewContainer(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}
			Ctr = ctr
			Log = ctr.GetLogger()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if Ctr != nil {
				if err := Ctr.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close dependencies")
				}
			}
		},
	}
)

// Init initializes the root command and all shared flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Draft, "draft", "d", "draft.yaml", "Draft session file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// DraftPath resolves the --draft flag against the configured drafts directory.
func DraftPath() string {
	draftsDir := ""
	if Ctr != nil {
		draftsDir = Ctr.GetConfig().Drafts.Directory
	}
	return editor.ResolveDraftPath(draftsDir, SharedFlags.Draft)
}
