package cli

import (
	"os"

	"github.com/pankajredekar/commerce/internal/utils"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending migrations",
	Long:  "Applies all migrations that haven't been applied yet",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup(cmd)
		defer e.close()

		pending, err := e.run.GetPendingMigrations(cmd.Context())
		if err != nil {
			utils.PrintError("Failed to get pending migrations: %v", err)
			os.Exit(1)
		}

		if len(pending) == 0 {
			utils.PrintSuccess("No pending migrations")
			return
		}

		utils.PrintInfo("Applying %d migration(s)...", len(pending))

		applied, err := e.run.Migrate(cmd.Context())
		if err != nil {
			utils.PrintError("Failed to apply migrations after %d applied: %v", len(applied), err)
			os.Exit(1)
		}

		utils.PrintSuccess("Applied %d migration(s)", len(applied))
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
