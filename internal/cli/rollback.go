package cli

import (
	"os"
	"strconv"

	"github.com/pankajredekar/commerce/internal/utils"
	"github.com/spf13/cobra"
)

var rollbackCmd = &cobra.Command{
	Use:   "rollback [n]",
	Short: "Rollback migrations",
	Long:  "Rolls back the last N migrations (default: 1)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				utils.PrintError("Invalid number: %s", args[0])
				os.Exit(1)
			}
		}

		e := mustSetup(cmd)
		defer e.close()

		appliedCount, err := e.ver.GetAppliedCount(cmd.Context())
		if err != nil {
			utils.PrintError("Failed to get applied count: %v", err)
			os.Exit(1)
		}

		if appliedCount == 0 {
			utils.PrintWarning("No migrations to rollback")
			return
		}

		if int64(n) > appliedCount {
			n = int(appliedCount)
		}

		utils.PrintInfo("Rolling back %d migration(s)...", n)

		rolledBack, err := e.run.Rollback(cmd.Context(), n)
		if err != nil {
			utils.PrintError("Failed to rollback after %d rolled back: %v", len(rolledBack), err)
			os.Exit(1)
		}

		for _, m := range rolledBack {
			utils.PrintInfo("  %s - %s", m.Version(), m.Name())
		}
		utils.PrintSuccess("Rolled back %d migration(s)", len(rolledBack))
	},
}

func init() {
	rootCmd.AddCommand(rollbackCmd)
}
