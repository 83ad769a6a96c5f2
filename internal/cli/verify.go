package cli

import (
	"os"

	"github.com/pankajredekar/commerce/internal/utils"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the database against the migrations",
	Long:  "Compares the tables, columns and indexes the migrations describe with the live database",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup(cmd)
		defer e.close()

		drifts, err := e.run.Verify(cmd.Context())
		if err != nil {
			utils.PrintError("Failed to verify schema: %v", err)
			os.Exit(1)
		}

		if len(drifts) == 0 {
			utils.PrintSuccess("Database matches migrations")
			return
		}

		for _, d := range drifts {
			utils.PrintWarning("%s", d)
		}
		utils.PrintError("Found %d difference(s); run 'commerce migrate'", len(drifts))
		e.close()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
