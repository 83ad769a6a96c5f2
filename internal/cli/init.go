package cli

import (
	"os"

	"github.com/pankajredekar/commerce/internal/config"
	"github.com/pankajredekar/commerce/internal/utils"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commerce config file",
	Long:  "Creates a commerce.yml configuration file pointing at a local SQLite database",
	Run: func(cmd *cobra.Command, args []string) {
		if utils.FileExists(configPath) {
			utils.PrintWarning("%s already exists", configPath)
			return
		}

		if err := config.Default().Write(configPath); err != nil {
			utils.PrintError("%v", err)
			os.Exit(1)
		}

		utils.PrintSuccess("Initialized commerce project")
		utils.PrintInfo("Created %s", configPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
