package cli

import (
	"context"

	"github.com/pankajredekar/commerce/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	storeID    uint
)

var rootCmd = &cobra.Command{
	Use:   "commerce",
	Short: "Manage commerce product option templates",
	Long:  "commerce runs the schema migrations for product option templates and inspects template data per store",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFile, "path to the config file")
	rootCmd.PersistentFlags().UintVar(&storeID, "store", 0, "restrict template commands to this store (default: default_store_id from config)")
}

// Execute runs the CLI
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
