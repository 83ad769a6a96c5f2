package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pankajredekar/commerce/internal/utils"
	"github.com/spf13/cobra"
)

var showSchema bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show migration status",
	Long:  "Shows all applied and pending migrations, and optionally the schema they build",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup(cmd)
		defer e.close()

		applied, err := e.run.GetAppliedMigrations(cmd.Context())
		if err != nil {
			utils.PrintError("Failed to get applied migrations: %v", err)
			os.Exit(1)
		}

		pending, err := e.run.GetPendingMigrations(cmd.Context())
		if err != nil {
			utils.PrintError("Failed to get pending migrations: %v", err)
			os.Exit(1)
		}

		latest, err := e.ver.GetLatestVersion(cmd.Context())
		if err != nil {
			utils.PrintError("Failed to get latest version: %v", err)
			os.Exit(1)
		}

		fmt.Println("\n" + strings.Repeat("=", 60))
		fmt.Println("Migration Status")
		fmt.Println(strings.Repeat("=", 60))

		if latest != "" {
			fmt.Printf("\nCurrent version: %s\n", latest)
		}

		if len(applied) > 0 {
			fmt.Println("\n✓ Applied Migrations:")
			for _, m := range applied {
				fmt.Printf("  %s - %s\n", m.Version(), m.Name())
			}
		} else {
			fmt.Println("\n✓ Applied Migrations: (none)")
		}

		if len(pending) > 0 {
			fmt.Println("\n○ Pending Migrations:")
			for _, m := range pending {
				fmt.Printf("  %s - %s\n", m.Version(), m.Name())
			}
		} else {
			fmt.Println("\n○ Pending Migrations: (none)")
		}

		if showSchema {
			fmt.Println("\nSchema after all migrations:")
			fmt.Print(e.run.SimulateSchema().Schema.String())
		}

		fmt.Println()
	},
}

func init() {
	showCmd.Flags().BoolVar(&showSchema, "schema", false, "print the schema the migrations build")
	rootCmd.AddCommand(showCmd)
}
