package cli

import (
	"github.com/pankajredekar/commerce/internal/factory"
	"github.com/pankajredekar/commerce/internal/utils"
	"github.com/spf13/cobra"
)

var (
	seedStores    int
	seedTemplates int
	seedOptions   int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with demo stores, templates and options",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup(cmd)
		defer e.close()

		ctx := cmd.Context()
		f := factory.New(e.db)
		var templates, options int

		for i := 0; i < seedStores; i++ {
			store, err := f.Store(ctx)
			if err != nil {
				exitWith(e, "Failed to seed: %v", err)
			}
			for j := 0; j < seedTemplates; j++ {
				tpl, err := f.Template(ctx, store.ID, nil)
				if err != nil {
					exitWith(e, "Failed to seed: %v", err)
				}
				templates++
				for k := 0; k < seedOptions; k++ {
					if _, err := f.Option(ctx, store.ID, tpl.ID); err != nil {
						exitWith(e, "Failed to seed: %v", err)
					}
					options++
				}
			}
		}

		utils.PrintSuccess("Seeded %d store(s), %d template(s), %d option(s)", seedStores, templates, options)
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedStores, "stores", 1, "number of stores")
	seedCmd.Flags().IntVar(&seedTemplates, "templates", 2, "templates per store")
	seedCmd.Flags().IntVar(&seedOptions, "options", 3, "options per template")
	rootCmd.AddCommand(seedCmd)
}
