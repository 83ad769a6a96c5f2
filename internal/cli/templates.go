package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pankajredekar/commerce/internal/models"
	"github.com/pankajredekar/commerce/internal/repository"
	"github.com/pankajredekar/commerce/internal/utils"
	"github.com/spf13/cobra"
)

var (
	templateName    string
	templateOptions string

	optionName     string
	optionValue    string
	optionPosition int
)

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"tpl"},
	Short:   "Inspect and edit product option templates",
}

var templatesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a template in the selected store",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup(cmd)
		defer e.close()

		s := e.storeScope()
		if _, ok := s.StoreID(); !ok {
			exitWith(e, "--store (or default_store_id) is required to create a template")
		}

		attrs, err := templateAttrs(cmd)
		if err != nil {
			exitWith(e, "%v", err)
		}

		tpl, err := repository.NewTemplateRepository(e.db, s, e.log).Create(cmd.Context(), attrs)
		if err != nil {
			exitWith(e, "Failed to create template: %v", err)
		}
		utils.PrintSuccess("Created template %d in store %d", tpl.ID, tpl.StoreID)
	},
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup(cmd)
		defer e.close()

		templates, err := repository.NewTemplateRepository(e.db, e.storeScope(), e.log).List(cmd.Context())
		if err != nil {
			exitWith(e, "Failed to list templates: %v", err)
		}

		if len(templates) == 0 {
			utils.PrintInfo("No templates (%s)", e.storeScope())
			return
		}
		for _, tpl := range templates {
			fmt.Printf("  %d\tstore %d\t%s\n", tpl.ID, tpl.StoreID, tpl.Name)
		}
	},
}

var templatesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a template with its options",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustParseID(args[0])
		e := mustSetup(cmd)
		defer e.close()

		tpl, err := repository.NewTemplateRepository(e.db, e.storeScope(), e.log).FindWithOptions(cmd.Context(), id)
		if err != nil {
			exitWith(e, "%v", err)
		}
		printTemplate(tpl)
	},
}

var templatesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a template's name or options",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustParseID(args[0])
		e := mustSetup(cmd)
		defer e.close()

		attrs, err := templateAttrs(cmd)
		if err != nil {
			exitWith(e, "%v", err)
		}
		if len(attrs) == 0 {
			utils.PrintWarning("Nothing to update; pass --name or --options")
			return
		}

		tpl, err := repository.NewTemplateRepository(e.db, e.storeScope(), e.log).Update(cmd.Context(), id, attrs)
		if err != nil {
			exitWith(e, "Failed to update template: %v", err)
		}
		utils.PrintSuccess("Updated template %d", tpl.ID)
	},
}

var templatesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a template, leaving its options in place",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustParseID(args[0])
		e := mustSetup(cmd)
		defer e.close()

		repo := repository.NewTemplateRepository(e.db, e.storeScope(), e.log)
		options, err := repo.ProductOptions(cmd.Context(), id)
		if err != nil {
			exitWith(e, "%v", err)
		}

		if err := repo.Delete(cmd.Context(), id); err != nil {
			if errors.Is(err, repository.ErrTemplateNotFound) {
				exitWith(e, "Template %d not found (%s)", id, e.storeScope())
			}
			exitWith(e, "Failed to delete template: %v", err)
		}

		utils.PrintSuccess("Deleted template %d", id)
		if len(options) > 0 {
			utils.PrintWarning("%d option(s) still reference template %d", len(options), id)
		}
	},
}

var templatesOptionsCmd = &cobra.Command{
	Use:   "options <id>",
	Short: "List the product options created from a template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustParseID(args[0])
		e := mustSetup(cmd)
		defer e.close()

		options, err := repository.NewTemplateRepository(e.db, e.storeScope(), e.log).ProductOptions(cmd.Context(), id)
		if err != nil {
			exitWith(e, "%v", err)
		}
		if len(options) == 0 {
			utils.PrintInfo("No options reference template %d", id)
			return
		}
		for _, o := range options {
			fmt.Printf("  %d\t%s=%s\tposition %d\n", o.ID, o.Name, o.Value, o.Position)
		}
	},
}

var templatesAddOptionCmd = &cobra.Command{
	Use:   "add-option <id>",
	Short: "Create a product option linked to a template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustParseID(args[0])
		e := mustSetup(cmd)
		defer e.close()

		tpl, err := repository.NewTemplateRepository(e.db, e.storeScope(), e.log).Find(cmd.Context(), id)
		if err != nil {
			exitWith(e, "%v", err)
		}

		opt := &models.ProductOption{
			StoreID:    tpl.StoreID,
			TemplateID: &tpl.ID,
			Name:       optionName,
			Value:      optionValue,
			Position:   optionPosition,
		}
		if err := repository.NewOptionRepository(e.db, e.storeScope(), e.log).Create(cmd.Context(), opt); err != nil {
			exitWith(e, "Failed to create option: %v", err)
		}
		utils.PrintSuccess("Created option %d for template %d", opt.ID, tpl.ID)
	},
}

// templateAttrs collects the fillable attributes set on the command line
func templateAttrs(cmd *cobra.Command) (map[string]any, error) {
	attrs := map[string]any{}
	if cmd.Flags().Changed("name") {
		attrs["name"] = templateName
	}
	if cmd.Flags().Changed("options") {
		if !json.Valid([]byte(templateOptions)) {
			return nil, fmt.Errorf("--options must be valid JSON")
		}
		attrs["options"] = json.RawMessage(templateOptions)
	}
	return attrs, nil
}

func printTemplate(tpl *models.ProductOptionTemplate) {
	fmt.Printf("Template %d\n", tpl.ID)
	fmt.Printf("  Store:   %d\n", tpl.StoreID)
	fmt.Printf("  Name:    %s\n", tpl.Name)
	fmt.Printf("  Created: %s\n", tpl.CreatedAt.Format("2006-01-02 15:04:05"))

	options, err := tpl.OptionsValue()
	switch {
	case err != nil:
		fmt.Printf("  Options: <unreadable: %v>\n", err)
	case options == nil:
		fmt.Println("  Options: (none)")
	default:
		pretty, _ := json.MarshalIndent(options, "  ", "  ")
		fmt.Printf("  Options: %s\n", pretty)
	}

	fmt.Printf("  Product options: %d\n", len(tpl.ProductOptions))
	for _, o := range tpl.ProductOptions {
		fmt.Printf("    %d\t%s=%s\n", o.ID, o.Name, o.Value)
	}
}

func mustParseID(arg string) uint {
	id, err := strconv.ParseUint(arg, 10, 0)
	if err != nil || id == 0 {
		utils.PrintError("Invalid id: %s", arg)
		os.Exit(1)
	}
	return uint(id)
}

func exitWith(e *env, msg string, args ...interface{}) {
	utils.PrintError(msg, args...)
	e.close()
	os.Exit(1)
}

func init() {
	for _, c := range []*cobra.Command{templatesCreateCmd, templatesUpdateCmd} {
		c.Flags().StringVar(&templateName, "name", "", "template name")
		c.Flags().StringVar(&templateOptions, "options", "", "options as JSON, e.g. '{\"values\":[\"S\",\"M\"]}'")
	}
	_ = templatesCreateCmd.MarkFlagRequired("name")

	templatesAddOptionCmd.Flags().StringVar(&optionName, "name", "", "option name")
	templatesAddOptionCmd.Flags().StringVar(&optionValue, "value", "", "option value")
	templatesAddOptionCmd.Flags().IntVar(&optionPosition, "position", 0, "sort position")
	_ = templatesAddOptionCmd.MarkFlagRequired("name")

	templatesCmd.AddCommand(
		templatesCreateCmd,
		templatesListCmd,
		templatesGetCmd,
		templatesUpdateCmd,
		templatesDeleteCmd,
		templatesOptionsCmd,
		templatesAddOptionCmd,
	)
	rootCmd.AddCommand(templatesCmd)
}
