package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/procon-dev/procon/cli/catalog"
	"github.com/procon-dev/procon/cli/cmdcontext"
	"github.com/procon-dev/procon/cli/create/builtin_templates"
)

var (
	importName  string
	importForce bool
	exportForce bool
)

// NewTemplatesCmd creates templates command with subcommands.
func NewTemplatesCmd() *cobra.Command {
	var templatesCmd = &cobra.Command{
		Use:   "templates",
		Short: "Manage project templates",
	}

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Run:   RunModuleFunc(internalTemplatesListModule),
		Args:  cobra.NoArgs,
	}

	var importCmd = &cobra.Command{
		Use:   "import <DIRECTORY> [flags]",
		Short: "Copy a template directory into the user templates directory",
		Run:   RunModuleFunc(internalTemplatesImportModule),
		Args:  cobra.ExactArgs(1),
		Example: `
# Import ~/my_template as template "contest".

    $ procon templates import ~/my_template --name contest`,
	}
	importCmd.Flags().StringVarP(&importName, "name", "n", "",
		"Template name. Directory name is used if not set")
	importCmd.Flags().BoolVarP(&importForce, "force", "f", false,
		"Replace existing user template")

	var exportCmd = &cobra.Command{
		Use:   "export <TEMPLATE_NAME> [flags]",
		Short: "Copy a built-in template into the user templates directory for customization",
		Run:   RunModuleFunc(internalTemplatesExportModule),
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string,
			toComplete string,
		) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return builtin_templates.Names[:], cobra.ShellCompDirectiveNoFileComp
		},
	}
	exportCmd.Flags().BoolVarP(&exportForce, "force", "f", false,
		"Replace existing user template")

	var diffCmd = &cobra.Command{
		Use:               "diff <TEMPLATE_NAME>",
		Short:             "Show changes of a user template against the built-in one",
		Run:               RunModuleFunc(internalTemplatesDiffModule),
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: templateNamesCompletion,
	}

	templatesCmd.AddCommand(listCmd, importCmd, exportCmd, diffCmd)
	return templatesCmd
}

// internalTemplatesListModule is a default templates list module.
func internalTemplatesListModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	store, err := newTemplateStore()
	if err != nil {
		return err
	}
	infos, err := store.List()
	if err != nil {
		return err
	}
	catalog.PrintList(os.Stdout, infos, builtin_templates.Descriptions)
	return nil
}

// internalTemplatesImportModule is a default templates import module.
func internalTemplatesImportModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	store, err := newTemplateStore()
	if err != nil {
		return err
	}
	target, err := catalog.Import(store, catalog.ImportCtx{
		Source: args[0],
		Name:   importName,
		Force:  importForce,
	})
	if err != nil {
		return err
	}
	log.Infof("Template is imported to %s", target)
	return nil
}

// internalTemplatesExportModule is a default templates export module.
func internalTemplatesExportModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	store, err := newTemplateStore()
	if err != nil {
		return err
	}
	target, err := catalog.Export(store, args[0], exportForce)
	if err != nil {
		return err
	}
	log.Infof("Template '%s' is exported to %s", args[0], target)
	return nil
}

// internalTemplatesDiffModule is a default templates diff module.
func internalTemplatesDiffModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	store, err := newTemplateStore()
	if err != nil {
		return err
	}
	differs, err := catalog.Diff(store, args[0], os.Stdout)
	if err != nil {
		return err
	}
	if !differs {
		log.Infof("Template '%s' does not differ from the built-in one", args[0])
	}
	return nil
}
