package cmd

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/procon-dev/procon/cli/catalog"
	"github.com/procon-dev/procon/cli/cmdcontext"
	"github.com/procon-dev/procon/cli/create"
	"github.com/procon-dev/procon/cli/create/builtin_templates"
	create_ctx "github.com/procon-dev/procon/cli/create/context"
	"github.com/procon-dev/procon/cli/util"
)

var (
	templateName    string
	dstPath         string
	interactiveMode bool
)

// NewNewCmd creates a new project from a template.
func NewNewCmd() *cobra.Command {
	var newCmd = &cobra.Command{
		Use:   "new <PROJECT_NAME> [flags]",
		Short: "Create a C++ project from a template",
		Run:   RunModuleFunc(internalNewModule),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("requires exactly one project name argument")
			}
			return nil
		},
		Long: `Create a C++ project from a template.

Templates are searched in the user templates directory first, then among built-in templates.

Built-in templates:
	default: minimal executable project.
	advanced: project with a header library, sanitizers and sample input.`,
		Example: `
# Create project demo in the current directory from the default template.

    $ procon new demo

# Create project solver in ~/contests from the advanced template.

    $ procon new solver --template advanced --path ~/contests

# Choose a template from a menu.

    $ procon new demo -i`,
	}

	newCmd.Flags().StringVarP(&templateName, "template", "t", "",
		"Template name. The configured default template is used if not set")
	newCmd.Flags().StringVarP(&dstPath, "path", "p", "",
		"Directory to create the project in. Current directory is used if not set")
	newCmd.Flags().BoolVarP(&interactiveMode, "interactive", "i", false,
		"Choose a template interactively")
	newCmd.RegisterFlagCompletionFunc("template", templateNamesCompletion)

	return newCmd
}

// internalNewModule is a default new module.
func internalNewModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	cfg, err := getCliOpts()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return util.NewArgError("project name is required")
	}

	createCtx := create_ctx.CreateCtx{
		TemplateName:   templateName,
		DestinationDir: dstPath,
		Builtin:        builtin_templates.FS(),
	}

	if interactiveMode {
		if templateName != "" {
			return util.NewArgError("--template and --interactive cannot be used together")
		}
		store, err := newTemplateStore()
		if err != nil {
			return err
		}
		infos, err := store.List()
		if err != nil {
			return err
		}
		if createCtx.TemplateName, err = catalog.ChooseTemplate(infos,
			builtin_templates.Descriptions); err != nil {
			return err
		}
	}

	if err := create.FillCtx(cfg, &createCtx, args); err != nil {
		return err
	}

	log.Infof("Creating project '%s'...", util.Bold(createCtx.ProjectName))
	if err := create.Run(&createCtx, os.Stdout); err != nil {
		return err
	}
	log.Info(color.GreenString("Project '%s' created successfully!", createCtx.ProjectName))

	return nil
}
