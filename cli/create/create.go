package create

import (
	"fmt"
	"io"
	"os"

	"github.com/procon-dev/procon/cli/config"
	"github.com/procon-dev/procon/cli/create/builtin_templates"
	create_ctx "github.com/procon-dev/procon/cli/create/context"
	"github.com/procon-dev/procon/cli/create/internal/app_template"
	"github.com/procon-dev/procon/cli/create/internal/steps"
	"github.com/procon-dev/procon/cli/templates"
	"github.com/procon-dev/procon/cli/util"
)

// FillCtx fills create context. args contain the project name.
func FillCtx(cfg *config.Config, createCtx *create_ctx.CreateCtx, args []string) error {
	if len(args) >= 1 {
		createCtx.ProjectName = args[0]
	} else {
		return util.NewArgError("missing project name argument. " +
			"Try `procon new --help` for more information.")
	}

	if createCtx.TemplateName == "" {
		createCtx.TemplateName = cfg.Template.Default
	}
	createCtx.TemplatesDir = cfg.Template.Path
	createCtx.Project = cfg.Project
	if createCtx.Builtin == nil {
		createCtx.Builtin = builtin_templates.FS()
	}

	if createCtx.WorkDir == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return err
		}
		createCtx.WorkDir = workingDir
	}

	return nil
}

// Run creates a project from a template. The follow-up message is written to out
// if it is not nil.
func Run(createCtx *create_ctx.CreateCtx, out io.Writer) error {
	if err := checkCtx(createCtx); err != nil {
		return err
	}

	stepsChain := []steps.Step{
		steps.CheckDestination{},
		steps.ResolveTemplate{},
		steps.LoadTemplate{},
		steps.SetPredefinedVariables{},
		steps.RenderTemplate{},
		steps.CreateProjectDirectory{},
		steps.PrintFollowUpMessage{Writer: out},
	}

	templateCtx := app_template.NewTemplateContext()
	for _, step := range stepsChain {
		if err := step.Run(createCtx, &templateCtx); err != nil {
			return err
		}
	}

	return nil
}

// checkCtx checks create context for validity.
func checkCtx(ctx *create_ctx.CreateCtx) error {
	if ctx.ProjectName == "" {
		return util.NewArgError("project name cannot be empty")
	}
	if !templates.ValidName(ctx.ProjectName) {
		return util.NewArgError(fmt.Sprintf("invalid project name %q: "+
			"it must be a single directory name", ctx.ProjectName))
	}
	if ctx.WorkDir == "" && ctx.DestinationDir == "" {
		return fmt.Errorf("destination directory is not set")
	}
	return nil
}
