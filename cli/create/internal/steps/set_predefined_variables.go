package steps

import (
	create_ctx "github.com/procon-dev/procon/cli/create/context"
	"github.com/procon-dev/procon/cli/create/internal/app_template"
	"github.com/procon-dev/procon/cli/templates"
)

// SetPredefinedVariables represents a step for setting pre-defined variables.
type SetPredefinedVariables struct {
}

// Run sets predefined variables values.
func (SetPredefinedVariables) Run(ctx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	templateCtx.Vars[templates.VarProjectName] = ctx.ProjectName
	templateCtx.Vars[templates.VarCMakeVersion] = ctx.Project.CmakeMinimumVersion
	templateCtx.Vars[templates.VarCppStandard] = ctx.Project.CppStandard
	return nil
}
