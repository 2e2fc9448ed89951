package steps

import (
	create_ctx "github.com/procon-dev/procon/cli/create/context"
	"github.com/procon-dev/procon/cli/create/internal/app_template"
	"github.com/procon-dev/procon/cli/templates"
)

// RenderTemplate represents template render step.
type RenderTemplate struct{}

// Run substitutes variables in every template file.
func (RenderTemplate) Run(ctx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	templateCtx.Template = templates.ApplyWith(templateCtx.Engine, templateCtx.Template,
		templateCtx.Vars)
	return nil
}
