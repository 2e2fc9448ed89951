package steps

import (
	"fmt"

	create_ctx "github.com/procon-dev/procon/cli/create/context"
	"github.com/procon-dev/procon/cli/create/internal/app_template"
	"github.com/procon-dev/procon/cli/templates"
)

// LoadTemplate represents a step reading template files into memory.
type LoadTemplate struct {
}

// Run loads the resolved template.
func (LoadTemplate) Run(ctx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	if templateCtx.Source == nil {
		return fmt.Errorf("template %q is not resolved", ctx.TemplateName)
	}
	tmpl, err := templates.Load(templateCtx.Source)
	if err != nil {
		return err
	}
	templateCtx.Template = tmpl
	return nil
}
