package steps

import (
	create_ctx "github.com/procon-dev/procon/cli/create/context"
	"github.com/procon-dev/procon/cli/create/internal/app_template"
	"github.com/procon-dev/procon/cli/templates"
)

// ResolveTemplate represents a step choosing the template source by name.
type ResolveTemplate struct {
}

// Run resolves the template. A user template hides a built-in one.
func (ResolveTemplate) Run(ctx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	store := templates.NewStore(ctx.TemplatesDir, ctx.Builtin)
	src, err := store.Resolve(ctx.TemplateName)
	if err != nil {
		return err
	}
	templateCtx.Source = src
	return nil
}
