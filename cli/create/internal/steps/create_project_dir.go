package steps

import (
	"github.com/apex/log"

	create_ctx "github.com/procon-dev/procon/cli/create/context"
	"github.com/procon-dev/procon/cli/create/internal/app_template"
	"github.com/procon-dev/procon/cli/templates"
)

// CreateProjectDirectory represents a step writing the rendered template to disk.
type CreateProjectDirectory struct {
}

// Run writes the project files.
func (CreateProjectDirectory) Run(ctx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	log.Debugf("Creating project in %s", templateCtx.ProjectPath)
	return templates.Materialize(templateCtx.Template, templateCtx.ProjectPath)
}
