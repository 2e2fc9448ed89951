package app_template

import (
	"github.com/procon-dev/procon/cli/templates"
	"github.com/procon-dev/procon/cli/templates/engines"
)

// TemplateCtx contains an information required for project template instantiation.
type TemplateCtx struct {
	// ProjectPath is a path to the project directory to be created.
	ProjectPath string
	// Source is the resolved template source.
	Source templates.Source
	// Template is the loaded template. It is replaced with the substituted one
	// before materialization.
	Template templates.Template
	// Vars is a map of variables to be used for template rendering.
	Vars map[string]string
	// Engine is a template engine to use for template rendering.
	Engine engines.TemplateEngine
}

// NewTemplateContext creates new project template context.
func NewTemplateContext() TemplateCtx {
	var ctx TemplateCtx
	ctx.Vars = make(map[string]string)
	ctx.Engine = engines.NewDefaultEngine()
	return ctx
}
