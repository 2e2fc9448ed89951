// Package steps provides a set of handlers for create command chain of responsibility.
package steps

import (
	create_ctx "github.com/procon-dev/procon/cli/create/context"
	"github.com/procon-dev/procon/cli/create/internal/app_template"
)

// Step is an interface for single step in create chain.
type Step interface {
	Run(ctx *create_ctx.CreateCtx, templateCtx *app_template.TemplateCtx) error
}
