package create_ctx

import (
	"io/fs"

	"github.com/procon-dev/procon/cli/config"
)

// CreateCtx contains information for creating projects from templates.
type CreateCtx struct {
	// ProjectName is a name of the project to create.
	ProjectName string
	// TemplateName is a template to use for project creation.
	TemplateName string
	// WorkDir is procon launch working directory.
	WorkDir string
	// DestinationDir is the directory the project is created in. WorkDir is used
	// if it is not set.
	DestinationDir string
	// TemplatesDir is the user template root.
	TemplatesDir string
	// Builtin contains built-in templates, a directory per template.
	Builtin fs.FS
	// Project contains project settings substituted into the template.
	Project config.ProjectOpts
}
