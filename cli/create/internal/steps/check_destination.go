package steps

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"

	create_ctx "github.com/procon-dev/procon/cli/create/context"
	"github.com/procon-dev/procon/cli/create/internal/app_template"
	"github.com/procon-dev/procon/cli/templates"
)

// CheckDestination represents a step computing the project path and checking it is free.
type CheckDestination struct {
}

// Run sets the project path and fails if something already exists there.
func (CheckDestination) Run(ctx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	baseDir := ctx.DestinationDir
	if baseDir == "" {
		baseDir = ctx.WorkDir
	}
	projectPath := filepath.Join(baseDir, ctx.ProjectName)

	if _, err := os.Lstat(projectPath); err == nil {
		return &templates.ProjectExistsError{Name: ctx.ProjectName, Path: projectPath}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return &templates.IOError{Op: "stat", Path: projectPath, Err: err}
	}

	log.Debugf("Project path: %s", projectPath)
	templateCtx.ProjectPath = projectPath
	return nil
}
