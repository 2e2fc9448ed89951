package steps

import (
	"fmt"
	"io"
	"path/filepath"

	create_ctx "github.com/procon-dev/procon/cli/create/context"
	"github.com/procon-dev/procon/cli/create/internal/app_template"
)

// PrintFollowUpMessage represents a step printing build hints for the created project.
type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// Run prints project follow-up message.
func (printFollowUpMsgStep PrintFollowUpMessage) Run(ctx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	if printFollowUpMsgStep.Writer == nil {
		return nil
	}

	projectDir := templateCtx.ProjectPath
	if ctx.WorkDir != "" {
		if rel, err := filepath.Rel(ctx.WorkDir, projectDir); err == nil && filepath.IsLocal(rel) {
			projectDir = rel
		}
	}

	_, err := fmt.Fprintf(printFollowUpMsgStep.Writer,
		"\nNext steps:\n  cd %s\n  cmake -S . -B build\n  cmake --build build\n", projectDir)
	return err
}
