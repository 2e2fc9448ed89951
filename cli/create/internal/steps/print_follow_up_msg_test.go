package steps

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	create_ctx "github.com/procon-dev/procon/cli/create/context"
	"github.com/procon-dev/procon/cli/create/internal/app_template"
)

func TestPrintFollowUpMessage(t *testing.T) {
	var buffer bytes.Buffer
	printFollowUpMsgStep := PrintFollowUpMessage{
		Writer: &buffer,
	}
	err := printFollowUpMsgStep.Run(&create_ctx.CreateCtx{
		WorkDir: "/work",
	}, &app_template.TemplateCtx{
		ProjectPath: filepath.Join("/work", "demo"),
	})
	require.NoError(t, err)
	require.Equal(t, "\nNext steps:\n  cd demo\n  cmake -S . -B build\n  cmake --build build\n",
		buffer.String())
}

func TestPrintFollowUpMessageOutsideWorkDir(t *testing.T) {
	var buffer bytes.Buffer
	printFollowUpMsgStep := PrintFollowUpMessage{
		Writer: &buffer,
	}
	err := printFollowUpMsgStep.Run(&create_ctx.CreateCtx{
		WorkDir: "/work",
	}, &app_template.TemplateCtx{
		ProjectPath: "/projects/demo",
	})
	require.NoError(t, err)
	require.Contains(t, buffer.String(), "  cd /projects/demo\n")
}

func TestPrintFollowUpMessageNoWriter(t *testing.T) {
	require.NoError(t, PrintFollowUpMessage{}.Run(&create_ctx.CreateCtx{},
		&app_template.TemplateCtx{}))
}
