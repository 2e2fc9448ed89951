package steps

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/procon-dev/procon/cli/config"
	create_ctx "github.com/procon-dev/procon/cli/create/context"
	"github.com/procon-dev/procon/cli/create/internal/app_template"
)

func TestSetPredefinedVariables(t *testing.T) {
	createCtx := create_ctx.CreateCtx{
		ProjectName: "demo",
		Project:     config.ProjectOpts{CppStandard: "20", CmakeMinimumVersion: "3.20"},
	}
	templateCtx := app_template.NewTemplateContext()
	setPredefinedVars := SetPredefinedVariables{}
	require.NoError(t, setPredefinedVars.Run(&createCtx, &templateCtx))
	require.Equal(t, map[string]string{
		"PROJECT_NAME":  "demo",
		"CMAKE_VERSION": "3.20",
		"CPP_STANDARD":  "20",
	}, templateCtx.Vars)
}
