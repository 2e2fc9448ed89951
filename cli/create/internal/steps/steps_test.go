package steps

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	create_ctx "github.com/procon-dev/procon/cli/create/context"
	"github.com/procon-dev/procon/cli/create/internal/app_template"
)

const testCmake = "cmake_minimum_required(VERSION {{CMAKE_VERSION}})\n" +
	"project({{PROJECT_NAME}})\nset(CMAKE_CXX_STANDARD {{CPP_STANDARD}})\n"

func testBuiltin() fstest.MapFS {
	return fstest.MapFS{
		"default/main.cpp":       {Data: []byte("// {{PROJECT_NAME}}\nint main() {}\n")},
		"default/CMakeLists.txt": {Data: []byte(testCmake)},
	}
}

// runSteps runs steps in order stopping on the first error.
func runSteps(t *testing.T, createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx, steps ...Step,
) error {
	t.Helper()
	for _, step := range steps {
		if err := step.Run(createCtx, templateCtx); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
