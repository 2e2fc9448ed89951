package builtin_templates

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procon-dev/procon/cli/templates"
)

func TestBuiltinTemplatesAreValid(t *testing.T) {
	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			templateFs, err := fs.Sub(FS(), name)
			require.NoError(t, err)

			tmpl, err := templates.LoadFS(name, templateFs)
			require.NoError(t, err)
			require.NoError(t, tmpl.Validate())
			assert.Empty(t, tmpl.Skipped)
			assert.Contains(t, tmpl.Files[templates.BuildFile], "{{CMAKE_VERSION}}")
			assert.Contains(t, tmpl.Files[templates.BuildFile], "{{CPP_STANDARD}}")
			assert.Contains(t, tmpl.Files[templates.BuildFile], "{{PROJECT_NAME}}")
			assert.Contains(t, Descriptions, name)
		})
	}
}

func TestBuiltinTemplatesContent(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{
			name: "default",
			keys: []string{".gitignore", "CMakeLists.txt", "main.cpp"},
		},
		{
			name: "advanced",
			keys: []string{
				".clang-format",
				".gitignore",
				"CMakeLists.txt",
				"README.md",
				"lib/utils.hpp",
				"main.cpp",
				"tests/sample.in",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			templateFs, err := fs.Sub(FS(), tc.name)
			require.NoError(t, err)
			tmpl, err := templates.LoadFS(tc.name, templateFs)
			require.NoError(t, err)
			assert.Equal(t, tc.keys, tmpl.Keys())
		})
	}
}

func TestBuiltinNamesMatchEmbeddedDirs(t *testing.T) {
	entries, err := fs.ReadDir(FS(), ".")
	require.NoError(t, err)

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	assert.ElementsMatch(t, Names[:], dirs)
}
