package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles creates files under root. Keys are slash separated relative paths.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for key, content := range files {
		filePath := filepath.Join(root, filepath.FromSlash(key))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
}

// readTree reads all regular files under root into a map keyed by relative slash path.
func readTree(t *testing.T, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestTemplateKeys(t *testing.T) {
	tmpl := Template{Files: map[string]string{
		"main.cpp":       "",
		"lib/utils.hpp":  "",
		"CMakeLists.txt": "",
	}}
	assert.Equal(t, []string{"CMakeLists.txt", "lib/utils.hpp", "main.cpp"}, tmpl.Keys())
	assert.Empty(t, Template{}.Keys())
}

func TestTemplateValidate(t *testing.T) {
	tests := []struct {
		name   string
		files  map[string]string
		errMsg string
	}{
		{
			name:  "valid",
			files: map[string]string{"main.cpp": "", "CMakeLists.txt": "", "lib/a.hpp": ""},
		},
		{
			name:   "missing build file",
			files:  map[string]string{"main.cpp": ""},
			errMsg: "CMakeLists.txt not found in template",
		},
		{
			name:   "missing main file",
			files:  map[string]string{"CMakeLists.txt": ""},
			errMsg: "main.cpp not found in template",
		},
		{
			name:   "parent reference",
			files:  map[string]string{"main.cpp": "", "CMakeLists.txt": "", "../a": ""},
			errMsg: `invalid template file path "../a"`,
		},
		{
			name:   "absolute path",
			files:  map[string]string{"main.cpp": "", "CMakeLists.txt": "", "/etc/a": ""},
			errMsg: `invalid template file path "/etc/a"`,
		},
		{
			name:   "dot path",
			files:  map[string]string{"main.cpp": "", "CMakeLists.txt": "", "lib/./a": ""},
			errMsg: `invalid template file path "lib/./a"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Template{Files: tc.files}.Validate()
			if tc.errMsg == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tc.errMsg)
			}
		})
	}
}
