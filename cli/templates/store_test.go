package templates

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuiltinFs() fstest.MapFS {
	return fstest.MapFS{
		"default/main.cpp":        {Data: []byte("// builtin default")},
		"default/CMakeLists.txt":  {Data: []byte(cmakeText)},
		"advanced/main.cpp":       {Data: []byte("// builtin advanced")},
		"advanced/CMakeLists.txt": {Data: []byte(cmakeText)},
		"README.md":               {Data: []byte("not a template")},
	}
}

func TestStoreResolveBuiltin(t *testing.T) {
	store := NewStore(t.TempDir(), testBuiltinFs())

	src, err := store.Resolve("default")
	require.NoError(t, err)
	require.IsType(t, EmbeddedSource{}, src)
	assert.Equal(t, "default", src.TemplateName())
	assert.Equal(t, SourceBuiltin, src.Kind())

	tmpl, err := Load(src)
	require.NoError(t, err)
	assert.Equal(t, "// builtin default", tmpl.Files[MainFile])
}

func TestStoreResolveUserOverridesBuiltin(t *testing.T) {
	userDir := t.TempDir()
	writeFiles(t, userDir, map[string]string{
		"default/main.cpp":       "// user default",
		"default/CMakeLists.txt": cmakeText,
	})
	store := NewStore(userDir, testBuiltinFs())

	src, err := store.Resolve("default")
	require.NoError(t, err)
	assert.Equal(t, DirectorySource{Name: "default", Path: filepath.Join(userDir, "default")},
		src)
	assert.Equal(t, SourceUser, src.Kind())

	tmpl, err := Load(src)
	require.NoError(t, err)
	assert.Equal(t, "// user default", tmpl.Files[MainFile])
}

func TestStoreResolveNoFallbackForInvalidUserTemplate(t *testing.T) {
	userDir := t.TempDir()
	// User template shadows the built-in but misses CMakeLists.txt.
	writeFiles(t, userDir, map[string]string{"default/main.cpp": "// user default"})
	store := NewStore(userDir, testBuiltinFs())

	src, err := store.Resolve("default")
	require.NoError(t, err)
	require.IsType(t, DirectorySource{}, src)

	_, err = Load(src)
	var notFound *TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), BuildFile)
}

func TestStoreResolveUserOnly(t *testing.T) {
	userDir := t.TempDir()
	writeFiles(t, userDir, map[string]string{
		"mine/main.cpp":       "// mine",
		"mine/CMakeLists.txt": cmakeText,
	})

	src, err := NewStore(userDir, testBuiltinFs()).Resolve("mine")
	require.NoError(t, err)
	assert.Equal(t, SourceUser, src.Kind())
	assert.Equal(t, filepath.Join(userDir, "mine"), src.Location())
}

func TestStoreResolveIgnoresUserFile(t *testing.T) {
	userDir := t.TempDir()
	writeFiles(t, userDir, map[string]string{"default": "a file, not a template"})

	src, err := NewStore(userDir, testBuiltinFs()).Resolve("default")
	require.NoError(t, err)
	assert.Equal(t, SourceBuiltin, src.Kind())
}

func TestStoreResolveMissingUserDir(t *testing.T) {
	userDir := filepath.Join(t.TempDir(), "not", "created")

	src, err := NewStore(userDir, testBuiltinFs()).Resolve("advanced")
	require.NoError(t, err)
	assert.Equal(t, SourceBuiltin, src.Kind())
}

func TestStoreResolveNotFound(t *testing.T) {
	userDir := t.TempDir()
	writeFiles(t, userDir, map[string]string{"other/main.cpp": ""})

	tests := []struct {
		name  string
		store *Store
	}{
		{"user and builtin", NewStore(userDir, testBuiltinFs())},
		{"no user dir", NewStore("", testBuiltinFs())},
		{"no builtin", NewStore(userDir, nil)},
		{"empty store", NewStore("", nil)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.store.Resolve("nonexistent")
			require.EqualError(t, err, "template 'nonexistent' not found")
			var notFound *TemplateNotFoundError
			require.ErrorAs(t, err, &notFound)
		})
	}
}

func TestStoreResolveInvalidNames(t *testing.T) {
	workDir := t.TempDir()
	userDir := filepath.Join(workDir, "templates")
	writeFiles(t, workDir, map[string]string{
		"outside/main.cpp":       mainCpp,
		"outside/CMakeLists.txt": cmakeText,
	})
	require.NoError(t, os.MkdirAll(userDir, 0755))
	store := NewStore(userDir, testBuiltinFs())

	for _, name := range []string{"", ".", "..", "../outside", "a/b", `a\b`, "/abs"} {
		t.Run(name, func(t *testing.T) {
			_, err := store.Resolve(name)
			var notFound *TemplateNotFoundError
			require.ErrorAs(t, err, &notFound)
		})
	}
}

func TestStoreList(t *testing.T) {
	userDir := t.TempDir()
	writeFiles(t, userDir, map[string]string{
		"default/main.cpp": "",
		"mine/main.cpp":    "",
		"notes.txt":        "not a template",
	})

	infos, err := NewStore(userDir, testBuiltinFs()).List()
	require.NoError(t, err)
	assert.Equal(t, []Info{
		{Name: "advanced", Kind: SourceBuiltin, Location: builtinLocation},
		{
			Name:      "default",
			Kind:      SourceUser,
			Location:  filepath.Join(userDir, "default"),
			Overrides: true,
		},
		{Name: "mine", Kind: SourceUser, Location: filepath.Join(userDir, "mine")},
	}, infos)
}

func TestStoreListWithoutUserDir(t *testing.T) {
	infos, err := NewStore(filepath.Join(t.TempDir(), "missing"), testBuiltinFs()).List()
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "advanced", infos[0].Name)
	assert.Equal(t, "default", infos[1].Name)
}

func TestSourceKindString(t *testing.T) {
	assert.Equal(t, "built-in", SourceBuiltin.String())
	assert.Equal(t, "user", SourceUser.String())
	assert.Equal(t, "unknown", SourceKind(42).String())
}
