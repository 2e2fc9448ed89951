package catalog

import (
	"fmt"
	"io"
	"path"
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/procon-dev/procon/cli/templates"
)

// Diff writes a unified diff between the built-in template and the user template
// overriding it. Returns true if the templates differ.
func Diff(store *templates.Store, name string, out io.Writer) (bool, error) {
	src, err := store.Resolve(name)
	if err != nil {
		return false, err
	}
	if src.Kind() != templates.SourceUser {
		return false, fmt.Errorf("template '%s' is not customized", name)
	}
	builtinFs, err := builtinFS(store, name)
	if err != nil {
		return false, fmt.Errorf("template '%s' does not override a built-in template", name)
	}

	userTemplate, err := templates.Load(src)
	if err != nil {
		return false, err
	}
	builtinTemplate, err := templates.LoadFS(name, builtinFs)
	if err != nil {
		return false, err
	}

	keySet := make(map[string]struct{})
	for key := range userTemplate.Files {
		keySet[key] = struct{}{}
	}
	for key := range builtinTemplate.Files {
		keySet[key] = struct{}{}
	}
	keys := make([]string, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	differs := false
	for _, key := range keys {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(builtinTemplate.Files[key]),
			B:        difflib.SplitLines(userTemplate.Files[key]),
			FromFile: path.Join("built-in", key),
			ToFile:   path.Join("user", key),
			Context:  3,
		}
		text, err := difflib.GetUnifiedDiffString(diff)
		if err != nil {
			return differs, err
		}
		if text == "" {
			continue
		}
		differs = true
		if _, err := io.WriteString(out, text); err != nil {
			return differs, err
		}
	}
	return differs, nil
}
