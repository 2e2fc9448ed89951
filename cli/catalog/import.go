package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"github.com/procon-dev/procon/cli/templates"
	"github.com/procon-dev/procon/cli/util"
)

// ImportCtx contains information for importing a template directory.
type ImportCtx struct {
	// Source is the template directory to import.
	Source string
	// Name is the name of the imported template. Source base name is used if empty.
	Name string
	// Force enables replacing an existing user template.
	Force bool
}

// Import validates the template directory and copies it into the user template root.
// Returns the imported template path.
func Import(store *templates.Store, importCtx ImportCtx) (string, error) {
	source, err := filepath.Abs(importCtx.Source)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path of %s: %s", importCtx.Source, err)
	}
	if !util.IsDir(source) {
		return "", fmt.Errorf("%s is not a directory", importCtx.Source)
	}

	name := importCtx.Name
	if name == "" {
		name = filepath.Base(source)
	}
	if !templates.ValidName(name) {
		return "", util.NewArgError(fmt.Sprintf("invalid template name %q", name))
	}

	tmpl, err := templates.Load(templates.DirectorySource{Name: name, Path: source})
	if err != nil {
		return "", err
	}
	if len(tmpl.Skipped) > 0 {
		log.Warnf("Non-text files are copied but not used: %s",
			strings.Join(tmpl.Skipped, ", "))
	}

	if store.UserDir != "" {
		target := resolvePath(filepath.Join(store.UserDir, name))
		realSource := resolvePath(source)
		// Neither the user template root may be inside the imported directory nor
		// the imported directory inside the target replaced by the import.
		if isWithin(realSource, resolvePath(store.UserDir)) || isWithin(target, realSource) {
			return "", fmt.Errorf("cannot import %s into itself", source)
		}
	}

	target, err := prepareTarget(store, name, importCtx.Force)
	if err != nil {
		return "", err
	}
	if err := util.CopyDir(source, target); err != nil {
		return "", fmt.Errorf("failed to copy %s to %s: %s", source, target, err)
	}

	return target, nil
}

// resolvePath returns an absolute path with symlinks resolved. The longest existing
// prefix is resolved if the path does not exist.
func resolvePath(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	path = absPath
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	parent := filepath.Dir(path)
	if parent == path {
		return path
	}
	return filepath.Join(resolvePath(parent), filepath.Base(path))
}

// isWithin reports whether path is dir or is located under dir.
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && (rel == "." || filepath.IsLocal(rel))
}
