// Package catalog manages the user template root: listing, importing, exporting
// and comparing templates.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/procon-dev/procon/cli/templates"
)

const templatesDirPerms = os.FileMode(0750)

// builtinFS returns the named built-in template filesystem.
func builtinFS(store *templates.Store, name string) (fs.FS, error) {
	if store.Builtin == nil || !templates.ValidName(name) {
		return nil, &templates.TemplateNotFoundError{Name: name}
	}
	info, err := fs.Stat(store.Builtin, name)
	if err != nil || !info.IsDir() {
		return nil, &templates.TemplateNotFoundError{Name: name}
	}
	return fs.Sub(store.Builtin, name)
}

// prepareTarget returns the user template directory for name. An existing directory
// is removed if force is set.
func prepareTarget(store *templates.Store, name string, force bool) (string, error) {
	if store.UserDir == "" {
		return "", fmt.Errorf("user template directory is not configured")
	}
	target := filepath.Join(store.UserDir, name)

	if _, err := os.Lstat(target); err == nil {
		if !force {
			return "", fmt.Errorf("template '%s' already exists: %s, use --force to overwrite",
				name, target)
		}
		if err := os.RemoveAll(target); err != nil {
			return "", fmt.Errorf("failed to remove %s: %s", target, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to get access to %s: %s", target, err)
	}

	if err := os.MkdirAll(store.UserDir, templatesDirPerms); err != nil {
		return "", fmt.Errorf("failed to create template directory: %s", err)
	}
	return target, nil
}
