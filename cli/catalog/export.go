package catalog

import (
	"github.com/procon-dev/procon/cli/templates"
)

// Export writes the unsubstituted built-in template into the user template root, so it
// can be customized. The exported copy takes precedence over the built-in template.
// Returns the exported template path.
func Export(store *templates.Store, name string, force bool) (string, error) {
	templateFs, err := builtinFS(store, name)
	if err != nil {
		return "", err
	}
	tmpl, err := templates.LoadFS(name, templateFs)
	if err != nil {
		return "", err
	}

	target, err := prepareTarget(store, name, force)
	if err != nil {
		return "", err
	}
	if err := templates.Materialize(tmpl, target); err != nil {
		return "", err
	}
	return target, nil
}
