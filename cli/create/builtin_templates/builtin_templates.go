// Package builtin_templates contains templates embedded into the procon executable.
package builtin_templates

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var TemplatesFs embed.FS

// Names contains built-in template names.
var Names = [...]string{"default", "advanced"}

// Descriptions contains a short description by built-in template name.
var Descriptions = map[string]string{
	"default":  "minimal executable project",
	"advanced": "project with a header library, sanitizers and sample input",
}

// FS returns built-in templates filesystem with a directory per template.
func FS() fs.FS {
	templatesFs, err := fs.Sub(TemplatesFs, "templates")
	if err != nil {
		// The embedded directory is always present.
		panic(err)
	}
	return templatesFs
}
