// Package templates resolves, loads, fills and writes project templates.
//
// A template is a set of text files keyed by their slash separated path relative to
// the template root. It is resolved by name from a Store, read by Load, rewritten by
// Apply and written to disk by Materialize.
package templates

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

const (
	// MainFile is the program entry point every template must provide.
	MainFile = "main.cpp"
	// BuildFile is the build description every template must provide.
	BuildFile = "CMakeLists.txt"
)

// RequiredFiles are the files a template root must contain to be usable.
var RequiredFiles = [...]string{MainFile, BuildFile}

// Template is an in-memory project template.
type Template struct {
	// Files maps relative slash separated paths to file contents.
	Files map[string]string
	// Skipped contains relative paths of files left out by the loader because they
	// are not text files.
	Skipped []string
}

// Keys returns file paths of the template in lexical order.
func (t Template) Keys() []string {
	keys := make([]string, 0, len(t.Files))
	for key := range t.Files {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// isRequired reports whether a root level file name is one of the required files.
func isRequired(name string) bool {
	for _, required := range RequiredFiles {
		if name == required {
			return true
		}
	}
	return false
}

// validKey checks that key is a relative slash separated path inside the template root.
func validKey(key string) bool {
	return key != "." && fs.ValidPath(key) && filepath.IsLocal(filepath.FromSlash(key))
}

// Validate checks template paths and presence of the required files.
func (t Template) Validate() error {
	for _, key := range t.Keys() {
		if !validKey(key) {
			return fmt.Errorf("invalid template file path %q", key)
		}
	}
	for _, required := range RequiredFiles {
		if _, found := t.Files[required]; !found {
			return fmt.Errorf("%s not found in template", required)
		}
	}
	return nil
}
