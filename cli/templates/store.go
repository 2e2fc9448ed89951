package templates

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"
)

// Store looks templates up by name. A directory in the user template root takes
// precedence over a built-in template of the same name.
type Store struct {
	// UserDir is the user template root. Empty value disables user templates.
	UserDir string
	// Builtin contains a directory per built-in template.
	Builtin fs.FS
}

// Info describes an available template.
type Info struct {
	// Name is the template name.
	Name string
	// Kind is the template source variant.
	Kind SourceKind
	// Location is the template directory or the built-in marker.
	Location string
	// Overrides is set for a user template hiding a built-in template.
	Overrides bool
}

// NewStore creates a template store.
func NewStore(userDir string, builtin fs.FS) *Store {
	return &Store{UserDir: userDir, Builtin: builtin}
}

// ValidName checks that the template name is a single path element.
func ValidName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && fs.ValidPath(name)
}

// isDir follows symlinks, so a linked template directory is accepted.
func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// Resolve returns the source of the named template. Once a user directory is found,
// it is returned even if its content turns out to be invalid later.
func (s *Store) Resolve(name string) (Source, error) {
	if !ValidName(name) {
		return nil, &TemplateNotFoundError{Name: name}
	}

	if s.UserDir != "" {
		templatePath := filepath.Join(s.UserDir, name)
		found, err := isDir(templatePath)
		if err != nil {
			return nil, newIOError("stat", templatePath, err)
		}
		if found {
			log.Debugf("Using template from %s", templatePath)
			return DirectorySource{Name: name, Path: templatePath}, nil
		}
	}

	if s.Builtin != nil {
		if info, err := fs.Stat(s.Builtin, name); err == nil && info.IsDir() {
			templateFs, err := fs.Sub(s.Builtin, name)
			if err != nil {
				return nil, newIOError("open", builtinLocation+" "+name, err)
			}
			log.Debugf("Using built-in template %s", name)
			return EmbeddedSource{Name: name, FS: templateFs}, nil
		}
	}

	return nil, &TemplateNotFoundError{Name: name}
}

// builtinNames returns names of built-in templates.
func (s *Store) builtinNames() (map[string]bool, error) {
	names := make(map[string]bool)
	if s.Builtin == nil {
		return names, nil
	}
	entries, err := fs.ReadDir(s.Builtin, ".")
	if err != nil {
		return nil, newIOError("read directory", builtinLocation, err)
	}
	for _, entry := range entries {
		if entry.IsDir() && ValidName(entry.Name()) {
			names[entry.Name()] = true
		}
	}
	return names, nil
}

// List returns all templates available by name, sorted by name. A user template hiding
// a built-in template is listed once.
func (s *Store) List() ([]Info, error) {
	builtins, err := s.builtinNames()
	if err != nil {
		return nil, err
	}

	infos := make([]Info, 0, len(builtins))
	userNames := make(map[string]bool)
	if s.UserDir != "" {
		entries, err := os.ReadDir(s.UserDir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, newIOError("read directory", s.UserDir, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if !ValidName(name) {
				continue
			}
			templatePath := filepath.Join(s.UserDir, name)
			if found, err := isDir(templatePath); err != nil || !found {
				continue
			}
			userNames[name] = true
			infos = append(infos, Info{
				Name:      name,
				Kind:      SourceUser,
				Location:  templatePath,
				Overrides: builtins[name],
			})
		}
	}

	for name := range builtins {
		if userNames[name] {
			continue
		}
		infos = append(infos, Info{Name: name, Kind: SourceBuiltin, Location: builtinLocation})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}
