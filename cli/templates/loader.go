package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/apex/log"
)

// loader reads a template from a filesystem rooted at the template directory.
type loader struct {
	// name is the template name used in errors.
	name string
	// fsys is rooted at the template directory.
	fsys fs.FS
	// root is the template location used in messages.
	root string
}

// location returns a template file location for messages.
func (l *loader) location(key string) string {
	if key == "." {
		return l.root
	}
	return filepath.Join(l.root, filepath.FromSlash(key))
}

// Load reads the template from the resolved source.
func Load(src Source) (Template, error) {
	l := loader{name: src.TemplateName(), fsys: src.open(), root: src.Location()}
	return l.load()
}

// LoadFS reads the template named name from fsys rooted at the template directory.
func LoadFS(name string, fsys fs.FS) (Template, error) {
	l := loader{name: name, fsys: fsys, root: name}
	return l.load()
}

func (l *loader) load() (Template, error) {
	files := make(map[string]string)

	// Required files are loaded first, so an incomplete template fails before
	// the walk.
	for _, required := range RequiredFiles {
		data, err := fs.ReadFile(l.fsys, required)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Template{}, &TemplateNotFoundError{
					Name:   l.name,
					Reason: fmt.Sprintf("%s not found in template", required),
				}
			}
			return Template{}, newIOError("read", l.location(required), err)
		}
		if !utf8.Valid(data) {
			return Template{}, &TemplateNotFoundError{
				Name:   l.name,
				Reason: fmt.Sprintf("%s is not a text file", required),
			}
		}
		files[required] = string(data)
	}

	skipped, err := l.walk(files)
	if err != nil {
		return Template{}, err
	}
	if len(skipped) > 0 {
		log.Warnf("%d non-text file(s) of template %s are not copied", len(skipped), l.name)
	}

	return Template{Files: files, Skipped: skipped}, nil
}

// walk loads all files except the required ones into files. Directories are visited
// from an explicit stack, so the nesting depth does not grow the call stack.
// Returns paths of skipped non-text files.
func (l *loader) walk(files map[string]string) ([]string, error) {
	var skipped []string
	pending := []string{"."}

	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := fs.ReadDir(l.fsys, dir)
		if err != nil {
			return nil, newIOError("read directory", l.location(dir), err)
		}

		for _, entry := range entries {
			key := entry.Name()
			if dir != "." {
				key = dir + "/" + key
			}

			isDir := entry.IsDir()
			isFile := entry.Type().IsRegular()
			if entry.Type()&fs.ModeSymlink != 0 {
				info, err := fs.Stat(l.fsys, key)
				if err != nil {
					log.Warnf("Skipping broken link %s: %s", l.location(key), err)
					continue
				}
				if info.IsDir() {
					log.Warnf("Skipping linked directory %s", l.location(key))
					continue
				}
				isFile = info.Mode().IsRegular()
			}

			switch {
			case isDir:
				pending = append(pending, key)
			case isFile:
				if dir == "." && isRequired(key) {
					continue
				}
				data, err := fs.ReadFile(l.fsys, key)
				if err != nil {
					return nil, newIOError("read", l.location(key), err)
				}
				if !utf8.Valid(data) {
					log.Warnf("Skipping %s: not a text file", l.location(key))
					skipped = append(skipped, key)
					continue
				}
				files[key] = string(data)
			default:
				log.Debugf("Skipping %s: not a regular file", l.location(key))
			}
		}
	}

	sort.Strings(skipped)
	return skipped, nil
}
