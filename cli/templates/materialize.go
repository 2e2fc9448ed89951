package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

const (
	dirPermissions  = os.FileMode(0755)
	filePermissions = os.FileMode(0644)
)

// Materialize writes template files under dest. dest must not exist. Files already
// written are left in place if a write fails.
func Materialize(t Template, dest string) error {
	if _, err := os.Lstat(dest); err == nil {
		return &ProjectExistsError{Name: filepath.Base(dest), Path: dest}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return newIOError("stat", dest, err)
	}

	keys := t.Keys()
	for _, key := range keys {
		if !validKey(key) {
			return fmt.Errorf("invalid template file path %q", key)
		}
	}

	if err := os.MkdirAll(dest, dirPermissions); err != nil {
		return newIOError("create directory", dest, err)
	}

	for _, key := range keys {
		filePath := filepath.Join(dest, filepath.FromSlash(key))
		if dir := filepath.Dir(filePath); dir != dest {
			if err := os.MkdirAll(dir, dirPermissions); err != nil {
				return newIOError("create directory", dir, err)
			}
		}
		if err := os.WriteFile(filePath, []byte(t.Files[key]), filePermissions); err != nil {
			return newIOError("write", filePath, err)
		}
		log.Debugf("Created %s", filePath)
	}

	return nil
}
