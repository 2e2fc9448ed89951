package templates

import (
	"errors"
	"fmt"
	"io/fs"
)

// ProjectExistsError is returned if the project destination is already present.
type ProjectExistsError struct {
	// Name is the project name.
	Name string
	// Path is the project destination path.
	Path string
}

func (e *ProjectExistsError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("project already exists: %s", e.Path)
	}
	return fmt.Sprintf("project '%s' already exists: %s", e.Name, e.Path)
}

// TemplateNotFoundError is returned if a template cannot be resolved by name or
// a resolved template misses a required file.
type TemplateNotFoundError struct {
	// Name is the template name.
	Name string
	// Reason is set if the template was found but it is incomplete.
	Reason string
}

func (e *TemplateNotFoundError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("template '%s' not found", e.Name)
	}
	return fmt.Sprintf("template '%s' is incomplete: %s", e.Name, e.Reason)
}

// IOError is a filesystem failure during template traversal, reading or writing.
type IOError struct {
	// Op is the failed operation.
	Op string
	// Path is the path the operation failed on.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *IOError) Error() string {
	cause := e.Err
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Op, e.Path, cause)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func newIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
