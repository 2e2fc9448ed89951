package templates

import (
	"io/fs"
	"os"
)

// SourceKind tells where template files come from.
type SourceKind int

const (
	// SourceBuiltin is a template embedded into the executable.
	SourceBuiltin SourceKind = iota
	// SourceUser is a template directory in the user template root.
	SourceUser
)

// builtinLocation is reported as a location of embedded templates.
const builtinLocation = "<built-in>"

func (kind SourceKind) String() string {
	switch kind {
	case SourceBuiltin:
		return "built-in"
	case SourceUser:
		return "user"
	}
	return "unknown"
}

// Source is a resolved template origin. It is either EmbeddedSource or DirectorySource.
type Source interface {
	// TemplateName returns the name the template was resolved by.
	TemplateName() string
	// Kind returns the source variant.
	Kind() SourceKind
	// Location describes where template files are read from.
	Location() string

	open() fs.FS
}

// EmbeddedSource is a built-in template.
type EmbeddedSource struct {
	// Name is the template name.
	Name string
	// FS is rooted at the template directory.
	FS fs.FS
}

func (src EmbeddedSource) TemplateName() string { return src.Name }

func (EmbeddedSource) Kind() SourceKind { return SourceBuiltin }

func (src EmbeddedSource) Location() string { return builtinLocation + " " + src.Name }

func (src EmbeddedSource) open() fs.FS { return src.FS }

// DirectorySource is a template directory on the filesystem.
type DirectorySource struct {
	// Name is the template name.
	Name string
	// Path is the template root directory.
	Path string
}

func (src DirectorySource) TemplateName() string { return src.Name }

func (DirectorySource) Kind() SourceKind { return SourceUser }

func (src DirectorySource) Location() string { return src.Path }

func (src DirectorySource) open() fs.FS { return os.DirFS(src.Path) }
