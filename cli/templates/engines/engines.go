// Package engines provides template engine interface and implementations.
package engines

// TemplateEngine is an interface to support to use for project template instantiation.
type TemplateEngine interface {
	// RenderText applies vars to the template text. Returns instantiated text.
	RenderText(in string, vars map[string]string) string
}

// NewDefaultEngine creates and returns default template engine.
func NewDefaultEngine() TemplateEngine {
	return TokenEngine{}
}
