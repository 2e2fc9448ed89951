package engines

import (
	"sort"
	"strings"
)

const (
	tokenOpen  = "{{"
	tokenClose = "}}"
)

// TokenEngine replaces literal {{NAME}} placeholders. There is no expression syntax:
// a placeholder is either a known variable name or left as is.
type TokenEngine struct {
}

// Token returns the placeholder text for the variable name.
func Token(name string) string {
	return tokenOpen + name + tokenClose
}

// NewReplacer builds a single pass replacer for vars. Replaced values are never scanned
// again, so a value that looks like a placeholder is inserted verbatim.
func NewReplacer(vars map[string]string) *strings.Replacer {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	oldnew := make([]string, 0, len(names)*2)
	for _, name := range names {
		oldnew = append(oldnew, Token(name), vars[name])
	}
	return strings.NewReplacer(oldnew...)
}

// RenderText substitutes vars in the text.
func (TokenEngine) RenderText(in string, vars map[string]string) string {
	if len(vars) == 0 {
		return in
	}
	return NewReplacer(vars).Replace(in)
}
