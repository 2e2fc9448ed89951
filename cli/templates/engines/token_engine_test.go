package engines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const templateText = `cmake_minimum_required(VERSION {{CMAKE_VERSION}})
project({{PROJECT_NAME}})
add_executable({{PROJECT_NAME}} main.cpp)`

func TestTokenEngineRenderText(t *testing.T) {
	vars := map[string]string{
		"PROJECT_NAME":  "demo",
		"CMAKE_VERSION": "3.20",
	}

	engine := NewDefaultEngine()
	const expected = `cmake_minimum_required(VERSION 3.20)
project(demo)
add_executable(demo main.cpp)`
	require.Equal(t, expected, engine.RenderText(templateText, vars))
}

func TestTokenEngineRenderTextNoVars(t *testing.T) {
	engine := TokenEngine{}
	assert.Equal(t, templateText, engine.RenderText(templateText, nil))
	assert.Equal(t, templateText, engine.RenderText(templateText, map[string]string{}))
}

func TestTokenEngineRenderTextEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		vars     map[string]string
		expected string
	}{
		{
			name:     "unknown token is kept",
			in:       "{{PROJECT_NAME}} {{UNKNOWN}}",
			vars:     map[string]string{"PROJECT_NAME": "app"},
			expected: "app {{UNKNOWN}}",
		},
		{
			name:     "no go template syntax",
			in:       "{{ .PROJECT_NAME }} {{.PROJECT_NAME}}",
			vars:     map[string]string{"PROJECT_NAME": "app"},
			expected: "{{ .PROJECT_NAME }} {{.PROJECT_NAME}}",
		},
		{
			name: "value is not substituted again",
			in:   "{{PROJECT_NAME}}-{{CPP_STANDARD}}",
			vars: map[string]string{
				"PROJECT_NAME": "{{CPP_STANDARD}}",
				"CPP_STANDARD": "17",
			},
			expected: "{{CPP_STANDARD}}-17",
		},
		{
			name:     "adjacent tokens",
			in:       "{{A}}{{B}}{{A}}",
			vars:     map[string]string{"A": "1", "B": "2"},
			expected: "121",
		},
		{
			name:     "unbalanced braces",
			in:       "{{A} {A}} {{{A}}}",
			vars:     map[string]string{"A": "x"},
			expected: "{{A} {A}} {x}",
		},
	}

	engine := TokenEngine{}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, engine.RenderText(tc.in, tc.vars))
		})
	}
}

func TestToken(t *testing.T) {
	assert.Equal(t, "{{PROJECT_NAME}}", Token("PROJECT_NAME"))
}
