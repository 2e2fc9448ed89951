package templates

import "github.com/procon-dev/procon/cli/templates/engines"

const (
	// VarProjectName is replaced with the project name.
	VarProjectName = "PROJECT_NAME"
	// VarCMakeVersion is replaced with the minimum CMake version.
	VarCMakeVersion = "CMAKE_VERSION"
	// VarCppStandard is replaced with the C++ standard.
	VarCppStandard = "CPP_STANDARD"
)

// Apply substitutes vars in every template file using the default engine.
func Apply(t Template, vars map[string]string) Template {
	return ApplyWith(engines.NewDefaultEngine(), t, vars)
}

// ApplyWith substitutes vars in every template file using engine. The source template
// is not modified.
func ApplyWith(engine engines.TemplateEngine, t Template, vars map[string]string) Template {
	files := make(map[string]string, len(t.Files))
	for key, content := range t.Files {
		files[key] = engine.RenderText(content, vars)
	}

	var skipped []string
	if t.Skipped != nil {
		skipped = append(skipped, t.Skipped...)
	}
	return Template{Files: files, Skipped: skipped}
}
