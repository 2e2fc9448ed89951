package config

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-version"

	"github.com/procon-dev/procon/cli/templates"
)

// Config is the procon configuration stored in procon.yaml.
//
// procon.yaml file format:
// template:
//   default: name
//   path: path/to/templates
// project:
//   cpp_standard: "17"
//   cmake_minimum_version: "3.16"
type Config struct {
	// Template contains template lookup options.
	Template TemplateOpts `mapstructure:"template" yaml:"template"`
	// Project contains values substituted into generated projects.
	Project ProjectOpts `mapstructure:"project" yaml:"project"`
}

// TemplateOpts contains configuration for project templates.
type TemplateOpts struct {
	// Default is a template used if no template is specified.
	Default string `mapstructure:"default" yaml:"default"`
	// Path is the user template root. A template in this directory hides
	// a built-in template with the same name.
	Path string `mapstructure:"path" yaml:"path"`
}

// ProjectOpts contains project settings.
type ProjectOpts struct {
	// CppStandard is the C++ standard, e.g. "17".
	CppStandard string `mapstructure:"cpp_standard" yaml:"cpp_standard"`
	// CmakeMinimumVersion is the minimum required CMake version.
	CmakeMinimumVersion string `mapstructure:"cmake_minimum_version" yaml:"cmake_minimum_version"`
}

const (
	KeyTemplateDefault     = "template.default"
	KeyTemplatePath        = "template.path"
	KeyCppStandard         = "project.cpp_standard"
	KeyCmakeMinimumVersion = "project.cmake_minimum_version"
)

// CppStandards contains supported C++ standard values.
var CppStandards = []string{"98", "03", "11", "14", "17", "20", "23", "26"}

// field describes a configuration key.
type field struct {
	key      string
	value    func(cfg *Config) *string
	validate func(value string) error
}

var fields = []field{
	{
		key:   KeyTemplateDefault,
		value: func(cfg *Config) *string { return &cfg.Template.Default },
		validate: func(value string) error {
			if !templates.ValidName(value) {
				return fmt.Errorf("invalid template name %q", value)
			}
			return nil
		},
	},
	{
		key:   KeyTemplatePath,
		value: func(cfg *Config) *string { return &cfg.Template.Path },
		validate: func(value string) error {
			if value == "" {
				return fmt.Errorf("template path cannot be empty")
			}
			return nil
		},
	},
	{
		key:      KeyCppStandard,
		value:    func(cfg *Config) *string { return &cfg.Project.CppStandard },
		validate: ValidateCppStandard,
	},
	{
		key:      KeyCmakeMinimumVersion,
		value:    func(cfg *Config) *string { return &cfg.Project.CmakeMinimumVersion },
		validate: ValidateCmakeVersion,
	},
}

func lookup(key string) (field, error) {
	for _, f := range fields {
		if f.key == key {
			return f, nil
		}
	}
	return field{}, fmt.Errorf("unknown configuration key: %s", key)
}

// Keys returns supported configuration keys.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.key)
	}
	return keys
}

// Get returns the value of the dotted key.
func (cfg *Config) Get(key string) (string, error) {
	f, err := lookup(key)
	if err != nil {
		return "", err
	}
	return *f.value(cfg), nil
}

// Set validates and sets the value of the dotted key.
func (cfg *Config) Set(key, value string) error {
	f, err := lookup(key)
	if err != nil {
		return err
	}
	if err := f.validate(value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*f.value(cfg) = value
	return nil
}

// Validate checks all configuration values.
func (cfg *Config) Validate() error {
	for _, f := range fields {
		if err := f.validate(*f.value(cfg)); err != nil {
			return fmt.Errorf("invalid value for %s: %w", f.key, err)
		}
	}
	return nil
}

// ValidateCppStandard checks that value is a supported C++ standard.
func ValidateCppStandard(value string) error {
	if !slices.Contains(CppStandards, value) {
		return fmt.Errorf("unsupported C++ standard %q, expected one of %v",
			value, CppStandards)
	}
	return nil
}

// ValidateCmakeVersion checks that value is a version CMake accepts in
// cmake_minimum_required.
func ValidateCmakeVersion(value string) error {
	ver, err := version.NewVersion(value)
	if err != nil {
		return fmt.Errorf("malformed version %q: %w", value, err)
	}
	if ver.Prerelease() != "" || ver.Metadata() != "" || len(ver.Segments()) > 4 ||
		value[0] < '0' || value[0] > '9' {
		return fmt.Errorf("malformed version %q: only numeric components are allowed",
			value)
	}
	return nil
}
