package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Template: TemplateOpts{Default: "default", Path: "/templates"},
		Project:  ProjectOpts{CppStandard: "17", CmakeMinimumVersion: "3.16"},
	}
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{
		"template.default",
		"template.path",
		"project.cpp_standard",
		"project.cmake_minimum_version",
	}, Keys())
}

func TestConfigGet(t *testing.T) {
	cfg := testConfig()

	for key, expected := range map[string]string{
		KeyTemplateDefault:     "default",
		KeyTemplatePath:        "/templates",
		KeyCppStandard:         "17",
		KeyCmakeMinimumVersion: "3.16",
	} {
		value, err := cfg.Get(key)
		require.NoError(t, err)
		assert.Equal(t, expected, value, key)
	}

	_, err := cfg.Get("project.name")
	assert.EqualError(t, err, "unknown configuration key: project.name")
}

func TestConfigSet(t *testing.T) {
	cfg := testConfig()

	require.NoError(t, cfg.Set(KeyCppStandard, "20"))
	require.NoError(t, cfg.Set(KeyCmakeMinimumVersion, "3.20"))
	require.NoError(t, cfg.Set(KeyTemplateDefault, "advanced"))
	require.NoError(t, cfg.Set(KeyTemplatePath, "/other"))

	assert.Equal(t, Config{
		Template: TemplateOpts{Default: "advanced", Path: "/other"},
		Project:  ProjectOpts{CppStandard: "20", CmakeMinimumVersion: "3.20"},
	}, cfg)
}

func TestConfigSetInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
		err   string
	}{
		{"unknown", "x", "unknown configuration key: unknown"},
		{KeyCppStandard, "19", "invalid value for project.cpp_standard"},
		{KeyCppStandard, "", "invalid value for project.cpp_standard"},
		{KeyCmakeMinimumVersion, "three", "invalid value for project.cmake_minimum_version"},
		{KeyCmakeMinimumVersion, "v3.16", "only numeric components are allowed"},
		{KeyCmakeMinimumVersion, "3.16-rc1", "only numeric components are allowed"},
		{KeyCmakeMinimumVersion, "1.2.3.4.5", "only numeric components are allowed"},
		{KeyTemplateDefault, "../x", "invalid template name"},
		{KeyTemplateDefault, "", "invalid template name"},
		{KeyTemplatePath, "", "template path cannot be empty"},
	}

	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			cfg := testConfig()
			err := cfg.Set(tc.key, tc.value)
			require.ErrorContains(t, err, tc.err)
			assert.Equal(t, testConfig(), cfg)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := testConfig()
	require.NoError(t, cfg.Validate())

	cfg.Project.CppStandard = "2a"
	assert.ErrorContains(t, cfg.Validate(), "project.cpp_standard")
}

func TestValidateCmakeVersion(t *testing.T) {
	for _, value := range []string{"3", "3.16", "3.28.1", "3.10.0.1"} {
		assert.NoError(t, ValidateCmakeVersion(value), value)
	}
}
