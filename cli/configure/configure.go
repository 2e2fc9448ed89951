package configure

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"

	"github.com/procon-dev/procon/cli/cmdcontext"
	"github.com/procon-dev/procon/cli/config"
	"github.com/procon-dev/procon/cli/util"
)

const (
	// ConfigName is a default configuration file name.
	ConfigName = "procon.yaml"
	// ConfigDirName is a procon directory name in the user configuration directory.
	ConfigDirName = "procon"
	// configPathEnvName is an environment variable that contains a path to
	// the configuration file.
	configPathEnvName = "PROCON_CFG"
	// TemplatesDirName is a default user template root name.
	TemplatesDirName = "templates"
)

const (
	// DefaultTemplate is a template used by `new` when none is given.
	DefaultTemplate = "default"
	// DefaultCppStandard is a C++ standard substituted for {{CPP_STANDARD}}.
	DefaultCppStandard = "17"
	// DefaultCmakeMinimumVersion is a version substituted for {{CMAKE_VERSION}}.
	DefaultCmakeMinimumVersion = "3.16"
)

// configDirPerms is a permission set for created configuration directories.
const configDirPerms = 0750

// GetDefaultConfig returns `Config` filled with default values. The user template
// root is placed in configDir.
func GetDefaultConfig(configDir string) *config.Config {
	return &config.Config{
		Template: config.TemplateOpts{
			Default: DefaultTemplate,
			Path:    filepath.Join(configDir, TemplatesDirName),
		},
		Project: config.ProjectOpts{
			CppStandard:         DefaultCppStandard,
			CmakeMinimumVersion: DefaultCmakeMinimumVersion,
		},
	}
}

// adjustPathWithConfigLocation adjust provided filePath with configDir.
// Absolute filePath is returned as is. Relative filePath is calculated relative to configDir.
// If filePath is empty, defaultDirName is appended to configDir.
func adjustPathWithConfigLocation(filePath, configDir string,
	defaultDirName string,
) (string, error) {
	if filePath == "" {
		return filepath.Abs(filepath.Join(configDir, defaultDirName))
	}
	if filepath.IsAbs(filePath) {
		return filePath, nil
	}
	return filepath.Abs(filepath.Join(configDir, filePath))
}

// updateConfig resolves all paths in config relative to configDir.
func updateConfig(cfg *config.Config, configDir string) error {
	var err error
	if cfg.Template.Path, err = adjustPathWithConfigLocation(cfg.Template.Path, configDir,
		TemplatesDirName); err != nil {
		return err
	}
	return nil
}

func decodeConfig(input map[string]any, cfg *config.Config) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// GetConfigDir returns procon directory in the user configuration directory.
// $XDG_CONFIG_HOME is used if set.
func GetConfigDir() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to detect user configuration directory: %w", err)
	}
	return filepath.Join(userConfigDir, ConfigDirName), nil
}

// getConfigPath returns configuration file path from the environment or the default one.
func getConfigPath() (string, error) {
	if configPath := os.Getenv(configPathEnvName); configPath != "" {
		return configPath, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigName), nil
}

// GetConfig returns procon configuration from the config file located at
// configPath. Defaults are returned if the file does not exist.
func GetConfig(configPath string) (*config.Config, error) {
	var err error
	if configPath, err = filepath.Abs(configPath); err != nil {
		return nil, fmt.Errorf("cannot determine config file path: %s", err)
	}
	configDir := filepath.Dir(configPath)
	cfg := GetDefaultConfig(configDir)

	foundPath, err := util.GetYamlFileName(configPath, true)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debugf("Configuration file %s is not found, using defaults", configPath)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to get access to configuration file: %s", err)
	}

	rawConfig, err := util.ParseYAML(foundPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse procon configuration: %s", err)
	}
	if err := decodeConfig(rawConfig, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse procon configuration: %s", err)
	}
	if err := updateConfig(cfg, configDir); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to parse procon configuration: %s", err)
	}

	log.Debugf("Configuration loaded from %s", foundPath)
	return cfg, nil
}

// SaveConfig writes cfg to configPath creating the parent directory.
func SaveConfig(configPath string, cfg *config.Config) error {
	if err := util.CreateDirectory(filepath.Dir(configPath), configDirPerms); err != nil {
		return fmt.Errorf("failed to create configuration directory: %s", err)
	}
	if err := util.WriteYaml(configPath, cfg); err != nil {
		return fmt.Errorf("failed to write configuration file %s: %s", configPath, err)
	}
	return nil
}

// Cli performs initial CLI configuration.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if cmdCtx.Cli.ConfigPath == "" {
		configPath, err := getConfigPath()
		if err != nil {
			return err
		}
		cmdCtx.Cli.ConfigPath = configPath
	}

	configPath, err := filepath.Abs(cmdCtx.Cli.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path to configuration file: %s", err)
	}
	if configPath, err = util.GetYamlFileName(configPath, false); err != nil {
		return err
	}
	cmdCtx.Cli.ConfigPath = configPath
	cmdCtx.Cli.ConfigDir = filepath.Dir(configPath)
	log.Debugf("Configuration file: %s", configPath)

	return nil
}
