package init

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"

	"github.com/procon-dev/procon/cli/configure"
	"github.com/procon-dev/procon/cli/util"
)

const (
	defaultDirPermissions = os.FileMode(0750)
)

// InitCtx contains information for procon config creation.
type InitCtx struct {
	// ConfigPath is the configuration file to write.
	ConfigPath string
	// ForceMode, if set, procon config is re-written without a question.
	ForceMode bool
	// reader to use for reading user input.
	reader io.Reader
}

// FillCtx initializes init context.
func FillCtx(initCtx *InitCtx, configPath string) {
	initCtx.ConfigPath = configPath
	initCtx.reader = os.Stdin
}

// checkExistingConfig checks procon config for existence and asks for confirmation to
// overwrite. Returns false if init must not continue.
func checkExistingConfig(initCtx *InitCtx) (bool, error) {
	if _, err := os.Stat(initCtx.ConfigPath); err == nil {
		if initCtx.ForceMode {
			return true, nil
		}
		confirmed, err := util.AskConfirm(initCtx.reader,
			fmt.Sprintf("%s already exists. Overwrite?", initCtx.ConfigPath))
		if err != nil {
			return false, err
		}
		if !confirmed {
			log.Info("Init is cancelled by user.")
		}
		return confirmed, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	return true, nil
}

// configDir returns the absolute directory of the configuration file.
func configDir(configPath string) string {
	if absPath, err := filepath.Abs(configPath); err == nil {
		configPath = absPath
	}
	return filepath.Dir(configPath)
}

// Run writes the default procon configuration and creates the user template root.
func Run(initCtx *InitCtx) error {
	if initCtx.reader == nil {
		initCtx.reader = os.Stdin
	}
	if initCtx.ConfigPath == "" {
		return fmt.Errorf("configuration file path is not set")
	}

	proceed, err := checkExistingConfig(initCtx)
	if !proceed {
		return err
	}

	cfg := configure.GetDefaultConfig(configDir(initCtx.ConfigPath))
	if err := configure.SaveConfig(initCtx.ConfigPath, cfg); err != nil {
		return err
	}
	log.Infof("Configuration is written to '%s'", initCtx.ConfigPath)

	if err := util.CreateDirectory(cfg.Template.Path, defaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create template directory: %s", err)
	}
	log.Infof("Templates directory: '%s'", cfg.Template.Path)

	return nil
}
