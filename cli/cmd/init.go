package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/procon-dev/procon/cli/cmdcontext"
	"github.com/procon-dev/procon/cli/configure"
	init_pkg "github.com/procon-dev/procon/cli/init"
)

var initCtx init_pkg.InitCtx

// NewInitCmd writes the default procon configuration and creates the user templates
// directory.
func NewInitCmd() *cobra.Command {
	var initCmd = &cobra.Command{
		Use:   "init [flags]",
		Short: "Create procon configuration with default values",
		Run:   RunModuleFunc(internalInitModule),
		Args:  cobra.NoArgs,
	}

	initCmd.Flags().BoolVarP(&initCtx.ForceMode, "force", "f", false,
		fmt.Sprintf(`Force re-write existing %s`, configure.ConfigName))

	return initCmd
}

// internalInitModule is a default init module.
func internalInitModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	init_pkg.FillCtx(&initCtx, cmdCtx.Cli.ConfigPath)
	return init_pkg.Run(&initCtx)
}
