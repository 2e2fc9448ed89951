package cmd

import (
	"github.com/spf13/cobra"

	"github.com/procon-dev/procon/cli/cmdcontext"
	"github.com/procon-dev/procon/cli/create/builtin_templates"
	"github.com/procon-dev/procon/cli/templates"
	"github.com/procon-dev/procon/cli/util"
)

// moduleFunc is an internal implementation of a command.
type moduleFunc func(cmdCtx *cmdcontext.CmdCtx, args []string) error

// RunModuleFunc returns a cobra run function calling the internal command implementation
// and handling its error.
func RunModuleFunc(internalModule moduleFunc) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		cmdCtx.CommandName = cmd.Name()
		err := internalModule(&cmdCtx, args)
		util.HandleCmdErr(cmd, err)
	}
}

// newTemplateStore returns the template store for the loaded configuration.
func newTemplateStore() (*templates.Store, error) {
	cfg, err := getCliOpts()
	if err != nil {
		return nil, err
	}
	return templates.NewStore(cfg.Template.Path, builtin_templates.FS()), nil
}

// templateNamesCompletion returns available template names for shell completion.
func templateNamesCompletion(_ *cobra.Command, _ []string,
	_ string,
) ([]string, cobra.ShellCompDirective) {
	store, err := newTemplateStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	infos, err := store.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name+"\t"+info.Kind.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
