package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/procon-dev/procon/cli/cmdcontext"
	"github.com/procon-dev/procon/cli/config"
	"github.com/procon-dev/procon/cli/configure"
)

// NewConfigCmd creates a command to show and change configuration values.
func NewConfigCmd() *cobra.Command {
	var configCmd = &cobra.Command{
		Use:   "config [<KEY> [<VALUE>]]",
		Short: "Show or change procon configuration",
		Run:   RunModuleFunc(internalConfigModule),
		Args:  cobra.MaximumNArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string,
			toComplete string,
		) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return config.Keys(), cobra.ShellCompDirectiveNoFileComp
		},
		Long: "Show or change procon configuration.\n\nKeys:\n" + keysHelp(),
		Example: `
# Show all configuration values.

    $ procon config

# Use C++20 in new projects.

    $ procon config project.cpp_standard 20`,
	}

	return configCmd
}

// keysHelp returns supported keys list for the help message.
func keysHelp() string {
	help := ""
	for _, key := range config.Keys() {
		help += "\t" + key + "\n"
	}
	return help
}

// printConfig prints all configuration values.
func printConfig(out io.Writer, cfg *config.Config) error {
	for _, key := range config.Keys() {
		value, err := cfg.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", key, value)
	}
	return nil
}

// internalConfigModule is a default config module.
func internalConfigModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	cfg, err := getCliOpts()
	if err != nil {
		return err
	}

	switch len(args) {
	case 0:
		return printConfig(os.Stdout, cfg)
	case 1:
		value, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	}

	if err := cfg.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := configure.SaveConfig(cmdCtx.Cli.ConfigPath, cfg); err != nil {
		return err
	}
	log.Infof("%s is set to %s", args[0], args[1])
	return nil
}
