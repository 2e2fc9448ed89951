package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/procon-dev/procon/cli/cmdcontext"
	"github.com/procon-dev/procon/cli/config"
	"github.com/procon-dev/procon/cli/configure"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.Config
	// cliOptsErr is set if the configuration file could not be loaded. Commands
	// depending on the configuration report it.
	cliOptsErr error
	rootCmd    *cobra.Command
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "procon",
		Short: "C++ project generator",
		Long:  "Utility for creating C++ projects from built-in and user templates",
		Example: `$ procon new demo
  $ procon new solver --template advanced --path ~/contests
  $ procon templates list`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose output")

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewCompletionCmd(),
		NewNewCmd(),
		NewInitCmd(),
		NewConfigCmd(),
		NewTemplatesCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err.Error())
	}
}

// InitRoot initializes global flags and configures CLI.
func InitRoot() {
	rootCmd = NewCmdRoot()
	rootCmd.ParseFlags(os.Args)

	if err := configure.Cli(&cmdCtx); err != nil {
		log.Fatalf("Failed to configure procon: %s", err)
	}

	cliOpts, cliOptsErr = configure.GetConfig(cmdCtx.Cli.ConfigPath)
}

// getCliOpts returns loaded procon configuration.
func getCliOpts() (*config.Config, error) {
	if cliOptsErr != nil {
		return nil, cliOptsErr
	}
	if cliOpts == nil {
		return configure.GetDefaultConfig(cmdCtx.Cli.ConfigDir), nil
	}
	return cliOpts, nil
}
