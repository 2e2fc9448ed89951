package cmdcontext

// CmdCtx is the main structure of the program context.
// Contains within itself other structures of CLI modules.
type CmdCtx struct {
	// Cli - CLI context. Contains flags passed when starting
	// procon and some other parameters.
	Cli CliCtx
	// CommandName contains name of the command.
	CommandName string
}

// CliCtx - CLI context. Contains flags passed when starting
// procon and some other parameters.
type CliCtx struct {
	// Path to procon configuration file.
	ConfigPath string
	// ConfigDir is procon configuration file directory.
	ConfigDir string
	// Verbose logging flag. Enables debug log output.
	Verbose bool
}
