package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kodylow/botimint/internal/config"
	"github.com/Kodylow/botimint/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootFlags struct {
	envFile  string
	stateDir string
	rpcPath  string
	logLevel string
	theme    string
}

var rootCmd = &cobra.Command{
	Use:   "botimint",
	Short: "Botimint - Core Lightning over Discord slash commands",
	Long: `Botimint publishes the Core Lightning JSON-RPC as Discord slash commands
and answers them from one node connection. The CLI talks to a running bot
through its control socket.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		ui.SetTheme(ui.ThemeByName(rootFlags.theme))
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("botimint version %s (commit: %s, built: %s)\n", version, commit, date))

	// Prepend the banner to help output when running interactively.
	defaultHelp := rootCmd.HelpTemplate()
	rootCmd.SetHelpTemplate("{{banner}}" + defaultHelp)
	cobra.AddTemplateFunc("banner", ui.Banner)

	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.envFile, "env-file", config.DefaultEnvFile, "dotenv file with settings; must exist when given explicitly")
	f.StringVar(&rootFlags.stateDir, "state-dir", "", "State directory (default: ~/.local/state/botimint)")
	f.StringVar(&rootFlags.rpcPath, "rpc-path", "", "Core Lightning RPC socket (overrides "+config.KeyRPCPath+")")
	f.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&rootFlags.theme, "theme", "default", "Color theme: "+strings.Join(ui.ListThemes(), ", "))

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads env and the dotenv file, then applies persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envExplicit := cmd.Flags().Changed("env-file")
	cfg, err := config.Load(rootFlags.envFile, envExplicit)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if rootFlags.stateDir != "" {
		overrides := config.Default(rootFlags.stateDir)
		cfg.StateDir = overrides.StateDir
		cfg.LogPath = overrides.LogPath
		cfg.ReportPath = overrides.ReportPath
	}
	if rootFlags.rpcPath != "" {
		cfg.RPCPath = rootFlags.rpcPath
	}
	if rootFlags.logLevel != "" {
		cfg.LogLevel = rootFlags.logLevel
	}
	return cfg, nil
}
