package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/planck-ai/planck/internal/config"
	"github.com/planck-ai/planck/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "planck",
	Short: "Planck - STRIPS planner for PDDL problems",
	Long: `Planck is a heuristic search planner for STRIPS planning problems
written in PDDL. It grounds a domain and problem description into a
propositional encoding and runs weighted A* guided by a relaxation
heuristic.

Run 'planck solve -o <domain> -f <problem>' to solve a problem.`,
	PersistentPreRunE: loadGlobalFlags,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command with signal handling
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// loadGlobalFlags is called before any command runs to validate global flags
// and report a missing config file in verbose mode.
func loadGlobalFlags(cmd *cobra.Command, args []string) error {
	flags, err := ParseGlobalFlags(cmd)
	if err != nil {
		return err
	}

	// Version, help and completion never need configuration
	if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}

	// Commands handle a missing config gracefully by falling back to defaults
	configFile := resolveConfigPath()
	if _, err := os.Stat(configFile); err != nil {
		if os.IsNotExist(err) && flags.IsVerbose() {
			cmd.PrintErrf("Config file not found at %s, using defaults\n", configFile)
		}
	}

	return nil
}

// resolveHomeDir returns the planck home directory: the --home flag, the
// PLANCK_HOME environment variable, or ~/.planck.
func resolveHomeDir() string {
	if globalFlags.HomeDir != "" {
		return globalFlags.HomeDir
	}
	if home := os.Getenv("PLANCK_HOME"); home != "" {
		return home
	}
	return config.DefaultHomeDir()
}

// resolveConfigPath returns the config file path: the --config flag, the
// PLANCK_CONFIG environment variable, or <home>/config.yaml. The environment
// variables also reach the solve command, which parses its own arguments.
func resolveConfigPath() string {
	if globalFlags.ConfigFile != "" {
		return globalFlags.ConfigFile
	}
	if path := os.Getenv("PLANCK_CONFIG"); path != "" {
		return path
	}
	return config.DefaultConfigPath(resolveHomeDir())
}

func init() {
	RegisterGlobalFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for planck.

To load completions:

Bash:

  $ source <(planck completion bash)

  # To load completions for each session, execute once:
  $ planck completion bash > /etc/bash_completion.d/planck

Zsh:

  $ planck completion zsh > "${fpath[1]}/_planck"

  # You will need to start a new shell for this setup to take effect.

Fish:

  $ planck completion fish | source

  # To load completions for each session, execute once:
  $ planck completion fish > ~/.config/fish/completions/planck.fish

PowerShell:

  PS> planck completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			_ = cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			_ = cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			_ = cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			_ = cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}
