// Package cli provides the command-line interface for nlg.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/internal/cli/commands"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/internal/cli/config"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"

	// Register the built-in languages.
	_ "github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/languages/english"
	_ "github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/languages/portuguese"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nlg",
		Short: "nlg - surface realisation for English and Portuguese",
		Long: `nlg exposes the surface realisation stage of a natural language
generator: suffix attachment, variant generation, question word
classification, modifier punctuation and sentence finishing.

Every command works on the language selected with --language, by name
(english, portuguese) or BCP 47 tag (en-GB, pt-BR).`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cfg, cmd.ErrOrStderr())
			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./nlg.yaml)")
	rootCmd.PersistentFlags().StringP("language", "l", "", "Language name or BCP 47 tag (default: english)")
	rootCmd.PersistentFlags().String("lexicon", "", "Path to a YAML or SQLite lexicon")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("language", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return language.List(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewAttachCommand())
	rootCmd.AddCommand(commands.NewVariantsCommand())
	rootCmd.AddCommand(commands.NewLookupCommand())
	rootCmd.AddCommand(commands.NewClassifyCommand())
	rootCmd.AddCommand(commands.NewFormatCommand())
	rootCmd.AddCommand(commands.NewSentenceCommand())
	rootCmd.AddCommand(commands.NewLanguagesCommand())
	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for nlg.

To load completions:

Bash:
  $ source <(nlg completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ nlg completion bash > /etc/bash_completion.d/nlg
  # macOS:
  $ nlg completion bash > $(brew --prefix)/etc/bash_completion.d/nlg

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ nlg completion zsh > "${fpath[1]}/_nlg"

Fish:
  $ nlg completion fish | source

  # To load completions for each session, execute once:
  $ nlg completion fish > ~/.config/fish/completions/nlg.fish

PowerShell:
  PS> nlg completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
