package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/tapeworm/internal/config"
	"github.com/thruflo/tapeworm/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand builds the tapeworm command tree. Each call returns fresh
// commands with fresh flag state.
func NewRootCommand() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "tapeworm",
		Short: "Interpreter for eight-command tape programs",
		Long: `Tapeworm runs programs written with the eight commands > < + - . , [ ]
against a circular tape of byte cells. Every other character is a comment.

Settings are read from .tapeworm/config.yaml in the current directory, or
from the file given with --config. Flags override the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetOutput(log.New(cmd.ErrOrStderr(), "tapeworm: ", 0))
		},
	}
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("tapeworm version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to a config file (default .tapeworm/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newRunCmd(g))
	rootCmd.AddCommand(newCheckCmd(g))
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// loadConfig resolves the config file and applies the log level. The
// --log-level flag wins over the file.
func (g *globalOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if g.configPath != "" {
		cfg, err = config.LoadConfigFile(g.configPath)
	} else {
		var cwd string
		cwd, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		cfg, err = config.LoadConfig(cwd)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logging.SetLevel(level)
	logging.Debug("loaded config", "tape_size", cfg.Tape.Size, "eof", cfg.Input.EOF, "raw", cfg.Input.Raw, "max_steps", cfg.Limits.MaxSteps)

	return cfg, nil
}
