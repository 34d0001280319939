// Package cli wires the moviesearch commands.
package cli

import (
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"moviesearch/internal/config"
	"moviesearch/internal/logging"
	"moviesearch/internal/search"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string // empty means the default location
	Debug      bool
	BaseURL    string // overrides base_url from the config
}

// NewRootCommand creates the root command. Without a subcommand it runs the TUI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "moviesearch",
		Short: "Search movies by title, year and score",
		Long: `Search a movie backend by title keywords, release year and
critic or user score ranges.

Runs the interactive search screen when no subcommand is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file (TOML or YAML)")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", "", "backend base URL")

	cmd.AddCommand(NewTUICommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))

	return cmd
}

// setup loads the configuration, applies flag overrides and opens the log.
func setup(opts *RootOptions) (*config.Config, *zap.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		svc := config.NewConfigServiceAt(opts.ConfigPath)
		cfg, err = svc.LoadFromPath(svc.Path())
	} else {
		cfg, err = config.NewConfigService().Load()
	}
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.Debug {
		cfg.Debug = true
	}

	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open log", err)
	}
	return cfg, logger, nil
}

func newClient(cfg *config.Config, logger *zap.Logger) (*search.Client, error) {
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid config", err)
	}
	return search.NewClient(cfg.BaseURL,
		search.WithHTTPClient(&http.Client{Timeout: timeout}),
		search.WithLogger(logger),
	), nil
}
