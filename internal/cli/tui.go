package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"moviesearch/internal/store"
	"moviesearch/internal/ui"
)

// NewTUICommand creates the tui command.
func NewTUICommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive search screen",
		Long: `Run the interactive search screen.

Type keywords and press enter to search. Tab moves between the
year, critic score and user score bounds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, rootOpts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *RootOptions) error {
	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Cancels in-flight searches on shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	st := store.New(logger)
	model := ui.NewModel(ctx, st, client, cfg.UISettings, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	stop := ui.Forward(st, p.Send, logger)
	defer stop()

	logger.Info("starting", zap.String("base_url", cfg.BaseURL))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info("interrupted")
			return nil
		}
		return WrapExitError(ExitFailure, "error running program", err)
	}
	return nil
}
