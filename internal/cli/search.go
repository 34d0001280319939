package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"moviesearch/internal/actions"
	"moviesearch/internal/state"
	"moviesearch/internal/store"
	"moviesearch/internal/ui"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	Keywords  []string
	YearMin   int
	YearMax   int
	CriticMin float64
	CriticMax float64
	UserMin   float64
	UserMax   float64
	Page      int
	Format    string // "json" | "text"
	Trace     bool
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one search and print the results",
		Long: `Run one search and print the results.

Only the filters given on the command line are sent to the backend.

Examples:
  moviesearch search --keywords the,matrix
  moviesearch search --year-min 1990 --year-max 1999 --critic-min 80
  moviesearch search --keywords alien --page 2 --format json
  moviesearch search --keywords heat --trace`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, cmd)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Keywords, "keywords", nil, "title keywords (comma separated)")
	cmd.Flags().IntVar(&opts.YearMin, "year-min", 0, "earliest release year")
	cmd.Flags().IntVar(&opts.YearMax, "year-max", 0, "latest release year")
	cmd.Flags().Float64Var(&opts.CriticMin, "critic-min", 0, "lowest critic score")
	cmd.Flags().Float64Var(&opts.CriticMax, "critic-max", 0, "highest critic score")
	cmd.Flags().Float64Var(&opts.UserMin, "user-min", 0, "lowest user score")
	cmd.Flags().Float64Var(&opts.UserMax, "user-max", 0, "highest user score")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "result page, starting at 1")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print every dispatched action to stderr as a JSON line")

	return cmd
}

func runSearch(opts *SearchOptions, cmd *cobra.Command) error {
	if !isValidFormat(opts.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}
	if opts.Page < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid page %d: must be 1 or more", opts.Page))
	}

	cfg, logger, err := setup(opts.RootOptions)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	st := store.New(logger)
	if opts.Trace {
		unsubscribe := st.Subscribe(traceTo(cmd.ErrOrStderr(), logger))
		defer unsubscribe()
	}

	for _, action := range filterActions(opts, cmd) {
		st.Dispatch(action)
	}
	st.Dispatch(actions.ResetPagination())
	for i := 1; i < opts.Page; i++ {
		st.Dispatch(actions.NextPage())
	}

	// Same rule as the interactive screen
	untrack := ui.TrackHasNext(st, cfg.UISettings.PageSize)
	defer untrack()

	rec := store.NewRecorder(st)
	pending := client.GetMovies(cmd.Context(), rec, st.GetState().Params())
	select {
	case <-pending.Done():
	case <-cmd.Context().Done():
		return WrapExitError(ExitFailure, "search canceled", cmd.Context().Err())
	}

	s := st.GetState()
	if s.Fetching {
		return NewExitError(ExitFailure, fmt.Sprintf("no response from %s (see %s)", cfg.BaseURL, logDestination(cfg.LogFile)))
	}
	if !received(rec, actions.TypeUpdateMovies) {
		return NewExitError(ExitFailure, fmt.Sprintf("unreadable response from %s (see %s)", cfg.BaseURL, logDestination(cfg.LogFile)))
	}

	return WriteResults(cmd.OutOrStdout(), opts.Format, Results{
		Page:    s.Page,
		HasNext: s.HasNext,
		Movies:  s.Movies,
	}, cfg.UISettings.ShowScores)
}

// filterActions returns an update for every filter flag given explicitly
func filterActions(opts *SearchOptions, cmd *cobra.Command) []actions.Action {
	flags := cmd.Flags()
	var out []actions.Action

	if flags.Changed("keywords") {
		keywords := opts.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		out = append(out, actions.UpdateKeywords(keywords))
	}
	if flags.Changed("year-min") {
		v := opts.YearMin
		out = append(out, actions.UpdateYearMin(&v))
	}
	if flags.Changed("year-max") {
		v := opts.YearMax
		out = append(out, actions.UpdateYearMax(&v))
	}
	if flags.Changed("critic-min") {
		v := opts.CriticMin
		out = append(out, actions.UpdateCriticMin(&v))
	}
	if flags.Changed("critic-max") {
		v := opts.CriticMax
		out = append(out, actions.UpdateCriticMax(&v))
	}
	if flags.Changed("user-min") {
		v := opts.UserMin
		out = append(out, actions.UpdateUserMin(&v))
	}
	if flags.Changed("user-max") {
		v := opts.UserMax
		out = append(out, actions.UpdateUserMax(&v))
	}
	return out
}

func traceTo(w io.Writer, logger *zap.Logger) store.Listener {
	return func(a actions.Action, _ state.SearchState) {
		line, err := actions.Encode(a)
		if err != nil {
			logger.Warn("trace encode failed", zap.String("action", string(a.Type())), zap.Error(err))
			return
		}
		fmt.Fprintln(w, string(line))
	}
}

func received(rec *store.Recorder, t actions.ActionType) bool {
	for _, got := range rec.Types() {
		if got == t {
			return true
		}
	}
	return false
}

func logDestination(path string) string {
	if path == "" {
		return "stderr"
	}
	return path
}
