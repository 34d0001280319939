package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"moviesearch/internal/actions"
	"moviesearch/internal/config"
	"moviesearch/internal/domain"
	"moviesearch/internal/search"
	"moviesearch/internal/store"
	"moviesearch/internal/ui/views"
)

// Model is the search screen
type Model struct {
	ctx      context.Context
	store    *store.Store
	client   *search.Client
	settings config.UISettings
	logger   *zap.Logger

	width     int
	height    int
	keys      keyMap
	help      help.Model
	input     textinput.Model
	spinner   spinner.Model
	renderer  *views.Renderer
	focus     field
	status    string
	statusErr bool
}

// NewModel creates the search screen over st. Searches run against client and
// are canceled when ctx is done.
func NewModel(ctx context.Context, st *store.Store, client *search.Client, settings config.UISettings, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.PageSize <= 0 {
		settings.PageSize = config.DefaultConfig().UISettings.PageSize
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Focus()

	m := &Model{
		ctx:      ctx,
		store:    st,
		client:   client,
		settings: settings,
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    ti,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		renderer: views.NewRenderer(),
	}
	TrackHasNext(st, settings.PageSize)
	m.setFocus(fieldKeywords)
	m.status = "Type keywords and press enter"
	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case StoreMsg:
		m.handleStoreMsg(msg)
		return m, nil

	case spinner.TickMsg:
		// Let the animation stop once nothing is in flight
		if !m.store.GetState().Fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		case key.Matches(msg, m.keys.NextField):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case key.Matches(msg, m.keys.PrevField):
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case key.Matches(msg, m.keys.NextPage):
			return m, m.nextPage()
		case key.Matches(msg, m.keys.PrevPage):
			return m, m.prevPage()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleStoreMsg reacts to actions applied by the store
func (m *Model) handleStoreMsg(msg StoreMsg) {
	switch a := msg.Action.(type) {
	case actions.UpdateMoviesAction:
		m.setStatus(fmt.Sprintf("%d movies on page %d", len(a.Movies), msg.State.Page), false)
	}
}

// submit applies the focused field and starts a new search from page 1
func (m *Model) submit() tea.Cmd {
	action, err := fieldAction(m.focus, m.input.Value())
	if err != nil {
		m.setStatus(err.Error(), true)
		return nil
	}
	m.store.Dispatch(action)
	m.store.Dispatch(actions.ResetPagination())
	return m.search()
}

func (m *Model) nextPage() tea.Cmd {
	if !m.store.GetState().HasNext {
		m.setStatus("No more results", false)
		return nil
	}
	m.store.Dispatch(actions.NextPage())
	return m.search()
}

func (m *Model) prevPage() tea.Cmd {
	if m.store.GetState().Page <= 1 {
		return nil
	}
	m.store.Dispatch(actions.PrevPage())
	return m.search()
}

// search starts a request for the current state and animates the spinner
func (m *Model) search() tea.Cmd {
	params := m.store.GetState().Params()
	m.logger.Debug("search", zap.Int("page", params.Page), zap.Strings("keywords", params.Keywords))
	m.client.GetMovies(m.ctx, m.store, params)
	m.setStatus("", false)
	return m.spinner.Tick
}

func (m *Model) setFocus(f field) {
	m.focus = f
	m.input.Placeholder = f.String()
	m.input.SetValue(fieldValue(m.store.GetState(), f))
	m.input.CursorEnd()
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

// View renders the screen
func (m *Model) View() string {
	s := m.store.GetState()

	fields := make([]views.FieldView, 0, fieldCount)
	for f := field(0); f < fieldCount; f++ {
		fields = append(fields, views.FieldView{
			Label:   f.String(),
			Value:   fieldValue(s, f),
			Focused: f == m.focus,
		})
	}

	movies := make([]domain.MovieSummary, 0, len(s.Movies))
	for _, movie := range s.Movies {
		movies = append(movies, movie.Summary())
	}

	return m.renderer.Render(views.ViewState{
		Width:      m.width,
		Fields:     fields,
		Input:      m.input.View(),
		Fetching:   s.Fetching,
		Spinner:    m.spinner.View(),
		Status:     m.status,
		StatusErr:  m.statusErr,
		Page:       s.Page,
		HasNext:    s.HasNext,
		Movies:     movies,
		ShowScores: m.settings.ShowScores,
		Help:       m.help.View(m.keys),
	})
}
