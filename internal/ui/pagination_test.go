package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviesearch/internal/actions"
	"moviesearch/internal/domain"
	"moviesearch/internal/state"
	"moviesearch/internal/store"
)

func batch(n int) []domain.Movie {
	out := make([]domain.Movie, n)
	for i := range out {
		out[i] = domain.Movie(`{}`)
	}
	return out
}

func TestTrackHasNext(t *testing.T) {
	st := store.New(nil)
	untrack := TrackHasNext(st, 3)

	st.Dispatch(actions.UpdateMovies(batch(3)))
	assert.True(t, st.GetState().HasNext, "full page")

	st.Dispatch(actions.UpdateMovies(batch(2)))
	assert.False(t, st.GetState().HasNext, "short page")

	st.Dispatch(actions.UpdateMovies(batch(4)))
	assert.True(t, st.GetState().HasNext)

	st.Dispatch(actions.UpdateMovies(nil))
	assert.False(t, st.GetState().HasNext, "missing movies count as empty")

	untrack()
	st.Dispatch(actions.UpdateMovies(batch(3)))
	assert.False(t, st.GetState().HasNext, "no updates after unsubscribe")
}

func TestTrackHasNext_FollowsMoviesInOrder(t *testing.T) {
	st := store.New(nil)
	var types []actions.ActionType
	st.Subscribe(func(a actions.Action, _ state.SearchState) {
		types = append(types, a.Type())
	})
	TrackHasNext(st, 1)

	st.Dispatch(actions.UpdateMovies(batch(1)))

	require.Equal(t, []actions.ActionType{actions.TypeUpdateMovies, actions.TypeUpdateHasNext}, types)
}

func TestTrackHasNext_SurvivesFullForwardQueue(t *testing.T) {
	st := store.New(nil)
	TrackHasNext(st, 1)

	// A sender that never drains fills the queue and forces drops
	block := make(chan struct{})
	defer close(block)
	stop := Forward(st, func(tea.Msg) { <-block }, nil)
	defer stop()

	for i := 0; i < 200; i++ {
		st.Dispatch(actions.UpdateFetching(true))
	}
	st.Dispatch(actions.UpdateMovies(batch(1)))

	assert.True(t, st.GetState().HasNext)
}
