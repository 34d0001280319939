package ui

import (
	"moviesearch/internal/actions"
	"moviesearch/internal/state"
	"moviesearch/internal/store"
)

// TrackHasNext keeps HasNext in step with each result batch: a full page of
// pageSize movies means the backend probably has another one.
// It runs as a store listener, on the dispatching goroutine, so the rule holds
// even when UI messages are dropped. Returns an unsubscribe function.
func TrackHasNext(st *store.Store, pageSize int) func() {
	return st.Subscribe(func(a actions.Action, _ state.SearchState) {
		if update, ok := a.(actions.UpdateMoviesAction); ok {
			st.Dispatch(actions.UpdateHasNext(len(update.Movies) >= pageSize))
		}
	})
}
