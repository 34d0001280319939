package ui

import (
	"moviesearch/internal/actions"
	"moviesearch/internal/state"
)

// StoreMsg is sent to the program after the store applied an action
type StoreMsg struct {
	Action actions.Action
	State  state.SearchState
}
