package store

import (
	"sync"

	"moviesearch/internal/actions"
)

// Recorder is a Dispatcher that remembers every action it receives.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	actions []actions.Action
	next    Dispatcher
}

// NewRecorder creates a recorder. If next is non-nil, actions are forwarded to it after recording.
func NewRecorder(next Dispatcher) *Recorder {
	return &Recorder{next: next}
}

// Dispatch records the action
func (r *Recorder) Dispatch(action actions.Action) {
	r.mu.Lock()
	r.actions = append(r.actions, action)
	r.mu.Unlock()

	if r.next != nil {
		r.next.Dispatch(action)
	}
}

// Actions returns the recorded actions in dispatch order
func (r *Recorder) Actions() []actions.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]actions.Action(nil), r.actions...)
}

// Types returns the recorded action types in dispatch order
func (r *Recorder) Types() []actions.ActionType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]actions.ActionType, len(r.actions))
	for i, a := range r.actions {
		types[i] = a.Type()
	}
	return types
}
