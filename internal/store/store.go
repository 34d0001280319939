package store

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"moviesearch/internal/actions"
	"moviesearch/internal/state"
)

// Dispatcher accepts actions for application to the search state
type Dispatcher interface {
	Dispatch(action actions.Action)
}

// DispatchFunc adapts a function to a Dispatcher
type DispatchFunc func(action actions.Action)

// Dispatch calls f(action)
func (f DispatchFunc) Dispatch(action actions.Action) { f(action) }

// Listener is called after an action has been applied
type Listener func(action actions.Action, s state.SearchState)

// Store holds the search state and applies dispatched actions to it
type Store struct {
	mu        sync.RWMutex
	state     state.SearchState
	listeners map[int]Listener
	order     []int
	nextID    int
	logger    *zap.Logger
}

// New creates a store holding the initial state
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		state:     state.Initial(),
		listeners: make(map[int]Listener),
		logger:    logger,
	}
}

// GetState returns a copy of the current state
func (s *Store) GetState() state.SearchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies the action and notifies listeners in subscription order.
// Listeners run on the caller's goroutine after the lock is released.
func (s *Store) Dispatch(action actions.Action) {
	if action == nil {
		return
	}

	s.mu.Lock()
	s.state = state.Reduce(s.state, action)
	current := s.state
	// Copy so listeners can subscribe or unsubscribe while being notified
	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	s.logger.Debug("dispatch", zap.String("action", string(action.Type())))

	for _, l := range listeners {
		s.notify(l, action, current)
	}
}

func (s *Store) notify(l Listener, action actions.Action, current state.SearchState) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("store listener panic",
				zap.String("action", string(action.Type())),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	l(action, current)
}

// Subscribe registers a listener.
// Returns an unsubscribe function
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, ok := s.listeners[id]; !ok {
			return
		}
		delete(s.listeners, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i:i], s.order[i+1:]...)
				break
			}
		}
	}
}
