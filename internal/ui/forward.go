package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"moviesearch/internal/actions"
	"moviesearch/internal/state"
	"moviesearch/internal/store"
)

// Forward delivers every store change to send as a StoreMsg.
// Listeners must not block the dispatcher, which may be the program's own
// Update, so changes are queued and sent from a separate goroutine.
// A full queue drops messages; state rules that must not be lost belong in a
// store listener (see TrackHasNext), not in Model.Update.
// Returns a stop function.
func Forward(st *store.Store, send func(tea.Msg), logger *zap.Logger) func() {
	if logger == nil {
		logger = zap.NewNop()
	}

	events := make(chan tea.Msg, 100)
	done := make(chan struct{})

	unsubscribe := st.Subscribe(func(a actions.Action, s state.SearchState) {
		select {
		case events <- StoreMsg{Action: a, State: s}:
		default:
			logger.Warn("UI event channel full, dropping action", zap.String("action", string(a.Type())))
		}
	})

	go func() {
		for {
			select {
			case msg := <-events:
				send(msg)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			close(done)
		})
	}
}
