package replay

import (
	"sync"

	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
)

// PeerWindow serializes access to one peer's replay state, installing a
// new immutable snapshot under lock rather than mutating shared state in
// place.
type PeerWindow struct {
	mu    sync.Mutex
	state domain.PSKReplayState
}

// NewPeerWindow returns a PeerWindow for a peer with no history.
func NewPeerWindow() *PeerWindow {
	return &PeerWindow{state: domain.NewPSKReplayState()}
}

// Accept validates and, if valid, records counter c atomically, reporting
// whether c was accepted.
func (w *PeerWindow) Accept(c uint32) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !Validate(w.state, c) {
		return false
	}
	w.state = Record(w.state, c)
	return true
}

// NextSend returns the next outbound send counter and advances the
// window's send state.
func (w *PeerWindow) NextSend() uint32 {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, next := AdvanceSend(w.state)
	w.state = next
	return c
}

// Snapshot returns a copy of the current state, safe to inspect without
// affecting the window's internal bookkeeping.
func (w *PeerWindow) Snapshot() domain.PSKReplayState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Clone()
}
