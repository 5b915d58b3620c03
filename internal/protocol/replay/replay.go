package replay

import (
	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
)

// Validate reports whether counter c may be accepted given state: c must
// not already be in SeenCounters, and (once the peer is Active) must fall
// within [PeerLastCounter-WINDOW, PeerLastCounter+WINDOW]. A Fresh peer
// (no counter recorded yet) accepts any counter.
func Validate(state domain.PSKReplayState, c uint32) bool {
	if _, seen := state.SeenCounters[c]; seen {
		return false
	}
	if !state.HasPeerCounter {
		return true
	}

	lo := uint32(0)
	if state.PeerLastCounter > domain.ReplayWindow {
		lo = state.PeerLastCounter - domain.ReplayWindow
	}
	hi := state.PeerLastCounter + domain.ReplayWindow
	return c >= lo && c <= hi
}

// Record folds an accepted counter c into state, returning the successor
// snapshot: c is inserted into SeenCounters, PeerLastCounter advances to
// max(PeerLastCounter, c), and entries strictly below the new
// PeerLastCounter-WINDOW are pruned.
func Record(state domain.PSKReplayState, c uint32) domain.PSKReplayState {
	next := state.Clone()
	next.SeenCounters[c] = struct{}{}
	if !next.HasPeerCounter || c > next.PeerLastCounter {
		next.PeerLastCounter = c
		next.HasPeerCounter = true
	}

	floor := uint32(0)
	if next.PeerLastCounter > domain.ReplayWindow {
		floor = next.PeerLastCounter - domain.ReplayWindow
	}
	for seen := range next.SeenCounters {
		if seen < floor {
			delete(next.SeenCounters, seen)
		}
	}
	return next
}

// AdvanceSend returns the current send counter and a successor state with
// SendCounter incremented. Send counters are independent of receive state.
func AdvanceSend(state domain.PSKReplayState) (uint32, domain.PSKReplayState) {
	next := state.Clone()
	current := next.SendCounter
	next.SendCounter++
	return current, next
}
