// Package replay implements the PSK replay-window state machine as pure
// functions over the immutable domain.PSKReplayState: Validate checks
// whether a received counter may be accepted, Record folds an accepted
// counter into a new state, and AdvanceSend issues the next send
// counter. A peer starts Fresh (no PeerLastCounter yet) and transitions
// to Active once its first counter is recorded.
package replay
