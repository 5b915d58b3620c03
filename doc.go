// Package algochat composes the protocol's primitives, envelope codecs,
// and ratchet/replay state into a Messenger: the shape a caller actually
// reaches for (SendStandard, SendPSK, Receive, PublishKey, DiscoverKey).
// The package builds and opens envelopes; it never constructs, signs, or
// submits a ledger transaction — that remains the caller's job, mediated
// through the Chain collaborator interface.
package algochat
