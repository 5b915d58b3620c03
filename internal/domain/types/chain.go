package types

import "time"

// NoteTransaction is an already-parsed payment transaction as handed back
// by the chain collaborator. Sender/Receiver are the 32-byte Ed25519 keys
// underlying the ledger addresses; address decoding is the chain
// collaborator's responsibility, never the core's.
type NoteTransaction struct {
	TxID           string
	Sender         Ed25519Public
	Receiver       Ed25519Public
	Note           []byte
	ConfirmedRound uint64
	RoundTime      time.Time
}

// SuggestedParams mirrors the chain collaborator's suggestedParams() result
// (spec §6); the core never constructs transactions itself but this shape
// lets a caller build one without re-deriving field names.
type SuggestedParams struct {
	Fee         uint64
	MinFee      uint64
	FirstValid  uint64
	LastValid   uint64
	GenesisID   string
	GenesisHash [32]byte
}

// MinPaymentMicroUnits is the minimum payment amount that carries a chat
// message; a zero-amount self-payment is reserved for key publication.
const MinPaymentMicroUnits = 1000
