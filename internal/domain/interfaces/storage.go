package interfaces

import types "github.com/CorvidLabs/ts-algochat/internal/domain/types"

// MessageCache gives per-participant idempotent insertion of processed
// messages keyed by transaction id, plus sync-round bookkeeping so a
// caller can resume scanning where it left off. This is the single
// coherent contract the spec's Design Notes ask for in place of the two
// incompatible shapes found in the source (see DESIGN.md).
type MessageCache interface {
	Has(txid string) (bool, error)
	Insert(txid string, msg types.DecryptedPayload) error
	LastSyncRound() (round uint64, ok bool, err error)
	SetLastSyncRound(round uint64) error
	Clear() error
}

// EncryptionKeyStorage persists private identity/PSK material by address.
// The core does not dictate at-rest encryption; store.FileKeyStore is a
// reference implementation whose Store/Retrieve wrap each key under a
// password-derived key.
type EncryptionKeyStorage interface {
	Store(address string, key []byte) error
	Retrieve(address string) ([]byte, error)
	Has(address string) (bool, error)
	Delete(address string) error
	List() ([]string, error)
}

// SendQueueStorage persists an ordered list of pending outbound messages
// for offline-retry by an external scheduler (the scheduler itself is out
// of scope; only this contract is).
type SendQueueStorage interface {
	Load() ([]PendingSend, error)
	Save(queue []PendingSend) error
	Clear() error
}

// PendingSend is one queued-but-not-yet-submitted message.
type PendingSend struct {
	Recipient  string
	NoteBytes  []byte
	EnqueuedAt int64
}
