package types

import "time"

// KeyAnnouncement is the raw payload of a self-directed transaction note
// publishing an X25519 public key, optionally signed by the account's
// Ed25519 identity.
type KeyAnnouncement struct {
	PublicKey X25519Public
	Signature []byte // 64 bytes when present, nil for a bare 32-byte announcement
}

// Provenance records where a DiscoveredKey came from on the ledger. It is
// informational only; the core never uses it for correctness.
type Provenance struct {
	TxID  string
	Round uint64
	Time  time.Time
}

// DiscoveredKey is the result of scanning transactions for a peer's
// published or asserted X25519 public key.
type DiscoveredKey struct {
	PublicKey  X25519Public
	IsVerified bool
	Provenance *Provenance
}
