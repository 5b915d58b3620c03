package types

// X25519Public is a Curve25519 public key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 private scalar.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// Ed25519Public is an Ed25519 verification key.
type Ed25519Public [32]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// IdentityKeyPair is the long-lived X25519 pair derived once per account
// from its ledger account seed. It is held for the lifetime of the account.
type IdentityKeyPair struct {
	PrivateKey X25519Private
	PublicKey  X25519Public
}

// EphemeralKeyPair is generated fresh for each outbound envelope. The
// private half must never outlive the Seal call that produced it.
type EphemeralKeyPair struct {
	PrivateKey X25519Private
	PublicKey  X25519Public
}

// PSKKey is a 32-byte pre-shared secret exchanged out-of-band, or a key
// derived from one by the ratchet. The core never persists either.
type PSKKey [32]byte

// Slice returns the key as a []byte.
func (k PSKKey) Slice() []byte { return k[:] }
