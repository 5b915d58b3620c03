// Package identity derives the long-lived X25519 identity key pair from an
// account seed, and generates the per-message ephemeral key pairs used by
// the Standard and PSK encryptors.
package identity

import (
	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
	"github.com/CorvidLabs/ts-algochat/internal/util/memzero"
	"github.com/CorvidLabs/ts-algochat/internal/xcrypto"
)

const (
	seedSalt = "AlgoChat-v1-encryption"
	seedInfo = "x25519-key"
)

// Derive deterministically produces the account's long-lived X25519
// identity pair from a 32-byte seed:
//
//	privateKey = HKDF-SHA256(salt="AlgoChat-v1-encryption", ikm=seed, info="x25519-key", L=32)
//	publicKey  = X25519_base(privateKey)
//
// The same seed always yields the same pair; callers should derive once per
// account and hold the result for its lifetime.
func Derive(seed []byte) (domain.IdentityKeyPair, error) {
	if len(seed) != 32 {
		return domain.IdentityKeyPair{}, domain.NewError(
			domain.KindInvalidKey, "seed must be 32 bytes, got %d", len(seed))
	}

	priv, err := xcrypto.HKDFSHA256([]byte(seedSalt), seed, []byte(seedInfo), 32)
	if err != nil {
		return domain.IdentityKeyPair{}, domain.NewError(domain.KindInvalidKey, "%v", err)
	}
	defer memzero.Zero(priv)

	var privArr [32]byte
	copy(privArr[:], priv)

	pub, err := xcrypto.X25519Base(privArr)
	if err != nil {
		return domain.IdentityKeyPair{}, domain.NewError(domain.KindInvalidKey, "%v", err)
	}

	return domain.IdentityKeyPair{
		PrivateKey: domain.X25519Private(privArr),
		PublicKey:  domain.X25519Public(pub),
	}, nil
}

// GenerateEphemeral produces a fresh, independently-random X25519 key pair
// for a single outbound envelope. Its private half must be discarded by the
// caller immediately after sealing.
func GenerateEphemeral() (domain.EphemeralKeyPair, error) {
	priv, pub, err := xcrypto.GenerateX25519()
	if err != nil {
		return domain.EphemeralKeyPair{}, err
	}
	return domain.EphemeralKeyPair{
		PrivateKey: domain.X25519Private(priv),
		PublicKey:  domain.X25519Public(pub),
	}, nil
}
