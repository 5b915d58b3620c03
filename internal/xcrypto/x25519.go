package xcrypto

import (
	"crypto/rand"

	"golang.org/x/crypto/curve25519"
)

// GenerateX25519 returns a fresh, randomly-generated Curve25519 key pair.
// No clamping is required of the caller: curve25519.X25519 clamps the
// scalar internally per RFC 7748.
func GenerateX25519() (priv, pub [32]byte, err error) {
	if _, err = rand.Read(priv[:]); err != nil {
		return priv, pub, err
	}
	pubBytes, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return priv, pub, err
	}
	copy(pub[:], pubBytes)
	return priv, pub, nil
}

// X25519Base computes the public key for a given private scalar.
func X25519Base(priv [32]byte) (pub [32]byte, err error) {
	pubBytes, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return pub, err
	}
	copy(pub[:], pubBytes)
	return pub, nil
}

// X25519 computes the raw ECDH shared secret between priv and pub. No
// further clamping or hashing is performed at this layer.
func X25519(priv, pub [32]byte) (secret [32]byte, err error) {
	out, err := curve25519.X25519(priv[:], pub[:])
	if err != nil {
		return secret, err
	}
	copy(secret[:], out)
	return secret, nil
}
