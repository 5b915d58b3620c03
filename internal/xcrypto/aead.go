package xcrypto

import (
	"crypto/rand"

	"golang.org/x/crypto/chacha20poly1305"
)

// NonceSize is the ChaCha20-Poly1305 nonce length used throughout the
// protocol.
const NonceSize = chacha20poly1305.NonceSize

// RandomNonce returns a fresh CSPRNG nonce. The caller must never reuse a
// nonce with the same key.
func RandomNonce() ([NonceSize]byte, error) {
	var n [NonceSize]byte
	_, err := rand.Read(n[:])
	return n, err
}

// Seal encrypts plaintext under key with the given nonce, returning
// ciphertext with the 16-byte Poly1305 tag appended.
func Seal(key []byte, nonce [NonceSize]byte, plaintext, additionalData []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce[:], plaintext, additionalData), nil
}

// Open authenticates and decrypts ciphertext (which includes the trailing
// tag) under key and nonce.
func Open(key []byte, nonce [NonceSize]byte, ciphertext, additionalData []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce[:], ciphertext, additionalData)
}
