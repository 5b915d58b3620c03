// Package xcrypto exposes the minimal set of primitives the protocol layers
// build on: HKDF-SHA256 key derivation, ChaCha20-Poly1305 AEAD, X25519
// scalar multiplication, Ed25519 verification, and CSPRNG helpers. Nothing
// here is protocol-aware; envelope shape and key schedule live one layer up
// in internal/protocol/*.
package xcrypto
