// Package standard implements the bidirectional Standard (v1, ECDH-only)
// encryptor and decryptor: Seal produces a StandardEnvelope that either
// the sender or the recipient can later open with their own identity
// key, and Open dispatches on which side the caller is.
package standard
