// Package store provides a reference, file-backed EncryptionKeyStorage
// implementation. The core never mandates at-rest encryption; this is
// one concrete design using password-derived key wrapping.
package store
