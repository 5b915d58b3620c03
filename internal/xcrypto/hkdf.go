package xcrypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HKDFSHA256 derives length bytes from ikm using HKDF-SHA256 with the given
// salt and info, per RFC 5869. A nil salt is treated as the all-zero salt of
// the hash's output length, matching hkdf.New's own behaviour.
func HKDFSHA256(salt, ikm, info []byte, length int) ([]byte, error) {
	r := hkdf.New(sha256.New, ikm, salt, info)
	out := make([]byte, length)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}
