package xcrypto

import "crypto/ed25519"

// VerifyEd25519 reports whether sig is a valid Ed25519 signature over msg
// under pub. Any malformed input collapses to false rather than panicking.
func VerifyEd25519(pub, msg, sig []byte) (ok bool) {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return ed25519.Verify(ed25519.PublicKey(pub), msg, sig)
}
