package xcrypto

import "crypto/subtle"

// ConstantTimeEqual reports whether a and b are equal, in constant time
// with respect to their contents (not their lengths).
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
