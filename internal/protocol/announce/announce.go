package announce

import (
	"crypto/ed25519"

	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
	"github.com/CorvidLabs/ts-algochat/internal/xcrypto"
)

// Parse extracts a DiscoveredKey from raw note bytes. ed25519PublicKey may
// be nil when the announcer's identity key is not known to the caller.
// The second return value is false when note is too short to carry an
// announcement at all.
func Parse(note []byte, ed25519PublicKey []byte) (domain.DiscoveredKey, bool) {
	if len(note) < 32 {
		return domain.DiscoveredKey{}, false
	}

	var pub domain.X25519Public
	copy(pub[:], note[:32])

	if len(note) >= 32+ed25519.SignatureSize && len(ed25519PublicKey) > 0 {
		sig := note[32 : 32+ed25519.SignatureSize]
		verified := xcrypto.VerifyEd25519(ed25519PublicKey, pub.Slice(), sig)
		return domain.DiscoveredKey{PublicKey: pub, IsVerified: verified}, true
	}

	return domain.DiscoveredKey{PublicKey: pub, IsVerified: false}, true
}
