package announce_test

import (
	"crypto/ed25519"
	"testing"

	"github.com/CorvidLabs/ts-algochat/internal/protocol/announce"
)

func TestParse_TooShortReturnsNone(t *testing.T) {
	if _, ok := announce.Parse(make([]byte, 31), nil); ok {
		t.Fatalf("expected no result for a 31-byte note")
	}
}

func TestParse_BareKeyUnverified(t *testing.T) {
	note := make([]byte, 32)
	note[0] = 0x42

	dk, ok := announce.Parse(note, nil)
	if !ok {
		t.Fatalf("expected a result for a bare 32-byte key")
	}
	if dk.IsVerified {
		t.Fatalf("bare key announcement must not be verified")
	}
	if dk.PublicKey.Slice()[0] != 0x42 {
		t.Fatalf("public key bytes not preserved")
	}
}

func TestParse_SignedKeyVerifiesAgainstOwner(t *testing.T) {
	ownerPub, ownerPriv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	x25519Key := make([]byte, 32)
	x25519Key[0] = 0x7
	sig := ed25519.Sign(ownerPriv, x25519Key)

	note := append(append([]byte{}, x25519Key...), sig...)

	dk, ok := announce.Parse(note, ownerPub)
	if !ok {
		t.Fatalf("expected a result for a signed 96-byte note")
	}
	if !dk.IsVerified {
		t.Fatalf("signature by the owner's key should verify")
	}
}

func TestParse_SignedKeyFailsAgainstWrongIdentity(t *testing.T) {
	ownerPub, ownerPriv, _ := ed25519.GenerateKey(nil)
	otherPub, _, _ := ed25519.GenerateKey(nil)

	x25519Key := make([]byte, 32)
	sig := ed25519.Sign(ownerPriv, x25519Key)
	note := append(append([]byte{}, x25519Key...), sig...)

	dk, ok := announce.Parse(note, otherPub)
	if !ok {
		t.Fatalf("expected a result for a 96-byte note")
	}
	if dk.IsVerified {
		t.Fatalf("signature verified against the wrong identity key should fail")
	}
	_ = ownerPub
}

func TestParse_96BytesWithoutIdentityKeyStaysUnverified(t *testing.T) {
	note := make([]byte, 96)
	dk, ok := announce.Parse(note, nil)
	if !ok {
		t.Fatalf("expected a result")
	}
	if dk.IsVerified {
		t.Fatalf("no identity key supplied, so verification must not happen")
	}
}
