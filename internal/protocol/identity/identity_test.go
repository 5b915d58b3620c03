package identity_test

import (
	"bytes"
	"testing"

	"github.com/CorvidLabs/ts-algochat/internal/protocol/identity"
)

func TestDerive_Deterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x01}, 32)

	a, err := identity.Derive(seed)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	b, err := identity.Derive(seed)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if a.PrivateKey != b.PrivateKey || a.PublicKey != b.PublicKey {
		t.Fatalf("Derive is not deterministic for the same seed")
	}
}

func TestDerive_DifferentSeedsDifferentKeys(t *testing.T) {
	a, err := identity.Derive(bytes.Repeat([]byte{0x01}, 32))
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	b, err := identity.Derive(bytes.Repeat([]byte{0x02}, 32))
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if a.PrivateKey == b.PrivateKey || a.PublicKey == b.PublicKey {
		t.Fatalf("distinct seeds produced identical keys")
	}
}

func TestDerive_RejectsWrongSeedLength(t *testing.T) {
	if _, err := identity.Derive(make([]byte, 31)); err == nil {
		t.Fatalf("expected error for short seed")
	}
	if _, err := identity.Derive(make([]byte, 33)); err == nil {
		t.Fatalf("expected error for long seed")
	}
}

func TestGenerateEphemeral_UniquePerCall(t *testing.T) {
	a, err := identity.GenerateEphemeral()
	if err != nil {
		t.Fatalf("GenerateEphemeral: %v", err)
	}
	b, err := identity.GenerateEphemeral()
	if err != nil {
		t.Fatalf("GenerateEphemeral: %v", err)
	}
	if a.PublicKey == b.PublicKey {
		t.Fatalf("two ephemeral calls produced the same public key")
	}
}
