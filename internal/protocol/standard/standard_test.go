package standard_test

import (
	"bytes"
	"testing"

	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
	"github.com/CorvidLabs/ts-algochat/internal/protocol/identity"
	"github.com/CorvidLabs/ts-algochat/internal/protocol/standard"
)

func TestSealOpen_BothSidesRecoverPlaintext(t *testing.T) {
	seedA := bytes.Repeat([]byte{0x01}, 32)
	seedB := bytes.Repeat([]byte{0x02}, 32)

	a, err := identity.Derive(seedA)
	if err != nil {
		t.Fatalf("derive A: %v", err)
	}
	b, err := identity.Derive(seedB)
	if err != nil {
		t.Fatalf("derive B: %v", err)
	}

	const plaintext = "Hello, AlgoChat!"
	env, err := standard.Seal([]byte(plaintext), a.PublicKey, b.PublicKey)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	recovered, err := standard.Open(env, b.PrivateKey, b.PublicKey)
	if err != nil {
		t.Fatalf("recipient Open: %v", err)
	}
	if string(recovered) != plaintext {
		t.Fatalf("recipient got %q, want %q", recovered, plaintext)
	}

	recoveredBySender, err := standard.Open(env, a.PrivateKey, a.PublicKey)
	if err != nil {
		t.Fatalf("sender Open: %v", err)
	}
	if string(recoveredBySender) != plaintext {
		t.Fatalf("sender got %q, want %q", recoveredBySender, plaintext)
	}
}

func TestSeal_RejectsOversizedPlaintext(t *testing.T) {
	a, _ := identity.Derive(bytes.Repeat([]byte{0x03}, 32))
	b, _ := identity.Derive(bytes.Repeat([]byte{0x04}, 32))

	oversized := bytes.Repeat([]byte{'x'}, domain.MaxStandardPlaintext+1)
	if _, err := standard.Seal(oversized, a.PublicKey, b.PublicKey); err == nil {
		t.Fatalf("expected MessageTooLarge error")
	}
}

func TestOpen_WrongIdentityFails(t *testing.T) {
	a, _ := identity.Derive(bytes.Repeat([]byte{0x05}, 32))
	b, _ := identity.Derive(bytes.Repeat([]byte{0x06}, 32))
	eve, _ := identity.Derive(bytes.Repeat([]byte{0x07}, 32))

	env, err := standard.Seal([]byte("secret"), a.PublicKey, b.PublicKey)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if _, err := standard.Open(env, eve.PrivateKey, eve.PublicKey); err == nil {
		t.Fatalf("expected DecryptionFailed for unrelated identity")
	}
}

func TestSeal_EphemeralAndNonceVaryPerCall(t *testing.T) {
	a, _ := identity.Derive(bytes.Repeat([]byte{0x08}, 32))
	b, _ := identity.Derive(bytes.Repeat([]byte{0x09}, 32))

	e1, err := standard.Seal([]byte("hi"), a.PublicKey, b.PublicKey)
	if err != nil {
		t.Fatalf("Seal 1: %v", err)
	}
	e2, err := standard.Seal([]byte("hi"), a.PublicKey, b.PublicKey)
	if err != nil {
		t.Fatalf("Seal 2: %v", err)
	}
	if e1.EphemeralPublicKey == e2.EphemeralPublicKey {
		t.Fatalf("ephemeral public keys collided across calls")
	}
	if e1.Nonce == e2.Nonce {
		t.Fatalf("nonces collided across calls")
	}
}
