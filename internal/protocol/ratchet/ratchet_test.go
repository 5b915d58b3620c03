package ratchet_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
	"github.com/CorvidLabs/ts-algochat/internal/protocol/ratchet"
)

func initialPSK() domain.PSKKey {
	var k domain.PSKKey
	for i := range k {
		k[i] = 0xAA
	}
	return k
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal: %v", err)
	}
	return b
}

func TestDeriveSessionPSK_Vectors(t *testing.T) {
	psk := initialPSK()

	s0, err := ratchet.DeriveSessionPSK(psk, 0)
	if err != nil {
		t.Fatalf("DeriveSessionPSK(0): %v", err)
	}
	want0 := mustHex(t, "a031707ea9e9e50bd8ea4eb9a2bd368465ea1aff14caab293d38954b4717e888")
	if !bytes.Equal(s0[:], want0) {
		t.Fatalf("sessionPSK(0) = %x, want %x", s0[:], want0)
	}

	s1, err := ratchet.DeriveSessionPSK(psk, 1)
	if err != nil {
		t.Fatalf("DeriveSessionPSK(1): %v", err)
	}
	want1 := mustHex(t, "994cffbb4f84fa5410d44574bb9fa7408a8c2f1ed2b3a00f5168fc74c71f7cea")
	if !bytes.Equal(s1[:], want1) {
		t.Fatalf("sessionPSK(1) = %x, want %x", s1[:], want1)
	}
}

func TestDerivePSKAtCounter_Vectors(t *testing.T) {
	psk := initialPSK()

	c0, err := ratchet.DerivePSKAtCounter(psk, 0)
	if err != nil {
		t.Fatalf("DerivePSKAtCounter(0): %v", err)
	}
	want0 := mustHex(t, "2918fd486b9bd024d712f6234b813c0f4167237d60c2c1fca37326b20497c165")
	if !bytes.Equal(c0[:], want0) {
		t.Fatalf("derivePSKAtCounter(0) = %x, want %x", c0[:], want0)
	}

	c99, err := ratchet.DerivePSKAtCounter(psk, 99)
	if err != nil {
		t.Fatalf("DerivePSKAtCounter(99): %v", err)
	}
	want99 := mustHex(t, "5b48a50a25261f6b63fe9c867b46be46de4d747c3477db6290045ba519a4d38b")
	if !bytes.Equal(c99[:], want99) {
		t.Fatalf("derivePSKAtCounter(99) = %x, want %x", c99[:], want99)
	}

	c100, err := ratchet.DerivePSKAtCounter(psk, 100)
	if err != nil {
		t.Fatalf("DerivePSKAtCounter(100): %v", err)
	}
	want100 := mustHex(t, "7a15d3add6a28858e6a1f1ea0d22bdb29b7e129a1330c4908d9b46a460992694")
	if !bytes.Equal(c100[:], want100) {
		t.Fatalf("derivePSKAtCounter(100) = %x, want %x", c100[:], want100)
	}
}

func TestDerivePSKAtCounter_MatchesTwoLevelComposition(t *testing.T) {
	psk := initialPSK()

	viaCounter, err := ratchet.DerivePSKAtCounter(psk, 100)
	if err != nil {
		t.Fatalf("DerivePSKAtCounter: %v", err)
	}

	sessionPSK, err := ratchet.DeriveSessionPSK(psk, 1)
	if err != nil {
		t.Fatalf("DeriveSessionPSK: %v", err)
	}
	viaComposition, err := ratchet.DerivePositionPSK(sessionPSK, 0)
	if err != nil {
		t.Fatalf("DerivePositionPSK: %v", err)
	}

	if viaCounter != viaComposition {
		t.Fatalf("derivePSKAtCounter(100) != derivePosition(deriveSession(initialPSK,1),0)")
	}
}

func TestDerivePSKAtCounter_DifferentCountersDiffer(t *testing.T) {
	psk := initialPSK()
	a, _ := ratchet.DerivePSKAtCounter(psk, 1)
	b, _ := ratchet.DerivePSKAtCounter(psk, 2)
	if a == b {
		t.Fatalf("distinct counters produced identical keys")
	}
}
