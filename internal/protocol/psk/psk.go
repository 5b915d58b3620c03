package psk

import (
	"bytes"

	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
	"github.com/CorvidLabs/ts-algochat/internal/protocol/identity"
	"github.com/CorvidLabs/ts-algochat/internal/util/memzero"
	"github.com/CorvidLabs/ts-algochat/internal/xcrypto"
)

const (
	messageKeyInfoPrefix = "AlgoChatV1-PSK"
	senderKeyInfoPrefix  = "AlgoChatV1-PSK-SenderKey"
)

// Seal produces a PSKEnvelope carrying plaintext from senderPub to
// recipientPub, binding it to ratchetCounter and the PSK it derived.
func Seal(plaintext []byte, senderPub, recipientPub domain.X25519Public, ratchetCounter uint32, currentPSK domain.PSKKey) (domain.PSKEnvelope, error) {
	if len(plaintext) > domain.MaxPSKPlaintext {
		err := domain.NewError(domain.KindMessageTooLarge,
			"plaintext %d bytes exceeds %d-byte limit", len(plaintext), domain.MaxPSKPlaintext)
		err.Size = len(plaintext)
		err.Max = domain.MaxPSKPlaintext
		return domain.PSKEnvelope{}, err
	}

	ephemeral, err := identity.GenerateEphemeral()
	if err != nil {
		return domain.PSKEnvelope{}, err
	}
	defer memzero.Zero(ephemeral.PrivateKey[:])

	rSecret, err := xcrypto.X25519([32]byte(ephemeral.PrivateKey), [32]byte(recipientPub))
	if err != nil {
		return domain.PSKEnvelope{}, domain.NewError(domain.KindInvalidKey, "%v", err)
	}
	defer memzero.Zero(rSecret[:])

	symKey, err := xcrypto.HKDFSHA256(ephemeral.PublicKey.Slice(), ikm(rSecret, currentPSK),
		concatInfo(messageKeyInfoPrefix, senderPub, recipientPub), 32)
	if err != nil {
		return domain.PSKEnvelope{}, domain.NewError(domain.KindInvalidKey, "%v", err)
	}
	defer memzero.Zero(symKey)

	nonce, err := xcrypto.RandomNonce()
	if err != nil {
		return domain.PSKEnvelope{}, domain.NewError(domain.KindInvalidKey, "%v", err)
	}

	ciphertext, err := xcrypto.Seal(symKey, nonce, plaintext, nil)
	if err != nil {
		return domain.PSKEnvelope{}, domain.NewError(domain.KindDecryptionFailed, "%v", err)
	}

	sSecret, err := xcrypto.X25519([32]byte(ephemeral.PrivateKey), [32]byte(senderPub))
	if err != nil {
		return domain.PSKEnvelope{}, domain.NewError(domain.KindInvalidKey, "%v", err)
	}
	defer memzero.Zero(sSecret[:])

	senderKey, err := xcrypto.HKDFSHA256(ephemeral.PublicKey.Slice(), ikm(sSecret, currentPSK),
		concatInfo(senderKeyInfoPrefix, senderPub), 32)
	if err != nil {
		return domain.PSKEnvelope{}, domain.NewError(domain.KindInvalidKey, "%v", err)
	}
	defer memzero.Zero(senderKey)

	encryptedSenderKey, err := xcrypto.Seal(senderKey, nonce, symKey, nil)
	if err != nil {
		return domain.PSKEnvelope{}, domain.NewError(domain.KindDecryptionFailed, "%v", err)
	}

	env := domain.PSKEnvelope{
		RatchetCounter:     ratchetCounter,
		SenderPublicKey:    senderPub,
		EphemeralPublicKey: ephemeral.PublicKey,
		Ciphertext:         ciphertext,
	}
	copy(env.Nonce[:], nonce[:])
	copy(env.EncryptedSenderKey[:], encryptedSenderKey)
	return env, nil
}

// Open decrypts env using the caller's identity pair and the PSK that the
// caller has already re-derived at env.RatchetCounter (see the ratchet
// package), dispatching on whether the caller is sender or recipient.
func Open(env domain.PSKEnvelope, mySk domain.X25519Private, myPk domain.X25519Public, currentPSK domain.PSKKey) ([]byte, error) {
	secret, err := xcrypto.X25519([32]byte(mySk), [32]byte(env.EphemeralPublicKey))
	if err != nil {
		return nil, domain.NewError(domain.KindInvalidKey, "%v", err)
	}
	defer memzero.Zero(secret[:])

	var nonce [domain.NonceSize]byte
	copy(nonce[:], env.Nonce[:])

	if xcrypto.ConstantTimeEqual(myPk.Slice(), env.SenderPublicKey.Slice()) {
		senderKey, err := xcrypto.HKDFSHA256(env.EphemeralPublicKey.Slice(), ikm(secret, currentPSK),
			concatInfo(senderKeyInfoPrefix, myPk), 32)
		if err != nil {
			return nil, domain.NewError(domain.KindInvalidKey, "%v", err)
		}
		defer memzero.Zero(senderKey)

		symKey, err := xcrypto.Open(senderKey, nonce, env.EncryptedSenderKey[:], nil)
		if err != nil {
			return nil, domain.NewError(domain.KindDecryptionFailed, "sender-path key unwrap failed")
		}
		defer memzero.Zero(symKey)

		plaintext, err := xcrypto.Open(symKey, nonce, env.Ciphertext, nil)
		if err != nil {
			return nil, domain.NewError(domain.KindDecryptionFailed, "sender-path message open failed")
		}
		return plaintext, nil
	}

	symKey, err := xcrypto.HKDFSHA256(env.EphemeralPublicKey.Slice(), ikm(secret, currentPSK),
		concatInfo(messageKeyInfoPrefix, env.SenderPublicKey, myPk), 32)
	if err != nil {
		return nil, domain.NewError(domain.KindInvalidKey, "%v", err)
	}
	defer memzero.Zero(symKey)

	plaintext, err := xcrypto.Open(symKey, nonce, env.Ciphertext, nil)
	if err != nil {
		return nil, domain.NewError(domain.KindDecryptionFailed, "recipient-path message open failed")
	}
	return plaintext, nil
}

// ikm concatenates the raw ECDH secret with the current PSK: 32+32 = 64
// bytes of key-derivation input material.
func ikm(secret [32]byte, currentPSK domain.PSKKey) []byte {
	out := make([]byte, 0, 64)
	out = append(out, secret[:]...)
	out = append(out, currentPSK.Slice()...)
	return out
}

func concatInfo(prefix string, keys ...domain.X25519Public) []byte {
	var buf bytes.Buffer
	buf.WriteString(prefix)
	for _, k := range keys {
		buf.Write(k.Slice())
	}
	return buf.Bytes()
}
