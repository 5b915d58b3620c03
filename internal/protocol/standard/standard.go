package standard

import (
	"bytes"

	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
	"github.com/CorvidLabs/ts-algochat/internal/protocol/identity"
	"github.com/CorvidLabs/ts-algochat/internal/util/memzero"
	"github.com/CorvidLabs/ts-algochat/internal/xcrypto"
)

const (
	messageKeyInfoPrefix = "AlgoChatV1"
	senderKeyInfoPrefix  = "AlgoChatV1-SenderKey"
)

// Seal produces a StandardEnvelope carrying plaintext from senderPub to
// recipientPub. senderPub must be the caller's own long-lived identity
// public key.
func Seal(plaintext []byte, senderPub, recipientPub domain.X25519Public) (domain.StandardEnvelope, error) {
	if len(plaintext) > domain.MaxStandardPlaintext {
		err := domain.NewError(domain.KindMessageTooLarge,
			"plaintext %d bytes exceeds %d-byte limit", len(plaintext), domain.MaxStandardPlaintext)
		err.Size = len(plaintext)
		err.Max = domain.MaxStandardPlaintext
		return domain.StandardEnvelope{}, err
	}

	ephemeral, err := identity.GenerateEphemeral()
	if err != nil {
		return domain.StandardEnvelope{}, err
	}
	defer memzero.Zero(ephemeral.PrivateKey[:])

	rSecret, err := xcrypto.X25519([32]byte(ephemeral.PrivateKey), [32]byte(recipientPub))
	if err != nil {
		return domain.StandardEnvelope{}, domain.NewError(domain.KindInvalidKey, "%v", err)
	}
	defer memzero.Zero(rSecret[:])

	symKey, err := xcrypto.HKDFSHA256(ephemeral.PublicKey.Slice(), rSecret[:],
		concatInfo(messageKeyInfoPrefix, senderPub, recipientPub), 32)
	if err != nil {
		return domain.StandardEnvelope{}, domain.NewError(domain.KindInvalidKey, "%v", err)
	}
	defer memzero.Zero(symKey)

	nonce, err := xcrypto.RandomNonce()
	if err != nil {
		return domain.StandardEnvelope{}, domain.NewError(domain.KindInvalidKey, "%v", err)
	}

	ciphertext, err := xcrypto.Seal(symKey, nonce, plaintext, nil)
	if err != nil {
		return domain.StandardEnvelope{}, domain.NewError(domain.KindDecryptionFailed, "%v", err)
	}

	sSecret, err := xcrypto.X25519([32]byte(ephemeral.PrivateKey), [32]byte(senderPub))
	if err != nil {
		return domain.StandardEnvelope{}, domain.NewError(domain.KindInvalidKey, "%v", err)
	}
	defer memzero.Zero(sSecret[:])

	senderKey, err := xcrypto.HKDFSHA256(ephemeral.PublicKey.Slice(), sSecret[:],
		concatInfo(senderKeyInfoPrefix, senderPub), 32)
	if err != nil {
		return domain.StandardEnvelope{}, domain.NewError(domain.KindInvalidKey, "%v", err)
	}
	defer memzero.Zero(senderKey)

	encryptedSenderKey, err := xcrypto.Seal(senderKey, nonce, symKey, nil)
	if err != nil {
		return domain.StandardEnvelope{}, domain.NewError(domain.KindDecryptionFailed, "%v", err)
	}

	env := domain.StandardEnvelope{
		SenderPublicKey:    senderPub,
		EphemeralPublicKey: ephemeral.PublicKey,
		Ciphertext:         ciphertext,
	}
	copy(env.Nonce[:], nonce[:])
	copy(env.EncryptedSenderKey[:], encryptedSenderKey)
	return env, nil
}

// Open decrypts env using the caller's own identity pair, dispatching on
// whether the caller is the envelope's sender or its recipient.
func Open(env domain.StandardEnvelope, mySk domain.X25519Private, myPk domain.X25519Public) ([]byte, error) {
	secret, err := xcrypto.X25519([32]byte(mySk), [32]byte(env.EphemeralPublicKey))
	if err != nil {
		return nil, domain.NewError(domain.KindInvalidKey, "%v", err)
	}
	defer memzero.Zero(secret[:])

	var nonce [domain.NonceSize]byte
	copy(nonce[:], env.Nonce[:])

	if xcrypto.ConstantTimeEqual(myPk.Slice(), env.SenderPublicKey.Slice()) {
		senderKey, err := xcrypto.HKDFSHA256(env.EphemeralPublicKey.Slice(), secret[:],
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

	symKey, err := xcrypto.HKDFSHA256(env.EphemeralPublicKey.Slice(), secret[:],
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

// concatInfo builds an HKDF info string as prefix ‖ keys... in order,
// matching the sender-first (not sorted) semantics of the protocol.
func concatInfo(prefix string, keys ...domain.X25519Public) []byte {
	var buf bytes.Buffer
	buf.WriteString(prefix)
	for _, k := range keys {
		buf.Write(k.Slice())
	}
	return buf.Bytes()
}
