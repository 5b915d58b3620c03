package envelope

import (
	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
)

// IsChatMessage is the Standard-envelope discriminator: a byte stream
// satisfies it only if it starts with version=0x01, protocolId=0x01.
func IsChatMessage(data []byte) bool {
	return len(data) >= 2 && data[0] == domain.EnvelopeVersion && data[1] == domain.ProtocolStandard
}

// EncodeStandard serializes e in §3 table order: version, protocolId,
// senderPublicKey, ephemeralPublicKey, nonce, encryptedSenderKey,
// ciphertext. Total length is 126 + len(e.Ciphertext).
func EncodeStandard(e domain.StandardEnvelope) []byte {
	out := make([]byte, domain.StandardHeaderSize+len(e.Ciphertext))
	out[0] = domain.EnvelopeVersion
	out[1] = domain.ProtocolStandard
	copy(out[2:34], e.SenderPublicKey.Slice())
	copy(out[34:66], e.EphemeralPublicKey.Slice())
	copy(out[66:78], e.Nonce[:])
	copy(out[78:126], e.EncryptedSenderKey[:])
	copy(out[126:], e.Ciphertext)
	return out
}

// DecodeStandard parses data into a StandardEnvelope, rejecting anything
// that does not satisfy the Standard header shape or minimum length.
func DecodeStandard(data []byte) (domain.StandardEnvelope, error) {
	if len(data) < 2 {
		return domain.StandardEnvelope{}, domain.NewError(domain.KindInvalidEnvelope, "envelope too short: %d bytes", len(data))
	}
	if data[0] != domain.EnvelopeVersion {
		return domain.StandardEnvelope{}, domain.NewError(domain.KindInvalidEnvelope, "unsupported version 0x%02x", data[0])
	}
	if data[1] != domain.ProtocolStandard {
		return domain.StandardEnvelope{}, domain.NewError(domain.KindInvalidEnvelope, "unexpected protocolId 0x%02x", data[1])
	}
	if len(data) < domain.StandardHeaderSize+domain.AEADTagSize {
		return domain.StandardEnvelope{}, domain.NewError(domain.KindInvalidEnvelope,
			"envelope shorter than header+tag: %d bytes", len(data))
	}

	var e domain.StandardEnvelope
	copy(e.SenderPublicKey[:], data[2:34])
	copy(e.EphemeralPublicKey[:], data[34:66])
	copy(e.Nonce[:], data[66:78])
	copy(e.EncryptedSenderKey[:], data[78:126])
	e.Ciphertext = append([]byte(nil), data[126:]...)
	return e, nil
}
