package envelope

import (
	"encoding/binary"

	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
)

// IsPSKMessage is the PSK-envelope discriminator: version=0x01,
// protocolId=0x02. A byte stream satisfies at most one of IsChatMessage
// and IsPSKMessage, since the two protocolId values are disjoint.
func IsPSKMessage(data []byte) bool {
	return len(data) >= 2 && data[0] == domain.EnvelopeVersion && data[1] == domain.ProtocolPSK
}

// EncodePSK serializes e the same way as EncodeStandard, with a 4-byte
// big-endian ratchet counter inserted at offset 2; all Standard fields
// shift by 4. Total length is 130 + len(e.Ciphertext).
func EncodePSK(e domain.PSKEnvelope) []byte {
	out := make([]byte, domain.PSKHeaderSize+len(e.Ciphertext))
	out[0] = domain.EnvelopeVersion
	out[1] = domain.ProtocolPSK
	binary.BigEndian.PutUint32(out[2:6], e.RatchetCounter)
	copy(out[6:38], e.SenderPublicKey.Slice())
	copy(out[38:70], e.EphemeralPublicKey.Slice())
	copy(out[70:82], e.Nonce[:])
	copy(out[82:130], e.EncryptedSenderKey[:])
	copy(out[130:], e.Ciphertext)
	return out
}

// DecodePSK parses data into a PSKEnvelope.
func DecodePSK(data []byte) (domain.PSKEnvelope, error) {
	if len(data) < 2 {
		return domain.PSKEnvelope{}, domain.NewError(domain.KindInvalidEnvelope, "envelope too short: %d bytes", len(data))
	}
	if data[0] != domain.EnvelopeVersion {
		return domain.PSKEnvelope{}, domain.NewError(domain.KindInvalidEnvelope, "unsupported version 0x%02x", data[0])
	}
	if data[1] != domain.ProtocolPSK {
		return domain.PSKEnvelope{}, domain.NewError(domain.KindInvalidEnvelope, "unexpected protocolId 0x%02x", data[1])
	}
	if len(data) < domain.PSKHeaderSize+domain.AEADTagSize {
		return domain.PSKEnvelope{}, domain.NewError(domain.KindInvalidEnvelope,
			"envelope shorter than header+tag: %d bytes", len(data))
	}

	var e domain.PSKEnvelope
	e.RatchetCounter = binary.BigEndian.Uint32(data[2:6])
	copy(e.SenderPublicKey[:], data[6:38])
	copy(e.EphemeralPublicKey[:], data[38:70])
	copy(e.Nonce[:], data[70:82])
	copy(e.EncryptedSenderKey[:], data[82:130])
	e.Ciphertext = append([]byte(nil), data[130:]...)
	return e, nil
}
