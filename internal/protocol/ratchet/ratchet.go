package ratchet

import (
	"encoding/binary"

	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
	"github.com/CorvidLabs/ts-algochat/internal/xcrypto"
)

// SessionSize is the number of positions per ratchet session.
const SessionSize = 100

const (
	sessionSalt  = "AlgoChat-PSK-Session"
	positionSalt = "AlgoChat-PSK-Position"
)

// DeriveSessionPSK derives the per-session key for sessionIndex from
// initialPSK: HKDF(salt="AlgoChat-PSK-Session", ikm=initialPSK,
// info=BE32(sessionIndex), L=32).
func DeriveSessionPSK(initialPSK domain.PSKKey, sessionIndex uint32) (domain.PSKKey, error) {
	info := make([]byte, 4)
	binary.BigEndian.PutUint32(info, sessionIndex)

	out, err := xcrypto.HKDFSHA256([]byte(sessionSalt), initialPSK.Slice(), info, 32)
	if err != nil {
		return domain.PSKKey{}, domain.NewError(domain.KindInvalidKey, "%v", err)
	}
	var key domain.PSKKey
	copy(key[:], out)
	return key, nil
}

// DerivePositionPSK derives the per-position key for position within a
// session's PSK: HKDF(salt="AlgoChat-PSK-Position", ikm=sessionPSK,
// info=BE32(position), L=32).
func DerivePositionPSK(sessionPSK domain.PSKKey, position uint32) (domain.PSKKey, error) {
	info := make([]byte, 4)
	binary.BigEndian.PutUint32(info, position)

	out, err := xcrypto.HKDFSHA256([]byte(positionSalt), sessionPSK.Slice(), info, 32)
	if err != nil {
		return domain.PSKKey{}, domain.NewError(domain.KindInvalidKey, "%v", err)
	}
	var key domain.PSKKey
	copy(key[:], out)
	return key, nil
}

// DerivePSKAtCounter derives the per-message key at counter n:
// sessionIndex = n/100, position = n mod 100.
func DerivePSKAtCounter(initialPSK domain.PSKKey, n uint32) (domain.PSKKey, error) {
	sessionIndex := n / SessionSize
	position := n % SessionSize

	sessionPSK, err := DeriveSessionPSK(initialPSK, sessionIndex)
	if err != nil {
		return domain.PSKKey{}, err
	}
	return DerivePositionPSK(sessionPSK, position)
}
