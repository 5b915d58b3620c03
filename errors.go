package algochat

import domain "github.com/CorvidLabs/ts-algochat/internal/domain"

// Re-exported so callers never need to import the internal domain
// package directly to branch on error kind.
type (
	ErrorKind     = domain.ErrorKind
	AlgoChatErr   = domain.AlgoChatError
	DiscoveredKey = domain.DiscoveredKey
)

const (
	KindInvalidKey            = domain.KindInvalidKey
	KindInvalidEnvelope       = domain.KindInvalidEnvelope
	KindDecryptionFailed      = domain.KindDecryptionFailed
	KindMessageTooLarge       = domain.KindMessageTooLarge
	KindPublicKeyNotFound     = domain.KindPublicKeyNotFound
	KindPSKInvalidLength      = domain.KindPSKInvalidLength
	KindPSKInvalidCounter     = domain.KindPSKInvalidCounter
	KindPSKExchangeURIInvalid = domain.KindPSKExchangeURIInvalid
	KindInvalidAddress        = domain.KindInvalidAddress
)
