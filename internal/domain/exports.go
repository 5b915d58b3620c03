package domain

import (
	interfaces "github.com/CorvidLabs/ts-algochat/internal/domain/interfaces"
	types "github.com/CorvidLabs/ts-algochat/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact
// imports elsewhere in the module.
type (
	X25519Public     = types.X25519Public
	X25519Private    = types.X25519Private
	Ed25519Public    = types.Ed25519Public
	IdentityKeyPair  = types.IdentityKeyPair
	EphemeralKeyPair = types.EphemeralKeyPair
	PSKKey           = types.PSKKey

	StandardEnvelope = types.StandardEnvelope
	PSKEnvelope      = types.PSKEnvelope

	KeyAnnouncement = types.KeyAnnouncement
	DiscoveredKey   = types.DiscoveredKey
	Provenance      = types.Provenance

	PSKReplayState   = types.PSKReplayState
	DecryptedPayload = types.DecryptedPayload

	NoteTransaction = types.NoteTransaction
	SuggestedParams = types.SuggestedParams

	ErrorKind     = types.ErrorKind
	AlgoChatError = types.AlgoChatError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Chain                = interfaces.Chain
	MessageCache         = interfaces.MessageCache
	EncryptionKeyStorage = interfaces.EncryptionKeyStorage
	SendQueueStorage     = interfaces.SendQueueStorage
	PendingSend          = interfaces.PendingSend
)

// Error-kind aliases for compact call sites (domain.KindDecryptionFailed, …).
const (
	KindInvalidKey            = types.KindInvalidKey
	KindInvalidEnvelope       = types.KindInvalidEnvelope
	KindDecryptionFailed      = types.KindDecryptionFailed
	KindMessageTooLarge       = types.KindMessageTooLarge
	KindPublicKeyNotFound     = types.KindPublicKeyNotFound
	KindPSKInvalidLength      = types.KindPSKInvalidLength
	KindPSKInvalidCounter     = types.KindPSKInvalidCounter
	KindPSKExchangeURIInvalid = types.KindPSKExchangeURIInvalid
	KindInvalidAddress        = types.KindInvalidAddress
)

// Envelope wire layout constant aliases.
const (
	EnvelopeVersion  = types.EnvelopeVersion
	ProtocolStandard = types.ProtocolStandard
	ProtocolPSK      = types.ProtocolPSK

	NonceSize              = types.NonceSize
	AEADTagSize            = types.AEADTagSize
	EncryptedSenderKeySize = types.EncryptedSenderKeySize

	StandardHeaderSize = types.StandardHeaderSize
	PSKHeaderSize      = types.PSKHeaderSize

	MaxStandardPlaintext = types.MaxStandardPlaintext
	MaxPSKPlaintext      = types.MaxPSKPlaintext

	ReplayWindow = types.ReplayWindow
)

// NewError constructs a *domain.AlgoChatError.
var NewError = types.NewError

// NewPSKReplayState returns a fresh domain.PSKReplayState.
var NewPSKReplayState = types.NewPSKReplayState
