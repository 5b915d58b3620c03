package algochat

import (
	"context"
	"crypto/ed25519"
	"sync"

	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
	"github.com/CorvidLabs/ts-algochat/internal/protocol/discovery"
	"github.com/CorvidLabs/ts-algochat/internal/protocol/envelope"
	"github.com/CorvidLabs/ts-algochat/internal/protocol/payload"
	"github.com/CorvidLabs/ts-algochat/internal/protocol/psk"
	"github.com/CorvidLabs/ts-algochat/internal/protocol/ratchet"
	"github.com/CorvidLabs/ts-algochat/internal/protocol/replay"
	"github.com/CorvidLabs/ts-algochat/internal/protocol/standard"
)

// Messenger composes one account's identity with a Chain collaborator to
// seal, open, publish, and discover AlgoChat messages. It holds no
// at-rest state of its own beyond the in-memory replay windows it tracks
// per peer; persistence is entirely the caller's responsibility via the
// storage collaborators in internal/domain/interfaces.
type Messenger struct {
	Identity domain.IdentityKeyPair
	Chain    domain.Chain

	mu      sync.Mutex
	windows map[domain.X25519Public]*replay.PeerWindow
}

// New returns a Messenger for identity, using chain to read transactions
// during key discovery. chain may be nil if the caller never calls
// DiscoverKey.
func New(identity domain.IdentityKeyPair, chain domain.Chain) *Messenger {
	return &Messenger{
		Identity: identity,
		Chain:    chain,
		windows:  make(map[domain.X25519Public]*replay.PeerWindow),
	}
}

func (m *Messenger) windowFor(peer domain.X25519Public) *replay.PeerWindow {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.windows[peer]
	if !ok {
		w = replay.NewPeerWindow()
		m.windows[peer] = w
	}
	return w
}

// SendStandard seals text (with an optional reply context) for
// recipientPub using the Standard (v1, ECDH-only) protocol, and returns
// the wire-ready note bytes. The caller embeds these bytes as the note of
// a payment transaction to recipientPub's address.
func (m *Messenger) SendStandard(recipientPub domain.X25519Public, text, replyToID, replyToPreview string) ([]byte, error) {
	plaintext := payload.BuildMessage(text, replyToID, replyToPreview)
	env, err := standard.Seal(plaintext, m.Identity.PublicKey, recipientPub)
	if err != nil {
		return nil, err
	}
	return envelope.EncodeStandard(env), nil
}

// SendPSK seals text for recipientPub using the hybrid PSK protocol,
// drawing the next send counter from the local per-peer ratchet state and
// deriving that counter's PSK from initialPSK.
func (m *Messenger) SendPSK(recipientPub domain.X25519Public, initialPSK domain.PSKKey, text, replyToID, replyToPreview string) ([]byte, error) {
	plaintext := payload.BuildMessage(text, replyToID, replyToPreview)
	counter := m.windowFor(recipientPub).NextSend()

	currentPSK, err := ratchet.DerivePSKAtCounter(initialPSK, counter)
	if err != nil {
		return nil, err
	}
	env, err := psk.Seal(plaintext, m.Identity.PublicKey, recipientPub, counter, currentPSK)
	if err != nil {
		return nil, err
	}
	return envelope.EncodePSK(env), nil
}

// PublishKey returns the raw note bytes for a self-addressed
// key-announcement transaction: the bare 32-byte public key when signer
// is nil, or the key followed by an Ed25519 signature over it when a
// signer is supplied.
func (m *Messenger) PublishKey(signer ed25519.PrivateKey) []byte {
	pub := m.Identity.PublicKey.Slice()
	if signer == nil {
		return append([]byte(nil), pub...)
	}
	sig := ed25519.Sign(signer, pub)
	out := make([]byte, 0, len(pub)+len(sig))
	out = append(out, pub...)
	return append(out, sig...)
}

// Receive decodes and opens note, which may be either protocol's
// envelope. peerInitialPSK supplies the PSK needed to open a PSK
// envelope; it is ignored for a Standard envelope and may be nil when the
// caller only expects Standard traffic. The returned bool is false for a
// key-publish body (the "no message" sentinel).
func (m *Messenger) Receive(note []byte, peer domain.X25519Public, peerInitialPSK *domain.PSKKey) (domain.DecryptedPayload, bool, error) {
	switch {
	case envelope.IsPSKMessage(note):
		return m.receivePSK(note, peer, peerInitialPSK)
	case envelope.IsChatMessage(note):
		return m.receiveStandard(note)
	default:
		return domain.DecryptedPayload{}, false, domain.NewError(domain.KindInvalidEnvelope, "note matches neither envelope shape")
	}
}

func (m *Messenger) receiveStandard(note []byte) (domain.DecryptedPayload, bool, error) {
	env, err := envelope.DecodeStandard(note)
	if err != nil {
		return domain.DecryptedPayload{}, false, err
	}
	plaintext, err := standard.Open(env, m.Identity.PrivateKey, m.Identity.PublicKey)
	if err != nil {
		return domain.DecryptedPayload{}, false, err
	}
	dp, ok := payload.Classify(plaintext)
	return dp, ok, nil
}

func (m *Messenger) receivePSK(note []byte, peer domain.X25519Public, peerInitialPSK *domain.PSKKey) (domain.DecryptedPayload, bool, error) {
	env, err := envelope.DecodePSK(note)
	if err != nil {
		return domain.DecryptedPayload{}, false, err
	}
	if peerInitialPSK == nil {
		return domain.DecryptedPayload{}, false, domain.NewError(domain.KindPSKInvalidLength, "no PSK configured for this peer")
	}
	if !m.windowFor(peer).Accept(env.RatchetCounter) {
		return domain.DecryptedPayload{}, false, domain.NewError(domain.KindPSKInvalidCounter,
			"counter %d rejected by replay window", env.RatchetCounter)
	}

	currentPSK, err := ratchet.DerivePSKAtCounter(*peerInitialPSK, env.RatchetCounter)
	if err != nil {
		return domain.DecryptedPayload{}, false, err
	}
	plaintext, err := psk.Open(env, m.Identity.PrivateKey, m.Identity.PublicKey, currentPSK)
	if err != nil {
		return domain.DecryptedPayload{}, false, err
	}
	dp, ok := payload.Classify(plaintext)
	return dp, ok, nil
}

// DiscoverKey scans recent transactions touching target via the Chain
// collaborator for a published X25519 key: self-announcement first
// (optionally signature-verified against targetEd25519PublicKey), falling
// back to the sender key asserted by an observed envelope.
func (m *Messenger) DiscoverKey(ctx context.Context, target domain.Ed25519Public, targetEd25519PublicKey []byte) (domain.DiscoveredKey, error) {
	announceTxns, err := m.Chain.SearchTransactions(ctx, target, 0, discovery.DefaultAnnouncementSearchDepth)
	if err != nil {
		return domain.DiscoveredKey{}, err
	}
	if dk, err := discovery.DiscoverSelfAnnouncement(announceTxns, target, targetEd25519PublicKey, discovery.DefaultAnnouncementSearchDepth); err == nil {
		return dk, nil
	}

	envelopeTxns, err := m.Chain.SearchTransactions(ctx, target, 0, discovery.DefaultEnvelopeSearchDepth)
	if err != nil {
		return domain.DiscoveredKey{}, err
	}
	return discovery.DiscoverFromEnvelope(envelopeTxns, target, discovery.DefaultEnvelopeSearchDepth)
}
