package discovery

import (
	"fmt"

	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
	"github.com/CorvidLabs/ts-algochat/internal/protocol/announce"
	"github.com/CorvidLabs/ts-algochat/internal/protocol/envelope"
)

const (
	// DefaultAnnouncementSearchDepth bounds how many of the most recent
	// transactions DiscoverSelfAnnouncement inspects before giving up.
	DefaultAnnouncementSearchDepth = 100
	// DefaultEnvelopeSearchDepth bounds how many of the most recent
	// transactions DiscoverFromEnvelope inspects before giving up.
	DefaultEnvelopeSearchDepth = 200
)

// DiscoverSelfAnnouncement scans txns for target's self-addressed
// key-announcement transactions (sender = receiver = target), applying
// the announcement parser and returning the first result. ed25519PublicKey
// is target's identity key, used to verify signed announcements.
func DiscoverSelfAnnouncement(txns []domain.NoteTransaction, target domain.Ed25519Public, ed25519PublicKey []byte, searchDepth int) (domain.DiscoveredKey, error) {
	depth := 0
	for _, tx := range txns {
		if depth >= searchDepth {
			break
		}
		depth++
		if tx.Sender != target || tx.Receiver != target {
			continue
		}

		dk, ok := announce.Parse(tx.Note, ed25519PublicKey)
		if !ok {
			continue
		}
		dk.Provenance = &domain.Provenance{TxID: tx.TxID, Round: tx.ConfirmedRound, Time: tx.RoundTime}
		return dk, nil
	}
	return domain.DiscoveredKey{}, notFound(target, searchDepth)
}

// DiscoverFromEnvelope scans txns sent by target for a chat envelope and
// returns the sender public key it asserts. The result is never verified,
// since the key is self-asserted rather than signed.
func DiscoverFromEnvelope(txns []domain.NoteTransaction, target domain.Ed25519Public, searchDepth int) (domain.DiscoveredKey, error) {
	depth := 0
	for _, tx := range txns {
		if depth >= searchDepth {
			break
		}
		depth++
		if tx.Sender != target {
			continue
		}

		if !envelope.IsChatMessage(tx.Note) {
			continue
		}
		env, err := envelope.DecodeStandard(tx.Note)
		if err != nil {
			continue
		}
		return domain.DiscoveredKey{
			PublicKey:  env.SenderPublicKey,
			IsVerified: false,
			Provenance: &domain.Provenance{TxID: tx.TxID, Round: tx.ConfirmedRound, Time: tx.RoundTime},
		}, nil
	}
	return domain.DiscoveredKey{}, notFound(target, searchDepth)
}

func notFound(target domain.Ed25519Public, searchDepth int) error {
	err := domain.NewError(domain.KindPublicKeyNotFound,
		"no public key discovered for %x within %d transactions", target.Slice(), searchDepth)
	err.Address = fmt.Sprintf("%x", target.Slice())
	err.Depth = searchDepth
	return err
}
