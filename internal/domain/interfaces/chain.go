// Package interfaces declares the external collaborators the core engine
// depends on but never implements itself: ledger access and persistence.
// Per spec §1 these are explicitly out of scope for the core; only their
// contracts live here.
package interfaces

import (
	"context"

	types "github.com/CorvidLabs/ts-algochat/internal/domain/types"
)

// Chain is the ledger collaborator: signing, submitting, and querying
// payment transactions. The core only produces/consumes note bytes and
// receives already-parsed NoteTransaction records through this interface.
type Chain interface {
	SuggestedParams(ctx context.Context) (types.SuggestedParams, error)
	Submit(ctx context.Context, signedTxn []byte) (txid string, err error)
	SearchTransactions(
		ctx context.Context,
		address types.Ed25519Public,
		afterRound uint64,
		limit int,
	) ([]types.NoteTransaction, error)
	SearchTransactionsBetween(
		ctx context.Context,
		a, b types.Ed25519Public,
		afterRound uint64,
		limit int,
	) ([]types.NoteTransaction, error)
	LookupTransaction(ctx context.Context, txid string) (types.NoteTransaction, error)
}
