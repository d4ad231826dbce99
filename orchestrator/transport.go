// Package orchestrator owns the subscription lifecycle: connect, receive,
// reconnect-with-backoff, and fan updates through the dexengine decoders
// into a bounded delivery queue (spec §4.7). It never speaks gRPC itself —
// that is the Transport collaborator's job, deliberately out of this
// repo's scope per spec §2's non-goals.
package orchestrator

import (
	"context"

	"github.com/P-HOW/solana-dex-engine/dexengine"
)

// Transport is the abstracted Yellowstone gRPC stream (spec §3.1/§4.7): one
// live connection the orchestrator drives. Implementations own their own
// dial/auth/subscribe details; the orchestrator only calls these four
// methods and treats any error from Connect or Recv as "reconnect."
type Transport interface {
	// Connect establishes the stream. Called once at startup and again on
	// every reconnect attempt.
	Connect(ctx context.Context) error
	// Recv blocks until the next update or ctx is done, returning an error
	// when the underlying stream has failed.
	Recv(ctx context.Context) (*dexengine.RawUpdate, error)
	// UpdateFilters pushes a new transaction/account filter set to the
	// live stream (spec §4.7 "dynamic subscription update").
	UpdateFilters(tx dexengine.TransactionFilter, acct dexengine.AccountFilter) error
	// Close releases the stream. Safe to call on an already-closed or
	// never-connected Transport.
	Close() error
}
