package session

import "context"

// Store is the gateway to the backing column store. It is deliberately
// thin: point lookup, full-row upsert, delete. All conflict detection is
// done by the provider reading before writing — the store is not expected
// to offer compare-and-swap, and must not retry on its own.
type Store interface {
	// Find returns the record for the key, or ErrSessionNotFound.
	Find(ctx context.Context, sessionID, applicationName string) (*Record, error)

	// Save writes the full record as a single upsert.
	Save(ctx context.Context, record *Record) error

	// Delete removes the record for the key. Deleting an absent record is
	// not an error.
	Delete(ctx context.Context, sessionID, applicationName string) error
}
