// Package session implements a session-state persistence provider backed by
// a distributed column store. It sits between a request-handling host and a
// storage driver, and takes care of the parts the storage engine does not:
// exclusive per-session locking, expiration-driven cleanup, and payload
// serialization.
//
// The package is storage-agnostic: any backend that satisfies the Store
// interface can be plugged in. A concurrent in-memory implementation ships
// out of the box; the cql subpackage provides the Cassandra-backed store the
// provider was designed around, and the redis subpackage a lighter
// alternative for single-region deployments.
//
// # Architecture
//
// A Provider exposes the operation set a host's session module consumes:
// shared and exclusive reads, save-and-release, explicit release, removal,
// timeout reset and uninitialized-item creation. Internally every operation
// runs through a lock coordinator that reads the full record, decides the
// state transition, and writes the full record back as a single store write.
//
//	┌──────┐  operations  ┌──────────┐  find/save/delete  ┌───────┐
//	│ Host │ ───────────► │ Provider │ ─────────────────► │ Store │
//	└──────┘              └──────────┘                    └───────┘
//
// # Locking model
//
// The backing store is assumed to offer no compare-and-swap and no row
// locks, so exclusivity is emulated: a request holds the lock only after it
// has itself persisted the locked record with an incremented lock id, and
// every release-style operation re-checks that lock id before writing. Two
// requests that both read an unlocked record before either writes can both
// believe they acquired the lock; this narrow race is inherent to
// best-effort locking over such a store and is accepted by design. No
// force-takeover of stale locks is performed: callers observe the lock age
// and decide their own recovery policy.
//
// Record expiry is authoritative in the provider, not in the store: a read
// that finds an expired record deletes it and reports a miss, regardless of
// whether server-side TTL cleanup has run yet.
//
// # Usage
//
//	store := cql.NewStore(cqlSession)
//	provider := session.New(store,
//	    session.WithApplicationName("shop"),
//	    session.WithTimeout(20*time.Minute),
//	)
//
//	res, err := provider.GetExclusive(ctx, sessionID)
//	if err != nil {
//	    // backend failure
//	}
//	switch res.Outcome {
//	case session.OutcomeFound:
//	    // res.Items, res.LockID
//	case session.OutcomeLocked:
//	    // res.LockAge, res.LockID — retry later
//	case session.OutcomeNotFound:
//	    // no session
//	}
//
// # Error Handling
//
// Common error values returned by the package:
//
//   - ErrSessionNotFound  – release/save targeted a record that is gone
//   - ErrLockMismatch     – caller's lock id no longer matches the stored one
//   - ErrDuplicateSession – a new-item save collided with a live record
//   - ErrSerialization    – payload could not be encoded or decoded
//
// "Not found" and "locked" on the read path are expected outcomes, not
// errors; they are reported through GetResult.Outcome.
package session
