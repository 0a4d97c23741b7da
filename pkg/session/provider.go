package session

import (
	"context"
	"log/slog"
	"time"
)

// Outcome is the discriminated result of a read attempt.
type Outcome int

const (
	// OutcomeNotFound means no session exists for the id.
	OutcomeNotFound Outcome = iota

	// OutcomeFound means the session was returned (and, for an exclusive
	// read, the lock was acquired).
	OutcomeFound

	// OutcomeLocked means another request holds the session; LockAge and
	// LockID describe the current holder.
	OutcomeLocked
)

// GetResult carries everything a read attempt can report back to the host.
type GetResult struct {
	Outcome Outcome

	// Items is the deserialized payload; only set when Outcome is
	// OutcomeFound.
	Items Items

	// LockID is the current lock id: the id the caller now holds after an
	// exclusive read, or the competing holder's id when locked.
	LockID int32

	// LockAge is how long the competing holder has held the lock; only set
	// when Outcome is OutcomeLocked.
	LockAge time.Duration

	// Actions carries the initialize-item marker for sessions created
	// uninitialized.
	Actions Flags
}

// Data is the store-data object handed to a host for a session that has
// not been persisted yet: an empty item collection plus the timeout the
// host should apply to it.
type Data struct {
	Items   Items
	Timeout time.Duration
}

// StateProvider is the operation set a request-handling host consumes.
type StateProvider interface {
	Get(ctx context.Context, sessionID string) (GetResult, error)
	GetExclusive(ctx context.Context, sessionID string) (GetResult, error)
	SetAndRelease(ctx context.Context, sessionID string, items Items, lockID int32, newItem bool) error
	Release(ctx context.Context, sessionID string, lockID int32) error
	Remove(ctx context.Context, sessionID string, lockID int32) error
	ResetTimeout(ctx context.Context, sessionID string) error
	CreateUninitialized(ctx context.Context, sessionID string, ttl time.Duration) error
	NewData(ttl time.Duration) Data
}

// Provider is the session-state provider facade. It is stateless beyond its
// configuration and safe for concurrent use from any number of request
// goroutines; the backing store is the only serialization point.
type Provider struct {
	coord *coordinator
	codec Codec
}

var _ StateProvider = (*Provider)(nil)

// New creates a Provider over the given store. It panics on a nil store:
// a provider without persistence is a misconfiguration, not a runtime
// condition.
func New(store Store, opts ...Option) *Provider {
	if store == nil {
		panic("session: store is required")
	}

	p := &Provider{
		coord: &coordinator{
			store:   store,
			appName: DefaultConfig().ApplicationName,
			timeout: DefaultConfig().Timeout,
			log:     slog.Default(),
		},
		codec: JSONCodec{},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Get retrieves the session without locking it.
func (p *Provider) Get(ctx context.Context, sessionID string) (GetResult, error) {
	return p.get(ctx, sessionID, false)
}

// GetExclusive retrieves the session and acquires its lock. The caller owns
// the session until it calls SetAndRelease, Release or Remove with the
// returned LockID.
func (p *Provider) GetExclusive(ctx context.Context, sessionID string) (GetResult, error) {
	return p.get(ctx, sessionID, true)
}

func (p *Provider) get(ctx context.Context, sessionID string, exclusive bool) (GetResult, error) {
	out, err := p.coord.read(ctx, sessionID, exclusive)
	if err != nil {
		return GetResult{}, err
	}

	if out.locked {
		return GetResult{
			Outcome: OutcomeLocked,
			LockID:  out.lockID,
			LockAge: out.lockAge,
		}, nil
	}
	if out.record == nil {
		return GetResult{Outcome: OutcomeNotFound}, nil
	}

	items, err := p.codec.Decode(out.record.Payload)
	if err != nil {
		return GetResult{}, err
	}

	return GetResult{
		Outcome: OutcomeFound,
		Items:   items,
		LockID:  out.lockID,
		Actions: out.actions,
	}, nil
}

// SetAndRelease saves the items and releases the lock identified by lockID.
// With newItem set it creates the record instead; colliding with a live
// record yields ErrDuplicateSession.
func (p *Provider) SetAndRelease(ctx context.Context, sessionID string, items Items, lockID int32, newItem bool) error {
	payload, err := p.codec.Encode(items)
	if err != nil {
		return err
	}
	return p.coord.setAndRelease(ctx, sessionID, payload, lockID, newItem)
}

// Release releases the lock identified by lockID without saving items.
func (p *Provider) Release(ctx context.Context, sessionID string, lockID int32) error {
	return p.coord.release(ctx, sessionID, lockID)
}

// Remove deletes the session if the caller still holds its lock. Removing
// an already-gone session is a no-op.
func (p *Provider) Remove(ctx context.Context, sessionID string, lockID int32) error {
	return p.coord.remove(ctx, sessionID, lockID)
}

// ResetTimeout advances the session's expiry, regardless of lock state.
func (p *Provider) ResetTimeout(ctx context.Context, sessionID string) error {
	return p.coord.resetTimeout(ctx, sessionID)
}

// CreateUninitialized inserts an empty session marked as needing
// initialization, expiring after ttl. The host reads the marker back via
// GetResult.Actions on the first real request.
func (p *Provider) CreateUninitialized(ctx context.Context, sessionID string, ttl time.Duration) error {
	return p.coord.createUninitialized(ctx, sessionID, ttl)
}

// NewData returns the empty session data a host uses for a brand-new
// session that has not been persisted yet. Nothing is written; the record
// is created by the first SetAndRelease with newItem set.
func (p *Provider) NewData(ttl time.Duration) Data {
	return Data{Items: Items{}, Timeout: ttl}
}
