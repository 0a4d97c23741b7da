package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/cqlsession/pkg/logger"
)

// coordinator is the lock and expiry engine. It is the only component that
// mutates lock fields, and every mutation follows the same shape: read the
// full record, decide the transition, write the full record back as one
// store write. That keeps Locked, LockID and LockDate consistent with each
// other even though the backing store updates columns last-write-wins.
type coordinator struct {
	store   Store
	appName string
	timeout time.Duration
	log     *slog.Logger
}

// readOutcome is what a read attempt produced. Exactly one of the three
// states holds: record set (found), locked set (held elsewhere), or neither
// (no session).
type readOutcome struct {
	record  *Record
	locked  bool
	lockAge time.Duration
	lockID  int32
	actions Flags
}

// read implements the shared/exclusive read path. On an exclusive read of a
// live unlocked record it acquires the lock: increments the lock id, stamps
// the lock date, advances the expiry, and persists all of it in one write.
// An expired record is deleted on sight and reported as a miss.
func (c *coordinator) read(ctx context.Context, sessionID string, exclusive bool) (readOutcome, error) {
	now := time.Now().UTC()

	rec, err := c.store.Find(ctx, sessionID, c.appName)
	if errors.Is(err, ErrSessionNotFound) {
		return readOutcome{}, nil
	}
	if err != nil {
		return readOutcome{}, err
	}

	// Expiry is checked before lock state: a holder that crashed without
	// releasing keeps the record locked, and the record's own expiry is the
	// only thing that ever removes it.
	if rec.ExpiredAt(now) {
		c.log.DebugContext(ctx, "deleting expired session record",
			logger.SessionID(sessionID),
			logger.ApplicationName(c.appName))
		if err := c.store.Delete(ctx, sessionID, c.appName); err != nil {
			return readOutcome{}, err
		}
		return readOutcome{}, nil
	}

	if rec.Locked {
		lockAge := now.Sub(rec.LockDate)
		c.log.DebugContext(ctx, "session held by another request",
			logger.SessionID(sessionID),
			logger.ApplicationName(c.appName),
			logger.LockID(rec.LockID),
			logger.LockAge(lockAge))
		return readOutcome{
			locked:  true,
			lockAge: lockAge,
			lockID:  rec.LockID,
		}, nil
	}

	actions := rec.Flags

	if exclusive {
		rec.Locked = true
		rec.LockID = nextLockID(rec.LockID)
		rec.LockDate = now
		rec.Expires = now.Add(c.timeout)
		rec.Flags = FlagNone
		if err := c.store.Save(ctx, rec); err != nil {
			return readOutcome{}, err
		}
	} else if rec.Flags != FlagNone {
		// The initialize-item marker is reported once; clear it so the
		// next reader sees a plain record.
		rec.Flags = FlagNone
		if err := c.store.Save(ctx, rec); err != nil {
			return readOutcome{}, err
		}
	}

	return readOutcome{record: rec, lockID: rec.LockID, actions: actions}, nil
}

// setAndRelease replaces the payload and releases the lock in one write.
// For a new item it first verifies no live record occupies the key; an
// expired leftover is overwritten. For an existing item the caller's lock
// id must match the stored one, otherwise the lock was lost to another
// holder and the write is rejected.
func (c *coordinator) setAndRelease(ctx context.Context, sessionID string, payload []byte, lockID int32, newItem bool) error {
	now := time.Now().UTC()

	if newItem {
		existing, err := c.store.Find(ctx, sessionID, c.appName)
		if err != nil && !errors.Is(err, ErrSessionNotFound) {
			return err
		}
		if err == nil && !existing.ExpiredAt(now) {
			return ErrDuplicateSession
		}
		rec := &Record{
			SessionID:       sessionID,
			ApplicationName: c.appName,
			Created:         now,
			Expires:         now.Add(c.timeout),
			Payload:         payload,
		}
		return c.store.Save(ctx, rec)
	}

	rec, err := c.locked(ctx, sessionID, lockID)
	if err != nil {
		return err
	}

	rec.Payload = payload
	rec.Expires = now.Add(c.timeout)
	rec.Locked = false
	return c.store.Save(ctx, rec)
}

// release clears the lock and advances the expiry without touching the payload.
func (c *coordinator) release(ctx context.Context, sessionID string, lockID int32) error {
	rec, err := c.locked(ctx, sessionID, lockID)
	if err != nil {
		return err
	}

	rec.Locked = false
	rec.Expires = time.Now().UTC().Add(c.timeout)
	return c.store.Save(ctx, rec)
}

// remove deletes the record if the caller still holds its lock. A record
// that is already gone is not an error; a stale lock id is.
func (c *coordinator) remove(ctx context.Context, sessionID string, lockID int32) error {
	rec, err := c.locked(ctx, sessionID, lockID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return c.store.Delete(ctx, rec.SessionID, rec.ApplicationName)
}

// resetTimeout advances the expiry regardless of lock state. The host calls
// this at end of request to signal the session is still in use.
func (c *coordinator) resetTimeout(ctx context.Context, sessionID string) error {
	rec, err := c.store.Find(ctx, sessionID, c.appName)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	rec.Expires = time.Now().UTC().Add(c.timeout)
	return c.store.Save(ctx, rec)
}

// createUninitialized inserts a fresh, unlocked record with no payload and
// the initialize-item marker set. Colliding with a live record means the
// host handed out a duplicate session id.
func (c *coordinator) createUninitialized(ctx context.Context, sessionID string, ttl time.Duration) error {
	now := time.Now().UTC()

	existing, err := c.store.Find(ctx, sessionID, c.appName)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	if err == nil && !existing.ExpiredAt(now) {
		return ErrDuplicateSession
	}

	rec := &Record{
		SessionID:       sessionID,
		ApplicationName: c.appName,
		Created:         now,
		Expires:         now.Add(ttl),
		Flags:           FlagUninitialized,
	}
	return c.store.Save(ctx, rec)
}

// locked looks the record up and checks the caller's lock id against the
// stored one. The two failure modes stay distinct: ErrSessionNotFound when
// the record is gone, ErrLockMismatch when another holder owns it now.
func (c *coordinator) locked(ctx context.Context, sessionID string, lockID int32) (*Record, error) {
	rec, err := c.store.Find(ctx, sessionID, c.appName)
	if err != nil {
		return nil, err
	}
	if rec.LockID != lockID {
		c.log.WarnContext(ctx, "session lock lost to another holder",
			logger.SessionID(sessionID),
			logger.ApplicationName(c.appName),
			logger.LockID(rec.LockID),
			slog.Int64("caller_lock_id", int64(lockID)))
		return nil, ErrLockMismatch
	}
	return rec, nil
}
