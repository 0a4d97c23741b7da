package session

import (
	"math"
	"time"
)

// Flags carries side-channel status on a record, separate from the payload.
type Flags int32

const (
	// FlagNone marks a fully initialized record.
	FlagNone Flags = 0

	// FlagUninitialized marks a record created ahead of its first real save.
	// The host is expected to initialize the session when a read reports it.
	FlagUninitialized Flags = 1
)

// Record is the persisted shape of one session. A record is uniquely
// identified by its (SessionID, ApplicationName) pair; the application name
// lets multiple applications share one backing table.
type Record struct {
	SessionID       string    `json:"session_id"`
	ApplicationName string    `json:"application_name"`
	Created         time.Time `json:"date_created"`
	Expires         time.Time `json:"date_expires"`
	LockDate        time.Time `json:"date_lock"`
	LockID          int32     `json:"lock_id"`
	Locked          bool      `json:"is_locked"`
	Flags           Flags     `json:"flags"`
	Payload         []byte    `json:"items,omitempty"`
}

// NewRecord creates an unlocked record expiring after ttl.
func NewRecord(sessionID, applicationName string, ttl time.Duration) *Record {
	now := time.Now().UTC()
	return &Record{
		SessionID:       sessionID,
		ApplicationName: applicationName,
		Created:         now,
		Expires:         now.Add(ttl),
	}
}

// IsExpired reports whether the record's expiry has passed.
func (r *Record) IsExpired() bool {
	return r != nil && time.Now().UTC().After(r.Expires)
}

// ExpiredAt reports whether the record's expiry has passed at the given instant.
func (r *Record) ExpiredAt(now time.Time) bool {
	return r != nil && now.After(r.Expires)
}

// LockAge returns how long the record has been locked, zero if unlocked.
func (r *Record) LockAge() time.Duration {
	if r == nil || !r.Locked {
		return 0
	}
	return time.Now().UTC().Sub(r.LockDate)
}

// Validate checks the identity fields required by every store operation.
func (r *Record) Validate() error {
	if r == nil || r.SessionID == "" || r.ApplicationName == "" {
		return ErrInvalidRecord
	}
	return nil
}

// Clone returns a deep copy so callers and stores never share payload slices.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	cp := *r
	if r.Payload != nil {
		cp.Payload = make([]byte, len(r.Payload))
		copy(cp.Payload, r.Payload)
	}
	return &cp
}

// nextLockID increments a lock id. The counter is 32-bit and only ever
// grows for a live record; past MaxInt32 it restarts at 1 so the value
// stays positive and equality checks remain well-defined.
func nextLockID(id int32) int32 {
	if id == math.MaxInt32 {
		return 1
	}
	return id + 1
}
