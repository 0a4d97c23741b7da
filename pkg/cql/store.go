package cql

import (
	"context"
	"errors"
	"time"

	"github.com/gocql/gocql"

	"github.com/dmitrymomot/cqlsession/pkg/session"
)

// Store implements session.Store on a Cassandra table. Every Save is a
// single full-row upsert, so a record's lock fields can never be half
// written; conflict detection lives in the provider, not here, and backend
// errors pass through unchanged.
type Store struct {
	sess     *gocql.Session
	table    string
	ttlGrace time.Duration

	selectQ    string
	insertQ    string
	insertTTLQ string
	deleteQ    string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithTable overrides the session table name.
func WithTable(table string) StoreOption {
	return func(s *Store) {
		s.table = table
	}
}

// WithTTLGrace makes Save write rows with a server-side TTL of the record's
// remaining lifetime plus the given grace period. The TTL reclaims rows the
// provider never reads again; the grace keeps it safely behind the
// provider's own authoritative expiry check.
func WithTTLGrace(grace time.Duration) StoreOption {
	return func(s *Store) {
		s.ttlGrace = grace
	}
}

// NewStore creates a session store over an established gocql session.
func NewStore(sess *gocql.Session, opts ...StoreOption) *Store {
	s := &Store{
		sess:  sess,
		table: DefaultTable,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.selectQ = selectStmt(s.table)
	s.insertQ = insertStmt(s.table)
	s.insertTTLQ = insertTTLStmt(s.table)
	s.deleteQ = deleteStmt(s.table)

	return s
}

// Find returns the record for the key, or session.ErrSessionNotFound.
func (s *Store) Find(ctx context.Context, sessionID, applicationName string) (*session.Record, error) {
	var (
		rec    session.Record
		lockID int32
		flags  int32
	)

	err := s.sess.Query(s.selectQ, sessionID, applicationName).
		WithContext(ctx).
		Scan(&rec.SessionID, &rec.ApplicationName, &rec.Created, &rec.Expires,
			&rec.LockDate, &lockID, &rec.Locked, &flags, &rec.Payload)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, session.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	rec.LockID = lockID
	rec.Flags = session.Flags(flags)

	// Timestamps are compared across web hosts; keep them canonical.
	rec.Created = rec.Created.UTC()
	rec.Expires = rec.Expires.UTC()
	rec.LockDate = rec.LockDate.UTC()

	return &rec, nil
}

// Save writes the full record as one upsert.
func (s *Store) Save(ctx context.Context, rec *session.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	args := []any{
		rec.SessionID, rec.ApplicationName, rec.Created.UTC(), rec.Expires.UTC(),
		rec.LockDate.UTC(), rec.LockID, rec.Locked, int32(rec.Flags), rec.Payload,
	}

	if s.ttlGrace > 0 {
		ttl := int(time.Until(rec.Expires).Seconds() + s.ttlGrace.Seconds())
		if ttl < 1 {
			ttl = 1
		}
		return s.sess.Query(s.insertTTLQ, append(args, ttl)...).WithContext(ctx).Exec()
	}

	return s.sess.Query(s.insertQ, args...).WithContext(ctx).Exec()
}

// Delete removes the record for the key. Cassandra deletes are upserts of a
// tombstone, so deleting an absent record is naturally not an error.
func (s *Store) Delete(ctx context.Context, sessionID, applicationName string) error {
	return s.sess.Query(s.deleteQ, sessionID, applicationName).WithContext(ctx).Exec()
}

var _ session.Store = (*Store)(nil)
