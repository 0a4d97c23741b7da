package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/cqlsession/pkg/session"
)

// DefaultKeyPrefix namespaces session keys so the store can share a Redis
// database with other data.
const DefaultKeyPrefix = "session:"

// Store implements session.Store on Redis. One key per record, the full
// record as one JSON value, so a Save is always a single atomic write.
type Store struct {
	client redis.UniversalClient
	prefix string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithKeyPrefix overrides the key prefix.
func WithKeyPrefix(prefix string) StoreOption {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// NewStore creates a session store over an established Redis client.
func NewStore(client redis.UniversalClient, opts ...StoreOption) *Store {
	s := &Store{
		client: client,
		prefix: DefaultKeyPrefix,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Find returns the record for the key, or session.ErrSessionNotFound.
func (s *Store) Find(ctx context.Context, sessionID, applicationName string) (*session.Record, error) {
	data, err := s.client.Get(ctx, s.key(sessionID, applicationName)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, session.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var rec session.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Join(ErrMalformedRecord, err)
	}
	return &rec, nil
}

// Save upserts the record. The key's server-side TTL tracks the record's
// expiry as a backstop; the provider's own expiry check remains the
// authority.
func (s *Store) Save(ctx context.Context, rec *session.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Join(ErrMalformedRecord, err)
	}

	ttl := time.Until(rec.Expires)
	if ttl <= 0 {
		ttl = time.Second
	}
	return s.client.Set(ctx, s.key(rec.SessionID, rec.ApplicationName), data, ttl).Err()
}

// Delete removes the record for the key. Absent keys are ignored.
func (s *Store) Delete(ctx context.Context, sessionID, applicationName string) error {
	return s.client.Del(ctx, s.key(sessionID, applicationName)).Err()
}

func (s *Store) key(sessionID, applicationName string) string {
	return s.prefix + applicationName + ":" + sessionID
}

var _ session.Store = (*Store)(nil)
