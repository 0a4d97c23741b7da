package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cqlsession/pkg/session"
)

func TestMemoryStore_FindSaveDelete(t *testing.T) {
	store := session.NewMemoryStore(0)
	ctx := context.Background()

	t.Run("find absent record", func(t *testing.T) {
		_, err := store.Find(ctx, "missing", "app")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("save and find", func(t *testing.T) {
		rec := session.NewRecord("s1", "app", time.Hour)
		rec.Payload = []byte(`{"k":"v"}`)
		require.NoError(t, store.Save(ctx, rec))

		found, err := store.Find(ctx, "s1", "app")
		require.NoError(t, err)
		assert.Equal(t, rec, found)
	})

	t.Run("records are isolated by application name", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, session.NewRecord("s1", "other-app", time.Hour)))

		found, err := store.Find(ctx, "s1", "other-app")
		require.NoError(t, err)
		assert.Empty(t, found.Payload)
	})

	t.Run("save rejects invalid record", func(t *testing.T) {
		assert.ErrorIs(t, store.Save(ctx, &session.Record{}), session.ErrInvalidRecord)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "s1", "app"))
		_, err := store.Find(ctx, "s1", "app")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("delete absent record is not an error", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "never-existed", "app"))
	})
}

func TestMemoryStore_Uniqueness(t *testing.T) {
	store := session.NewMemoryStore(0)
	ctx := context.Background()

	// Saving the same key repeatedly must upsert, never duplicate.
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(ctx, session.NewRecord("s1", "app", time.Hour)))
	}
	require.NoError(t, store.Save(ctx, session.NewRecord("s1", "app2", time.Hour)))

	assert.Equal(t, 2, store.Len())
}

func TestMemoryStore_CloneIsolation(t *testing.T) {
	store := session.NewMemoryStore(0)
	ctx := context.Background()

	rec := session.NewRecord("s1", "app", time.Hour)
	rec.Payload = []byte(`{"k":"v"}`)
	require.NoError(t, store.Save(ctx, rec))

	// Mutating either the saved record or a found copy must not leak into
	// the stored one.
	rec.Payload[0] = 'X'

	found, err := store.Find(ctx, "s1", "app")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"k":"v"}`), found.Payload)

	found.Locked = true
	again, err := store.Find(ctx, "s1", "app")
	require.NoError(t, err)
	assert.False(t, again.Locked)
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	store := session.NewMemoryStore(0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, session.NewRecord("live", "app", time.Hour)))
	require.NoError(t, store.Save(ctx, session.NewRecord("dead1", "app", -time.Minute)))
	require.NoError(t, store.Save(ctx, session.NewRecord("dead2", "app", -time.Hour)))

	removed, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, store.Len())

	_, err = store.Find(ctx, "live", "app")
	assert.NoError(t, err)
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)

	require.NoError(t, store.Close())
	assert.NotPanics(t, func() {
		assert.NoError(t, store.Close())
	})
}

func TestMemoryStore_CleanupLoop(t *testing.T) {
	store := session.NewMemoryStore(10 * time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, session.NewRecord("dead", "app", -time.Minute)))

	assert.Eventually(t, func() bool {
		return store.Len() == 0
	}, time.Second, 10*time.Millisecond)
}
