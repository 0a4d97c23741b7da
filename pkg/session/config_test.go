package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cqlsession/pkg/session"
)

func TestDefaultConfig(t *testing.T) {
	cfg := session.DefaultConfig()

	assert.Equal(t, "default", cfg.ApplicationName)
	assert.Equal(t, 20*time.Minute, cfg.Timeout)
}

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := session.NewID()
		assert.Len(t, id, 32)
		assert.NotContains(t, id, "-")

		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}
