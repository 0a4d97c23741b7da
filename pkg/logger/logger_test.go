package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cqlsession/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Run("session fields", func(t *testing.T) {
		assert.Equal(t, "session_id", logger.SessionID("abc").Key)
		assert.Equal(t, "application_name", logger.ApplicationName("shop").Key)
		assert.Equal(t, "lock_id", logger.LockID(7).Key)
		assert.EqualValues(t, 7, logger.LockID(7).Value.Int64())
		assert.Equal(t, "lock_age", logger.LockAge(time.Second).Key)
	})
}

func TestNewWithOutput(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewWithOutput(logger.Config{Level: slog.LevelInfo, Format: logger.FormatJSON}, &buf)

		log.Info("hello", logger.SessionID("s1"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "s1", entry["session_id"])
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewWithOutput(logger.Config{Format: logger.FormatText}, &buf)

		log.Info("hello")
		assert.True(t, strings.Contains(buf.String(), "msg=hello"))
	})

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewWithOutput(logger.Config{Level: slog.LevelWarn}, &buf)

		log.Info("dropped")
		assert.Empty(t, buf.Bytes())

		log.Warn("kept")
		assert.NotEmpty(t, buf.Bytes())
	})
}
