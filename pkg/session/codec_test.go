package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cqlsession/pkg/session"
)

func TestJSONCodec_RoundTrip(t *testing.T) {
	codec := session.JSONCodec{}

	tests := []struct {
		name  string
		items session.Items
	}{
		{name: "empty collection", items: session.Items{}},
		{name: "nil collection", items: nil},
		{
			name:  "string values",
			items: session.Items{"user": "alice", "theme": "dark"},
		},
		{
			name:  "mixed values",
			items: session.Items{"count": float64(42), "active": true, "name": "bob"},
		},
		{
			name:  "nested collection",
			items: session.Items{"cart": map[string]any{"sku": "a-1", "qty": float64(2)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := codec.Encode(tt.items)
			require.NoError(t, err)

			decoded, err := codec.Decode(data)
			require.NoError(t, err)

			if len(tt.items) == 0 {
				assert.Empty(t, decoded)
				assert.NotNil(t, decoded)
			} else {
				assert.Equal(t, tt.items, decoded)
			}
		})
	}
}

func TestJSONCodec_EmptyPayload(t *testing.T) {
	codec := session.JSONCodec{}

	t.Run("empty collection encodes to nil payload", func(t *testing.T) {
		data, err := codec.Encode(session.Items{})
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("nil payload decodes to empty collection", func(t *testing.T) {
		items, err := codec.Decode(nil)
		require.NoError(t, err)
		require.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("zero-length payload decodes to empty collection", func(t *testing.T) {
		items, err := codec.Decode([]byte{})
		require.NoError(t, err)
		require.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestJSONCodec_Malformed(t *testing.T) {
	codec := session.JSONCodec{}

	t.Run("malformed payload", func(t *testing.T) {
		_, err := codec.Decode([]byte("{not json"))
		assert.ErrorIs(t, err, session.ErrSerialization)
	})

	t.Run("unencodable items", func(t *testing.T) {
		_, err := codec.Encode(session.Items{"ch": make(chan int)})
		assert.ErrorIs(t, err, session.ErrSerialization)
	})
}
