package session

import (
	"encoding/json"
	"errors"
)

// Items is the session-item collection the host reads and writes.
type Items map[string]any

// Codec converts an item collection to and from the opaque payload stored in
// a single record column. Implementations must round-trip exactly, and must
// decode an empty payload to an empty collection — that is the stored
// representation of a freshly initialized session.
type Codec interface {
	Encode(items Items) ([]byte, error)
	Decode(data []byte) (Items, error)
}

// JSONCodec is the default Codec. An empty collection encodes to a nil
// payload rather than "{}" so uninitialized and initialized-empty sessions
// share one storage representation.
type JSONCodec struct{}

func (JSONCodec) Encode(items Items) ([]byte, error) {
	if len(items) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Join(ErrSerialization, err)
	}
	return data, nil
}

func (JSONCodec) Decode(data []byte) (Items, error) {
	if len(data) == 0 {
		return Items{}, nil
	}
	var items Items
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Join(ErrSerialization, err)
	}
	if items == nil {
		items = Items{}
	}
	return items, nil
}
