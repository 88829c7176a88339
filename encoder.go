package cked

import (
	"github.com/pthm/cked/lib/encoding"
	"github.com/pthm/cked/lib/jsenc"
)

// Value is an alias for jsenc.Value for convenience.
type Value = jsenc.Value

// Member is an alias for jsenc.Member.
type Member = jsenc.Member

// Encoder is an alias for encoding.Encoder, used to store configurations
// in sessions.
type Encoder = encoding.Encoder

// NewEncoder creates a new snapshot encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}
