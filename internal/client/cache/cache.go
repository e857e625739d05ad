package cache

import (
	"errors"
	"fmt"
)

// Backend names accepted by New.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// ErrClosed is returned by Put after Close.
var ErrClosed = errors.New("cache: closed")

// Cache maps keys to values with at most one entry per key.
type Cache[V any] interface {
	// Get returns the entry for key.
	Get(key string) (V, bool)
	// Put stores v under key, replacing any previous entry.
	Put(key string, v V) error
	// Invalidate drops the entry for key, if any.
	Invalidate(key string)
	// Purge drops every entry.
	Purge()
	// Len returns the number of entries.
	Len() int
	// Close releases backend resources.
	Close() error
}

// Codec converts values to and from bytes for backends that store bytes.
type Codec[V any] interface {
	Encode(v V) ([]byte, error)
	Decode(data []byte) (V, error)
}

// New opens the named backend. The codec is only used by BackendBadger.
func New[V any](backend string, codec Codec[V], opts ...Option) (Cache[V], error) {
	switch backend {
	case "", BackendMemory:
		return NewMemory[V](opts...), nil
	case BackendBadger:
		if codec == nil {
			return nil, fmt.Errorf("cache: backend %q requires a codec", backend)
		}
		b, err := NewBadger(codec, opts...)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", backend)
	}
}
