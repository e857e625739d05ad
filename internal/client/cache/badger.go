package cache

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dgraph-io/badger/v3"

	"github.com/yndnr/teeline-go/internal/telemetry/logger"
)

// badgerMemTableSize keeps the in-memory arenas small; the cache holds a
// handful of catalog responses.
const badgerMemTableSize = 8 << 20

// Badger is a cache backed by badger running in in-memory mode.
// Nothing is written to disk.
type Badger[V any] struct {
	db     *badger.DB
	codec  Codec[V]
	logger logger.Logger
	closed atomic.Bool
}

// NewBadger opens an in-memory badger database.
func NewBadger[V any](codec Codec[V], opts ...Option) (*Badger[V], error) {
	o := buildOptions(opts)

	bopts := badger.DefaultOptions("").
		WithInMemory(true).
		WithMemTableSize(badgerMemTableSize).
		WithLogger(&badgerLogger{logger: o.logger})

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("badger: open in-memory db: %w", err)
	}

	return &Badger[V]{
		db:     db,
		codec:  codec,
		logger: o.logger,
	}, nil
}

// Get returns a decoded copy of the entry for key.
func (b *Badger[V]) Get(key string) (V, bool) {
	var zero V
	if b.closed.Load() {
		return zero, false
	}

	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			b.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return zero, false
	}

	v, err := b.codec.Decode(data)
	if err != nil {
		b.logger.Warn("cache decode failed", "key", key, "error", err)
		return zero, false
	}
	return v, true
}

// Put encodes v and stores it under key.
func (b *Badger[V]) Put(key string, v V) error {
	if b.closed.Load() {
		return ErrClosed
	}

	data, err := b.codec.Encode(v)
	if err != nil {
		return fmt.Errorf("badger: encode %q: %w", key, err)
	}

	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Invalidate drops the entry for key.
func (b *Badger[V]) Invalidate(key string) {
	if b.closed.Load() {
		return
	}
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		b.logger.Warn("cache invalidate failed", "key", key, "error", err)
	}
}

// Purge drops every entry.
func (b *Badger[V]) Purge() {
	if b.closed.Load() {
		return
	}
	if err := b.db.DropAll(); err != nil {
		b.logger.Warn("cache purge failed", "error", err)
	}
}

// Len counts the live keys.
func (b *Badger[V]) Len() int {
	if b.closed.Load() {
		return 0
	}

	n := 0
	_ = b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n
}

// Close closes the database. It is safe to call more than once.
func (b *Badger[V]) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	return b.db.Close()
}

// badgerLogger adapts Logger to badger's Logger interface.
type badgerLogger struct {
	logger logger.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
