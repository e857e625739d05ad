package cache

import "github.com/yndnr/teeline-go/internal/telemetry/logger"

// DefaultShardCount is the default number of memory shards.
const DefaultShardCount = 16

type options struct {
	shards int
	logger logger.Logger
}

// Option configures a cache backend.
type Option func(*options)

// WithShards sets the memory shard count. It must be a power of 2.
func WithShards(n int) Option {
	return func(o *options) { o.shards = n }
}

// WithLogger sets the logger for backend diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{shards: DefaultShardCount}
	for _, opt := range opts {
		opt(&o)
	}
	if o.shards <= 0 || o.shards&(o.shards-1) != 0 {
		o.shards = DefaultShardCount
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}
	return o
}
