package config

import (
	"github.com/yndnr/teeline-go/internal/client/api"
	"github.com/yndnr/teeline-go/internal/client/cache"
)

// Default configuration values.
const (
	DefaultServerURL = api.DefaultBaseURL
	DefaultAgent     = api.DefaultUserAgent
	DefaultTimeout   = api.DefaultTimeout
	DefaultBurst     = 1

	DefaultCacheBackend = cache.BackendMemory

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"

	DefaultOutputFormat = "table"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerSection{
			URL:     DefaultServerURL,
			Agent:   DefaultAgent,
			Timeout: DefaultTimeout,
			Burst:   DefaultBurst,
		},
		Cache: CacheSection{
			Backend: DefaultCacheBackend,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Output: OutputSection{
			Format: DefaultOutputFormat,
		},
	}
}

// defaultMap is Default as dotted keys for the loader.
func defaultMap() map[string]any {
	d := Default()
	return map[string]any{
		"server.url":     d.Server.URL,
		"server.agent":   d.Server.Agent,
		"server.timeout": d.Server.Timeout.String(),
		"server.rps":     d.Server.RPS,
		"server.burst":   d.Server.Burst,
		"server.ca":      d.Server.CA,
		"cache.backend":  d.Cache.Backend,
		"log.level":      d.Log.Level,
		"log.format":     d.Log.Format,
		"output.format":  d.Output.Format,
	}
}
