package config

import "time"

// Config is the root configuration for teeline-cli.
type Config struct {
	Server ServerSection `koanf:"server" json:"server"`
	Cache  CacheSection  `koanf:"cache" json:"cache"`
	Log    LogSection    `koanf:"log" json:"log"`
	Output OutputSection `koanf:"output" json:"output"`
}

// ServerSection configures the service connection.
type ServerSection struct {
	URL     string        `koanf:"url" json:"url"`
	Agent   string        `koanf:"agent" json:"agent"`
	Timeout time.Duration `koanf:"timeout" json:"timeout"`
	// RPS limits requests per second. Zero means unlimited.
	RPS   float64 `koanf:"rps" json:"rps"`
	Burst int     `koanf:"burst" json:"burst"`
	// CA names a PEM file or directory of extra trusted roots.
	CA string `koanf:"ca" json:"ca,omitempty"`
}

// CacheSection selects the response cache backend.
type CacheSection struct {
	Backend string `koanf:"backend" json:"backend"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" json:"level"`
	Format string `koanf:"format" json:"format"`
}

// OutputSection configures result rendering.
type OutputSection struct {
	Format string `koanf:"format" json:"format"`
}
