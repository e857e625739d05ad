package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/yndnr/teeline-go/internal/client/cache"
)

// Verify validates the configuration.
func Verify(cfg *Config) error {
	return errors.Join(
		verifyServer(&cfg.Server),
		verifyCache(&cfg.Cache),
		verifyLog(&cfg.Log),
		verifyOutput(&cfg.Output),
	)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.URL == "" {
		return errors.New("server.url is required")
	}
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return fmt.Errorf("server.url: %w", err)
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server.url: unsupported scheme %q", u.Scheme)
	}
	if strings.TrimSpace(cfg.Agent) == "" {
		return errors.New("server.agent must not be empty")
	}
	if cfg.Timeout < 0 {
		return errors.New("server.timeout must not be negative")
	}
	if cfg.RPS < 0 {
		return errors.New("server.rps must not be negative")
	}
	if cfg.RPS > 0 && cfg.Burst < 1 {
		return errors.New("server.burst must be at least 1 when server.rps is set")
	}
	return nil
}

func verifyCache(cfg *CacheSection) error {
	switch cfg.Backend {
	case cache.BackendMemory, cache.BackendBadger:
		return nil
	default:
		return fmt.Errorf("cache.backend: unknown backend %q", cfg.Backend)
	}
}

func verifyLog(cfg *LogSection) error {
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", cfg.Level)
	}
	switch strings.ToLower(cfg.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", cfg.Format)
	}
	return nil
}

func verifyOutput(cfg *OutputSection) error {
	switch cfg.Format {
	case "table", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("output.format: unknown format %q", cfg.Format)
	}
}
