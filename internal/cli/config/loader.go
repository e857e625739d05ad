package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yndnr/teeline-go/internal/infra/confloader"
)

// DefaultConfigPath returns ~/.teeline/cli.yaml.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".teeline", "cli.yaml")
}

// Load builds the configuration from defaults, the config file, TEELINE_
// environment variables and overrides, in increasing priority, then
// verifies it.
//
// An empty path means DefaultConfigPath, which may be absent. An explicit
// path must exist. The returned loader can Reload the same sources.
func Load(path string, overrides map[string]any) (*Config, *confloader.Loader, error) {
	filePath := path
	if filePath == "" {
		filePath = DefaultConfigPath()
		if _, err := os.Stat(filePath); errors.Is(err, fs.ErrNotExist) {
			filePath = ""
		}
	}

	loader := confloader.NewLoader(
		confloader.WithConfigFile(filePath),
		confloader.WithDefaults(defaultMap()),
	)

	cfg := &Config{}
	if err := loader.Load(cfg); err != nil {
		return nil, nil, err
	}

	if len(overrides) > 0 {
		if err := loader.LoadMap(overrides); err != nil {
			return nil, nil, err
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	if err := Verify(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, loader, nil
}
