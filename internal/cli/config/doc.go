// Package config holds the teeline-cli configuration.
//
//   - spec.go: Config struct with koanf tags
//   - default.go: defaults
//   - verify.go: validation
//   - loader.go: layered loading through confloader
//
// The file lives at ~/.teeline/cli.yaml unless --config names another.
package config
