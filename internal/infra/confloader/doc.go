// Package confloader loads layered configuration with koanf.
//
// Sources, from lowest to highest priority:
//
//  1. Defaults passed to WithDefaults
//  2. A YAML file
//  3. Environment variables with the TEELINE_ prefix
//  4. Explicit overrides from command-line flags (LoadMap)
//
// Watcher reports writes to a loaded file so long-running sessions can
// pick up changes.
package confloader
