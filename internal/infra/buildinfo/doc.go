// Package buildinfo reports the teeline-cli build.
//
// Release builds inject values with ldflags:
//
//	go build -ldflags "-X github.com/yndnr/teeline-go/internal/infra/buildinfo.Version=v1.0.0"
//
// Development builds fall back to the module and VCS data embedded by the
// Go toolchain.
package buildinfo
