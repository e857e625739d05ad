// Package command defines the teeline-cli commands on urfave/cli/v2.
//
//   - root.go: App, global flags, Runtime setup and teardown
//   - runtime.go: wiring of config, logger, metrics, cache, client and services
//   - account.go: login, register, logout, whoami, avatar, update, points
//   - catalog.go: games, sections, lessons, lesson, goals, leaderboard, overview
//   - tools.go: local validate and sanitize
//   - system.go: stats, cache, version
//   - config.go: config show, path and validate
//   - shell.go: interactive shell sharing one Runtime
//   - errors.go: user-facing error text
//
// Commands parse arguments, call a service and hand the result to an
// output.Printer.
package command
