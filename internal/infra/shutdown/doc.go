// Package shutdown runs cleanup hooks when a process or session ends.
//
// Hooks run in reverse order of registration under a shared deadline:
//
//	hooks := shutdown.NewHooks(5 * time.Second)
//	hooks.OnShutdown(func(ctx context.Context) error { return db.Close() })
//	defer hooks.Run()
//
// WithSignals derives a context that is cancelled on SIGINT or SIGTERM.
package shutdown
