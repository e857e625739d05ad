package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// DefaultTimeout bounds how long Run waits for all hooks.
const DefaultTimeout = 10 * time.Second

// Hook releases one resource. It should return once ctx is done.
type Hook func(ctx context.Context) error

// Hooks collects cleanup hooks and runs them once.
type Hooks struct {
	timeout time.Duration
	mu      sync.Mutex
	hooks   []Hook
	once    sync.Once
	err     error
	done    chan struct{}
}

// NewHooks returns an empty hook list. A non-positive timeout uses
// DefaultTimeout.
func NewHooks(timeout time.Duration) *Hooks {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Hooks{timeout: timeout, done: make(chan struct{})}
}

// OnShutdown registers a hook. Hooks registered after Run are ignored.
func (h *Hooks) OnShutdown(hook Hook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Run executes the hooks in reverse order of registration and joins their
// errors. Later calls return the first result.
func (h *Hooks) Run() error {
	h.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()

		h.mu.Lock()
		hooks := h.hooks
		h.hooks = nil
		h.mu.Unlock()

		var errs []error
		for i := len(hooks) - 1; i >= 0; i-- {
			if err := hooks[i](ctx); err != nil {
				errs = append(errs, err)
			}
		}
		h.err = errors.Join(errs...)
		close(h.done)
	})
	return h.err
}

// Done is closed once Run has finished.
func (h *Hooks) Done() <-chan struct{} {
	return h.done
}

// WithSignals returns a context cancelled on SIGINT or SIGTERM.
func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
