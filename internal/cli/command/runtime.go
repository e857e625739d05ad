package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/yndnr/teeline-go/internal/cli/config"
	"github.com/yndnr/teeline-go/internal/client/api"
	"github.com/yndnr/teeline-go/internal/client/cache"
	"github.com/yndnr/teeline-go/internal/core/service"
	"github.com/yndnr/teeline-go/internal/infra/confloader"
	"github.com/yndnr/teeline-go/internal/infra/shutdown"
	"github.com/yndnr/teeline-go/internal/infra/tlsroots"
	"github.com/yndnr/teeline-go/internal/telemetry/logger"
	"github.com/yndnr/teeline-go/internal/telemetry/metric"
)

// Runtime holds everything a command needs. One Runtime lives for a single
// invocation, or for a whole shell session so the Store survives between
// commands.
type Runtime struct {
	Config     *config.Config
	Loader     *confloader.Loader
	Logger     logger.Logger
	Metrics    *metric.Registry
	Client     *api.Client
	Store      *service.Store
	Accounts   *service.AccountService
	Catalog    *service.CatalogService
	Dispatcher *api.Dispatcher

	// levelPinned is set when --log-level overrides the file.
	levelPinned bool
	mu          sync.Mutex
	hooks       *shutdown.Hooks
}

// RuntimeOption configures NewRuntime.
type RuntimeOption func(*runtimeOptions)

type runtimeOptions struct {
	logOutput   io.Writer
	levelPinned bool
}

// WithLogOutput sends log records to w instead of stderr.
func WithLogOutput(w io.Writer) RuntimeOption {
	return func(o *runtimeOptions) { o.logOutput = w }
}

// WithPinnedLogLevel stops config reloads from changing the log level.
func WithPinnedLogLevel() RuntimeOption {
	return func(o *runtimeOptions) { o.levelPinned = true }
}

// NewRuntime wires the client stack from cfg. loader may be nil.
func NewRuntime(cfg *config.Config, loader *confloader.Loader, opts ...RuntimeOption) (*Runtime, error) {
	o := runtimeOptions{logOutput: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: o.logOutput,
	})
	if err != nil {
		return nil, err
	}
	logger.SetDefault(log)

	metrics := metric.NewRegistry()

	var roots *tlsroots.Pool
	if cfg.Server.CA != "" {
		if roots, err = tlsroots.Load(cfg.Server.CA); err != nil {
			return nil, fmt.Errorf("server.ca: %w", err)
		}
	}

	responses, err := cache.New[*api.Response](cfg.Cache.Backend, api.ResponseCodec(),
		cache.WithLogger(log.With("component", "cache")))
	if err != nil {
		return nil, err
	}

	clientOpts := []api.Option{
		api.WithBaseURL(cfg.Server.URL),
		api.WithUserAgent(cfg.Server.Agent),
		api.WithTimeout(cfg.Server.Timeout),
		api.WithCache(responses),
		api.WithMetrics(metrics),
		api.WithLogger(log.With("component", "api")),
	}
	if roots != nil {
		clientOpts = append(clientOpts, api.WithTLSConfig(roots.TLSConfig()))
	}
	if cfg.Server.RPS > 0 {
		clientOpts = append(clientOpts, api.WithRateLimit(cfg.Server.RPS, cfg.Server.Burst))
	}
	client, err := api.New(clientOpts...)
	if err != nil {
		return nil, errors.Join(err, responses.Close())
	}

	store := service.NewStore(
		service.WithLevelSyncer(service.NewAPILevelSyncer(client)),
		service.WithSyncObserver(metrics),
		service.WithStoreLogger(log.With("component", "store")),
	)

	rt := &Runtime{
		Config:      cfg,
		Loader:      loader,
		Logger:      log,
		Metrics:     metrics,
		Client:      client,
		Store:       store,
		Accounts:    service.NewAccountService(client, store, log.With("component", "account")),
		Catalog:     service.NewCatalogService(client),
		Dispatcher:  api.NewDispatcher(client, api.NewQueue()),
		levelPinned: o.levelPinned,
		hooks:       shutdown.NewHooks(shutdown.DefaultTimeout),
	}

	// Hooks run last to first: drain work, then release the cache.
	rt.OnClose(func(context.Context) error { return client.Close() })
	rt.OnClose(func(ctx context.Context) error { return waitDone(ctx, store.WaitSync) })
	rt.OnClose(func(ctx context.Context) error {
		return waitDone(ctx, func() {
			rt.Dispatcher.Wait()
			rt.Dispatcher.Queue().Drain()
		})
	})
	return rt, nil
}

// waitDone runs wait and returns early when ctx ends.
func waitDone(ctx context.Context, wait func()) error {
	done := make(chan struct{})
	go func() {
		wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ReloadConfig re-reads the config sources and applies the log level.
// Other settings need a new Runtime and are left as they are.
func (rt *Runtime) ReloadConfig() error {
	if rt.Loader == nil {
		return nil
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	next := &config.Config{}
	if err := rt.Loader.Reload(next); err != nil {
		return err
	}
	if err := config.Verify(next); err != nil {
		return err
	}

	if !rt.levelPinned && next.Log.Level != rt.Config.Log.Level {
		if err := logger.SetLevel(next.Log.Level); err != nil {
			return err
		}
		rt.Logger.Info("log level changed", "level", next.Log.Level)
		rt.Config.Log.Level = next.Log.Level
	}
	return nil
}

// Settings returns a copy of the current configuration.
func (rt *Runtime) Settings() config.Config {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return *rt.Config
}

// WatchConfig reloads the config whenever its file changes. The returned
// function stops watching. Without a config file it does nothing.
func (rt *Runtime) WatchConfig() (stop func() error, err error) {
	if rt.Loader == nil || rt.Loader.FilePath() == "" {
		return func() error { return nil }, nil
	}

	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(rt.Logger.With("component", "config")))
	if err != nil {
		return nil, err
	}
	if err := w.Watch(rt.Loader.FilePath()); err != nil {
		_ = w.Stop()
		return nil, err
	}
	w.OnChange(func(string) {
		if err := rt.ReloadConfig(); err != nil {
			rt.Logger.Warn("config reload failed", "error", err)
		}
	})
	w.StartAsync()
	return w.Stop, nil
}

// Close waits for background work and releases the client.
func (rt *Runtime) Close() error {
	return rt.hooks.Run()
}

// OnClose registers a hook for Close. Hooks run in reverse order.
func (rt *Runtime) OnClose(hook shutdown.Hook) {
	rt.hooks.OnShutdown(hook)
}
