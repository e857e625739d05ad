package command

import (
	"context"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/yndnr/teeline-go/internal/cli/config"
)

func newTestRuntime(t *testing.T, cfg *config.Config) *Runtime {
	t.Helper()
	rt, err := NewRuntime(cfg, nil, WithLogOutput(io.Discard))
	if err != nil {
		t.Fatalf("NewRuntime() error = %v", err)
	}
	return rt
}

func TestRuntime_CloseRunsHooksOnce(t *testing.T) {
	cfg := config.Default()
	rt := newTestRuntime(t, cfg)

	var order []string
	rt.OnClose(func(context.Context) error { order = append(order, "first"); return nil })
	rt.OnClose(func(context.Context) error { order = append(order, "second"); return nil })

	if err := rt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := rt.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("hooks ran as %v, want [second first]", order)
	}
}

func TestRuntime_ExtraRootCA(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"error":0,"games":[{"game_id":1,"name":"Sprint","description":"Type fast"}]}`)
	}))
	t.Cleanup(srv.Close)

	caFile := filepath.Join(t.TempDir(), "ca.pem")
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw})
	if err := os.WriteFile(caFile, certPEM, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Server.URL = srv.URL
	cfg.Server.CA = caFile
	rt := newTestRuntime(t, cfg)
	t.Cleanup(func() { _ = rt.Close() })

	games, err := rt.Catalog.Games(context.Background())
	if err != nil {
		t.Fatalf("Games() over TLS error = %v", err)
	}
	if len(games) != 1 || games[0].Name != "Sprint" {
		t.Errorf("games = %+v", games)
	}
}

func TestRuntime_ReloadConfigChangesLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, loader, err := config.Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	rt, err := NewRuntime(cfg, loader, WithLogOutput(io.Discard))
	if err != nil {
		t.Fatalf("NewRuntime() error = %v", err)
	}
	t.Cleanup(func() { _ = rt.Close() })

	if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := rt.ReloadConfig(); err != nil {
		t.Fatalf("ReloadConfig() error = %v", err)
	}
	if got := rt.Settings().Log.Level; got != "debug" {
		t.Errorf("log level after reload = %q, want debug", got)
	}
}
