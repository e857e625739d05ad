package command

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/yndnr/teeline-go/internal/infra/buildinfo"
)

func TestVersion(t *testing.T) {
	srv := newTeelineServer(t)

	res := runApp(t, srv, "", "-o", "json", "version")
	if res.err != nil {
		t.Fatal(res.err)
	}
	var info buildinfo.Info
	if err := json.Unmarshal([]byte(res.stdout), &info); err != nil {
		t.Fatalf("stdout is not JSON: %v", err)
	}
	if info != buildinfo.Get() {
		t.Errorf("version = %+v, want %+v", info, buildinfo.Get())
	}
}

func TestCache(t *testing.T) {
	srv := newTeelineServer(t)

	res := runApp(t, srv, "", "cache", "info")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !strings.Contains(res.stdout, "backend") || !strings.Contains(res.stdout, "memory") {
		t.Errorf("stdout =\n%s", res.stdout)
	}

	if res := runApp(t, srv, "", "cache", "purge"); res.stdout != "Cache cleared\n" {
		t.Errorf("purge = %q, %v", res.stdout, res.err)
	}
	if res := runApp(t, srv, "", "cache", "purge", "/games"); res.stdout != "Dropped /games\n" {
		t.Errorf("purge path = %q, %v", res.stdout, res.err)
	}
}

func TestConfig(t *testing.T) {
	srv := newTeelineServer(t)

	res := runApp(t, srv, "", "config", "show")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !strings.Contains(res.stdout, "server.url") || !strings.Contains(res.stdout, srv.URL) {
		t.Errorf("config show should list the --server override:\n%s", res.stdout)
	}

	res = runApp(t, srv, "", "config", "path")
	if !strings.HasPrefix(res.stdout, "No config file") {
		t.Errorf("config path = %q", res.stdout)
	}

	res = runApp(t, srv, "", "config", "validate", "/does/not/exist.yaml")
	if res.err == nil {
		t.Error("validating a missing file should fail")
	}
}
