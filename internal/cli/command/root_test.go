package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/urfave/cli/v2"
)

func TestApp(t *testing.T) {
	app := App()
	if app.Name != "teeline-cli" {
		t.Errorf("Name = %q", app.Name)
	}
	if app.Action == nil {
		t.Error("App without a command should start the shell")
	}

	names := make(map[string]bool)
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}
	for _, want := range []string{
		"login", "register", "logout", "whoami", "avatar", "update", "points",
		"games", "sections", "lessons", "lesson", "goals", "leaderboard", "overview",
		"validate", "sanitize", "shell", "stats", "cache", "config", "version",
	} {
		if !names[want] {
			t.Errorf("missing command %q", want)
		}
	}

	if AppWithRuntime(&Runtime{}).Action != nil {
		t.Error("shell apps must not nest another shell on empty input")
	}
}

func TestGlobalFlags(t *testing.T) {
	flags := make(map[string]bool)
	for _, f := range globalFlags() {
		for _, name := range f.Names() {
			flags[name] = true
		}
	}
	for _, want := range []string{"config", "server", "user-agent", "ca", "timeout", "cache", "output", "o", "wide", "log-level", "username", "password"} {
		if !flags[want] {
			t.Errorf("missing global flag %q", want)
		}
	}
}

func TestOverrides(t *testing.T) {
	var got map[string]any
	app := &cli.App{
		Flags: globalFlags(),
		Action: func(c *cli.Context) error {
			got = overrides(c)
			return nil
		},
	}
	args := []string{"x", "--server", "http://localhost:1", "--timeout", "5s", "-o", "yaml"}
	if err := app.Run(args); err != nil {
		t.Fatal(err)
	}

	want := map[string]any{
		"server.url":     "http://localhost:1",
		"server.timeout": (5 * time.Second).String(),
		"output.format":  "yaml",
	}
	if len(got) != len(want) {
		t.Fatalf("overrides = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("overrides[%q] = %v, want %v", k, got[k], v)
		}
	}
}

func TestApp_ConfigFile(t *testing.T) {
	srv := newTeelineServer(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".teeline")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	content := "server:\n  url: " + srv.URL + "\noutput:\n  format: json\ncache:\n  backend: badger\n"
	if err := os.WriteFile(filepath.Join(dir, "cli.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	app := App()
	app.Writer = &out
	app.ExitErrHandler = func(*cli.Context, error) {}
	if err := app.Run([]string{"teeline-cli", "cache", "info"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), `"backend": "badger"`) {
		t.Errorf("config file should select badger and json:\n%s", out.String())
	}
}

func TestApp_InvalidOutput(t *testing.T) {
	srv := newTeelineServer(t)
	res := runApp(t, srv, "", "-o", "csv", "games")
	if res.err == nil || !strings.Contains(res.err.Error(), "output.format") {
		t.Errorf("err = %v, want an output.format error", res.err)
	}
}

func TestApp_UnknownCommand(t *testing.T) {
	srv := newTeelineServer(t)
	res := runApp(t, srv, "", "gmaes")
	if res.err == nil || !strings.Contains(res.err.Error(), `unknown command "gmaes"`) {
		t.Errorf("err = %v", res.err)
	}
}

func TestApp_MissingCA(t *testing.T) {
	srv := newTeelineServer(t)
	res := runApp(t, srv, "", "--ca", filepath.Join(t.TempDir(), "missing.pem"), "games")
	if res.err == nil || !strings.Contains(res.err.Error(), "server.ca") {
		t.Errorf("err = %v, want a server.ca error", res.err)
	}
}
