package confloader

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewWatcher(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if w.watcher == nil || w.done == nil || w.logger == nil {
		t.Error("NewWatcher() left fields unset")
	}
	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}

func TestWatcher_Watch_NonexistentDir(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := w.Watch(filepath.Join(t.TempDir(), "missing", "teeline.yaml")); err == nil {
		t.Error("Watch() on a missing directory should fail")
	}
}

func TestWatcher_FileChange(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "teeline.yaml")
	otherFile := filepath.Join(dir, "other.yaml")

	if err := os.WriteFile(configFile, []byte("log:\n  level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(configFile); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	changed := make(chan string, 16)
	w.OnChange(func(path string) {
		select {
		case changed <- path:
		default:
		}
	})

	w.StartAsync()
	defer w.Stop()
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(otherFile, []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(configFile, []byte("log:\n  level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-changed:
		if filepath.Base(path) != "teeline.yaml" {
			t.Errorf("callback path = %q, want the watched file", path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("OnChange() callback was not triggered within timeout")
	}

	// Drain any further events and make sure none came from other.yaml.
	timeout := time.After(200 * time.Millisecond)
	for {
		select {
		case path := <-changed:
			if filepath.Base(path) == "other.yaml" {
				t.Errorf("unwatched file reported: %s", path)
			}
		case <-timeout:
			return
		}
	}
}
