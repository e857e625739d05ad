package command

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/urfave/cli/v2"
)

// passwordDigest is sha256("password").
const passwordDigest = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"

const sessionHash = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

// mockServer is a fake Teeline service. Routes are keyed by
// "METHOD /path" and answer with a JSON envelope.
type mockServer struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	hits     map[string]int
}

func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	m := &mockServer{
		handlers: make(map[string]http.HandlerFunc),
		hits:     make(map[string]int),
	}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		m.mu.Lock()
		m.hits[key]++
		handler, ok := m.handlers[key]
		m.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(m.Close)
	return m
}

// handle registers a handler for "METHOD /path".
func (m *mockServer) handle(key string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[key] = handler
}

// reply registers a fixed envelope for "METHOD /path".
func (m *mockServer) reply(key string, body map[string]any) {
	m.handle(key, func(w http.ResponseWriter, _ *http.Request) {
		envelope(w, body)
	})
}

func (m *mockServer) hitCount(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits[key]
}

// envelope writes body as a 200 JSON response.
func envelope(w http.ResponseWriter, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

// newTeelineServer serves the account flow for jared/password (level 3)
// and a small catalog. /accounts requires the session cookie.
func newTeelineServer(t *testing.T) *mockServer {
	m := newMockServer(t)

	m.handle("POST /sessions/jared/"+passwordDigest, func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "s1", Path: "/"})
		envelope(w, map[string]any{"error": 201, "session_hash": sessionHash})
	})
	m.handle("GET /accounts", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err != nil || c.Value != "s1" {
			envelope(w, map[string]any{"error": 401, "message": "Please log in"})
			return
		}
		envelope(w, map[string]any{
			"error": 0, "account_id": 7, "username": "jared",
			"email": "jared@mail.com", "level": 3, "points": 0,
		})
	})

	m.reply("GET /games", map[string]any{"error": 0, "games": []map[string]any{
		{"game_id": 1, "name": "Speed", "description": "Type fast"},
		{"game_id": 2, "name": "Match", "description": "Pair outlines"},
	}})
	m.reply("GET /sections", map[string]any{"error": 0, "sections": []map[string]any{
		{"section_id": 1, "name": "Basics", "required_level": 1},
	}})
	m.reply("GET /goals/recent", map[string]any{"error": 0, "goals": []map[string]any{
		{"goal_id": 4, "name": "First steps", "description": "Finish a lesson"},
	}})
	m.reply("GET /accounts/leaderboard", map[string]any{"error": 0, "leaderboard": []map[string]any{
		{"username": "alexandra", "level": 12, "points": 40},
		{"username": "jared", "level": 3, "points": 0},
	}})
	m.reply("GET /lessons/section/1", map[string]any{"error": 0, "lessons": []map[string]any{
		{"lesson_id": 1, "name": "Vowels", "content": "a e i o u", "required_level": 1},
		{"lesson_id": 2, "name": "Blends", "content": "pl pr", "required_level": 2},
	}})
	m.reply("GET /lessons/9", map[string]any{"error": 0, "lessons": []map[string]any{
		{"lesson_id": 9, "name": "Advanced", "content": "...", "required_level": 5},
	}})
	return m
}

// runResult captures one App run.
type runResult struct {
	stdout string
	stderr string
	err    error
}

// runApp runs teeline-cli against srv with an empty HOME and stdin.
func runApp(t *testing.T, srv *mockServer, stdin string, args ...string) runResult {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	app := App()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	full := append([]string{"teeline-cli", "--server", srv.URL}, args...)
	err := app.RunContext(context.Background(), full)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}
