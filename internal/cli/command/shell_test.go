package command

import (
	"net/http"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/urfave/cli/v2"
)

func TestShell_SessionSurvivesBetweenLines(t *testing.T) {
	srv := newTeelineServer(t)

	input := strings.Join([]string{
		"login jared password",
		"-o json whoami",
		"games",
		"games",
		"-o json stats",
		"logout",
		"whoami",
		"shell",
		"exit",
	}, "\n") + "\n"

	res := runApp(t, srv, input, "shell")
	if res.err != nil {
		t.Fatalf("shell error = %v", res.err)
	}

	for _, want := range []string{
		"Logged in as jared (level 3)",
		`"username": "jared"`,
		"Logged out",
		"Error: You are not logged in.",
		"Error: already in the shell",
	} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("output missing %q:\n%s", want, res.stdout)
		}
	}

	if srv.hitCount("GET /games") != 1 {
		t.Errorf("games fetched %d times, the second should be a cache hit", srv.hitCount("GET /games"))
	}
	if !strings.Contains(res.stdout, `"labels": "result=hit"`) {
		t.Errorf("stats should count the cache hit:\n%s", res.stdout)
	}
}

func TestShell_PointsSurviveSlowLevelSync(t *testing.T) {
	srv := newTeelineServer(t)
	srv.handle("PUT /accounts/level/3/10", func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		envelope(w, map[string]any{"error": 204})
	})
	srv.reply("PUT /accounts/level/4/5", map[string]any{"error": 204})

	input := strings.Join([]string{
		"login jared password",
		"points add 10",
		"-o json whoami",
		"points add 95",
		"exit",
	}, "\n") + "\n"

	res := runApp(t, srv, input, "shell")
	if res.err != nil {
		t.Fatalf("shell error = %v", res.err)
	}

	for _, want := range []string{
		"Level 3, 10/100 points",
		`"points": 10`,
		"You are now level 4!",
		"Level 4, 5/100 points",
	} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("output missing %q:\n%s", want, res.stdout)
		}
	}
	if n := srv.hitCount("GET /accounts"); n != 1 {
		t.Errorf("account fetched %d times, want only at login", n)
	}
	if srv.hitCount("PUT /accounts/level/4/5") != 1 {
		t.Error("the second total was not synced")
	}
}

func TestShell_LoginPromptReadsShellInput(t *testing.T) {
	srv := newTeelineServer(t)

	res := runApp(t, srv, "login jared\npassword\nwhoami\n", "shell")
	if res.err != nil {
		t.Fatalf("shell error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "Logged in as jared") || !strings.Contains(res.stdout, "jared@mail.com") {
		t.Errorf("stdout =\n%s", res.stdout)
	}
}

func TestShell_EmptyArgsStartsShell(t *testing.T) {
	srv := newTeelineServer(t)

	res := runApp(t, srv, "exit\n")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !strings.HasPrefix(res.stdout, "teeline> ") {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestCommandLines(t *testing.T) {
	cmds := []*cli.Command{
		{Name: "games"},
		{Name: "update", Subcommands: []*cli.Command{{Name: "email"}, {Name: "password"}}},
	}
	want := []string{"games", "update", "update email", "update password"}
	if got := commandLines(cmds); !reflect.DeepEqual(got, want) {
		t.Errorf("commandLines() = %q, want %q", got, want)
	}
}
