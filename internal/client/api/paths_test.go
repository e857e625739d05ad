package api

import "testing"

func TestPaths(t *testing.T) {
	digest := "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"

	tests := []struct {
		got  string
		want string
	}{
		{LevelPath(3, 42), "/accounts/level/3/42"},
		{UsernameUpdatePath("jared_1"), "/update/username/jared_1"},
		{PasswordUpdatePath(digest), "/update/password/" + digest},
		{EmailUpdatePath("a+b@mail.com"), "/update/email/a+b@mail.com"},
		{EmailUpdatePath("a/b@mail.com"), "/update/email/a%2Fb@mail.com"},
		{GamesPath(), "/games"},
		{GoalsPath(), "/goals"},
		{RecentGoalsPath(), "/goals/recent"},
		{SectionsPath(), "/sections"},
		{LessonPath(12), "/lessons/12"},
		{SectionLessonsPath(4), "/lessons/section/4"},
		{SessionCreatePath("jared", digest), "/sessions/jared/" + digest},
		{AccountPath(), "/accounts"},
		{AccountCreatePath("jared", digest, "j@mail.com"), "/accounts/jared/" + digest + "/j@mail.com"},
		{LeaderboardPath(), "/accounts/leaderboard"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("path = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestMethod(t *testing.T) {
	tests := []struct {
		m    Method
		name string
		verb string
	}{
		{Fetch, "FETCH", "GET"},
		{Create, "CREATE", "POST"},
		{Update, "UPDATE", "PUT"},
	}

	for _, tt := range tests {
		if tt.m.String() != tt.name || tt.m.Verb() != tt.verb {
			t.Errorf("%d: String()=%s Verb()=%s", tt.m, tt.m.String(), tt.m.Verb())
		}
	}

	if CacheKey("/Lessons/Section/4") != "/lessons/section/4" {
		t.Error("CacheKey should lowercase")
	}
}
