package api

import (
	"net/url"
	"strconv"
)

// LevelPath stores the account's level and points. UPDATE.
func LevelPath(level, points int) string {
	return "/accounts/level/" + strconv.Itoa(level) + "/" + strconv.Itoa(points)
}

// UsernameUpdatePath renames the account. UPDATE.
func UsernameUpdatePath(username string) string {
	return "/update/username/" + url.PathEscape(username)
}

// PasswordUpdatePath changes the password to the given SHA-256 digest. UPDATE.
func PasswordUpdatePath(passwordHash string) string {
	return "/update/password/" + url.PathEscape(passwordHash)
}

// EmailUpdatePath changes the email address. UPDATE.
func EmailUpdatePath(email string) string {
	return "/update/email/" + url.PathEscape(email)
}

// GamesPath lists games. FETCH, cacheable.
func GamesPath() string { return "/games" }

// GoalsPath lists goals. FETCH.
func GoalsPath() string { return "/goals" }

// RecentGoalsPath lists recently completed goals. FETCH.
func RecentGoalsPath() string { return "/goals/recent" }

// SectionsPath lists sections. FETCH, cacheable.
func SectionsPath() string { return "/sections" }

// LessonPath fetches one lesson. FETCH, cacheable.
func LessonPath(id int) string {
	return "/lessons/" + strconv.Itoa(id)
}

// SectionLessonsPath lists the lessons of a section. FETCH, cacheable.
func SectionLessonsPath(sectionID int) string {
	return "/lessons/section/" + strconv.Itoa(sectionID)
}

// SessionCreatePath signs in. CREATE.
func SessionCreatePath(username, passwordHash string) string {
	return "/sessions/" + url.PathEscape(username) + "/" + url.PathEscape(passwordHash)
}

// AccountPath fetches the signed-in account. FETCH.
func AccountPath() string { return "/accounts" }

// AccountCreatePath registers an account. CREATE.
func AccountCreatePath(username, passwordHash, email string) string {
	return "/accounts/" + url.PathEscape(username) + "/" + url.PathEscape(passwordHash) + "/" + url.PathEscape(email)
}

// LeaderboardPath lists the top accounts. FETCH.
func LeaderboardPath() string { return "/accounts/leaderboard" }
